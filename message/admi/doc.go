// Package admi holds the Administration message MessageRejectV01, whose root
// element carries the message identifier itself.
package admi
