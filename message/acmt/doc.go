// Package acmt holds the Account Management messages used by the account
// switching service: the termination of a switch and the technical rejection
// of a switch message.
package acmt
