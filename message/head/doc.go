// Package head holds the business file header.
package head
