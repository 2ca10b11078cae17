// Package auth holds the Authorities message reporting a central
// counterparty's investments.
package auth
