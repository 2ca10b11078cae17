// Package camt holds the Cash Management pay-in call.
package camt
