// Package quorumtest provides helpers for testing code that authorizes
// operations: authority keys, signatures and addresses.
package quorumtest
