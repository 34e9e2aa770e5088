package quorumtest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/quorum"
)

// ParseAddress takes an address in a human readable format and returns its
// binary representation. This function is a test helper that is using
// quorum.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) quorum.Address {
	t.Helper()

	addr, err := quorum.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) quorum.Address {
	t.Helper()
	raw := make([]byte, quorum.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return quorum.Address(raw)
}

// SequenceAddr returns an address filled with given byte. Useful when a
// test needs a stable, readable address.
func SequenceAddr(n byte) quorum.Address {
	a := make(quorum.Address, quorum.AddressLength)
	for i := range a {
		a[i] = n
	}
	return a
}
