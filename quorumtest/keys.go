package quorumtest

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
)

// NewKey returns a new random secp256k1 key.
func NewKey(t testing.TB) *crypto.PrivateKey {
	t.Helper()
	key, err := crypto.GenPrivateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	return key
}

// Authorities returns n new keys. Use Addresses to build the authority
// list.
func Authorities(t testing.TB, n int) []*crypto.PrivateKey {
	t.Helper()
	keys := make([]*crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = NewKey(t)
	}
	return keys
}

// Addresses returns the addresses of given keys, in order.
func Addresses(keys []*crypto.PrivateKey) []quorum.Address {
	addrs := make([]quorum.Address, len(keys))
	for i, k := range keys {
		addrs[i] = k.Address()
	}
	return addrs
}

// Sign returns raw signatures of given hash, one per key, in order of
// the keys.
func Sign(t testing.TB, hash quorum.Hash, keys ...*crypto.PrivateKey) [][]byte {
	t.Helper()
	sigs := make([][]byte, len(keys))
	for i, k := range keys {
		sig, err := k.Sign(hash)
		if err != nil {
			t.Fatalf("key %d cannot sign: %s", i, err)
		}
		sigs[i] = sig
	}
	return sigs
}
