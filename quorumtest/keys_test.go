package quorumtest

import (
	"testing"

	"github.com/iov-one/quorum/crypto"
)

func TestSignRecovers(t *testing.T) {
	keys := Authorities(t, 3)
	addrs := Addresses(keys)
	hash := crypto.Keccak256([]byte("payload"))

	for i, sig := range Sign(t, hash, keys...) {
		v, r, s, err := crypto.DecomposeSignature(sig)
		if err != nil {
			t.Fatalf("signature %d: %s", i, err)
		}
		signer, err := crypto.Recover(hash, v, r, s)
		if err != nil {
			t.Fatalf("signature %d: %s", i, err)
		}
		if !signer.Equals(addrs[i]) {
			t.Fatalf("signature %d recovered to %s", i, signer)
		}
	}
}

func TestSequenceAddr(t *testing.T) {
	a := SequenceAddr(7)
	if err := a.Validate(); err != nil {
		t.Fatalf("invalid address: %s", err)
	}
	if SequenceAddr(7).Equals(SequenceAddr(8)) {
		t.Fatal("addresses must differ")
	}
}
