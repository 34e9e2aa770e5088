package crypto

import (
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

func TestRecover(t *testing.T) {
	key, err := GenPrivateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	hash := Keccak256([]byte("set balance"))
	sig, err := key.Sign(hash)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	v, r, s, err := DecomposeSignature(sig)
	if err != nil {
		t.Fatalf("cannot decompose: %s", err)
	}
	if v != 27 && v != 28 {
		t.Fatalf("unexpected recovery id %d", v)
	}

	addr, err := Recover(hash, v, r, s)
	if err != nil {
		t.Fatalf("cannot recover: %+v", err)
	}
	if !addr.Equals(key.Address()) {
		t.Fatalf("want %s, got %s", key.Address(), addr)
	}

	// A different digest recovers to a different identity or fails, but
	// never to the signer.
	other := Keccak256([]byte("set code"))
	if addr, err := Recover(other, v, r, s); err == nil && addr.Equals(key.Address()) {
		t.Fatal("signature must be bound to the digest")
	}
}

func TestRecoverInvalid(t *testing.T) {
	key, err := GenPrivateKey()
	if err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	hash := Keccak256([]byte("payload"))
	sig, err := key.Sign(hash)
	if err != nil {
		t.Fatalf("cannot sign: %s", err)
	}
	v, r, s, _ := DecomposeSignature(sig)

	// secp256k1n, the order of the curve. Scalars must be below it.
	order, _ := quorum.ParseHash("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	cases := map[string]struct {
		v    uint8
		r, s quorum.Hash
	}{
		"raw recovery id 0": {v: v - RecoveryIDOffset, r: r, s: s},
		"recovery id 29":    {v: 29, r: r, s: s},
		"zero r":            {v: v, r: quorum.Hash{}, s: s},
		"zero s":            {v: v, r: r, s: quorum.Hash{}},
		"r equal to order":  {v: v, r: order, s: s},
		"s equal to order":  {v: v, r: r, s: order},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			addr, err := Recover(hash, tc.v, tc.r, tc.s)
			if !errors.ErrInvalidSigner.Is(err) {
				t.Fatalf("want invalid signer error, got %+v", err)
			}
			if addr != nil {
				t.Fatalf("address must not be returned: %s", addr)
			}
		})
	}
}

func TestPrivateKeyEncoding(t *testing.T) {
	const hexKey = "1b48e04041e23c72cacdaa9b0775d31515fc74d6a6d3c8804172f7e7d1248529"
	key, err := PrivateKeyFromHex("0x" + hexKey)
	if err != nil {
		t.Fatalf("cannot load key: %s", err)
	}
	if key.Hex() != hexKey {
		t.Fatalf("unexpected hex %s", key.Hex())
	}
	// Address of this key as computed by Ethereum tooling.
	want, err := quorum.ParseAddress("a27df20e6579ac472481f0ea918165d24bfb713b")
	if err != nil {
		t.Fatal(err)
	}
	if !key.Address().Equals(want) {
		t.Fatalf("want %s, got %s", want, key.Address())
	}

	if _, err := PrivateKeyFromHex("not hex"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
	if _, err := PrivateKeyFromBytes([]byte{1, 2, 3}); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %v", err)
	}
}
