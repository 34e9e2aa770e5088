package crypto

import (
	"bytes"
	"testing"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

func TestDecomposeSignature(t *testing.T) {
	sig := make([]byte, SignatureLength)
	for i := range sig {
		sig[i] = byte(i)
	}

	v, r, s, err := DecomposeSignature(sig)
	if err != nil {
		t.Fatalf("cannot decompose: %s", err)
	}
	if v != 64 {
		t.Fatalf("recovery id must be the last byte, got %d", v)
	}
	for i := 0; i < 32; i++ {
		if r[i] != byte(i) {
			t.Fatalf("r[%d] = %d", i, r[i])
		}
		if s[i] != byte(32+i) {
			t.Fatalf("s[%d] = %d", i, s[i])
		}
	}

	if back := ComposeSignature(v, r, s); !bytes.Equal(back, sig) {
		t.Fatalf("compose is not the reverse of decompose: %x", back)
	}
}

func TestDecomposeSignatureLength(t *testing.T) {
	cases := map[string][]byte{
		"nil":       nil,
		"empty":     {},
		"too short": make([]byte, SignatureLength-1),
		"too long":  make([]byte, SignatureLength+1),
		"64 bytes":  make([]byte, 64),
	}
	for name, sig := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, _, err := DecomposeSignature(sig); !errors.ErrMalformedSignature.Is(err) {
				t.Fatalf("want malformed signature error, got %+v", err)
			}
		})
	}
}

func TestKeccak256(t *testing.T) {
	// Well known keccak256 digest of an empty input.
	want, err := quorum.ParseHash("0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if err != nil {
		t.Fatal(err)
	}
	if got := Keccak256(); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
	if Keccak256([]byte("ab"), []byte("c")) != Keccak256([]byte("abc")) {
		t.Fatal("chunks must be concatenated")
	}
}
