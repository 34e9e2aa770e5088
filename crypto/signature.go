package crypto

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// SignatureLength is the length of a raw signature blob.
const SignatureLength = 2*quorum.HashLength + 1

// DecomposeSignature splits a raw signature into the recovery id and the two
// scalars. Both scalars are copied as they are stored, most significant
// byte first. Any input that is not exactly SignatureLength bytes long is
// rejected.
func DecomposeSignature(sig []byte) (v uint8, r, s quorum.Hash, err error) {
	if len(sig) != SignatureLength {
		return 0, r, s, errors.ErrMalformedSignature.Newf("want %d bytes, got %d", SignatureLength, len(sig))
	}
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v = sig[64]
	return v, r, s, nil
}

// ComposeSignature is the reverse of DecomposeSignature.
func ComposeSignature(v uint8, r, s quorum.Hash) []byte {
	sig := make([]byte, SignatureLength)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig
}
