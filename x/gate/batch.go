package gate

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// SignatureBatch holds decomposed signatures as three parallel lists.
// Element i of each list belongs to the i-th signature.
type SignatureBatch struct {
	V []uint8
	R []quorum.Hash
	S []quorum.Hash
}

// BatchFromSignatures decomposes raw 65 byte signatures into a batch,
// keeping their order.
func BatchFromSignatures(sigs ...[]byte) (SignatureBatch, error) {
	b := SignatureBatch{
		V: make([]uint8, 0, len(sigs)),
		R: make([]quorum.Hash, 0, len(sigs)),
		S: make([]quorum.Hash, 0, len(sigs)),
	}
	for i, sig := range sigs {
		v, r, s, err := crypto.DecomposeSignature(sig)
		if err != nil {
			return SignatureBatch{}, errors.Wrapf(err, "signature %d", i)
		}
		b.Append(v, r, s)
	}
	return b, nil
}

// Append adds a signature at the end of the batch.
func (b *SignatureBatch) Append(v uint8, r, s quorum.Hash) {
	b.V = append(b.V, v)
	b.R = append(b.R, r)
	b.S = append(b.S, s)
}

// Len returns the number of signatures. The batch must be valid.
func (b SignatureBatch) Len() int {
	return len(b.V)
}

// Validate returns ErrMalformedBatch if the lists do not have the same
// length.
func (b SignatureBatch) Validate() error {
	if len(b.V) != len(b.R) || len(b.V) != len(b.S) {
		return errors.Wrapf(errors.ErrMalformedBatch,
			"v: %d, r: %d, s: %d", len(b.V), len(b.R), len(b.S))
	}
	return nil
}
