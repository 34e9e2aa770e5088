package gate

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/crypto"
	"github.com/iov-one/quorum/errors"
)

// Match is the result of matching signatures against the authority list.
type Match struct {
	// Matched is the number of signatures that were matched to an
	// authority. It never exceeds Threshold.
	Matched int
	// Threshold is the number of matches required.
	Threshold int
	// Satisfied is true when Matched reached Threshold.
	Satisfied bool
}

// Threshold returns the majority of an authority list of size n. An empty
// list has a threshold of 1, which can never be reached.
func Threshold(n int) int {
	return n/2 + 1
}

// MatchThreshold counts how many signatures of the batch were created by
// the authorities, for given hash.
//
// Signatures must be ordered the same way as the authority list. A single
// cursor moves forward over the authorities and is never rewound: for
// each signature it advances until the recovered signer is found, or
// until the list is exhausted. A signature given out of order therefore
// consumes the rest of the list.
//
// Scanning stops once the threshold is reached. Remaining signatures are
// not inspected. A signature that does not recover to a signer fails the
// whole match with ErrInvalidSigner.
func MatchThreshold(hash quorum.Hash, batch SignatureBatch, authorities []quorum.Address) (Match, error) {
	if err := batch.Validate(); err != nil {
		return Match{}, err
	}

	m := Match{Threshold: Threshold(len(authorities))}
	var cursor int
	for i := 0; i < batch.Len() && m.Matched < m.Threshold; i++ {
		signer, err := crypto.Recover(hash, batch.V[i], batch.R[i], batch.S[i])
		if err != nil {
			return Match{}, errors.Wrapf(err, "signature %d", i)
		}
		for cursor < len(authorities) {
			auth := authorities[cursor]
			cursor++
			if auth.Equals(signer) {
				m.Matched++
				break
			}
		}
	}
	m.Satisfied = m.Matched >= m.Threshold
	return m, nil
}
