package gate

import (
	"math"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

var nonceKey = []byte("gate:nonce")

// loadNonce returns the current nonce. A nonce that was never saved is 0.
func loadNonce(db quorum.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(nonceKey)
	if err != nil {
		return 0, errors.Wrap(err, "get nonce")
	}
	if raw == nil {
		return 0, nil
	}
	var state NonceState
	if err := state.Unmarshal(raw); err != nil {
		return 0, errors.Wrapf(errors.ErrState, "cannot unmarshal nonce: %s", err)
	}
	return state.Value, nil
}

func saveNonce(db quorum.SetDeleter, nonce uint64) error {
	raw, err := (&NonceState{Value: nonce}).Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal nonce")
	}
	return db.Set(nonceKey, raw)
}

// nextNonce returns the nonce that follows n.
func nextNonce(n uint64) (uint64, error) {
	if n == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "nonce")
	}
	return n + 1, nil
}
