package authority

import (
	"context"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

var setKey = []byte("authority:set")

// StoreDirectory serves the authority list saved in the database.
type StoreDirectory struct {
	db quorum.ReadOnlyKVStore
}

var _ Directory = (*StoreDirectory)(nil)

// NewStoreDirectory returns a directory reading from given store.
func NewStoreDirectory(db quorum.ReadOnlyKVStore) *StoreDirectory {
	return &StoreDirectory{db: db}
}

// Authorities returns the saved list. ErrNotFound is returned if no list
// was ever saved. An empty saved list is a valid result.
func (d *StoreDirectory) Authorities(ctx context.Context) ([]quorum.Address, error) {
	set, err := Load(d.db)
	if err != nil {
		return nil, err
	}
	return set.List(), nil
}

// Load reads the authority set from the database.
func Load(db quorum.ReadOnlyKVStore) (*AuthoritySet, error) {
	raw, err := db.Get(setKey)
	if err != nil {
		return nil, errors.Wrap(err, "get authority set")
	}
	if raw == nil {
		return nil, errors.Wrap(errors.ErrNotFound, "authority set")
	}
	var set AuthoritySet
	if err := set.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrState, "cannot unmarshal authority set: %s", err)
	}
	return &set, nil
}

// Save validates and writes given list as the authority set, replacing
// the previous one.
func Save(db quorum.KVStore, addrs []quorum.Address) error {
	set := NewAuthoritySet(addrs)
	if err := set.Validate(); err != nil {
		return errors.Wrap(err, "authority set")
	}
	raw, err := set.Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal authority set")
	}
	return db.Set(setKey, raw)
}
