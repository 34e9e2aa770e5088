package main

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/authority"
	"github.com/iov-one/quorum/x/gate"
)

var genesisKey = []byte("_genesis")

// applyGenesis initializes the database from the genesis options. It is
// done only once, genesis of an already initialized database is ignored
// and false is returned.
func applyGenesis(db store.CacheableKVStore, opts quorum.Options) (bool, error) {
	done, err := db.Has(genesisKey)
	if err != nil {
		return false, errors.Wrap(err, "genesis marker")
	}
	if done {
		return false, nil
	}

	batch := db.CacheWrap()
	defer batch.Discard()

	initializer := quorum.ChainInitializers(
		authority.Initializer{},
		gate.Initializer{},
	)
	if err := initializer.FromGenesis(opts, batch); err != nil {
		return false, err
	}
	if err := batch.Set(genesisKey, []byte{1}); err != nil {
		return false, errors.Wrap(err, "genesis marker")
	}
	if err := batch.Write(); err != nil {
		return false, err
	}
	return true, nil
}
