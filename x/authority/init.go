package authority

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

const optKey = "authority"

// Initializer fulfils the Initializer interface to load the authority
// list from the genesis file.
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

// FromGenesis will parse the authority list from genesis and save it to
// the database. Missing section is not an error, the list is then left
// unset.
//
//   "authority": {
//     "addresses": ["0x...", "bech32:..."]
//   }
func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	if !opts.Has(optKey) {
		return nil
	}
	var genesis struct {
		Addresses []quorum.Address `json:"addresses"`
	}
	if err := opts.ReadOptions(optKey, &genesis); err != nil {
		return err
	}
	if err := Save(db, genesis.Addresses); err != nil {
		return errors.Wrap(err, "genesis")
	}
	return nil
}
