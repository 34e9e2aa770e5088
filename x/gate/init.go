package gate

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

// Initializer fulfils the Initializer interface to load the gate
// configuration from the genesis file. Without a "conf.gate" section the
// defaults are used.
//
//   "conf": {
//     "gate": {"directory_timeout_ms": 2000, "max_signatures": 64}
//   }
type Initializer struct{}

var _ quorum.Initializer = Initializer{}

func (Initializer) FromGenesis(opts quorum.Options, db quorum.KVStore) error {
	err := gconf.InitConfig(db, opts, confPkg, &Configuration{})
	if errors.ErrNotFound.Is(err) {
		return nil
	}
	return err
}
