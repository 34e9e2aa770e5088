package quorum

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/quorum/errors"
)

// Options are the genesis options. Each package reads its own section by
// name, for example "authority" or "conf".
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal([]byte(msg), obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode %q section: %s", key, err)
	}
	return nil
}

// Has returns true if a section with given name is present.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// LoadOptions reads genesis options from a JSON file. The file may either
// contain the options directly or nest them under an "app_state" key, as
// a tendermint genesis file does.
func LoadOptions(path string) (Options, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot read genesis file %q: %s", path, err)
	}
	var wrapper struct {
		AppState Options `json:"app_state"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode genesis file %q: %s", path, err)
	}
	if wrapper.AppState != nil {
		return wrapper.AppState, nil
	}
	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode genesis file %q: %s", path, err)
	}
	return opts, nil
}

// Initializer implementations actually handle the parsing of the genesis
// options and store the initial state in the database.
type Initializer interface {
	FromGenesis(opts Options, db KVStore) error
}

// ChainInitializers lets you initialize many packages with one function.
// Initialization stops at the first error.
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer(inits)
}

type chainInitializer []Initializer

func (c chainInitializer) FromGenesis(opts Options, db KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
