package gate

import (
	"time"

	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/gconf"
)

const (
	confPkg = "gate"

	defaultDirectoryTimeout = 5 * time.Second
)

// DefaultConfiguration is used when no configuration was saved.
func DefaultConfiguration() Configuration {
	return Configuration{
		DirectoryTimeoutMs: int64(defaultDirectoryTimeout / time.Millisecond),
	}
}

// Validate ensures the configuration is usable.
func (c *Configuration) Validate() error {
	var errs error
	if c.DirectoryTimeoutMs <= 0 {
		errs = errors.AppendField(errs, "DirectoryTimeoutMs", errors.ErrInput.New("must be positive"))
	}
	if c.MaxSignatures < 0 {
		errs = errors.AppendField(errs, "MaxSignatures", errors.ErrInput.New("must not be negative"))
	}
	return errs
}

// withDefaults returns a copy with unset or invalid fields replaced by
// their default values.
func (c Configuration) withDefaults() Configuration {
	def := DefaultConfiguration()
	if c.DirectoryTimeoutMs <= 0 {
		c.DirectoryTimeoutMs = def.DirectoryTimeoutMs
	}
	if c.MaxSignatures < 0 {
		c.MaxSignatures = def.MaxSignatures
	}
	return c
}

// DirectoryTimeout returns the time limit of a single directory query.
func (c *Configuration) DirectoryTimeout() time.Duration {
	return time.Duration(c.DirectoryTimeoutMs) * time.Millisecond
}

// LoadConfiguration returns the saved configuration, or the default one
// if none was saved.
func LoadConfiguration(db quorum.ReadOnlyKVStore) (Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, confPkg, &conf); {
	case err == nil:
		return conf, nil
	case errors.ErrNotFound.Is(err):
		return DefaultConfiguration(), nil
	default:
		return Configuration{}, errors.Wrap(err, "load configuration")
	}
}

// SaveConfiguration validates and saves the configuration.
func SaveConfiguration(db quorum.KVStore, conf Configuration) error {
	return gconf.Save(db, confPkg, &conf)
}
