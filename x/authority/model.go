package authority

import (
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// NewAuthoritySet returns a set holding given addresses.
func NewAuthoritySet(addrs []quorum.Address) *AuthoritySet {
	raw := make([][]byte, len(addrs))
	for i, a := range addrs {
		raw[i] = a.Clone()
	}
	return &AuthoritySet{Addresses: raw}
}

// List returns the addresses of the set, in order.
func (m *AuthoritySet) List() []quorum.Address {
	res := make([]quorum.Address, len(m.Addresses))
	for i, a := range m.Addresses {
		res[i] = quorum.Address(a)
	}
	return res
}

// Validate ensures that every address is well formed.
func (m *AuthoritySet) Validate() error {
	var errs error
	for i, a := range m.Addresses {
		errs = errors.AppendField(errs, errors.Index("Addresses", i), quorum.Address(a).Validate())
	}
	return errs
}
