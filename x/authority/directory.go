package authority

import (
	"context"

	"github.com/iov-one/quorum"
)

// Directory supplies the current ordered list of authorities.
//
// Implementations must return an error instead of an empty or stale list
// when the list cannot be obtained. The order of the returned list is
// significant.
type Directory interface {
	Authorities(ctx context.Context) ([]quorum.Address, error)
}

// Static is a directory that always returns the same list.
type Static []quorum.Address

var _ Directory = Static(nil)

// NewStatic returns a directory serving given addresses, in given order.
func NewStatic(addrs ...quorum.Address) Static {
	return Static(addrs)
}

// Authorities returns a copy of the list.
func (s Static) Authorities(context.Context) ([]quorum.Address, error) {
	res := make([]quorum.Address, len(s))
	for i, a := range s {
		res[i] = a.Clone()
	}
	return res, nil
}

// DirectoryFunc adapts a function to the Directory interface.
type DirectoryFunc func(context.Context) ([]quorum.Address, error)

// Authorities calls fn(ctx).
func (fn DirectoryFunc) Authorities(ctx context.Context) ([]quorum.Address, error) {
	return fn(ctx)
}
