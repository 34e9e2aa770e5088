package gate

import (
	"github.com/holiman/uint256"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
)

// Operation kinds.
const (
	KindSetBalance = "SetBalance"
	KindSetCode    = "SetCode"
	KindSetStorage = "SetStorage"
)

// Operation is a command that must be authorized before being emitted.
// The set of operations is closed, all implementations live in this
// package.
type Operation interface {
	// Kind returns the name of the operation, for example "SetBalance".
	Kind() string
	// Validate returns an error if the operation is not well formed.
	Validate() error

	// pack returns the tight packed encoding of the operation fields,
	// in declaration order. The nonce is not included.
	pack() []byte
	// event returns the command emitted once the operation is
	// authorized.
	event(nonce uint64) *Event
}

var (
	_ Operation = (*SetBalanceMsg)(nil)
	_ Operation = (*SetCodeMsg)(nil)
	_ Operation = (*SetStorageMsg)(nil)
)

// SetBalanceMsg sets the balance of the target account.
type SetBalanceMsg struct {
	Target  quorum.Address
	Balance *uint256.Int
}

func (SetBalanceMsg) Kind() string { return KindSetBalance }

func (m *SetBalanceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Target", m.Target.Validate())
	if m.Balance == nil {
		errs = errors.AppendField(errs, "Balance", errors.ErrEmpty)
	}
	return errs
}

func (m *SetBalanceMsg) pack() []byte {
	balance := m.Balance.Bytes32()
	return concat(m.Target, balance[:])
}

func (m *SetBalanceMsg) event(nonce uint64) *Event {
	return &Event{
		Kind:    KindSetBalance,
		Nonce:   nonce,
		Target:  m.Target.Clone(),
		Balance: new(uint256.Int).Set(m.Balance),
	}
}

// SetCodeMsg replaces the code of the target account. Empty code is
// allowed.
type SetCodeMsg struct {
	Target quorum.Address
	Code   []byte
}

func (SetCodeMsg) Kind() string { return KindSetCode }

func (m *SetCodeMsg) Validate() error {
	return errors.AppendField(nil, "Target", m.Target.Validate())
}

func (m *SetCodeMsg) pack() []byte {
	return concat(m.Target, m.Code)
}

func (m *SetCodeMsg) event(nonce uint64) *Event {
	return &Event{
		Kind:   KindSetCode,
		Nonce:  nonce,
		Target: m.Target.Clone(),
		Code:   append([]byte(nil), m.Code...),
	}
}

// SetStorageMsg sets a single storage slot of the target account.
type SetStorageMsg struct {
	Target quorum.Address
	Key    quorum.Hash
	Value  quorum.Hash
}

func (SetStorageMsg) Kind() string { return KindSetStorage }

func (m *SetStorageMsg) Validate() error {
	return errors.AppendField(nil, "Target", m.Target.Validate())
}

func (m *SetStorageMsg) pack() []byte {
	return concat(m.Target, m.Key[:], m.Value[:])
}

func (m *SetStorageMsg) event(nonce uint64) *Event {
	return &Event{
		Kind:   KindSetStorage,
		Nonce:  nonce,
		Target: m.Target.Clone(),
		Key:    m.Key,
		Value:  m.Value,
	}
}

// validateOperation returns an ErrInvalidMsg error that also carries all
// field errors of the operation.
func validateOperation(op Operation) error {
	if op == nil {
		return errors.Wrap(errors.ErrInvalidMsg, "nil operation")
	}
	if err := op.Validate(); err != nil {
		return errors.Wrap(errors.Append(errors.ErrInvalidMsg, err), op.Kind())
	}
	return nil
}

func concat(chunks ...[]byte) []byte {
	var n int
	for _, c := range chunks {
		n += len(c)
	}
	res := make([]byte, 0, n)
	for _, c := range chunks {
		res = append(res, c...)
	}
	return res
}
