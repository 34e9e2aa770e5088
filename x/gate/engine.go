package gate

import (
	"context"
	"sync"

	"github.com/holiman/uint256"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/store"
	"github.com/iov-one/quorum/x/authority"
	"github.com/tendermint/tendermint/libs/log"
)

// Engine authorizes operations. It owns the nonce and the event log kept
// in its store.
//
// All methods are safe for concurrent use. Submissions are serialized:
// reading the nonce, querying the directory, matching signatures and
// committing run as a single unit.
type Engine struct {
	mu sync.Mutex

	db        store.CacheableKVStore
	dir       authority.Directory
	logger    log.Logger
	conf      *Configuration
	listeners []Listener
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithConfiguration makes the engine use given configuration instead of
// the one saved in the store. Unset fields take their default value.
func WithConfiguration(c Configuration) Option {
	return func(e *Engine) {
		c = c.withDefaults()
		e.conf = &c
	}
}

// WithListener registers a listener, see Subscribe.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		e.listeners = append(e.listeners, l)
	}
}

// NewEngine returns an engine that keeps its state in db and asks dir for
// the authority list on every submission.
func NewEngine(db store.CacheableKVStore, dir authority.Directory, opts ...Option) *Engine {
	e := &Engine{
		db:     db,
		dir:    dir,
		logger: log.NewNopLogger(),
	}
	for _, fn := range opts {
		fn(e)
	}
	return e
}

// Subscribe registers a listener notified after each commit, in commit
// order. Listeners are called while the engine is locked and must not
// call back into the engine.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// Nonce returns the current nonce.
func (e *Engine) Nonce() (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return loadNonce(e.db)
}

// OpHash returns the hash that must be signed to authorize given
// operation at the current nonce. It has no side effects.
func (e *Engine) OpHash(op Operation) (quorum.Hash, error) {
	if err := validateOperation(op); err != nil {
		return quorum.Hash{}, err
	}
	nonce, err := e.Nonce()
	if err != nil {
		return quorum.Hash{}, err
	}
	return OpHash(op, nonce), nil
}

// SetBalanceOpHash returns the hash to sign for a SetBalance operation.
func (e *Engine) SetBalanceOpHash(target quorum.Address, balance *uint256.Int) (quorum.Hash, error) {
	return e.OpHash(&SetBalanceMsg{Target: target, Balance: balance})
}

// SetCodeOpHash returns the hash to sign for a SetCode operation.
func (e *Engine) SetCodeOpHash(target quorum.Address, code []byte) (quorum.Hash, error) {
	return e.OpHash(&SetCodeMsg{Target: target, Code: code})
}

// SetStorageOpHash returns the hash to sign for a SetStorage operation.
func (e *Engine) SetStorageOpHash(target quorum.Address, key, value quorum.Hash) (quorum.Hash, error) {
	return e.OpHash(&SetStorageMsg{Target: target, Key: key, Value: value})
}

// SetBalance submits a SetBalance operation, see Submit.
func (e *Engine) SetBalance(ctx context.Context, target quorum.Address, balance *uint256.Int, batch SignatureBatch) (*Event, error) {
	return e.Submit(ctx, &SetBalanceMsg{Target: target, Balance: balance}, batch)
}

// SetCode submits a SetCode operation, see Submit.
func (e *Engine) SetCode(ctx context.Context, target quorum.Address, code []byte, batch SignatureBatch) (*Event, error) {
	return e.Submit(ctx, &SetCodeMsg{Target: target, Code: code}, batch)
}

// SetStorage submits a SetStorage operation, see Submit.
func (e *Engine) SetStorage(ctx context.Context, target quorum.Address, key, value quorum.Hash, batch SignatureBatch) (*Event, error) {
	return e.Submit(ctx, &SetStorageMsg{Target: target, Key: key, Value: value}, batch)
}

// Submit authorizes given operation with given signatures.
//
// The operation hash is always computed using the current nonce. When a
// majority of the authorities signed it, the nonce is advanced by one and
// the event is recorded and returned. On failure nothing is changed.
func (e *Engine) Submit(ctx context.Context, op Operation, batch SignatureBatch) (*Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ev, err := e.submit(ctx, op, batch)
	if err != nil {
		kind := "(nil)"
		if op != nil {
			kind = op.Kind()
		}
		e.logger.Info("operation rejected", "kind", kind, "code", errors.Code(err), "err", err.Error())
		return nil, err
	}
	e.logger.Info("operation authorized", "kind", ev.Kind, "nonce", ev.Nonce, "target", ev.Target.String())

	for _, l := range e.listeners {
		l.OnEvent(*ev)
	}
	return ev, nil
}

func (e *Engine) submit(ctx context.Context, op Operation, batch SignatureBatch) (*Event, error) {
	if err := validateOperation(op); err != nil {
		return nil, err
	}
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	conf, err := e.configuration()
	if err != nil {
		return nil, err
	}
	if conf.MaxSignatures > 0 && batch.Len() > int(conf.MaxSignatures) {
		return nil, errors.Wrapf(errors.ErrMalformedBatch,
			"%d signatures, at most %d allowed", batch.Len(), conf.MaxSignatures)
	}

	nonce, err := loadNonce(e.db)
	if err != nil {
		return nil, err
	}
	hash := OpHash(op, nonce)

	authorities, err := e.authorities(ctx, conf)
	if err != nil {
		return nil, err
	}

	match, err := MatchThreshold(hash, batch, authorities)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("signatures matched",
		"kind", op.Kind(), "nonce", nonce,
		"matched", match.Matched, "threshold", match.Threshold)
	if !match.Satisfied {
		return nil, errors.Wrapf(errors.ErrInsufficientSignatures,
			"%d of %d required", match.Matched, match.Threshold)
	}

	next, err := nextNonce(nonce)
	if err != nil {
		return nil, err
	}
	ev := op.event(nonce)

	tx := e.db.CacheWrap()
	if err := saveNonce(tx, next); err != nil {
		tx.Discard()
		return nil, errors.Wrap(err, "save nonce")
	}
	if err := appendEvent(tx, ev); err != nil {
		tx.Discard()
		return nil, errors.Wrap(err, "append event")
	}
	if err := tx.Write(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	return ev, nil
}

// authorities queries the directory within the configured time limit.
func (e *Engine) authorities(ctx context.Context, conf Configuration) ([]quorum.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, conf.DirectoryTimeout())
	defer cancel()

	list, err := e.dir.Authorities(ctx)
	if err != nil {
		if !errors.ErrDirectoryUnavailable.Is(err) {
			err = errors.Wrap(errors.ErrDirectoryUnavailable, err.Error())
		}
		return nil, errors.Wrap(err, "authorities")
	}
	for i, a := range list {
		if err := a.Validate(); err != nil {
			return nil, errors.Wrapf(errors.ErrDirectoryUnavailable, "authority %d: %s", i, err)
		}
	}
	return list, nil
}

func (e *Engine) configuration() (Configuration, error) {
	if e.conf != nil {
		return *e.conf, nil
	}
	return LoadConfiguration(e.db)
}

// Events returns at most limit committed events in commit order,
// starting with the event signed against nonce from. A non positive
// limit means DefaultEventsLimit.
func (e *Engine) Events(from uint64, limit int) ([]Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return readEvents(e.db, from, limit)
}
