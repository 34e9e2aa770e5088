package gate

import (
	"encoding/binary"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/iov-one/quorum"
	"github.com/iov-one/quorum/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// Event is an authorized command. Only the fields relevant to the Kind
// are set.
type Event struct {
	Kind string
	// Nonce is the value the operation was signed against. Each nonce
	// value is used by exactly one event.
	Nonce   uint64
	Target  quorum.Address
	Balance *uint256.Int
	Code    []byte
	Key     quorum.Hash
	Value   quorum.Hash
}

// Tags returns the event as a list of key value pairs, as used by
// tendermint to index events.
func (e *Event) Tags() []common.KVPair {
	tags := []common.KVPair{
		{Key: []byte("gate.kind"), Value: []byte(e.Kind)},
		{Key: []byte("gate.nonce"), Value: []byte(strconv.FormatUint(e.Nonce, 10))},
		{Key: []byte("gate.target"), Value: []byte(e.Target.String())},
	}
	switch e.Kind {
	case KindSetBalance:
		tags = append(tags, common.KVPair{Key: []byte("gate.balance"), Value: []byte(e.Balance.ToBig().String())})
	case KindSetStorage:
		tags = append(tags, common.KVPair{Key: []byte("gate.key"), Value: []byte(e.Key.String())})
	}
	return tags
}

func (e *Event) record() *EventRecord {
	r := &EventRecord{
		Kind:   e.Kind,
		Nonce:  e.Nonce,
		Target: e.Target,
	}
	switch e.Kind {
	case KindSetBalance:
		b := e.Balance.Bytes32()
		r.Balance = b[:]
	case KindSetCode:
		r.Code = e.Code
	case KindSetStorage:
		r.Key = e.Key.Bytes()
		r.Value = e.Value.Bytes()
	}
	return r
}

func eventFromRecord(r *EventRecord) (*Event, error) {
	e := &Event{
		Kind:   r.Kind,
		Nonce:  r.Nonce,
		Target: quorum.Address(r.Target),
	}
	switch r.Kind {
	case KindSetBalance:
		e.Balance = new(uint256.Int).SetBytes(r.Balance)
	case KindSetCode:
		e.Code = r.Code
	case KindSetStorage:
		e.Key = quorum.BytesToHash(r.Key)
		e.Value = quorum.BytesToHash(r.Value)
	default:
		return nil, errors.Wrapf(errors.ErrState, "unknown event kind %q", r.Kind)
	}
	return e, nil
}

// Listener is notified about every committed event.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (fn ListenerFunc) OnEvent(e Event) { fn(e) }

const eventPrefix = "gate:event:"

// eventKey returns the event log key of an event signed against given
// nonce. Big-endian encoding keeps the log ordered.
func eventKey(nonce uint64) []byte {
	key := make([]byte, len(eventPrefix)+8)
	copy(key, eventPrefix)
	binary.BigEndian.PutUint64(key[len(eventPrefix):], nonce)
	return key
}

// eventPrefixEnd is the first key after all event log keys.
func eventPrefixEnd() []byte {
	end := []byte(eventPrefix)
	end[len(end)-1]++
	return end
}

func appendEvent(db quorum.KVStore, e *Event) error {
	key := eventKey(e.Nonce)
	switch has, err := db.Has(key); {
	case err != nil:
		return errors.Wrap(err, "event log")
	case has:
		return errors.Wrapf(errors.ErrState, "event for nonce %d already recorded", e.Nonce)
	}
	raw, err := e.record().Marshal()
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	return db.Set(key, raw)
}

// DefaultEventsLimit is used when no limit is given to a log read.
const DefaultEventsLimit = 100

// readEvents returns at most limit events, in commit order, starting
// with the one signed against nonce from.
func readEvents(db quorum.ReadOnlyKVStore, from uint64, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultEventsLimit
	}
	it, err := db.Iterator(eventKey(from), eventPrefixEnd())
	if err != nil {
		return nil, errors.Wrap(err, "event log")
	}
	defer it.Release()

	var events []Event
	for len(events) < limit {
		_, raw, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "event log")
		}
		var r EventRecord
		if err := r.Unmarshal(raw); err != nil {
			return nil, errors.Wrapf(errors.ErrState, "cannot unmarshal event: %s", err)
		}
		e, err := eventFromRecord(&r)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, nil
}
