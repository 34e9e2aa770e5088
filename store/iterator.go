package store

import (
	"bytes"

	"github.com/iov-one/quorum/errors"
)

// mergeIterator combines cached entries with the iterator of the parent
// store. Cached values shadow parent values for the same key and cached
// deletions hide them.
type mergeIterator struct {
	entries []entry
	pos     int

	parent Iterator
	// peeked parent entry, valid if loaded is true
	pkey, pval []byte
	loaded     bool
	pdone      bool

	ascending bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(entries []entry, parent Iterator, ascending bool) *mergeIterator {
	return &mergeIterator{
		entries:   entries,
		parent:    parent,
		ascending: ascending,
	}
}

func (m *mergeIterator) peekParent() error {
	if m.loaded || m.pdone {
		return nil
	}
	k, v, err := m.parent.Next()
	switch {
	case err == nil:
		m.pkey, m.pval, m.loaded = k, v, true
		return nil
	case errors.ErrIteratorDone.Is(err):
		m.pdone = true
		return nil
	default:
		return err
	}
}

func (m *mergeIterator) Next() (key, value []byte, err error) {
	for {
		if err := m.peekParent(); err != nil {
			return nil, nil, err
		}

		if m.pos >= len(m.entries) {
			if !m.loaded {
				return nil, nil, errors.ErrIteratorDone
			}
			m.loaded = false
			return m.pkey, m.pval, nil
		}

		e := m.entries[m.pos]
		if m.loaded {
			cmp := bytes.Compare(e.key, m.pkey)
			if !m.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				m.loaded = false
				return m.pkey, m.pval, nil
			}
			if cmp == 0 {
				// Shadowed by the cache.
				m.loaded = false
			}
		}

		m.pos++
		if !e.deleted {
			return e.key, e.value, nil
		}
	}
}

func (m *mergeIterator) Release() {
	m.parent.Release()
	m.entries = nil
}

// sliceIterator iterates over a fixed list of key value pairs.
type sliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*sliceIterator)(nil)

func newSliceIterator(data []Model) *sliceIterator {
	return &sliceIterator{data: data}
}

func (s *sliceIterator) Next() (key, value []byte, err error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

func (s *sliceIterator) Release() {
	s.data = nil
}
