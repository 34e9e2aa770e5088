package store

import (
	"testing"

	"github.com/iov-one/quorum/errors"
	"github.com/iov-one/quorum/quorumtest/assert"
)

// backends returns all store implementations that must behave the same.
func backends() map[string]func() CacheableKVStore {
	return map[string]func() CacheableKVStore{
		"memstore": MemStore,
		"memdb": func() CacheableKVStore {
			return MemDBStore()
		},
		"cache wrapped memdb": func() CacheableKVStore {
			return MemDBStore().CacheWrap()
		},
	}
}

func TestStoreGetSet(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			base := newStore()

			k, v := []byte("french"), []byte("fry")
			assertGetHas(t, base, k, nil, false)
			assert.Nil(t, base.Set(k, v))
			assertGetHas(t, base, k, v, true)

			// Writes to the cache are not visible in the parent
			// until written.
			cache := base.CacheWrap()
			assertGetHas(t, cache, k, v, true)
			k2, v2 := []byte("LA"), []byte("Dodgers")
			assert.Nil(t, cache.Set(k2, v2))
			assertGetHas(t, cache, k2, v2, true)
			assertGetHas(t, base, k2, nil, false)
			assert.Nil(t, cache.Write())
			assertGetHas(t, base, k2, v2, true)

			// A discarded cache leaves no trace.
			k3, v3 := []byte("Bayern"), []byte("Munich")
			c2 := base.CacheWrap()
			assert.Nil(t, c2.Set(k3, v3))
			assert.Nil(t, c2.Delete(k))
			c2.Discard()
			assertGetHas(t, base, k, v, true)
			assertGetHas(t, base, k3, nil, false)

			// Deletes are applied on write.
			c3 := base.CacheWrap()
			assert.Nil(t, c3.Delete(k))
			assertGetHas(t, c3, k, nil, false)
			assertGetHas(t, base, k, v, true)
			assert.Nil(t, c3.Write())
			assertGetHas(t, base, k, nil, false)
		})
	}
}

func TestStoreNilKey(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			db := newStore()
			if err := db.Set(nil, []byte("x")); !errors.ErrDatabase.Is(err) {
				t.Fatalf("want database error, got %v", err)
			}
			if err := db.Delete(nil); !errors.ErrDatabase.Is(err) {
				t.Fatalf("want database error, got %v", err)
			}
		})
	}
}

func TestStoreIterator(t *testing.T) {
	cases := map[string]struct {
		parentOps  []Op
		childOps   []Op
		start, end []byte
		reverse    bool
		want       []Model
	}{
		"parent only": {
			parentOps: []Op{SetOp([]byte("a"), []byte("1")), SetOp([]byte("b"), []byte("2"))},
			want:      []Model{Pair([]byte("a"), []byte("1")), Pair([]byte("b"), []byte("2"))},
		},
		"child shadows and deletes parent values": {
			parentOps: []Op{
				SetOp([]byte("a"), []byte("1")),
				SetOp([]byte("b"), []byte("2")),
				SetOp([]byte("d"), []byte("4")),
			},
			childOps: []Op{
				SetOp([]byte("b"), []byte("22")),
				SetOp([]byte("c"), []byte("3")),
				DelOp([]byte("d")),
			},
			want: []Model{
				Pair([]byte("a"), []byte("1")),
				Pair([]byte("b"), []byte("22")),
				Pair([]byte("c"), []byte("3")),
			},
		},
		"bounded range excludes end": {
			parentOps: []Op{SetOp([]byte("a"), []byte("1")), SetOp([]byte("c"), []byte("3"))},
			childOps:  []Op{SetOp([]byte("b"), []byte("2")), SetOp([]byte("d"), []byte("4"))},
			start:     []byte("b"),
			end:       []byte("d"),
			want:      []Model{Pair([]byte("b"), []byte("2")), Pair([]byte("c"), []byte("3"))},
		},
		"reverse": {
			parentOps: []Op{SetOp([]byte("a"), []byte("1")), SetOp([]byte("c"), []byte("3"))},
			childOps:  []Op{SetOp([]byte("b"), []byte("2")), DelOp([]byte("c"))},
			reverse:   true,
			want:      []Model{Pair([]byte("b"), []byte("2")), Pair([]byte("a"), []byte("1"))},
		},
		"everything deleted": {
			parentOps: []Op{SetOp([]byte("a"), []byte("1"))},
			childOps:  []Op{DelOp([]byte("a"))},
			want:      nil,
		},
	}

	for name, newStore := range backends() {
		for testName, tc := range cases {
			t.Run(name+"/"+testName, func(t *testing.T) {
				parent := newStore()
				for _, op := range tc.parentOps {
					assert.Nil(t, op.Apply(parent))
				}
				child := parent.CacheWrap()
				for _, op := range tc.childOps {
					assert.Nil(t, op.Apply(child))
				}

				var (
					it  Iterator
					err error
				)
				if tc.reverse {
					it, err = child.ReverseIterator(tc.start, tc.end)
				} else {
					it, err = child.Iterator(tc.start, tc.end)
				}
				assert.Nil(t, err)
				defer it.Release()

				var got []Model
				for {
					k, v, err := it.Next()
					if errors.ErrIteratorDone.Is(err) {
						break
					}
					assert.Nil(t, err)
					got = append(got, Pair(k, v))
				}
				assert.Equal(t, len(tc.want), len(got))
				for i := range tc.want {
					assert.EqualBytes(t, tc.want[i].Key, got[i].Key)
					assert.EqualBytes(t, tc.want[i].Value, got[i].Value)
				}
			})
		}
	}
}

func TestNonAtomicBatch(t *testing.T) {
	db := MemStore()
	b := NewNonAtomicBatch(db)
	assert.Nil(t, b.Set([]byte("a"), []byte("1")))
	assert.Nil(t, b.Delete([]byte("a")))
	assert.Nil(t, b.Set([]byte("b"), []byte("2")))
	assert.Equal(t, 3, len(b.ShowOps()))

	assertGetHas(t, db, []byte("b"), nil, false)
	assert.Nil(t, b.Write())
	assert.Equal(t, 0, len(b.ShowOps()))
	assertGetHas(t, db, []byte("a"), nil, false)
	assertGetHas(t, db, []byte("b"), []byte("2"), true)
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, want []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.EqualBytes(t, want, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}
