package store

import (
	"github.com/iov-one/quorum/errors"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DBStore exposes a tendermint database as a cacheable store.
type DBStore struct {
	db dbm.DB
}

var _ CacheableKVStore = (*DBStore)(nil)

// NewDBStore returns a store backed by given database.
func NewDBStore(db dbm.DB) *DBStore {
	return &DBStore{db: db}
}

// OpenLevelDB opens (creating if needed) a goleveldb database called
// name in given directory.
func OpenLevelDB(name, dir string) (*DBStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s/%s.db: %s", dir, name, err)
	}
	return NewDBStore(db), nil
}

// MemDBStore returns a store backed by an in-memory tendermint database.
func MemDBStore() *DBStore {
	return NewDBStore(dbm.NewMemDB())
}

func (s *DBStore) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	return s.db.Get(key), nil
}

func (s *DBStore) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrDatabase, "nil key")
	}
	return s.db.Has(key), nil
}

func (s *DBStore) Set(key, value []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	s.db.Set(key, value)
	return nil
}

func (s *DBStore) Delete(key []byte) error {
	if key == nil {
		return errors.Wrap(errors.ErrDatabase, "nil key")
	}
	s.db.Delete(key)
	return nil
}

func (s *DBStore) Iterator(start, end []byte) (Iterator, error) {
	return &dbIterator{it: s.db.Iterator(start, end)}, nil
}

func (s *DBStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return &dbIterator{it: s.db.ReverseIterator(start, end)}, nil
}

// CacheWrap returns a cache whose Write applies all changes in a single
// database batch.
func (s *DBStore) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(s, &dbBatch{batch: s.db.NewBatch()}, nil)
}

// Close releases the database.
func (s *DBStore) Close() {
	s.db.Close()
}

type dbBatch struct {
	batch dbm.Batch
}

func (b *dbBatch) Set(key, value []byte) error {
	b.batch.Set(key, value)
	return nil
}

func (b *dbBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *dbBatch) Write() error {
	b.batch.WriteSync()
	return nil
}

type dbIterator struct {
	it dbm.Iterator
}

func (i *dbIterator) Next() (key, value []byte, err error) {
	if !i.it.Valid() {
		return nil, nil, errors.ErrIteratorDone
	}
	key, value = i.it.Key(), i.it.Value()
	i.it.Next()
	return key, value, nil
}

func (i *dbIterator) Release() {
	i.it.Close()
}
