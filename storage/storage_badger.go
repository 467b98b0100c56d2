package storage

import (
	"time"

	"github.com/dgraph-io/badger"
	"github.com/dgraph-io/badger/options"

	"amqpkit/interfaces"
)

// Badger implements wrapper for badger database
type Badger struct {
	db *badger.DB
}

// NewBadger returns new instance of badger wrapper
func NewBadger(storageDir string) *Badger {
	storage := &Badger{}
	opts := badger.DefaultOptions(storageDir)
	opts.SyncWrites = false
	opts.TableLoadingMode = options.MemoryMap
	var err error
	storage.db, err = badger.Open(opts)
	if err != nil {
		panic(err)
	}

	go storage.runStorageGC()

	return storage
}

// Close properly closes badger database
func (storage *Badger) Close() error {
	return storage.db.Close()
}

// ProcessBatch process batch of operations
func (storage *Badger) ProcessBatch(batch []*interfaces.Operation) (err error) {
	return storage.db.Update(func(txn *badger.Txn) error {
		for _, op := range batch {
			if op.Op == interfaces.OpSet {
				if err := txn.Set([]byte(op.Key), op.Value); err != nil {
					return err
				}
			}
			if op.Op == interfaces.OpDel {
				if err := txn.Delete([]byte(op.Key)); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Set adds a key-value pair to the database
func (storage *Badger) Set(key string, value []byte) (err error) {
	return storage.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Del deletes a key
func (storage *Badger) Del(key string) (err error) {
	return storage.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Get returns value by key
func (storage *Badger) Get(key string) (value []byte, err error) {
	err = storage.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(value)
		if err != nil {
			return err
		}
		return nil
	})
	return
}

// Iterate iterates over all keys
func (storage *Badger) Iterate(fn func(key []byte, value []byte)) {
	storage.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.AllVersions = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			k := item.Key()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			fn(k, v)
		}
		return nil
	})
}

func (storage *Badger) runStorageGC() {
	timer := time.Tick(30 * time.Minute)
	for range timer {
		storage.db.RunValueLogGC(0.7)
	}
}
