package storage

import (
	"fmt"

	"github.com/tidwall/buntdb"

	"amqpkit/config"
	"amqpkit/interfaces"
)

// BuntDB implements wrapper for BuntDB database
type BuntDB struct {
	db *buntdb.DB
}

// NewBuntDB returns new instance of BuntDB wrapper
func NewBuntDB(storagePath string) *BuntDB {
	storage := &BuntDB{}

	if storagePath != config.DbPathMemory {
		storagePath = fmt.Sprintf("%s/%s", storagePath, "db")
	}

	var db, err = buntdb.Open(storagePath)
	if err != nil {
		panic(err)
	}

	db.SetConfig(buntdb.Config{
		SyncPolicy:         buntdb.Always,
		AutoShrinkDisabled: true,
	})

	storage.db = db

	return storage
}

// ProcessBatch process batch of operations
func (storage *BuntDB) ProcessBatch(batch []*interfaces.Operation) (err error) {
	return storage.db.Update(func(tx *buntdb.Tx) error {
		for _, op := range batch {
			if op.Op == interfaces.OpSet {
				if _, _, err := tx.Set(op.Key, string(op.Value), nil); err != nil {
					return err
				}
			}
			if op.Op == interfaces.OpDel {
				if _, err := tx.Delete(op.Key); err != nil && err != buntdb.ErrNotFound {
					return err
				}
			}
		}
		return nil
	})
}

// Close properly closes BuntDB database
func (storage *BuntDB) Close() error {
	return storage.db.Close()
}

// Set adds a key-value pair to the database
func (storage *BuntDB) Set(key string, value []byte) (err error) {
	return storage.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(value), nil)
		return err
	})
}

// Del deletes a key
func (storage *BuntDB) Del(key string) (err error) {
	return storage.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(key)
		return err
	})
}

// Get returns value by key
func (storage *BuntDB) Get(key string) (value []byte, err error) {
	err = storage.db.View(func(tx *buntdb.Tx) error {
		data, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	return
}

// Iterate iterates over all keys
func (storage *BuntDB) Iterate(fn func(key []byte, value []byte)) {
	storage.db.View(func(tx *buntdb.Tx) error {
		return tx.Ascend("", func(key, value string) bool {
			fn([]byte(key), []byte(value))
			return true
		})
	})
}
