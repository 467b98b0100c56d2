package storage

import (
	"testing"

	"amqpkit/config"
	"amqpkit/interfaces"
)

func newTestStorage() interfaces.DbStorage {
	return NewBuntDB(config.DbPathMemory)
}

func TestBuntDB_SetGetDel(t *testing.T) {
	db := newTestStorage()
	defer db.Close()

	if err := db.Set("key", []byte("value")); err != nil {
		t.Fatal(err)
	}

	value, err := db.Get("key")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != "value" {
		t.Fatalf("Expected value, actual %s", value)
	}

	if err = db.Del("key"); err != nil {
		t.Fatal(err)
	}

	if _, err = db.Get("key"); err == nil {
		t.Fatal("Expected error on get after del")
	}
}

func TestBuntDB_ProcessBatch(t *testing.T) {
	db := newTestStorage()
	defer db.Close()

	if err := db.Set("old", []byte("old")); err != nil {
		t.Fatal(err)
	}

	batch := []*interfaces.Operation{
		{Key: "a", Value: []byte("1"), Op: interfaces.OpSet},
		{Key: "b", Value: []byte("2"), Op: interfaces.OpSet},
		{Key: "old", Op: interfaces.OpDel},
		{Key: "missing", Op: interfaces.OpDel},
	}

	if err := db.ProcessBatch(batch); err != nil {
		t.Fatal(err)
	}

	value, err := db.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != "1" {
		t.Fatalf("Expected 1, actual %s", value)
	}

	if _, err = db.Get("old"); err == nil {
		t.Fatal("Expected error on get after batch del")
	}
}

func TestBuntDB_Iterate(t *testing.T) {
	db := newTestStorage()
	defer db.Close()

	expected := map[string]string{
		"k1": "v1",
		"k2": "v2",
		"k3": "v3",
	}
	for key, value := range expected {
		if err := db.Set(key, []byte(value)); err != nil {
			t.Fatal(err)
		}
	}

	found := make(map[string]string)
	db.Iterate(func(key []byte, value []byte) {
		found[string(key)] = string(value)
	})

	if len(found) != len(expected) {
		t.Fatalf("Expected %d keys, actual %d", len(expected), len(found))
	}
	for key, value := range expected {
		if found[key] != value {
			t.Fatalf("Expected %s=%s, actual %s", key, value, found[key])
		}
	}
}

func TestBadger_SetGetDel(t *testing.T) {
	db := NewBadger(t.TempDir())
	defer db.Close()

	if err := db.Set("key", []byte("value")); err != nil {
		t.Fatal(err)
	}

	value, err := db.Get("key")
	if err != nil {
		t.Fatal(err)
	}
	if string(value) != "value" {
		t.Fatalf("Expected value, actual %s", value)
	}

	if err = db.Del("key"); err != nil {
		t.Fatal(err)
	}

	if _, err = db.Get("key"); err == nil {
		t.Fatal("Expected error on get after del")
	}
}

func TestBadger_ProcessBatchIterate(t *testing.T) {
	db := NewBadger(t.TempDir())
	defer db.Close()

	batch := []*interfaces.Operation{
		{Key: "a", Value: []byte("1"), Op: interfaces.OpSet},
		{Key: "b", Value: []byte("2"), Op: interfaces.OpSet},
	}
	if err := db.ProcessBatch(batch); err != nil {
		t.Fatal(err)
	}

	found := make(map[string]string)
	db.Iterate(func(key []byte, value []byte) {
		found[string(key)] = string(value)
	})
	if len(found) != 2 {
		t.Fatalf("Expected 2 keys, actual %d", len(found))
	}
	if found["a"] != "1" || found["b"] != "2" {
		t.Fatalf("Unexpected iterate result %v", found)
	}
}

func TestNew_EngineSelection(t *testing.T) {
	db := New(config.Db{DefaultPath: config.DbPathMemory, Engine: "buntdb"})
	if _, ok := db.(*BuntDB); !ok {
		t.Fatalf("Expected *BuntDB, actual %T", db)
	}
	db.Close()

	db = New(config.Db{DefaultPath: t.TempDir(), Engine: "badger"})
	if _, ok := db.(*Badger); !ok {
		t.Fatalf("Expected *Badger, actual %T", db)
	}
	db.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on unknown engine")
		}
	}()
	New(config.Db{Engine: "bolt"})
}
