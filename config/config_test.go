package config

import (
	"os"
	"path"
	"testing"
)

func TestCreateDefault(t *testing.T) {
	cfg, err := CreateDefault()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Limits.MaxAcceptedLength == 0 {
		t.Fatal("Expected non-zero default MaxAcceptedLength")
	}

	if cfg.Db.Engine != "badger" {
		t.Fatalf("Expected default engine badger, actual %s", cfg.Db.Engine)
	}
}

func TestCreateFromFile(t *testing.T) {
	file := path.Join(t.TempDir(), "config.yaml")
	data := []byte("limits:\n  maxAcceptedLength: 1024\ndb:\n  engine: buntdb\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := CreateFromFile(file)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Limits.MaxAcceptedLength != 1024 {
		t.Fatalf("Expected MaxAcceptedLength %d, actual %d", 1024, cfg.Limits.MaxAcceptedLength)
	}

	if cfg.Db.Engine != "buntdb" {
		t.Fatalf("Expected engine buntdb, actual %s", cfg.Db.Engine)
	}

	// unset keys keep their defaults
	if cfg.Db.DefaultPath != "db" {
		t.Fatalf("Expected default path db, actual %s", cfg.Db.DefaultPath)
	}
}

func TestCreateFromFile_Missing(t *testing.T) {
	if _, err := CreateFromFile("no_such_config.yaml"); err == nil {
		t.Fatal("Expected error about missing config file")
	}
}
