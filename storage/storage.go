package storage

import (
	"fmt"

	"amqpkit/config"
	"amqpkit/interfaces"
)

// New returns db storage instance for the configured engine
func New(cfg config.Db) interfaces.DbStorage {
	switch cfg.Engine {
	case "badger":
		return NewBadger(cfg.DefaultPath)
	case "buntdb":
		return NewBuntDB(cfg.DefaultPath)
	default:
		panic(fmt.Sprintf("unknown db engine '%s'", cfg.Engine))
	}
}
