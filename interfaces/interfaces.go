package interfaces

// Operation types for DbStorage.ProcessBatch
const (
	OpSet = iota
	OpDel
)

// Operation is a single pending write against a DbStorage
type Operation struct {
	Key   string
	Value []byte
	Op    int
}

// DbStorage is the contract message persistence expects from a key-value
// database backend
type DbStorage interface {
	Set(key string, value []byte) (err error)
	Del(key string) (err error)
	Get(key string) (value []byte, err error)
	ProcessBatch(batch []*Operation) (err error)
	Iterate(fn func(key []byte, value []byte))
	Close() error
}
