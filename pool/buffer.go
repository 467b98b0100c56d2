package pool

import (
	"bytes"
	"sync"
)

// keep encode scratch buffers from pinning large payloads forever
const maxPooledCap = 1 << 20

// BufferPool represents a thread safe buffer pool
type BufferPool struct {
	sync.Pool
}

// NewBufferPool returns a new BufferPool
func NewBufferPool(bufferSize int) *BufferPool {
	return &BufferPool{
		sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, bufferSize))
			},
		},
	}
}

// Get gets a Buffer from the pool
func (bp *BufferPool) Get() *bytes.Buffer {
	return bp.Pool.Get().(*bytes.Buffer)
}

// Put returns the given Buffer to the pool. Buffers that grew past
// maxPooledCap are dropped instead.
func (bp *BufferPool) Put(b *bytes.Buffer) {
	if b.Cap() > maxPooledCap {
		return
	}
	b.Reset()
	bp.Pool.Put(b)
}
