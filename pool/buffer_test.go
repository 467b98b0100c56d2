package pool

import (
	"testing"
)

func TestBufferPool_GetPut(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	buf.WriteString("some_test_data")
	bp.Put(buf)

	buf = bp.Get()
	if buf.Len() != 0 {
		t.Fatalf("Expected reset buffer, actual len %d", buf.Len())
	}
}

func TestBufferPool_DropsOversized(t *testing.T) {
	bp := NewBufferPool(64)

	buf := bp.Get()
	buf.Write(make([]byte, maxPooledCap+1))
	bp.Put(buf)
	// nothing to assert beyond not panicking; the buffer must not be reused
	next := bp.Get()
	if next.Len() != 0 {
		t.Fatalf("Expected empty buffer, actual len %d", next.Len())
	}
}
