// Package bufpool pools the byte buffers used to render log lines.
package bufpool

import (
	"bytes"
	"sync"
)

// maxCap is the largest buffer returned to the pool
const maxCap = 64 * 1024

var pool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Get returns an empty buffer
func Get() *bytes.Buffer {
	buf := pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns buf to the pool unless it grew past maxCap
func Put(buf *bytes.Buffer) {
	if buf.Cap() > maxCap {
		return
	}
	pool.Put(buf)
}
