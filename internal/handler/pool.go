package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a spin result or a single claim view
	initialBufferSize = 1 << 10
	// maxPooledBufferSize keeps buffers grown by large claim listings out of the pool
	maxPooledBufferSize = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless it outgrew maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
