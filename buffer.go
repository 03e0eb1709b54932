package captree

// Buffer is the growable output buffer the encoders append to. It is
// the Go stand-in for the Lua original's luaL_Buffer: encoders only
// ever append bytes, never read or seek.
type Buffer struct {
	data []byte
}

func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 64)}
}

func (b *Buffer) WriteByte(c byte) { b.data = append(b.data, c) }

func (b *Buffer) Write(p []byte) {
	b.data = append(b.data, p...)
}

func (b *Buffer) WriteString(s string) {
	b.data = append(b.data, s...)
}

func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) reset() { b.data = b.data[:0] }

// BufferPool is the explicit, per-instance stand-in for spec.md §5's
// "process-wide reusable output buffer keyed by output_buffer_key": a
// singleton is fine for a single-matcher-per-process embedding, but a
// package-level global would make every test in this repo share state,
// so the pool itself is a value callers create once (or not at all —
// Config's "buffer.pooled" toggles whether REncodedGetCaptures uses one).
type BufferPool struct {
	buffers map[string]*Buffer
}

func NewBufferPool() *BufferPool {
	return &BufferPool{buffers: map[string]*Buffer{}}
}

// Get looks up the buffer registered under key; if present it is reset
// to length 0 and returned, otherwise a new one is created and registered.
func (p *BufferPool) Get(key string) *Buffer {
	if buf, ok := p.buffers[key]; ok {
		buf.reset()
		return buf
	}
	buf := NewBuffer()
	p.buffers[key] = buf
	return buf
}
