package ansi

import (
	"bytes"
	"io"
)

// Buffer implements a deferred buffer of ANSI output, providing convenience
// methods for accumulating escape sequences alongside normal text. It holds
// everything in memory until flushed; the terminal writer is supplied by the
// caller.
type Buffer struct {
	buf bytes.Buffer
}

// Len returns the number of unflushed bytes in the buffer.
func (b *Buffer) Len() int { return b.buf.Len() }

// Grow the internal buffer to have room for at least n more bytes.
func (b *Buffer) Grow(n int) { b.buf.Grow(n) }

// Reset discards all unflushed bytes.
func (b *Buffer) Reset() { b.buf.Reset() }

// Bytes returns the unflushed bytes; valid only until the next write.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

func (b *Buffer) String() string { return b.buf.String() }

// WriteTo flushes all buffered bytes to the given io.Writer.
func (b *Buffer) WriteTo(w io.Writer) (n int64, err error) {
	return b.buf.WriteTo(w)
}

// WriteString appends literal text to the buffer, returning the number of
// bytes written.
func (b *Buffer) WriteString(s string) int {
	n, _ := b.buf.WriteString(s)
	return n
}

// WriteSeq appends one or more pre-encoded sequences to the buffer,
// returning the number of bytes written.
func (b *Buffer) WriteSeq(seqs ...string) int {
	need := 0
	for _, s := range seqs {
		need += len(s)
	}
	b.buf.Grow(need)
	n := 0
	for _, s := range seqs {
		m, _ := b.buf.WriteString(s)
		n += m
	}
	return n
}

// WriteSGR encodes the given SGR parameters and appends the resulting
// sequence to the buffer, returning the number of bytes written.
func (b *Buffer) WriteSGR(params ...Param) int {
	return b.WriteString(SetGraphicRendition(params...))
}
