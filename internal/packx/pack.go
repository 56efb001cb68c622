// Package packx implements the binary field packing used by the token
// wire format: fixed-width little-endian unsigned integers and
// uint16-length-prefixed byte strings, concatenated without padding.
package packx

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is reported by Reader when a read runs past the end
// of the underlying buffer.
var ErrShortBuffer = errors.New("packx: short buffer")

// WriteUint16 appends v to b in little-endian order.
func WriteUint16(b *bytes.Buffer, v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.Write(tmp[:])
}

// WriteUint32 appends v to b in little-endian order.
func WriteUint32(b *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.Write(tmp[:])
}

// WriteBytes appends a uint16 length prefix followed by the raw bytes.
// The caller guarantees len(p) fits in 16 bits.
func WriteBytes(b *bytes.Buffer, p []byte) {
	WriteUint16(b, uint16(len(p)))
	b.Write(p)
}

// Reader is a cursor over a packed buffer. The first failed read sets
// a sticky error and every later read returns a zero value, so callers
// can run a whole sequence of reads and check Err once at the end.
type Reader struct {
	buf []byte
	off int
	err error
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf)-r.off < n {
		r.err = ErrShortBuffer
		return nil
	}
	p := r.buf[r.off : r.off+n]
	r.off += n
	return p
}

// Uint16 reads a little-endian uint16.
func (r *Reader) Uint16() uint16 {
	p := r.take(2)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(p)
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	p := r.take(4)
	if p == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(p)
}

// Bytes reads a uint16 length prefix and returns that many bytes. The
// returned slice aliases the underlying buffer.
func (r *Reader) Bytes() []byte {
	n := int(r.Uint16())
	return r.take(n)
}

// Len returns the number of unread bytes, or 0 after a failed read.
func (r *Reader) Len() int {
	if r.err != nil {
		return 0
	}
	return len(r.buf) - r.off
}

// Err returns the first error encountered by a read, if any.
func (r *Reader) Err() error {
	return r.err
}
