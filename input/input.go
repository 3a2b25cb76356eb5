// Package input defines the byte sources that parsers consume.
//
// An Input is read in chunks and supports markers: a Marker pins the
// position at which it was taken so that the Input can later be rewound to
// it.  Two implementations are provided:
//
//   - Stream reads from an io.Reader through a chain of fixed size windows,
//     keeping in memory only what outstanding markers may still need.
//   - Array reads from a byte slice already in memory.
package input

import "errors"

// An Input is a source of bytes that allows multiple markers.
//
// All reads, marks and rewinds on one Input must happen from a single
// goroutine.
type Input interface {

	// Mark records the current position of the input so that it can be
	// returned to later.  A Marker is valid until it is closed or used to
	// rewind.  The Input may limit how far a Marker can lag behind its head,
	// since everything between the oldest Marker and the head has to be
	// buffered: markers should be closed as soon as possible.
	Mark() Marker

	// Read reads up to size bytes from the input.  The bytes read are in
	// the returned Chunk.  The Chunk is only valid until the next call to
	// Read, Close or Marker.Rewind; callers must copy bytes they want to
	// keep.
	//
	// Reading fewer bytes than requested does not mean the end of data was
	// reached.  Only Chunk.IsTail() reports that.
	//
	// A non-nil error is a fatal condition (e.g. too many buffered windows,
	// source failure), not a parse failure.
	Read(size int) (Chunk, error)

	// Close releases the resources held by the input.
	Close() error
}

// A Marker is a checkpoint in an Input.
type Marker interface {

	// Rewind moves the read position of the Input back to the marker and
	// releases the marker.
	Rewind() error

	// Close releases the marker without moving the read position.  It is a
	// no-op on a marker that was already released.
	Close() error
}

// A Chunk is the result of a Read.  The freshly read bytes are
// VolatileBytes()[Start():End()].
type Chunk struct {
	buf        []byte
	start, end int
	tail       bool
}

// NewChunk returns a chunk viewing buf[start:end].  tail must be true when
// the source has no more bytes after end.
func NewChunk(buf []byte, start, end int, tail bool) Chunk {
	return Chunk{buf: buf, start: start, end: end, tail: tail}
}

// VolatileBytes returns the whole underlying buffer.  Only the range
// [Start(), End()) is defined.
func (c Chunk) VolatileBytes() []byte {
	return c.buf
}

func (c Chunk) Start() int {
	return c.start
}

func (c Chunk) End() int {
	return c.end
}

// Len is the number of bytes read.
func (c Chunk) Len() int {
	return c.end - c.start
}

// IsTail returns true if there is no more data in the input after this
// chunk.
func (c Chunk) IsTail() bool {
	return c.tail
}

// Bytes returns the bytes read, without copying them.
func (c Chunk) Bytes() []byte {
	return c.buf[c.start:c.end]
}

// Copy returns a copy of the bytes read, which can be kept after the next
// read.
func (c Chunk) Copy() []byte {
	b := make([]byte, c.Len())
	copy(b, c.Bytes())
	return b
}

// WithMarker places a marker, calls f with it and releases the marker
// whichever way f returns.  If f returns an error, the input is rewound to
// the marker first.
func WithMarker[A any](in Input, f func(Marker) (A, error)) (a A, err error) {
	m := in.Mark()
	defer func() {
		if err != nil {
			if rerr := m.Rewind(); rerr != nil && !errors.Is(rerr, ErrMarkerReleased) {
				err = errors.Join(err, rerr)
			}
			return
		}
		err = m.Close()
	}()
	return f(m)
}
