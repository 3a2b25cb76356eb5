package input

// Array is an Input reading from a byte slice.  Marking is just recording
// the current offset, so there is no limit on markers.
type Array struct {
	bytes      []byte
	start, end int
}

var _ Input = &Array{}

func NewArray(b []byte) *Array {
	return &Array{bytes: b}
}

func NewArrayString(s string) *Array {
	return NewArray([]byte(s))
}

func (a *Array) Mark() Marker {
	return arrayMarker{a: a, pos: a.end}
}

func (a *Array) Read(size int) (Chunk, error) {
	a.start = a.end
	a.end = min(a.end+max(size, 0), len(a.bytes))
	return NewChunk(a.bytes, a.start, a.end, a.end == len(a.bytes)), nil
}

// Offset returns the number of bytes consumed so far.
func (a *Array) Offset() int {
	return a.end
}

func (a *Array) Close() error {
	return nil
}

type arrayMarker struct {
	a   *Array
	pos int
}

func (m arrayMarker) Rewind() error {
	m.a.start = m.pos
	m.a.end = m.pos
	return nil
}

func (m arrayMarker) Close() error {
	return nil
}
