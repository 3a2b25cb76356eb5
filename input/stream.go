package input

import (
	"fmt"
	"io"

	"github.com/arnodel/parsec/internal/debug"
)

// Stream is an Input reading from an io.Reader.
//
// The bytes read are kept in a chain of fixed size windows.  A window is
// kept in memory as long as a marker may need it: when a marker is taken,
// its window and all the windows after it stay open until the marker is
// released, so that rewinding replays bytes from memory rather than
// reading the source again.  Windows are stored in an arena and refer to
// each other by slot index; markers find their window by slot and
// generation, so a marker whose window was reclaimed can be detected.
//
// The number of windows open at the same time is bounded by
// Config.MaxWindows.  Reads that would exceed it fail with
// ErrTooManyWindows.
type Stream struct {
	src    io.Reader
	cfg    Config
	closed bool

	// Arena of windows.  Closed slots are listed in free and keep their
	// buffer so it can be reused.
	windows []window
	free    []int

	// Slot of the window the next read happens in.
	active int

	// Number of open windows
	open int
}

var _ Input = &Stream{}

type window struct {
	buf []byte

	// Range of the last chunk returned.
	// 0 <= start <= end <= read <= len(buf)
	start, end int

	// Number of bytes fetched from the source into buf.
	read int

	// True once the source returned fewer bytes than requested while
	// filling this window.
	tail bool

	// Slots of neighbouring windows, -1 if none.  A window without prev is
	// the oldest window still reachable.
	prev, next int

	// Incremented each time the slot is reused.
	gen uint64

	isOpen  bool
	markers []*streamMarker
}

// NewStream returns a Stream reading from r with the default Config.
func NewStream(r io.Reader) *Stream {
	s, err := NewStreamWithConfig(r, DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewStreamWithConfig returns a Stream reading from r, or an error if cfg
// is not valid.
func NewStreamWithConfig(r io.Reader, cfg Config) (*Stream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Stream{src: r, cfg: cfg}
	s.active = s.newWindow()
	return s, nil
}

// Config returns the configuration of the stream.
func (s *Stream) Config() Config {
	return s.cfg
}

// OpenWindows returns the number of windows currently held in memory.
func (s *Stream) OpenWindows() int {
	return s.open
}

func (s *Stream) Mark() Marker {
	m := &streamMarker{s: s, slot: s.active}
	if s.closed {
		m.released = true
		return m
	}
	w := &s.windows[s.active]
	m.gen = w.gen
	m.offset = w.end
	w.markers = append(w.markers, m)
	return m
}

func (s *Stream) Read(size int) (Chunk, error) {
	if s.closed {
		return Chunk{}, ErrClosed
	}
	c, err := s.readWindow(s.active, max(size, 0))
	if debug.On {
		s.checkWindows()
	}
	return c, err
}

// Close closes all windows and the source if it is an io.Closer.  Markers
// still outstanding can no longer be used to rewind.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for i := range s.windows {
		s.windows[i].isOpen = false
		s.windows[i].markers = nil
	}
	s.windows = nil
	s.free = nil
	s.open = 0
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) readWindow(i int, size int) (Chunk, error) {
	w := &s.windows[i]
	if !w.isOpen {
		return Chunk{}, fmt.Errorf("%w: slot %d", ErrStaleRead, i)
	}
	switch {
	case w.read > w.end:
		// Replay bytes fetched before a rewind.
		w.start = w.end
		w.end = min(w.end+size, w.read)
	case !w.tail && w.end == len(w.buf):
		return s.readNextWindow(i, size)
	case w.tail:
		w.start = w.end
	default:
		if err := s.fill(w, size); err != nil {
			return Chunk{}, err
		}
	}
	return w.chunk(), nil
}

func (s *Stream) readNextWindow(i int, size int) (Chunk, error) {
	next := s.windows[i].next
	dropped := s.windows[i].prev < 0 && len(s.windows[i].markers) == 0
	if dropped {
		// Nothing can rewind into this window any more.
		if err := s.closeWindow(i); err != nil {
			return Chunk{}, err
		}
	}
	if next < 0 {
		if s.open >= s.cfg.MaxWindows {
			return Chunk{}, fmt.Errorf("%w: %d windows of %d bytes", ErrTooManyWindows, s.open, s.cfg.WindowSize)
		}
		// When i was dropped its slot is reused here.
		next = s.newWindow()
		if !dropped {
			s.windows[i].next = next
			s.windows[next].prev = i
		}
	}
	s.active = next
	return s.readWindow(next, size)
}

// fill reads from the source into w, which has no buffered bytes left.
func (s *Stream) fill(w *window, size int) error {
	w.start = w.end
	if size == 0 {
		// Probe for the end of the source.  The byte stays buffered.
		n, err := io.ReadFull(s.src, w.buf[w.read:w.read+1])
		w.read += n
		return w.checkSourceError(err)
	}
	toRead := min(len(w.buf)-w.end, size)
	n, err := io.ReadFull(s.src, w.buf[w.end:w.end+toRead])
	w.read += n
	w.end = w.read
	return w.checkSourceError(err)
}

func (w *window) checkSourceError(err error) error {
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		w.tail = true
		return nil
	default:
		return fmt.Errorf("read source: %w", err)
	}
}

func (w *window) chunk() Chunk {
	return NewChunk(w.buf, w.start, w.end, w.tail && w.end == w.read)
}

func (w *window) removeMarker(m *streamMarker) bool {
	for i, m1 := range w.markers {
		if m1 == m {
			newLen := len(w.markers) - 1
			copy(w.markers[i:], w.markers[i+1:])
			w.markers[newLen] = nil
			w.markers = w.markers[:newLen]
			return true
		}
	}
	return false
}

func (s *Stream) newWindow() int {
	var i int
	if n := len(s.free); n > 0 {
		i = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		i = len(s.windows)
		s.windows = append(s.windows, window{})
	}
	w := &s.windows[i]
	if w.buf == nil {
		w.buf = make([]byte, s.cfg.WindowSize)
	}
	if w.markers == nil {
		w.markers = make([]*streamMarker, 0, s.cfg.InitialMarkerCapacity)
	}
	w.start, w.end, w.read = 0, 0, 0
	w.tail = false
	w.prev, w.next = -1, -1
	w.gen++
	w.isOpen = true
	s.open++
	debug.Printf("open window slot=%d gen=%d open=%d", i, w.gen, s.open)
	return i
}

// closeWindow releases window i.  Only the active window or a window
// without markers can be closed.
func (s *Stream) closeWindow(i int) error {
	w := &s.windows[i]
	if !w.isOpen {
		return nil
	}
	if i != s.active && len(w.markers) > 0 {
		return fmt.Errorf("%w: slot %d has %d", ErrWindowHasMarkers, i, len(w.markers))
	}
	if w.next >= 0 {
		s.windows[w.next].prev = -1
	}
	if w.prev >= 0 {
		s.windows[w.prev].next = -1
	}
	w.isOpen = false
	w.prev, w.next = -1, -1
	w.markers = w.markers[:0]
	s.free = append(s.free, i)
	s.open--
	debug.Printf("close window slot=%d gen=%d open=%d", i, w.gen, s.open)
	return nil
}

// lookup returns the window a marker was taken in, or nil if it has been
// closed since.
func (s *Stream) lookup(slot int, gen uint64) *window {
	if slot < len(s.windows) {
		w := &s.windows[slot]
		if w.isOpen && w.gen == gen {
			return w
		}
	}
	return nil
}

func (s *Stream) release(m *streamMarker) error {
	m.released = true
	w := s.lookup(m.slot, m.gen)
	if w == nil || !w.removeMarker(m) {
		return nil
	}
	if w.prev < 0 && len(w.markers) == 0 {
		return s.reclaimFrom(m.slot)
	}
	return nil
}

// reclaimFrom closes windows in chain order starting at the oldest one, as
// long as they have no markers, stopping at the active window.
func (s *Stream) reclaimFrom(i int) error {
	for i >= 0 && i != s.active && len(s.windows[i].markers) == 0 {
		next := s.windows[i].next
		if err := s.closeWindow(i); err != nil {
			return err
		}
		i = next
	}
	return nil
}

type streamMarker struct {
	s        *Stream
	slot     int
	gen      uint64
	offset   int
	released bool
}

func (m *streamMarker) Rewind() error {
	if m.released {
		return ErrMarkerReleased
	}
	s := m.s
	w := s.lookup(m.slot, m.gen)
	if w == nil {
		m.released = true
		return fmt.Errorf("%w: slot %d", ErrWindowReclaimed, m.slot)
	}
	w.start, w.end = m.offset, m.offset
	s.active = m.slot
	for j := w.next; j >= 0; j = s.windows[j].next {
		s.windows[j].start, s.windows[j].end = 0, 0
	}
	if err := s.release(m); err != nil {
		return err
	}
	// The active window may have moved forward, leaving older windows
	// without markers behind it.
	return s.reclaimFrom(s.head(m.slot))
}

// head returns the oldest window in the chain containing window i.
func (s *Stream) head(i int) int {
	for s.windows[i].prev >= 0 {
		i = s.windows[i].prev
	}
	return i
}

func (m *streamMarker) Close() error {
	if m.released {
		return nil
	}
	return m.s.release(m)
}

// checkWindows panics if an open window has inconsistent cursors.
func (s *Stream) checkWindows() {
	for i := range s.windows {
		w := &s.windows[i]
		if w.isOpen && (w.start < 0 || w.start > w.end || w.end > w.read || w.read > len(w.buf)) {
			panic(fmt.Sprintf("window %d: start=%d end=%d read=%d size=%d", i, w.start, w.end, w.read, len(w.buf)))
		}
	}
}
