package input

import "errors"

// Fatal conditions reported by inputs.  They are not parse failures: they
// mean the parse cannot continue, usually because markers are kept for too
// long or the buffer is configured too small for the backtracking depth of
// the grammar.
var (
	// ErrTooManyWindows is returned by Stream.Read when it would need to
	// open more windows than Config.MaxWindows.
	ErrTooManyWindows = errors.New("max window count reached")

	// ErrWindowReclaimed is returned when rewinding to a marker whose window
	// has already been closed.
	ErrWindowReclaimed = errors.New("cannot rewind to a closed window")

	// ErrStaleRead is returned when a read reaches a window that has been
	// closed.
	ErrStaleRead = errors.New("read from a closed window")

	// ErrWindowHasMarkers is returned when closing a window that some
	// marker still depends on.
	ErrWindowHasMarkers = errors.New("cannot close a window with outstanding markers")

	// ErrMarkerReleased is returned when rewinding to a marker that was
	// already closed or used.
	ErrMarkerReleased = errors.New("marker already released")

	// ErrClosed is returned when using an input after it was closed.
	ErrClosed = errors.New("input closed")

	// ErrInvalidConfig is returned when a Config has non-positive values.
	ErrInvalidConfig = errors.New("invalid input config")
)
