package trace

import (
	"io"
	"strings"
)

// A Colorizer holds the ANSI escape codes used to print a trace.  The kind
// of a node is the part of its name before the first '(', e.g. "expect" in
// `expect("ab")`.
type Colorizer struct {
	CountColorCode []byte
	KindColorCode  []byte
	ResetCode      []byte
}

var (
	Reset = []byte("\033[0m")

	DimWhite   = []byte("\033[37;2m")
	BrightBlue = []byte("\033[34;1m")
)

// DefaultColorizer is used by Stderr when writing to a terminal.
var DefaultColorizer = Colorizer{
	CountColorCode: DimWhite,
	KindColorCode:  BrightBlue,
	ResetCode:      Reset,
}

func (c *Colorizer) writeCount(w io.Writer, count string) error {
	return c.write(w, c.countCode(), count)
}

func (c *Colorizer) writeNode(w io.Writer, node string) error {
	kind, rest := node, ""
	if i := strings.IndexByte(node, '('); i > 0 {
		kind, rest = node[:i], node[i:]
	}
	if err := c.write(w, c.kindCode(), kind); err != nil {
		return err
	}
	_, err := io.WriteString(w, rest)
	return err
}

func (c *Colorizer) write(w io.Writer, code []byte, s string) error {
	if c != nil {
		if _, err := w.Write(code); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	if c != nil {
		if _, err := w.Write(c.ResetCode); err != nil {
			return err
		}
	}
	return nil
}

func (c *Colorizer) countCode() []byte {
	if c == nil {
		return nil
	}
	return c.CountColorCode
}

func (c *Colorizer) kindCode() []byte {
	if c == nil {
		return nil
	}
	return c.KindColorCode
}
