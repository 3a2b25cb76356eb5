// Package trace provides parser.Tracer implementations: a printer writing
// one line per visited node, a logger backed by commonlog, a counter and a
// way to combine them.
package trace

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// A Printer writes one line per visited node: the visit number followed by
// the node.  Use its Trace method as a parser.Tracer.
//
// A tracer cannot report an error, so the first write error is kept and
// returned by Err; nothing more is written after it.
type Printer struct {
	w         io.Writer
	colorizer *Colorizer
	count     int
	err       error
}

// NewPrinter returns a Printer writing to w.  If c is nil there is no
// colour.
func NewPrinter(w io.Writer, c *Colorizer) *Printer {
	return &Printer{w: w, colorizer: c}
}

// Stderr returns a Printer writing to stderr, with colours if stderr is a
// terminal.
func Stderr() *Printer {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return NewPrinter(colorable.NewColorableStderr(), &DefaultColorizer)
	}
	return NewPrinter(os.Stderr, nil)
}

func (p *Printer) Trace(node fmt.Stringer) {
	if p.err != nil {
		return
	}
	p.count++
	if err := p.printLine(node.String()); err != nil {
		p.err = &PrinterError{Err: err}
	}
}

func (p *Printer) printLine(node string) error {
	if err := p.colorizer.writeCount(p.w, strconv.Itoa(p.count)); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, " "); err != nil {
		return err
	}
	if err := p.colorizer.writeNode(p.w, node); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

// Count returns the number of nodes traced so far.
func (p *Printer) Count() int {
	return p.count
}

// Err returns the first error encountered while writing, if any.
func (p *Printer) Err() error {
	return p.err
}

// A PrinterError contains an error that occurred while a Printer was
// writing a trace.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}
