package trace

import (
	"fmt"
	"maps"
	"slices"

	"github.com/tliron/commonlog"

	"github.com/arnodel/parsec/parser"
)

// LoggerName is the name of the logger used by Logger.
const LoggerName = "parsec.trace"

// Logger returns a tracer logging to the commonlog logger named LoggerName.
func Logger() parser.Tracer {
	return Log(commonlog.GetLogger(LoggerName))
}

// Log returns a tracer logging each visited node to logger at debug level.
// Nothing is formatted when the logger does not allow that level.
func Log(logger commonlog.Logger) parser.Tracer {
	count := 0
	return func(node fmt.Stringer) {
		count++
		if logger.AllowLevel(commonlog.Debug) {
			logger.Debugf("visit %d: %s", count, node)
		}
	}
}

// A Counter counts how many times each node is visited.  Nodes are told
// apart by their String() value.
type Counter struct {
	counts map[string]int
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Trace(node fmt.Stringer) {
	c.counts[node.String()]++
	c.total++
}

// Count returns the number of visits of nodes called name.
func (c *Counter) Count(name string) int {
	return c.counts[name]
}

// Total returns the number of visits of all nodes.
func (c *Counter) Total() int {
	return c.total
}

// Nodes returns the names of the visited nodes, most visited first.
func (c *Counter) Nodes() []string {
	names := slices.Sorted(maps.Keys(c.counts))
	slices.SortStableFunc(names, func(a, b string) int {
		return c.counts[b] - c.counts[a]
	})
	return names
}

// Tee returns a tracer calling each of trs in turn.  Nil tracers are
// skipped.
func Tee(trs ...parser.Tracer) parser.Tracer {
	var live []parser.Tracer
	for _, tr := range trs {
		if tr != nil {
			live = append(live, tr)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return func(node fmt.Stringer) {
		for _, tr := range live {
			tr(node)
		}
	}
}
