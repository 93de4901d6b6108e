// Package diag records recoverable conditions as structured diagnostics.
//
// Non-monotonic input that was sorted, or a combine request between attribute
// kinds that cannot be merged, does not fail the operation. The condition is
// reported to a Recorder so callers can observe it: the default recorder logs
// through log/slog, and a Collector keeps diagnostics in memory for later
// queries (tests use it to assert a warning occurred).
package diag

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Code identifies the kind of a diagnostic.
type Code string

const (
	// CodeNonMonotonicInput reports that caller-supplied points or list values
	// were not strictly ordered and a sorted copy was used instead.
	CodeNonMonotonicInput Code = "non_monotonic_input"

	// CodeIncompatibleCombine reports that combine/add was requested between
	// attribute kinds that cannot be merged; the receiver was kept unchanged.
	CodeIncompatibleCombine Code = "incompatible_combine"

	// CodeLabelOverflow reports a label concatenation skipped because the
	// result would exceed the label length limit.
	CodeLabelOverflow Code = "label_overflow"
)

// Diagnostic is one recoverable condition.
type Diagnostic struct {
	Code    Code
	Source  string // package-qualified operation, e.g. "scale.FromPoints"
	Message string
	Attrs   []slog.Attr
}

// Recorder receives diagnostics.
type Recorder interface {
	Record(d Diagnostic)
}

// LogRecorder writes each diagnostic as a slog warning.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder returns a recorder logging to logger, or to slog.Default()
// when logger is nil.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger}
}

// Record implements Recorder.
func (r *LogRecorder) Record(d Diagnostic) {
	logger := r.logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := make([]slog.Attr, 0, len(d.Attrs)+2)
	attrs = append(attrs, slog.String("code", string(d.Code)), slog.String("source", d.Source))
	attrs = append(attrs, d.Attrs...)
	logger.LogAttrs(context.Background(), slog.LevelWarn, d.Message, attrs...)
}

// Collector keeps diagnostics in memory. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record implements Recorder.
func (c *Collector) Record(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// All returns a copy of the recorded diagnostics in recording order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Count returns the number of diagnostics with the given code.
func (c *Collector) Count(code Code) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, d := range c.items {
		if d.Code == code {
			n++
		}
	}

	return n
}

// Has reports whether at least one diagnostic with the given code was recorded.
func (c *Collector) Has(code Code) bool {
	return c.Count(code) > 0
}

// Reset discards all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.items = c.items[:0]
	c.mu.Unlock()
}

type multi []Recorder

func (m multi) Record(d Diagnostic) {
	for _, r := range m {
		r.Record(d)
	}
}

// Multi fans a diagnostic out to every non-nil recorder.
func Multi(recorders ...Recorder) Recorder {
	out := make(multi, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

// Discard drops every diagnostic.
var Discard Recorder = multi(nil)

var (
	defaultMu       sync.RWMutex
	defaultRecorder Recorder = NewLogRecorder(nil)
)

// Default returns the process-wide recorder used when no recorder option is
// given. It logs through slog.Default().
func Default() Recorder {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultRecorder
}

// SetDefault replaces the process-wide recorder and returns the previous one.
// A nil recorder restores the slog-backed default.
func SetDefault(r Recorder) Recorder {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultRecorder
	if r == nil {
		r = NewLogRecorder(nil)
	}
	defaultRecorder = r

	return prev
}

// Or returns r, or Default() when r is nil.
func Or(r Recorder) Recorder {
	if r == nil {
		return Default()
	}

	return r
}
