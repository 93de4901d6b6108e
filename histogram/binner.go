package histogram

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// Event is one detector event record.
type Event struct {
	StartTime float64 `yaml:"start_time"`
	TickWidth float64 `yaml:"tick_width"`
	Tick      int32   `yaml:"tick"`
	Count     int32   `yaml:"count"`
}

// Time returns the absolute event time.
func (e Event) Time() float64 {
	return e.StartTime + float64(e.Tick)*e.TickWidth
}

// Stats summarises what a Binner accepted and dropped.
type Stats struct {
	Accepted      int   // events placed in a bin
	Dropped       int   // events outside the scale
	AcceptedCount int64 // sum of Count over accepted events
	DroppedCount  int64 // sum of Count over dropped events
}

// Binner accumulates events into the bins of a scale.
//
// A Binner is not safe for concurrent use.
type Binner struct {
	sc     *scale.Scale
	counts []float64
	stats  Stats
}

// NewBinner returns a Binner with one zeroed bin per interval of sc.
func NewBinner(sc *scale.Scale, opts ...Option) (*Binner, error) {
	if sc == nil || sc.Len() == 0 {
		return nil, fmt.Errorf("histogram: nil scale: %w", errs.ErrInvalidRange)
	}
	if _, err := newConfig(opts); err != nil {
		return nil, err
	}

	return &Binner{
		sc:     sc,
		counts: make([]float64, max(sc.Len()-1, 0)),
	}, nil
}

// Bin histograms events against sc and returns sc.Len()-1 bin counts.
func Bin(events []Event, sc *scale.Scale, opts ...Option) ([]float64, error) {
	b, err := NewBinner(sc, opts...)
	if err != nil {
		return nil, err
	}
	b.AddAll(events)

	return b.counts, nil
}

// Add places e in its bin and reports whether it was accepted.
func (b *Binner) Add(e Event) bool {
	i, ok := b.sc.Locate(e.Time())
	if !ok {
		b.stats.Dropped++
		b.stats.DroppedCount += int64(e.Count)

		return false
	}

	b.counts[i] += float64(e.Count)
	b.stats.Accepted++
	b.stats.AcceptedCount += int64(e.Count)

	return true
}

// AddAll adds every event in order.
func (b *Binner) AddAll(events []Event) {
	for _, e := range events {
		b.Add(e)
	}
}

// AddSeq adds every event produced by seq.
func (b *Binner) AddSeq(seq iter.Seq[Event]) {
	for e := range seq {
		b.Add(e)
	}
}

// Scale returns the binning scale.
func (b *Binner) Scale() *scale.Scale {
	return b.sc
}

// Counts returns a copy of the bin counts.
func (b *Binner) Counts() []float64 {
	return slices.Clone(b.counts)
}

// Stats returns the accumulated statistics.
func (b *Binner) Stats() Stats {
	return b.stats
}

// Reset zeroes the counts and statistics.
func (b *Binner) Reset() {
	clear(b.counts)
	b.stats = Stats{}
}
