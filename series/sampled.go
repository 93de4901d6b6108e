package series

import (
	"fmt"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// Sampled is a series backed by stored value and error arrays.
type Sampled struct {
	base
	values []float64
	errors []float64
}

var _ Series = (*Sampled)(nil)

// NewSampled returns a series holding a copy of values, one per point of sc.
func NewSampled(sc *scale.Scale, values []float64, opts ...Option) (*Sampled, error) {
	if err := checkScale(sc, "new sampled"); err != nil {
		return nil, err
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if len(values) != sc.Len() {
		return nil, fmt.Errorf("series: %d values for %d scale points: %w", len(values), sc.Len(), errs.ErrLengthMismatch)
	}
	if cfg.errors != nil && len(cfg.errors) != sc.Len() {
		return nil, fmt.Errorf("series: %d errors for %d scale points: %w", len(cfg.errors), sc.Len(), errs.ErrLengthMismatch)
	}

	return &Sampled{
		base:   newBase(sc, cfg),
		values: slices.Clone(values),
		errors: cfg.errors,
	}, nil
}

// Kind returns KindSampled.
func (s *Sampled) Kind() Kind { return KindSampled }

// Values returns a copy of the stored values.
func (s *Sampled) Values() []float64 { return slices.Clone(s.values) }

// Errors returns a copy of the stored errors, or nil.
func (s *Sampled) Errors() []float64 { return slices.Clone(s.errors) }

// HasErrors reports whether the series carries errors.
func (s *Sampled) HasErrors() bool { return s.errors != nil }

// SampleAt linearly interpolates values and errors at the points of sc.
// Points outside the series scale get 0.
func (s *Sampled) SampleAt(sc *scale.Scale) ([]float64, []float64) {
	if sc.Equal(s.sc) {
		return s.Values(), s.Errors()
	}

	values := make([]float64, sc.Len())
	var errors []float64
	if s.errors != nil {
		errors = make([]float64, sc.Len())
	}

	for i, x := range sc.All() {
		j, t, ok := s.bracket(x)
		if !ok {
			continue
		}
		values[i] = lerp(s.values, j, t)
		if errors != nil {
			errors[i] = lerp(s.errors, j, t)
		}
	}

	return values, errors
}

// Resample interpolates the stored arrays onto sc and installs it.
func (s *Sampled) Resample(sc *scale.Scale) error {
	if err := checkScale(sc, "resample"); err != nil {
		return err
	}

	s.values, s.errors = s.SampleAt(sc)
	s.sc = sc

	return nil
}

// bracket returns the index j and fraction t such that x lies at
// points[j] + t*(points[j+1]-points[j]). Scale end points map to t = 0.
func (s *Sampled) bracket(x float64) (int, float64, bool) {
	j, ok := s.sc.Locate(x)
	if !ok {
		// Locate excludes the upper end of the value axis, which is the first
		// point of a descending scale.
		switch last := s.sc.Len() - 1; x {
		case s.sc.At(last):
			return last, 0, true
		case s.sc.At(0):
			return 0, 0, true
		default:
			return 0, 0, false
		}
	}

	x0, x1 := s.sc.At(j), s.sc.At(j+1)

	return j, (x - x0) / (x1 - x0), true
}

func lerp(v []float64, j int, t float64) float64 {
	if t == 0 {
		return v[j]
	}

	return v[j] + t*(v[j+1]-v[j])
}
