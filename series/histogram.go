package series

import (
	"fmt"
	"math"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// FromHistogram builds a Sampled series from bin counts over edges: one value
// per bin, placed at the bin centre, with Poisson errors sqrt(|count|)
// unless WithErrors supplies explicit ones.
func FromHistogram(edges *scale.Scale, counts []float64, opts ...Option) (*Sampled, error) {
	if edges == nil || edges.Len() < 2 {
		return nil, fmt.Errorf("series: histogram needs at least two edges: %w", errs.ErrInvalidRange)
	}
	if len(counts) != edges.Len()-1 {
		return nil, fmt.Errorf("series: %d counts for %d bins: %w", len(counts), edges.Len()-1, errs.ErrLengthMismatch)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	errors := cfg.errors
	if errors == nil {
		errors = make([]float64, len(counts))
		for i, c := range counts {
			errors[i] = math.Sqrt(math.Abs(c))
		}
	}

	return NewSampled(edges.Centers(), counts, append(slices.Clip(opts), WithErrors(errors))...)
}
