package scale

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

const (
	// Resolution is the coordinate resolution of log-spaced scales.
	Resolution = 1.0 / resolutionSteps

	resolutionSteps = 10

	// MaxPoints bounds the size of generated scales.
	MaxPoints = 1 << 24
)

// Uniform returns count evenly spaced points from start to end inclusive.
//
// A single point equals start. Returns errs.ErrInvalidRange when count < 1,
// when a bound is NaN or infinite, or when count > 1 and start == end.
func Uniform(start, end float64, count int) (*Scale, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d < 1", errs.ErrInvalidRange, count)
	}
	if !finite(start) || !finite(end) {
		return nil, fmt.Errorf("%w: bounds [%g, %g] must be finite", errs.ErrInvalidRange, start, end)
	}
	if count > MaxPoints {
		return nil, fmt.Errorf("%w: count %d exceeds %d", errs.ErrInvalidRange, count, MaxPoints)
	}
	if count == 1 {
		return &Scale{points: []float64{start}}, nil
	}
	if start == end {
		return nil, fmt.Errorf("%w: empty interval [%g, %g] for %d points", errs.ErrInvalidRange, start, end, count)
	}

	step := (end - start) / float64(count-1)
	pts := make([]float64, count)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	pts[count-1] = end

	return &Scale{points: pts}, nil
}

// FromPoints builds a scale from caller-supplied points. The input is copied.
//
// Strictly monotonic input (either direction) is adopted unchanged. Otherwise
// a stably sorted ascending copy is used and a diag.CodeNonMonotonicInput
// diagnostic is recorded; the result may then contain repeated points. With
// WithStrict the call fails with errs.ErrNonMonotonic instead.
//
// Returns errs.ErrInvalidRange for empty input or NaN points.
func FromPoints(points []float64, opts ...Option) (*Scale, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return fromPoints(points, cfg, "scale.FromPoints")
}

func fromPoints(points []float64, cfg *config, source string) (*Scale, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", errs.ErrInvalidRange)
	}
	for i, p := range points {
		if math.IsNaN(p) {
			return nil, fmt.Errorf("%w: point %d is NaN", errs.ErrInvalidRange, i)
		}
	}

	pts := slices.Clone(points)
	if strictlyMonotonic(pts) {
		return &Scale{points: pts}, nil
	}

	if cfg.strict {
		return nil, fmt.Errorf("%s: %w", source, errs.ErrNonMonotonic)
	}

	slices.SortStableFunc(pts, func(a, b float64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})

	cfg.recorder.Record(diag.Diagnostic{
		Code:    diag.CodeNonMonotonicInput,
		Source:  source,
		Message: "scale points are not strictly monotonic; using sorted copy",
		Attrs: []slog.Attr{
			slog.Int("count", len(pts)),
			slog.Float64("min", pts[0]),
			slog.Float64("max", pts[len(pts)-1]),
		},
	})

	return &Scale{points: pts}, nil
}

// Log returns a geometrically spaced scale from start towards end.
//
// The spacing ratio is (start+firstStep)/start and the number of points is
// ceil(log(end/start)/log(ratio)) + 1, so the last point reaches or passes end
// by less than one step. Every stored point is rounded to Resolution.
// LogExact propagates the exact value to the next step, LogRoundedChain
// propagates the rounded value; the two diverge after a few steps.
//
// Returns errs.ErrInvalidRange when end < start, start <= 0, or ratio <= 1.
// Under LogExact rounding may collapse neighbouring points for small ratios;
// such input goes through the FromPoints policy (sort-and-warn, or failure
// under WithStrict). Under LogRoundedChain a rounded point that does not
// advance would repeat forever, so it fails with errs.ErrInvalidRange.
func Log(start, end, firstStep float64, mode LogMode, opts ...Option) (*Scale, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	if !finite(start) || !finite(end) || !finite(firstStep) {
		return nil, fmt.Errorf("%w: non-finite log scale parameters", errs.ErrInvalidRange)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end %g < start %g", errs.ErrInvalidRange, end, start)
	}
	if start <= 0 {
		return nil, fmt.Errorf("%w: log scale start %g must be positive", errs.ErrInvalidRange, start)
	}
	ratio := (start + firstStep) / start
	if ratio <= 1 {
		return nil, fmt.Errorf("%w: ratio %g <= 1", errs.ErrInvalidRange, ratio)
	}

	steps := math.Ceil(math.Log(end/start) / math.Log(ratio))
	if steps+1 > MaxPoints {
		return nil, fmt.Errorf("%w: %g points exceed %d", errs.ErrInvalidRange, steps+1, MaxPoints)
	}
	n := int(steps) + 1
	pts := make([]float64, n)

	x := start
	for i := range pts {
		rounded := roundResolution(x)
		pts[i] = rounded
		if mode == LogRoundedChain {
			if i > 0 && rounded <= pts[i-1] {
				return nil, fmt.Errorf("%w: rounded chain stalls at %g after %d points, ratio %g too small for resolution %g",
					errs.ErrInvalidRange, rounded, i, ratio, Resolution)
			}
			x = rounded * ratio
		} else {
			x *= ratio
		}
	}

	return fromPoints(pts, cfg, "scale.Log")
}

func roundResolution(x float64) float64 {
	return math.Round(x*resolutionSteps) / resolutionSteps
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
