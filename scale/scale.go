package scale

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Scale is an immutable, strictly monotonic sequence of coordinates.
//
// The zero value is not usable; construct scales with Uniform, FromPoints, Log
// or Merge. A *Scale may be shared freely since no method mutates it.
type Scale struct {
	points []float64
}

// Len returns the number of points.
func (s *Scale) Len() int {
	return len(s.points)
}

// Start returns the first point.
func (s *Scale) Start() float64 {
	return s.points[0]
}

// End returns the last point.
func (s *Scale) End() float64 {
	return s.points[len(s.points)-1]
}

// Min returns the smallest coordinate regardless of orientation.
func (s *Scale) Min() float64 {
	return min(s.Start(), s.End())
}

// Max returns the largest coordinate regardless of orientation.
func (s *Scale) Max() float64 {
	return max(s.Start(), s.End())
}

// Span returns |End - Start|.
func (s *Scale) Span() float64 {
	return s.Max() - s.Min()
}

// At returns the i-th point. It panics if i is out of range.
func (s *Scale) At(i int) float64 {
	return s.points[i]
}

// Points returns a copy of the points; callers never observe internal state.
func (s *Scale) Points() []float64 {
	return slices.Clone(s.points)
}

// All returns an iterator over (index, point) pairs.
func (s *Scale) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, p := range s.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Ascending reports whether the points increase. Single-point scales are
// considered ascending.
func (s *Scale) Ascending() bool {
	return s.points[len(s.points)-1] >= s.points[0]
}

// Contains reports whether x lies within [Min, Max].
func (s *Scale) Contains(x float64) bool {
	return x >= s.Min() && x <= s.Max()
}

// Equal reports whether both scales hold exactly the same points.
func (s *Scale) Equal(other *Scale) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}

	return slices.Equal(s.points, other.points)
}

// Widths returns the width of every bin, |points[i+1]-points[i]|.
func (s *Scale) Widths() []float64 {
	if len(s.points) < 2 {
		return nil
	}

	out := make([]float64, len(s.points)-1)
	for i := range out {
		w := s.points[i+1] - s.points[i]
		if w < 0 {
			w = -w
		}
		out[i] = w
	}

	return out
}

// Centers returns a scale holding the midpoint of every bin.
// It returns nil for a single-point scale.
func (s *Scale) Centers() *Scale {
	if len(s.points) < 2 {
		return nil
	}

	out := make([]float64, len(s.points)-1)
	for i := range out {
		out[i] = s.points[i] + (s.points[i+1]-s.points[i])/2
	}

	return &Scale{points: out}
}

// String renders the scale as "[p0 p1 ... pn]" for short scales and as a
// range summary for long ones.
func (s *Scale) String() string {
	if s == nil || len(s.points) == 0 {
		return "Scale{}"
	}
	if len(s.points) > 8 {
		return fmt.Sprintf("Scale{n=%d, start=%g, end=%g}", len(s.points), s.Start(), s.End())
	}

	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range s.points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// strictlyMonotonic reports whether pts is strictly increasing or strictly
// decreasing. Sequences shorter than two points are monotonic.
func strictlyMonotonic(pts []float64) bool {
	if len(pts) < 2 {
		return true
	}

	if pts[1] > pts[0] {
		for i := 2; i < len(pts); i++ {
			if !(pts[i] > pts[i-1]) {
				return false
			}
		}

		return true
	}

	if pts[1] < pts[0] {
		for i := 2; i < len(pts); i++ {
			if !(pts[i] < pts[i-1]) {
				return false
			}
		}

		return true
	}

	return false
}
