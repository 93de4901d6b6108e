package scale

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/ornl-ndav/ISAW-sub008/errs"
)

// nearTolerance is the relative distance under which a spliced point is
// treated as a duplicate of the last point already taken.
const nearTolerance = 1e-12

// Merge returns the union scale of s and other. See the package-level Merge.
func (s *Scale) Merge(other *Scale) (*Scale, error) {
	return Merge(s, other)
}

// Merge returns a new scale covering [min(a.Min, b.Min), max(a.Max, b.Max)].
//
// All points of the scale with the smaller first point are taken. If the
// other scale extends further, its tail is spliced in starting at the first
// point strictly beyond the last point taken (found by binary search; points
// within a relative 1e-12 of it are skipped as near-duplicates). Interior
// points of the other scale are not interleaved.
//
// Both scales must share an orientation; two descending scales produce a
// descending result. The result is re-validated and errs.ErrInvalidRange is
// returned if it is not strictly monotonic, which can only happen when an
// input scale was itself built from repeated points.
func Merge(a, b *Scale) (*Scale, error) {
	if a == nil || b == nil || a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%w: merge of empty scale", errs.ErrInvalidRange)
	}

	ascending, err := commonOrientation(a, b)
	if err != nil {
		return nil, err
	}

	if ascending {
		pts := mergeAscending(a.points, b.points)
		return checkMerged(pts)
	}

	ra, rb := slices.Clone(a.points), slices.Clone(b.points)
	slices.Reverse(ra)
	slices.Reverse(rb)
	pts := mergeAscending(ra, rb)
	slices.Reverse(pts)

	return checkMerged(pts)
}

func commonOrientation(a, b *Scale) (bool, error) {
	switch {
	case a.Len() > 1 && b.Len() > 1:
		if a.Ascending() != b.Ascending() {
			return false, fmt.Errorf("%w: cannot merge ascending and descending scales", errs.ErrInvalidRange)
		}

		return a.Ascending(), nil
	case a.Len() > 1:
		return a.Ascending(), nil
	case b.Len() > 1:
		return b.Ascending(), nil
	default:
		return true, nil
	}
}

func mergeAscending(a, b []float64) []float64 {
	lo, hi := a, b
	if b[0] < a[0] {
		lo, hi = b, a
	}

	out := make([]float64, len(lo), len(lo)+len(hi))
	copy(out, lo)

	last := lo[len(lo)-1]
	if hi[len(hi)-1] <= last {
		return out
	}

	limit := last + nearTolerance*math.Max(1, math.Abs(last))
	idx := sort.Search(len(hi), func(i int) bool {
		return hi[i] > limit
	})

	return append(out, hi[idx:]...)
}

func checkMerged(pts []float64) (*Scale, error) {
	if !strictlyMonotonic(pts) {
		return nil, fmt.Errorf("%w: merged scale is not strictly monotonic", errs.ErrInvalidRange)
	}

	return &Scale{points: pts}, nil
}
