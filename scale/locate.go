package scale

import (
	"math"
	"sort"
)

// Locate returns the index of the bin containing x.
//
// Bin i spans [points[i], points[i+1]) on the value axis, so x equal to the
// last point of an ascending scale is outside every bin. The lookup is a
// binary search, O(log n). ok is false when x lies outside the scale, is NaN,
// or the scale has fewer than two points.
func (s *Scale) Locate(x float64) (int, bool) {
	n := len(s.points)
	if n < 2 || math.IsNaN(x) {
		return -1, false
	}

	p := s.points
	if p[n-1] > p[0] {
		if x < p[0] || x >= p[n-1] {
			return -1, false
		}
		j := sort.Search(n, func(k int) bool { return p[k] > x })

		return j - 1, true
	}

	if x >= p[0] || x < p[n-1] {
		return -1, false
	}
	j := sort.Search(n, func(k int) bool { return p[k] <= x })

	return j - 1, true
}

// Nearest returns the index of the point closest to x. Ties go to the lower
// index. It returns -1 for NaN.
func (s *Scale) Nearest(x float64) int {
	if math.IsNaN(x) {
		return -1
	}

	p := s.points
	n := len(p)
	if n == 1 {
		return 0
	}

	var j int
	if s.Ascending() {
		j = sort.Search(n, func(k int) bool { return p[k] >= x })
	} else {
		j = sort.Search(n, func(k int) bool { return p[k] <= x })
	}

	switch {
	case j == 0:
		return 0
	case j == n:
		return n - 1
	case math.Abs(p[j]-x) < math.Abs(x-p[j-1]):
		return j
	default:
		return j - 1
	}
}
