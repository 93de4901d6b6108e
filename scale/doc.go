// Package scale provides the monotonic coordinate axis ("X scale") of a
// measurement series.
//
// A Scale is an immutable, strictly monotonic sequence of float64 coordinates.
// Three constructors exist:
//
//   - Uniform generates evenly spaced points between two bounds.
//   - FromPoints adopts caller-supplied points. Input that is not strictly
//     monotonic is not rejected by default: a sorted ascending copy is used
//     and a diag.CodeNonMonotonicInput diagnostic is recorded. WithStrict
//     turns this into an errs.ErrNonMonotonic failure.
//   - Log generates geometrically spaced points rounded to a 0.1 resolution,
//     with LogExact or LogRoundedChain propagation.
//
// Two scales are merged with Merge, which covers the union of their intervals,
// and a coordinate is mapped to its bin with Locate.
//
// # Bins
//
// Bin i of a scale spans the half-open interval [points[i], points[i+1]) on the
// value axis. A scale with n points has n-1 bins; a single-point scale has
// none. For a descending scale bin i spans [points[i+1], points[i]).
package scale
