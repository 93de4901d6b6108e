// Package histogram bins time-stamped neutron events into counts against the
// bins of a scale.
//
// An Event carries a start time, a tick width, a tick index and a count; its
// absolute time is StartTime + Tick*TickWidth. Each event is located in the
// scale with a binary search (scale.Locate), so binning E events against N
// points costs O(E log N). Events outside the scale are dropped and reported
// in Stats, never as an error.
//
// Smoothing and interpolation are not implemented. The corresponding options
// exist so callers can request them, and always fail with
// errs.ErrUnsupportedFeature.
package histogram
