// Package isaw provides scales, attributed spectra and their compact
// persisted form for neutron scattering data reduction.
//
// The building blocks live in sub-packages:
//
//   - scale: uniform, logarithmic and merged abscissa grids
//   - attr: typed, combinable metadata attached to a spectrum
//   - series: sampled and function-backed spectra with error propagation
//   - histogram: event-to-bin accumulation producing sampled spectra
//   - fit: least-squares regression models restorable from their coefficients
//   - persist: compress/inflate of a series into a self-describing byte form
//
// This package wraps the most common workflows. For fine-grained control use
// the sub-packages directly.
//
// # Basic Usage
//
// Binning time-of-flight events and persisting the spectrum:
//
//	edges, _ := isaw.LogScale(1000, 30000, 4)
//	spectrum, stats, _ := isaw.BinEvents(events, edges,
//	    series.WithAttributes(attr.NewList(attr.NewInt("run", 4211))),
//	)
//	data, _ := isaw.Pack(spectrum)
//
// Restoring it:
//
//	restored, _ := isaw.Unpack(data)
//	fmt.Println(restored.Attributes())
package isaw

import (
	"github.com/ornl-ndav/ISAW-sub008/fit"
	"github.com/ornl-ndav/ISAW-sub008/format"
	"github.com/ornl-ndav/ISAW-sub008/histogram"
	"github.com/ornl-ndav/ISAW-sub008/internal/hash"
	"github.com/ornl-ndav/ISAW-sub008/persist"
	"github.com/ornl-ndav/ISAW-sub008/scale"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

var defaultPackOptions = []persist.Option{
	persist.WithScaleEncoding(format.TypeGorilla),
	persist.WithValueEncoding(format.TypeGorilla),
	persist.WithCompression(format.CompressionZstd),
}

// UniformScale returns count evenly spaced points from start to end.
func UniformScale(start, end float64, count int) (*scale.Scale, error) {
	return scale.Uniform(start, end, count)
}

// LogScale returns a constant-ratio scale from start to end whose first step
// is firstStep, the usual binning for time-of-flight data. Points are
// rounded to scale.Resolution with the exact-chain policy.
func LogScale(start, end, firstStep float64) (*scale.Scale, error) {
	return scale.Log(start, end, firstStep, scale.LogExact)
}

// NewSpectrum returns a sampled series over sc.
func NewSpectrum(sc *scale.Scale, values []float64, opts ...series.Option) (*series.Sampled, error) {
	return series.NewSampled(sc, values, opts...)
}

// BinEvents histograms events into the bins defined by edges and returns the
// spectrum on the bin centers with Poisson errors, together with the
// accepted/dropped statistics.
func BinEvents(events []histogram.Event, edges *scale.Scale, opts ...series.Option) (*series.Sampled, histogram.Stats, error) {
	b, err := histogram.NewBinner(edges)
	if err != nil {
		return nil, histogram.Stats{}, err
	}
	b.AddAll(events)

	s, err := series.FromHistogram(b.Scale(), b.Counts(), opts...)
	if err != nil {
		return nil, b.Stats(), err
	}

	return s, b.Stats(), nil
}

// Pack persists s with Gorilla columns and Zstd compression. Later options
// override the defaults.
//
// Example:
//
//	data, err := isaw.Pack(s, persist.WithCompression(format.CompressionLZ4))
func Pack(s series.Series, opts ...persist.Option) ([]byte, error) {
	all := make([]persist.Option, 0, len(defaultPackOptions)+len(opts))
	all = append(all, defaultPackOptions...)
	all = append(all, opts...)

	return persist.Compress(s, 0, all...)
}

// Unpack restores a series written by Pack or persist.Compress.
func Unpack(data []byte) (series.Series, error) {
	return persist.Inflate(data)
}

// BestFit fits every applicable regression model to s and returns the one
// with the highest coefficient of determination.
func BestFit(s series.Series) (*fit.Fit, error) {
	res, err := fit.AnalyzeSeries(s)
	if err != nil {
		return nil, err
	}

	return res.Best, nil
}

// SeriesID returns a stable 64-bit identifier for a series name, suitable as
// a map key when many spectra are handled together.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}
