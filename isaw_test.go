package isaw

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/fit"
	"github.com/ornl-ndav/ISAW-sub008/format"
	"github.com/ornl-ndav/ISAW-sub008/histogram"
	"github.com/ornl-ndav/ISAW-sub008/persist"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

func TestBinEventsPackUnpack(t *testing.T) {
	edges, err := UniformScale(0, 10, 11)
	require.NoError(t, err)

	events := []histogram.Event{
		{StartTime: 0, TickWidth: 1, Tick: 2, Count: 4},
		{StartTime: 0, TickWidth: 1, Tick: 2, Count: 5},
		{StartTime: 0.5, TickWidth: 1, Tick: 7, Count: 1},
		{StartTime: 0, TickWidth: 1, Tick: 42, Count: 3}, // outside
	}

	list := attr.NewList(attr.NewInt("run", 4211), attr.NewLabel("title", "vanadium"))
	spectrum, stats, err := BinEvents(events, edges, series.WithAttributes(list), series.WithGroup(3))
	require.NoError(t, err)
	require.Equal(t, 3, stats.Accepted)
	require.Equal(t, 1, stats.Dropped)
	require.Equal(t, 10, spectrum.Len())

	values := spectrum.Values()
	require.InDelta(t, 9.0, values[2], 1e-12)
	require.InDelta(t, 1.0, values[7], 1e-12)
	require.InDelta(t, 3.0, spectrum.Errors()[2], 1e-12)

	data, err := Pack(spectrum)
	require.NoError(t, err)

	h, err := persist.Inspect(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, h.Flag.Compression())

	restored, err := Unpack(data)
	require.NoError(t, err)
	require.Equal(t, int32(3), restored.Group())
	require.Equal(t, values, restored.Values())
	require.True(t, restored.Attributes().Equal(list))
}

func TestPack_OptionsOverrideDefaults(t *testing.T) {
	sc, err := UniformScale(1, 4, 4)
	require.NoError(t, err)
	s, err := NewSpectrum(sc, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	data, err := Pack(s, persist.WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	h, err := persist.Inspect(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, h.Flag.Compression())
}

func TestLogScale(t *testing.T) {
	sc, err := LogScale(1000, 2000, 10)
	require.NoError(t, err)
	require.InDelta(t, 1000.0, sc.Start(), 1e-9)
	require.InDelta(t, 1010.0, sc.At(1), 1e-6)
	require.GreaterOrEqual(t, sc.End(), 2000.0)
}

func TestBestFit(t *testing.T) {
	sc, err := UniformScale(1, 10, 10)
	require.NoError(t, err)

	values := make([]float64, sc.Len())
	for i, x := range sc.Points() {
		values[i] = 2*x + 1
	}
	s, err := NewSpectrum(sc, values)
	require.NoError(t, err)

	best, err := BestFit(s)
	require.NoError(t, err)
	require.InDelta(t, 1.0, best.RSquared, 1e-9)
	require.Contains(t, []fit.ModelType{fit.ModelLinear, fit.ModelPolynomial}, best.Curve.Type())
	require.InDelta(t, 21.0, best.Curve.Eval(10), 1e-6)
}

func TestBinEvents_NilScale(t *testing.T) {
	_, _, err := BinEvents(nil, nil)
	require.Error(t, err)
}

func TestSeriesID(t *testing.T) {
	require.Equal(t, SeriesID("bank1"), SeriesID("bank1"))
	require.NotEqual(t, SeriesID("bank1"), SeriesID("bank2"))
	require.NotZero(t, SeriesID(""))
}
