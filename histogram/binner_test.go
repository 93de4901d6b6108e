package histogram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

func mustUniform(t testing.TB, start, end float64, count int) *scale.Scale {
	t.Helper()
	sc, err := scale.Uniform(start, end, count)
	require.NoError(t, err)

	return sc
}

func TestEvent_Time(t *testing.T) {
	e := Event{StartTime: 100, TickWidth: 0.5, Tick: 6, Count: 1}
	require.Equal(t, 103.0, e.Time())
}

func TestBin_Placement(t *testing.T) {
	sc := mustUniform(t, 0, 2, 3)

	tests := []struct {
		name     string
		events   []Event
		expected []float64
	}{
		{"single event in bin 0", []Event{{Count: 5}}, []float64{5, 0}},
		{"left edge inclusive", []Event{{StartTime: 1, Count: 2}}, []float64{0, 2}},
		{"end dropped", []Event{{StartTime: 2, Count: 3}}, []float64{0, 0}},
		{"beyond end dropped", []Event{{StartTime: 2.5, Count: 3}}, []float64{0, 0}},
		{"before start dropped", []Event{{StartTime: -0.1, Count: 3}}, []float64{0, 0}},
		{"ticks", []Event{{StartTime: 0, TickWidth: 0.25, Tick: 5, Count: 4}, {TickWidth: 0.25, Tick: 1, Count: 1}}, []float64{1, 4}},
		{"accumulates", []Event{{StartTime: 0.2, Count: 1}, {StartTime: 0.7, Count: 2}, {StartTime: 1.9, Count: 3}}, []float64{3, 3}},
		{"nan time dropped", []Event{{StartTime: math.NaN(), Count: 1}}, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bin(tt.events, sc)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestBin_DescendingScale(t *testing.T) {
	sc, err := scale.FromPoints([]float64{3, 2, 1}, scale.WithStrict())
	require.NoError(t, err)

	got, err := Bin([]Event{{StartTime: 2.5, Count: 1}, {StartTime: 1.5, Count: 2}, {StartTime: 3, Count: 4}, {StartTime: 1, Count: 8}}, sc)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 10}, got)
}

func TestBin_CountConservation(t *testing.T) {
	sc, err := scale.Log(1, 1000, 1, scale.LogExact)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	events := make([]Event, 5000)
	var total int64
	for i := range events {
		events[i] = Event{StartTime: rng.Float64() * 1500, Count: int32(rng.Intn(10))}
		total += int64(events[i].Count)
	}

	b, err := NewBinner(sc)
	require.NoError(t, err)
	b.AddAll(events)

	var binned float64
	for _, c := range b.Counts() {
		binned += c
	}

	stats := b.Stats()
	require.LessOrEqual(t, binned, float64(total))
	require.Equal(t, float64(stats.AcceptedCount), binned)
	require.Equal(t, total, stats.AcceptedCount+stats.DroppedCount)
	require.Equal(t, len(events), stats.Accepted+stats.Dropped)
	require.Positive(t, stats.Dropped)
}

func TestBin_Validation(t *testing.T) {
	_, err := Bin(nil, nil)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	sc := mustUniform(t, 0, 1, 2)
	_, err = Bin(nil, sc, WithSmoothing())
	require.ErrorIs(t, err, errs.ErrUnsupportedFeature)
	_, err = NewBinner(sc, WithInterpolation())
	require.ErrorIs(t, err, errs.ErrUnsupportedFeature)

	got, err := Bin(nil, sc)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, got)
}

func TestBin_SinglePointScale(t *testing.T) {
	sc := mustUniform(t, 1, 1, 1)

	got, err := Bin([]Event{{StartTime: 1, Count: 1}}, sc)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestBinner_Incremental(t *testing.T) {
	b, err := NewBinner(mustUniform(t, 0, 4, 5))
	require.NoError(t, err)

	require.True(t, b.Add(Event{StartTime: 0.5, Count: 4}))
	require.False(t, b.Add(Event{StartTime: 9, Count: 1}))
	b.AddSeq(func(yield func(Event) bool) {
		for i := range int32(4) {
			if !yield(Event{StartTime: float64(i), Count: 1}) {
				return
			}
		}
	})

	require.Equal(t, []float64{5, 1, 1, 1}, b.Counts())
	require.Equal(t, Stats{Accepted: 5, Dropped: 1, AcceptedCount: 8, DroppedCount: 1}, b.Stats())

	// counts returned are copies
	c := b.Counts()
	c[0] = 100
	require.Equal(t, 5.0, b.Counts()[0])

	b.Reset()
	require.Equal(t, []float64{0, 0, 0, 0}, b.Counts())
	require.Zero(t, b.Stats())
}
