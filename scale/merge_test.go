package scale

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

func mustUniform(t testing.TB, start, end float64, count int) *Scale {
	t.Helper()
	s, err := Uniform(start, end, count)
	require.NoError(t, err)

	return s
}

func mustPoints(t testing.TB, pts ...float64) *Scale {
	t.Helper()
	s, err := FromPoints(pts, WithRecorder(diag.Discard))
	require.NoError(t, err)

	return s
}

func TestMerge_Overlapping(t *testing.T) {
	a := mustUniform(t, 0, 10, 11)
	b := mustUniform(t, 5, 15, 11)

	for _, m := range []func() (*Scale, error){
		func() (*Scale, error) { return Merge(a, b) },
		func() (*Scale, error) { return Merge(b, a) },
		func() (*Scale, error) { return a.Merge(b) },
	} {
		got, err := m()
		require.NoError(t, err)
		require.Equal(t, 0.0, got.Start())
		require.Equal(t, 15.0, got.End())
		require.Equal(t, mustUniform(t, 0, 15, 16).Points(), got.Points())
		require.True(t, strictlyMonotonic(got.Points()))
	}
}

func TestMerge_Cases(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{
			name: "disjoint",
			a:    []float64{0, 1, 2},
			b:    []float64{5, 6},
			want: []float64{0, 1, 2, 5, 6},
		},
		{
			name: "contained",
			a:    []float64{0, 5, 10},
			b:    []float64{2, 3},
			want: []float64{0, 5, 10},
		},
		{
			name: "no shared grid point",
			a:    []float64{0, 1, 2, 3},
			b:    []float64{2.5, 3.5, 4.5},
			want: []float64{0, 1, 2, 3, 3.5, 4.5},
		},
		{
			name: "near duplicate splice point skipped",
			a:    []float64{0, 0.1, 0.3},
			b:    []float64{0.1 + 0.2, 0.4},
			want: []float64{0, 0.1, 0.3, 0.4},
		},
		{
			name: "same start",
			a:    []float64{0, 1},
			b:    []float64{0, 2, 4},
			want: []float64{0, 1, 2, 4},
		},
		{
			name: "descending",
			a:    []float64{10, 8, 6},
			b:    []float64{7, 5, 3},
			want: []float64{10, 8, 7, 5, 3},
		},
		{
			name: "single point with descending",
			a:    []float64{12},
			b:    []float64{10, 8, 6},
			want: []float64{12, 10, 8, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(mustPoints(t, tt.a...), mustPoints(t, tt.b...))
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Points())
		})
	}
}

func TestMerge_Errors(t *testing.T) {
	asc := mustPoints(t, 0, 1, 2)
	desc := mustPoints(t, 5, 4, 3)

	_, err := Merge(asc, desc)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	_, err = Merge(asc, nil)
	require.ErrorIs(t, err, errs.ErrInvalidRange)

	// a sorted-with-repeats scale violates the post-condition
	repeated := mustPoints(t, 1, 3, 1)
	_, err = Merge(repeated, mustPoints(t, 2, 4))
	require.ErrorIs(t, err, errs.ErrInvalidRange)
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	a := mustPoints(t, 0, 1, 2)
	b := mustPoints(t, 1, 3)

	m, err := Merge(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, m.Points())
	require.Equal(t, []float64{0, 1, 2}, a.Points())
	require.Equal(t, []float64{1, 3}, b.Points())
}

func BenchmarkMerge(b *testing.B) {
	x := mustUniform(b, 0, 1000, 10000)
	y := mustUniform(b, 500, 1500, 10000)

	b.ResetTimer()
	for b.Loop() {
		_, _ = Merge(x, y)
	}
}
