package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocate_Ascending(t *testing.T) {
	s := mustPoints(t, 0, 1, 2, 4, 8)

	tests := []struct {
		x    float64
		want int
		ok   bool
	}{
		{0, 0, true},
		{0.5, 0, true},
		{1, 1, true},
		{3.999, 2, true},
		{4, 3, true},
		{7.5, 3, true},
		{8, -1, false},
		{-0.1, -1, false},
		{100, -1, false},
		{math.NaN(), -1, false},
	}

	for _, tt := range tests {
		got, ok := s.Locate(tt.x)
		require.Equal(t, tt.ok, ok, "x=%g", tt.x)
		require.Equal(t, tt.want, got, "x=%g", tt.x)
	}
}

func TestLocate_Descending(t *testing.T) {
	s := mustPoints(t, 8, 4, 2, 0)

	tests := []struct {
		x    float64
		want int
		ok   bool
	}{
		{7.9, 0, true},
		{4, 0, true},
		{3.9, 1, true},
		{0, 2, true},
		{8, -1, false},
		{-1, -1, false},
	}

	for _, tt := range tests {
		got, ok := s.Locate(tt.x)
		require.Equal(t, tt.ok, ok, "x=%g", tt.x)
		require.Equal(t, tt.want, got, "x=%g", tt.x)
	}
}

func TestLocate_SinglePoint(t *testing.T) {
	s := mustPoints(t, 3)
	_, ok := s.Locate(3)
	require.False(t, ok)
}

func TestLocate_MatchesLinearScan(t *testing.T) {
	s, err := Log(1, 5000, 0.25, LogExact)
	require.NoError(t, err)
	pts := s.Points()

	linear := func(x float64) (int, bool) {
		for i := 0; i+1 < len(pts); i++ {
			if x >= pts[i] && x < pts[i+1] {
				return i, true
			}
		}

		return -1, false
	}

	for x := 0.5; x < 6000; x += 3.7 {
		wi, wok := linear(x)
		gi, gok := s.Locate(x)
		require.Equal(t, wok, gok, "x=%g", x)
		require.Equal(t, wi, gi, "x=%g", x)
	}
}

func TestNearest(t *testing.T) {
	s := mustPoints(t, 0, 1, 2, 4)
	require.Equal(t, 0, s.Nearest(-5))
	require.Equal(t, 0, s.Nearest(0.5))
	require.Equal(t, 1, s.Nearest(0.6))
	require.Equal(t, 3, s.Nearest(3.1))
	require.Equal(t, 3, s.Nearest(40))
	require.Equal(t, -1, s.Nearest(math.NaN()))

	d := mustPoints(t, 4, 2, 1)
	require.Equal(t, 0, d.Nearest(3.5))
	require.Equal(t, 2, d.Nearest(0))
}
