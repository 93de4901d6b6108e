package attr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

func TestList_Basics(t *testing.T) {
	l := NewList(NewInt("run", 1), NewDouble("temp", 10), NewString("title", "x"))

	require.Equal(t, 3, l.Len())
	require.Equal(t, []string{"run", "temp", "title"}, l.Names())
	require.True(t, l.Has("temp"))
	require.False(t, l.Has("missing"))

	a, ok := l.Get("temp")
	require.True(t, ok)
	require.Equal(t, 10.0, a.NumericValue())
	require.Equal(t, "title", l.At(2).Name())

	l.Set(NewDouble("temp", 20))
	require.Equal(t, []string{"run", "temp", "title"}, l.Names(), "replacement keeps position")
	a, _ = l.Get("temp")
	require.Equal(t, 20.0, a.NumericValue())

	require.True(t, l.Remove("run"))
	require.False(t, l.Remove("run"))
	require.Equal(t, []string{"temp", "title"}, l.Names())
	a, _ = l.Get("title")
	require.Equal(t, "x", a.StringValue())
}

func TestList_RepeatedNameReplaces(t *testing.T) {
	l := NewList(NewInt("run", 1), NewInt("run", 2))
	require.Equal(t, 1, l.Len())
	v, _ := l.At(0).Int()
	require.Equal(t, int32(2), v)
}

func TestList_NilReceiver(t *testing.T) {
	var l *List
	require.Zero(t, l.Len())
	require.False(t, l.Has("x"))
	require.Empty(t, l.Names())
	require.Empty(t, slices.Collect(l.All()))
	require.Zero(t, l.Clone().Len())
}

func TestList_Combine(t *testing.T) {
	l := NewList(NewDouble("temp", 10), NewIntList("runs", []int32{1, 3}))
	other := NewList(NewString("title", "b"), NewDouble("temp", 20), NewIntList("runs", []int32{2}))

	l.Combine(other)

	require.Equal(t, []string{"temp", "runs", "title"}, l.Names())
	temp, _ := l.Get("temp")
	require.Equal(t, 15.0, temp.NumericValue())
	runs, _ := l.Get("runs")
	require.Equal(t, "1:3", runs.StringValue())

	// other is unchanged
	temp, _ = other.Get("temp")
	require.Equal(t, 20.0, temp.NumericValue())
}

func TestList_Add(t *testing.T) {
	l := NewList(NewDouble("monitor", 100))
	l.Add(NewList(NewDouble("monitor", 50)))

	m, _ := l.Get("monitor")
	require.Equal(t, 150.0, m.NumericValue())
}

func TestList_CombineMismatchDiagnostic(t *testing.T) {
	c := diag.NewCollector()
	l := NewList(NewDouble("temp", 10)).WithOptions(WithRecorder(c))

	l.Combine(NewList(NewString("temp", "hot")))

	temp, _ := l.Get("temp")
	require.Equal(t, KindDouble, temp.Kind())
	require.True(t, c.Has(diag.CodeIncompatibleCombine))
}

func TestList_CloneAndEqual(t *testing.T) {
	l := NewList(NewInt("run", 1), NewString("title", "x"))
	c := l.Clone()
	require.True(t, l.Equal(c))

	c.Set(NewInt("run", 2))
	require.False(t, l.Equal(c))
	v, _ := l.At(0).Int()
	require.Equal(t, int32(1), v)

	c.Remove("title")
	require.Equal(t, 2, l.Len())
}

func TestList_String(t *testing.T) {
	l := NewList(NewInt("run", 1), NewString("title", "x"))
	require.Equal(t, "[run=1, title=x]", l.String())
}
