package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(4)

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker(0)

	require.NoError(t, tracker.Track("run"))
	require.NoError(t, tracker.Track("title"))
	require.Equal(t, []string{"run", "title"}, tracker.Names())
	require.True(t, tracker.Has("run"))
	require.False(t, tracker.Has("detector"))
	require.False(t, tracker.HasCollision())
}

func TestTracker_Duplicate(t *testing.T) {
	tracker := NewTracker(0)

	require.NoError(t, tracker.Track("run"))
	err := tracker.Track("run")
	require.ErrorIs(t, err, errs.ErrDuplicateName)
	require.ErrorContains(t, err, `"run"`)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_EmptyName(t *testing.T) {
	tracker := NewTracker(0)

	require.NoError(t, tracker.Track(""))
	require.ErrorIs(t, tracker.Track(""), errs.ErrDuplicateName)
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker(0)
	tracker.id = func(string) uint64 { return 42 }

	require.NoError(t, tracker.Track("run"))
	require.NoError(t, tracker.Track("title"))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.True(t, tracker.Has("run"))
	require.True(t, tracker.Has("title"))
	require.False(t, tracker.Has("group"))

	// repeats of either colliding name are still caught
	require.ErrorIs(t, tracker.Track("run"), errs.ErrDuplicateName)
	require.ErrorIs(t, tracker.Track("title"), errs.ErrDuplicateName)
	require.NoError(t, tracker.Track("group"))
	require.Equal(t, []string{"run", "title", "group"}, tracker.Names())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker(0)
	tracker.id = func(string) uint64 { return 7 }

	require.NoError(t, tracker.Track("a"))
	require.NoError(t, tracker.Track("b"))
	require.True(t, tracker.HasCollision())

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.False(t, tracker.Has("a"))
	require.NoError(t, tracker.Track("b"))
}
