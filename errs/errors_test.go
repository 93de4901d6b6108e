package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPersistenceError(t *testing.T) {
	err := NewPersistenceError("compress", ErrSizeLimitExceeded)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrPersistence)
	require.ErrorIs(t, err, ErrSizeLimitExceeded)
	require.Equal(t, "persistence compress: encoded size exceeds limit", err.Error())

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "compress", pe.Op)
}

func TestPersistenceError_NilAndNested(t *testing.T) {
	require.NoError(t, NewPersistenceError("decode", nil))

	inner := NewPersistenceError("decode", ErrCorruptPayload)
	wrapped := fmt.Errorf("inflate: %w", inner)

	// already a PersistenceError: not wrapped twice
	again := NewPersistenceError("inflate", wrapped)
	require.Equal(t, wrapped, again)
	require.ErrorIs(t, again, ErrCorruptPayload)
}
