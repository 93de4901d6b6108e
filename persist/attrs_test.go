package persist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
)

func TestAttributes_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		engine := endian.Select(big)
		list := everyKindAttributes()

		block, err := encodeAttributes(engine, list)
		require.NoError(t, err)

		got, err := decodeAttributes(engine, block, list.Len())
		require.NoError(t, err)
		require.True(t, got.Equal(list))
	}
}

func TestAttributes_DuplicateName(t *testing.T) {
	engine := endian.Select(false)
	one, err := encodeAttributes(engine, attr.NewList(attr.NewInt("run", 1)))
	require.NoError(t, err)

	block := append(append([]byte(nil), one...), one...)
	_, err = decodeAttributes(engine, block, 2)
	require.ErrorIs(t, err, errs.ErrCorruptPayload)
	require.ErrorIs(t, err, errs.ErrDuplicateName)
}

func TestAttributes_CountMismatch(t *testing.T) {
	engine := endian.Select(false)
	block, err := encodeAttributes(engine, attr.NewList(attr.NewInt("a", 1), attr.NewInt("b", 2)))
	require.NoError(t, err)

	_, err = decodeAttributes(engine, block, 1)
	require.ErrorIs(t, err, errs.ErrCorruptPayload)

	_, err = decodeAttributes(engine, block, 3)
	require.ErrorIs(t, err, errs.ErrCorruptPayload)
}
