package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	require.Equal(t, GetBigEndianEngine(), Select(true))
	require.Equal(t, GetLittleEndianEngine(), Select(false))
}

func TestEngineFloatWords(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, math.Float64bits(-12.5))
		require.Len(t, buf, 8)
		require.InDelta(t, -12.5, math.Float64frombits(engine.Uint64(buf)), 0)
	}

	le := GetLittleEndianEngine().AppendUint32(nil, 0x01020304)
	be := GetBigEndianEngine().AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, le)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be)
}
