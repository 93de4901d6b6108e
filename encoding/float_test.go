package encoding

import (
	"math"
	"testing"

	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/stretchr/testify/require"
)

func columnFixtures() map[string][]float64 {
	spectrum := make([]float64, 200)
	for i := range spectrum {
		spectrum[i] = 100 * math.Exp(-float64(i-100)*float64(i-100)/400)
	}

	uniform := make([]float64, 64)
	for i := range uniform {
		uniform[i] = 1000 + 2.5*float64(i)
	}

	return map[string][]float64{
		"single":    {42.5},
		"constant":  {3, 3, 3, 3, 3},
		"uniform":   uniform,
		"spectrum":  spectrum,
		"special":   {0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64},
		"alternate": {1, -1, 1, -1, 1e300, -1e-300},
	}
}

// =============================================================================
// Raw
// =============================================================================

func TestFloatRaw_RoundTrip(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		for name, values := range columnFixtures() {
			t.Run(name, func(t *testing.T) {
				enc := NewFloatRawEncoder(engine)
				defer enc.Finish()
				enc.WriteSlice(values[:1])
				enc.WriteSlice(values[1:])

				require.Equal(t, len(values), enc.Len())
				require.Equal(t, 8*len(values), enc.Size())

				dec := NewFloatRawDecoder(engine)
				got, ok := DecodeAll[float64](dec, enc.Bytes(), len(values))
				require.True(t, ok)
				require.Equal(t, values, got)

				last, ok := dec.At(enc.Bytes(), len(values)-1, len(values))
				require.True(t, ok)
				require.Equal(t, values[len(values)-1], last)
			})
		}
	}
}

func TestFloatRaw_ByteOrder(t *testing.T) {
	le := NewFloatRawEncoder(endian.GetLittleEndianEngine())
	defer le.Finish()
	be := NewFloatRawEncoder(endian.GetBigEndianEngine())
	defer be.Finish()

	le.Write(1)
	be.Write(1)
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, le.Bytes())
	require.Equal(t, []byte{0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, be.Bytes())
}

func TestFloatRaw_ShortData(t *testing.T) {
	dec := NewFloatRawDecoder(endian.GetLittleEndianEngine())
	data := make([]byte, 20)

	got, ok := DecodeAll[float64](dec, data, 3)
	require.False(t, ok)
	require.Len(t, got, 2)

	_, ok = dec.At(data, 2, 3)
	require.False(t, ok)
	_, ok = dec.At(data, -1, 3)
	require.False(t, ok)
	require.Equal(t, 24, dec.ByteLength(3))
}

func TestFloatRaw_FinishIsIdempotent(t *testing.T) {
	enc := NewFloatRawEncoder(endian.GetLittleEndianEngine())
	enc.Finish()
	enc.Finish()
	require.Panics(t, func() { enc.Write(1) })
	require.Panics(t, func() { _ = enc.Bytes() })
}

// =============================================================================
// Gorilla
// =============================================================================

func TestFloatGorilla_RoundTrip(t *testing.T) {
	for name, values := range columnFixtures() {
		t.Run(name, func(t *testing.T) {
			enc := NewFloatGorillaEncoder()
			defer enc.Finish()
			enc.WriteSlice(values)

			got, ok := DecodeAll[float64](NewFloatGorillaDecoder(), enc.Bytes(), len(values))
			require.True(t, ok)
			require.Len(t, got, len(values))
			for i := range values {
				require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "index %d", i)
			}
		})
	}
}

func TestFloatGorilla_NaN(t *testing.T) {
	enc := NewFloatGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice([]float64{1, math.NaN(), 2})

	got, ok := DecodeAll[float64](NewFloatGorillaDecoder(), enc.Bytes(), 3)
	require.True(t, ok)
	require.Equal(t, 1.0, got[0])
	require.True(t, math.IsNaN(got[1]))
	require.Equal(t, 2.0, got[2])
}

func TestFloatGorilla_Compresses(t *testing.T) {
	values := columnFixtures()["constant"]
	enc := NewFloatGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)

	// 64 bits for the first value plus one bit per repeat.
	require.Equal(t, 9, enc.Size())
	require.Len(t, enc.Bytes(), 9)

	uniform := columnFixtures()["uniform"]
	enc2 := NewFloatGorillaEncoder()
	defer enc2.Finish()
	enc2.WriteSlice(uniform)
	require.Less(t, enc2.Size(), 8*len(uniform))
}

func TestFloatGorilla_BytesThenWrite(t *testing.T) {
	enc := NewFloatGorillaEncoder()
	defer enc.Finish()

	enc.Write(1.5)
	enc.Write(1.5)
	_ = enc.Bytes()
	enc.Write(2.25)
	enc.Write(-7)

	got, ok := DecodeAll[float64](NewFloatGorillaDecoder(), enc.Bytes(), 4)
	require.True(t, ok)
	require.Equal(t, []float64{1.5, 1.5, 2.25, -7}, got)
}

func TestFloatGorilla_At(t *testing.T) {
	values := columnFixtures()["spectrum"]
	enc := NewFloatGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)

	dec := NewFloatGorillaDecoder()
	for _, idx := range []int{0, 1, 99, 199} {
		v, ok := dec.At(enc.Bytes(), idx, len(values))
		require.True(t, ok)
		require.Equal(t, values[idx], v)
	}

	_, ok := dec.At(enc.Bytes(), 200, len(values))
	require.False(t, ok)
}

func TestFloatGorilla_Truncated(t *testing.T) {
	enc := NewFloatGorillaEncoder()
	defer enc.Finish()
	enc.WriteSlice(columnFixtures()["spectrum"])
	data := enc.Bytes()

	got, ok := DecodeAll[float64](NewFloatGorillaDecoder(), data[:len(data)/2], 200)
	require.False(t, ok)
	require.NotEmpty(t, got)

	got, ok = DecodeAll[float64](NewFloatGorillaDecoder(), data[:4], 200)
	require.False(t, ok)
	require.Empty(t, got)
}
