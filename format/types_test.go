package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompressionType(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"none", CompressionNone},
		{"", CompressionNone},
		{"ZSTD", CompressionZstd},
		{"s2", CompressionS2},
		{"Lz4", CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCompressionType(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, got.Valid())
		})
	}

	_, err := ParseCompressionType("brotli")
	require.Error(t, err)
	require.False(t, CompressionType(0x9).Valid())
	require.Equal(t, "Unknown", CompressionType(0x9).String())
}

func TestParseEncodingType(t *testing.T) {
	enc, err := ParseEncodingType("Gorilla")
	require.NoError(t, err)
	require.Equal(t, TypeGorilla, enc)
	require.Equal(t, "Gorilla", enc.String())

	enc, err = ParseEncodingType("raw")
	require.NoError(t, err)
	require.Equal(t, TypeRaw, enc)

	_, err = ParseEncodingType("delta")
	require.Error(t, err)
	require.False(t, EncodingType(0x2).Valid())
}
