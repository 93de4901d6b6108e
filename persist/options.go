package persist

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/format"
	"github.com/ornl-ndav/ISAW-sub008/internal/options"
)

type config struct {
	compression format.CompressionType
	scaleEnc    format.EncodingType
	valueEnc    format.EncodingType
	bigEndian   bool
}

// Option configures Compress.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		compression: format.CompressionZstd,
		scaleEnc:    format.TypeGorilla,
		valueEnc:    format.TypeGorilla,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the payload codec. Default: Zstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if !c.Valid() {
			return fmt.Errorf("%w: compression 0x%02x", errs.ErrInvalidCompressionCfg, uint8(c))
		}
		cfg.compression = c

		return nil
	})
}

// WithValueEncoding selects the codec of the value and error columns.
// Default: Gorilla.
func WithValueEncoding(e format.EncodingType) Option {
	return options.New(func(cfg *config) error {
		if !e.Valid() {
			return fmt.Errorf("%w: value encoding 0x%02x", errs.ErrInvalidCompressionCfg, uint8(e))
		}
		cfg.valueEnc = e

		return nil
	})
}

// WithScaleEncoding selects the codec of the scale column. Default: Gorilla.
func WithScaleEncoding(e format.EncodingType) Option {
	return options.New(func(cfg *config) error {
		if !e.Valid() {
			return fmt.Errorf("%w: scale encoding 0x%02x", errs.ErrInvalidCompressionCfg, uint8(e))
		}
		cfg.scaleEnc = e

		return nil
	})
}

// WithBigEndian writes fixed-width fields big-endian. Default: little-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.bigEndian = true
	})
}
