package histogram

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/options"
)

type config struct{}

// Option configures binning.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithSmoothing requests smoothing of the binned counts. Not supported.
func WithSmoothing() Option {
	return options.New(func(*config) error {
		return fmt.Errorf("histogram smoothing: %w", errs.ErrUnsupportedFeature)
	})
}

// WithInterpolation requests interpolation of counts across bin edges. Not
// supported.
func WithInterpolation() Option {
	return options.New(func(*config) error {
		return fmt.Errorf("histogram interpolation: %w", errs.ErrUnsupportedFeature)
	})
}
