package scale

import (
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
	"github.com/ornl-ndav/ISAW-sub008/internal/options"
)

type config struct {
	strict   bool
	recorder diag.Recorder
}

// Option configures scale construction.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	cfg.recorder = diag.Or(cfg.recorder)

	return cfg, nil
}

// WithStrict makes FromPoints (and Log) fail with errs.ErrNonMonotonic instead
// of sorting non-monotonic input.
func WithStrict() Option {
	return options.NoError(func(c *config) {
		c.strict = true
	})
}

// WithRecorder sets the recorder receiving non-monotonic input diagnostics.
// The default is diag.Default().
func WithRecorder(r diag.Recorder) Option {
	return options.NoError(func(c *config) {
		c.recorder = r
	})
}
