package attr

import (
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
	"github.com/ornl-ndav/ISAW-sub008/internal/options"
)

type config struct {
	recorder diag.Recorder
}

// Option configures attribute construction and merging.
type Option = options.Option[*config]

func newConfig(opts []Option) *config {
	cfg := &config{}
	// attribute options never fail
	_ = options.Apply(cfg, opts...)
	cfg.recorder = diag.Or(cfg.recorder)

	return cfg
}

// WithRecorder sets the recorder receiving attribute diagnostics. The default
// is diag.Default().
func WithRecorder(r diag.Recorder) Option {
	return options.NoError(func(c *config) {
		c.recorder = r
	})
}
