package series

import (
	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/internal/options"
)

type config struct {
	group    int32
	attrs    *attr.List
	errors   []float64
	errFn    Func
	selected bool
	visible  bool
}

// Option configures series construction.
type Option = options.Option[*config]

func newConfig(opts []Option) (*config, error) {
	cfg := &config{visible: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithGroup sets the group identifier of the series.
func WithGroup(group int32) Option {
	return options.NoError(func(c *config) {
		c.group = group
	})
}

// WithAttributes attaches a copy of attrs to the series.
func WithAttributes(attrs *attr.List) Option {
	return options.NoError(func(c *config) {
		c.attrs = attrs.Clone()
	})
}

// WithErrors sets the per-point errors of a Sampled series. The slice is
// copied and must have one entry per scale point.
func WithErrors(errors []float64) Option {
	return options.NoError(func(c *config) {
		c.errors = append([]float64(nil), errors...)
	})
}

// WithErrorFunc sets the error function of a Modeled series.
func WithErrorFunc(fn Func) Option {
	return options.NoError(func(c *config) {
		c.errFn = fn
	})
}

// WithSelected marks the series as selected.
func WithSelected(selected bool) Option {
	return options.NoError(func(c *config) {
		c.selected = selected
	})
}

// WithVisible sets the visibility flag. Series are visible by default.
func WithVisible(visible bool) Option {
	return options.NoError(func(c *config) {
		c.visible = visible
	})
}
