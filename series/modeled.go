package series

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// Func is a function of the scale coordinate.
type Func interface {
	Eval(x float64) float64
}

// FuncOf adapts an ordinary function to Func.
type FuncOf func(x float64) float64

// Eval calls f(x).
func (f FuncOf) Eval(x float64) float64 { return f(x) }

// Parametric is a Func fully described by a model name and coefficients,
// which makes it persistable.
type Parametric interface {
	Func
	Name() string
	Coefficients() []float64
}

// Modeled is a series whose values are produced by a function evaluated at
// the scale points.
type Modeled struct {
	base
	fn    Func
	errFn Func
}

var _ Series = (*Modeled)(nil)

// NewModeled returns a function-backed series over sc.
func NewModeled(sc *scale.Scale, fn Func, opts ...Option) (*Modeled, error) {
	if err := checkScale(sc, "new modeled"); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, fmt.Errorf("series: new modeled: %w", errs.ErrNilFunction)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Modeled{base: newBase(sc, cfg), fn: fn, errFn: cfg.errFn}, nil
}

// Kind returns KindModeled.
func (m *Modeled) Kind() Kind { return KindModeled }

// Func returns the value function.
func (m *Modeled) Func() Func { return m.fn }

// ErrorFunc returns the error function, or nil.
func (m *Modeled) ErrorFunc() Func { return m.errFn }

// Values evaluates the function at every scale point.
func (m *Modeled) Values() []float64 { return evalAt(m.fn, m.sc) }

// Errors evaluates the error function at every scale point, or returns nil.
func (m *Modeled) Errors() []float64 {
	if m.errFn == nil {
		return nil
	}

	return evalAt(m.errFn, m.sc)
}

// SampleAt evaluates the functions at the points of sc.
func (m *Modeled) SampleAt(sc *scale.Scale) ([]float64, []float64) {
	values := evalAt(m.fn, sc)
	if m.errFn == nil {
		return values, nil
	}

	return values, evalAt(m.errFn, sc)
}

// Resample installs sc; values follow on the next evaluation.
func (m *Modeled) Resample(sc *scale.Scale) error {
	if err := checkScale(sc, "resample"); err != nil {
		return err
	}
	m.sc = sc

	return nil
}

// Materialize returns a Sampled copy of m holding the evaluated values.
func (m *Modeled) Materialize() *Sampled {
	return &Sampled{
		base:   m.cloneBase(),
		values: m.Values(),
		errors: m.Errors(),
	}
}

func (b *base) cloneBase() base {
	c := *b
	c.attrs = b.attrs.Clone()

	return c
}

func evalAt(fn Func, sc *scale.Scale) []float64 {
	out := make([]float64, sc.Len())
	for i, x := range sc.All() {
		out[i] = fn.Eval(x)
	}

	return out
}
