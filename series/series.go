package series

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// Kind identifies how a series produces its values.
type Kind uint8

const (
	KindSampled Kind = iota + 1 // stored value array
	KindModeled                 // function evaluated at the scale points
)

func (k Kind) String() string {
	switch k {
	case KindSampled:
		return "sampled"
	case KindModeled:
		return "modeled"
	default:
		return "unknown"
	}
}

// Series is a measured or modeled curve over a scale.
type Series interface {
	Kind() Kind
	Scale() *scale.Scale
	Len() int

	// Values returns a copy of the ordinate values, one per scale point.
	Values() []float64
	// Errors returns a copy of the per-point errors, or nil when the series
	// carries none.
	Errors() []float64
	// SampleAt returns values and errors at the points of sc without changing
	// the series. errs is nil when the series carries no errors.
	SampleAt(sc *scale.Scale) (values, errs []float64)
	// Resample installs sc as the series scale.
	Resample(sc *scale.Scale) error

	Attributes() *attr.List
	Group() int32
	SetGroup(group int32)
	Selected() bool
	SetSelected(selected bool)
	Visible() bool
	SetVisible(visible bool)
}

// base carries the state shared by every series variant.
type base struct {
	sc       *scale.Scale
	attrs    *attr.List
	group    int32
	selected bool
	visible  bool
}

func newBase(sc *scale.Scale, cfg *config) base {
	attrs := cfg.attrs
	if attrs == nil {
		attrs = attr.NewList()
	}

	return base{
		sc:       sc,
		attrs:    attrs,
		group:    cfg.group,
		selected: cfg.selected,
		visible:  cfg.visible,
	}
}

// Scale returns the series scale.
func (b *base) Scale() *scale.Scale { return b.sc }

// Len returns the number of scale points.
func (b *base) Len() int { return b.sc.Len() }

// Attributes returns the attribute list of the series. The list is owned by
// the series; modifying it modifies the series metadata.
func (b *base) Attributes() *attr.List { return b.attrs }

func (b *base) Group() int32              { return b.group }
func (b *base) SetGroup(group int32)      { b.group = group }
func (b *base) Selected() bool            { return b.selected }
func (b *base) SetSelected(selected bool) { b.selected = selected }
func (b *base) Visible() bool             { return b.visible }
func (b *base) SetVisible(visible bool)   { b.visible = visible }

func checkScale(sc *scale.Scale, op string) error {
	if sc == nil || sc.Len() == 0 {
		return fmt.Errorf("series %s: nil scale: %w", op, errs.ErrInvalidRange)
	}

	return nil
}
