package series

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/internal/pool"
	"github.com/ornl-ndav/ISAW-sub008/scale"
)

// binaryOp computes dst values and, when errors are present, their
// propagated errors. ea and eb are never nil inside the kernels.
type binaryOp struct {
	name       string
	accumulate bool // attribute lists merged with Add instead of Combine
	values     func(dst, a, b []float64)
	errors     func(dst, a, ea, b, eb, y []float64)
}

var (
	opAdd = binaryOp{
		name:       "add",
		accumulate: true,
		values: func(dst, a, b []float64) {
			copy(dst, a)
			vecmath.AddBlockInPlace(dst, b)
		},
		errors: quadratureSum,
	}
	opSubtract = binaryOp{
		name: "subtract",
		values: func(dst, a, b []float64) {
			vecmath.ScaleBlock(dst, b, -1)
			vecmath.AddBlockInPlace(dst, a)
		},
		errors: quadratureSum,
	}
	opMultiply = binaryOp{
		name: "multiply",
		values: func(dst, a, b []float64) {
			vecmath.MulBlock(dst, a, b)
		},
		errors: func(dst, a, ea, b, eb, _ []float64) {
			// σ² = (σa·b)² + (σb·a)²
			ta, putA := pool.GetFloat64Slice(len(dst))
			defer putA()
			tb, putB := pool.GetFloat64Slice(len(dst))
			defer putB()
			vecmath.MulBlock(ta, ea, b)
			vecmath.MulBlock(tb, eb, a)
			vecmath.Magnitude(dst, ta, tb)
		},
	}
	opDivide = binaryOp{
		name: "divide",
		values: func(dst, a, b []float64) {
			for i := range dst {
				dst[i] = a[i] / b[i]
			}
		},
		errors: func(dst, _, ea, b, eb, y []float64) {
			// σ² = (σa/b)² + (y·σb/b)²
			ta, putA := pool.GetFloat64Slice(len(dst))
			defer putA()
			tb, putB := pool.GetFloat64Slice(len(dst))
			defer putB()
			for i := range dst {
				ta[i] = ea[i] / b[i]
				tb[i] = y[i] * eb[i] / b[i]
			}
			vecmath.Magnitude(dst, ta, tb)
		},
	}
)

func quadratureSum(dst, _, ea, _, eb, _ []float64) {
	vecmath.Magnitude(dst, ea, eb)
}

// Add returns a + b. Attribute lists are accumulated (attr.List.Add).
func Add(a, b Series) (*Sampled, error) {
	return apply(a, b, opAdd)
}

// Subtract returns a - b. Attribute lists are combined.
func Subtract(a, b Series) (*Sampled, error) {
	return apply(a, b, opSubtract)
}

// Multiply returns a * b point by point. Attribute lists are combined.
func Multiply(a, b Series) (*Sampled, error) {
	return apply(a, b, opMultiply)
}

// Divide returns a / b point by point with IEEE semantics for zero divisors.
// Attribute lists are combined.
func Divide(a, b Series) (*Sampled, error) {
	return apply(a, b, opDivide)
}

// ScaleBy returns k * s. Errors scale by |k|.
func ScaleBy(s Series, k float64) *Sampled {
	values := s.Values()
	vecmath.ScaleBlock(values, values, k)

	errors := s.Errors()
	if errors != nil {
		vecmath.ScaleBlock(errors, errors, math.Abs(k))
	}

	return &Sampled{
		base:   derivedBase(s, s.Scale(), s.Attributes().Clone()),
		values: values,
		errors: errors,
	}
}

func apply(a, b Series, op binaryOp) (*Sampled, error) {
	sc := a.Scale()
	if !sc.Equal(b.Scale()) {
		merged, err := scale.Merge(a.Scale(), b.Scale())
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", op.name, err)
		}
		sc = merged
	}

	av, ae := a.SampleAt(sc)
	bv, be := b.SampleAt(sc)

	values := make([]float64, sc.Len())
	op.values(values, av, bv)

	var errors []float64
	if ae != nil || be != nil {
		errors = make([]float64, sc.Len())
		op.errors(errors, av, orZeros(ae, sc.Len()), bv, orZeros(be, sc.Len()), values)
	}

	attrs := a.Attributes().Clone()
	if op.accumulate {
		attrs.Add(b.Attributes())
	} else {
		attrs.Combine(b.Attributes())
	}

	return &Sampled{
		base:   derivedBase(a, sc, attrs),
		values: values,
		errors: errors,
	}, nil
}

// derivedBase builds the state of a result series: the flags and group of
// the left operand with a new scale and attribute list.
func derivedBase(from Series, sc *scale.Scale, attrs *attr.List) base {
	return base{
		sc:       sc,
		attrs:    attrs,
		group:    from.Group(),
		selected: from.Selected(),
		visible:  from.Visible(),
	}
}

func orZeros(v []float64, n int) []float64 {
	if v != nil {
		return v
	}

	return make([]float64, n)
}
