package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ornl-ndav/ISAW-sub008/errs"
)

func TestModelType_String(t *testing.T) {
	require.Equal(t, "hyperbolic", ModelHyperbolic.String())
	require.Equal(t, "polynomial", ModelPolynomial.String())
	require.Equal(t, "linear", ModelLinear.String())
	require.Equal(t, "unknown", ModelType(0).String())
}

func TestParseModelType(t *testing.T) {
	for mt, name := range modelTypeNames {
		got, err := ParseModelType(name)
		require.NoError(t, err)
		require.Equal(t, mt, got)
	}

	got, err := ParseModelType("Exponential")
	require.NoError(t, err)
	require.Equal(t, ModelExponential, got)

	_, err = ParseModelType("spline")
	require.ErrorIs(t, err, errs.ErrUnsupportedModelType)
}

func TestNewCurve(t *testing.T) {
	c, err := NewCurve("polynomial", []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "polynomial", c.Name())
	require.Equal(t, 1.0+2*2+3*4, c.Eval(2))

	coeffs := c.Coefficients()
	coeffs[0] = 100
	require.Equal(t, []float64{1, 2, 3}, c.Coefficients())

	_, err = NewCurve("linear", []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = NewCurve("cubic", []float64{1})
	require.ErrorIs(t, err, errs.ErrUnsupportedModelType)
}

func TestCurve_Eval(t *testing.T) {
	tests := []struct {
		mt       ModelType
		coeffs   []float64
		x        float64
		expected float64
	}{
		{ModelHyperbolic, []float64{1, 4}, 2, 3},
		{ModelLogarithmic, []float64{1, 2}, math.E, 3},
		{ModelPower, []float64{2, 3}, 2, 16},
		{ModelExponential, []float64{2, 1}, 0, 2},
		{ModelLinear, []float64{-1, 0.5}, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.mt.String(), func(t *testing.T) {
			c, err := newCurve(tt.mt, tt.coeffs)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, c.Eval(tt.x), 1e-12)
			require.NotEqual(t, "unknown", c.Formula())
		})
	}

	c, err := newCurve(ModelLogarithmic, []float64{0, 1})
	require.NoError(t, err)
	require.True(t, math.IsNaN(c.Eval(-1)))
}
