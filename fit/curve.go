package fit

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

// ModelType identifies a regression model.
type ModelType uint8

const (
	ModelHyperbolic  ModelType = iota + 1 // y = a + b / x
	ModelLogarithmic                      // y = a + b * ln(x)
	ModelPower                            // y = a * x^b
	ModelExponential                      // y = a * e^(b * x)
	ModelPolynomial                       // y = a + b*x + c*x²
	ModelLinear                           // y = a + b*x
)

var modelTypeNames = map[ModelType]string{
	ModelHyperbolic:  "hyperbolic",
	ModelLogarithmic: "logarithmic",
	ModelPower:       "power",
	ModelExponential: "exponential",
	ModelPolynomial:  "polynomial",
	ModelLinear:      "linear",
}

func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}

	return "unknown"
}

// NumCoefficients returns how many coefficients the model takes, or 0 for an
// unknown type.
func (mt ModelType) NumCoefficients() int {
	switch mt {
	case ModelHyperbolic, ModelLogarithmic, ModelPower, ModelExponential, ModelLinear:
		return 2
	case ModelPolynomial:
		return 3
	default:
		return 0
	}
}

// ParseModelType returns the model named name (case-insensitive).
func ParseModelType(name string) (ModelType, error) {
	for mt, n := range modelTypeNames {
		if strings.EqualFold(n, name) {
			return mt, nil
		}
	}

	return 0, fmt.Errorf("model %q: %w", name, errs.ErrUnsupportedModelType)
}

// Curve is a fitted model: a type and its coefficients. It implements
// series.Parametric.
type Curve struct {
	typ    ModelType
	coeffs []float64
}

var _ series.Parametric = (*Curve)(nil)

// NewCurve returns the curve of the named model with the given coefficients.
// This is the inverse of (Name, Coefficients) and is used to restore
// persisted models.
func NewCurve(name string, coeffs []float64) (*Curve, error) {
	mt, err := ParseModelType(name)
	if err != nil {
		return nil, err
	}

	return newCurve(mt, coeffs)
}

func newCurve(mt ModelType, coeffs []float64) (*Curve, error) {
	if want := mt.NumCoefficients(); len(coeffs) != want {
		return nil, fmt.Errorf("%s model expects %d coefficients, got %d: %w", mt, want, len(coeffs), errs.ErrLengthMismatch)
	}

	return &Curve{typ: mt, coeffs: slices.Clone(coeffs)}, nil
}

// Type returns the model type.
func (c *Curve) Type() ModelType { return c.typ }

// Name returns the model type name.
func (c *Curve) Name() string { return c.typ.String() }

// Coefficients returns a copy of the coefficients.
func (c *Curve) Coefficients() []float64 { return slices.Clone(c.coeffs) }

// Eval evaluates the model at x. Values outside the model's domain follow
// IEEE semantics (for example ln of a negative x is NaN).
func (c *Curve) Eval(x float64) float64 {
	k := c.coeffs
	switch c.typ {
	case ModelHyperbolic:
		return k[0] + k[1]/x
	case ModelLogarithmic:
		return k[0] + k[1]*math.Log(x)
	case ModelPower:
		return k[0] * math.Pow(x, k[1])
	case ModelExponential:
		return k[0] * math.Exp(k[1]*x)
	case ModelPolynomial:
		return k[0] + k[1]*x + k[2]*x*x
	case ModelLinear:
		return k[0] + k[1]*x
	default:
		return math.NaN()
	}
}

// Formula renders the curve as a human-readable equation.
func (c *Curve) Formula() string {
	k := c.coeffs
	switch c.typ {
	case ModelHyperbolic:
		return fmt.Sprintf("y = %.4g + %.4g / x", k[0], k[1])
	case ModelLogarithmic:
		return fmt.Sprintf("y = %.4g + %.4g * ln(x)", k[0], k[1])
	case ModelPower:
		return fmt.Sprintf("y = %.4g * x^%.4g", k[0], k[1])
	case ModelExponential:
		return fmt.Sprintf("y = %.4g * e^(%.4g * x)", k[0], k[1])
	case ModelPolynomial:
		return fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", k[0], k[1], k[2])
	case ModelLinear:
		return fmt.Sprintf("y = %.4g + %.4g*x", k[0], k[1])
	default:
		return "unknown"
	}
}
