package fit

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/scale"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

// Fit is one fitted model with its goodness of fit.
type Fit struct {
	Curve    *Curve
	RSquared float64 // coefficient of determination, higher is better
	RMSE     float64 // root mean square error, lower is better
	Formula  string
}

func (f *Fit) String() string {
	return fmt.Sprintf("Fit{Type: %s, R²: %.4f, RMSE: %.4g, Formula: %s}",
		f.Curve.Type(), f.RSquared, f.RMSE, f.Formula)
}

// Series returns a function-backed series of the fitted curve over sc.
func (f *Fit) Series(sc *scale.Scale, opts ...series.Option) (*series.Modeled, error) {
	return series.NewModeled(sc, f.Curve, opts...)
}

// Result holds every model fitted by Analyze.
type Result struct {
	Best *Fit   // highest R²
	All  []*Fit // ranked by R², best first
}

func (r *Result) String() string {
	if r.Best == nil {
		return "Result{Best: nil}"
	}

	return fmt.Sprintf("Result{Best: %s, Models: %d}", r.Best, len(r.All))
}

// AnalyzeSeries fits the values of s against its scale points.
func AnalyzeSeries(s series.Series) (*Result, error) {
	return Analyze(s.Scale().Points(), s.Values())
}

// Analyze fits every applicable model to the (x, y) pairs and ranks them by
// R². It needs at least two pairs with distinct x.
func Analyze(x, y []float64) (*Result, error) {
	if err := checkData(x, y); err != nil {
		return nil, err
	}

	types := []ModelType{ModelHyperbolic, ModelLogarithmic, ModelPower, ModelExponential, ModelPolynomial, ModelLinear}
	fits := make([]*Fit, 0, len(types))
	for _, mt := range types {
		f, err := fitModel(mt, x, y)
		if err != nil {
			continue
		}
		fits = append(fits, f)
	}
	if len(fits) == 0 {
		return nil, fmt.Errorf("fit: no model applicable: %w", errs.ErrInsufficientData)
	}

	slices.SortStableFunc(fits, func(a, b *Fit) int {
		return cmp.Compare(b.RSquared, a.RSquared)
	})

	return &Result{Best: fits[0], All: fits}, nil
}

// FitModel fits a single model type to the (x, y) pairs.
func FitModel(mt ModelType, x, y []float64) (*Fit, error) {
	if err := checkData(x, y); err != nil {
		return nil, err
	}

	return fitModel(mt, x, y)
}

func checkData(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("fit: %d x values, %d y values: %w", len(x), len(y), errs.ErrLengthMismatch)
	}
	if len(x) < 2 {
		return fmt.Errorf("fit: %d points: %w", len(x), errs.ErrInsufficientData)
	}

	return nil
}

func identity(v float64) float64 { return v }

func inverse(v float64) float64 { return 1 / v }

func fitModel(mt ModelType, x, y []float64) (*Fit, error) {
	var coeffs []float64
	var ok bool

	switch mt {
	case ModelHyperbolic:
		coeffs, ok = leastSquares(x, y, inverse, identity)
	case ModelLogarithmic:
		coeffs, ok = leastSquares(x, y, math.Log, identity)
	case ModelPower:
		coeffs, ok = leastSquares(x, y, math.Log, math.Log)
		if ok {
			coeffs[0] = math.Exp(coeffs[0])
		}
	case ModelExponential:
		coeffs, ok = leastSquares(x, y, identity, math.Log)
		if ok {
			coeffs[0] = math.Exp(coeffs[0])
		}
	case ModelPolynomial:
		coeffs, ok = quadratic(x, y)
	case ModelLinear:
		coeffs, ok = leastSquares(x, y, identity, identity)
	default:
		return nil, fmt.Errorf("fit: model %d: %w", mt, errs.ErrUnsupportedModelType)
	}
	if !ok {
		return nil, fmt.Errorf("fit: %s model not defined on data: %w", mt, errs.ErrInsufficientData)
	}

	c := &Curve{typ: mt, coeffs: coeffs}
	r2, rmse := goodness(c, x, y)

	return &Fit{Curve: c, RSquared: r2, RMSE: rmse, Formula: c.Formula()}, nil
}

// leastSquares fits ty(y) = a + b*tx(x). ok is false when a transform is not
// finite on the data or the transformed x values are all equal.
func leastSquares(x, y []float64, tx, ty func(float64) float64) ([]float64, bool) {
	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		xi, yi := tx(x[i]), ty(y[i])
		if !finite(xi) || !finite(yi) {
			return nil, false
		}
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
	}

	meanX := sumX / n
	meanY := sumY / n
	den := sumX2 - n*meanX*meanX
	if den == 0 || !finite(den) {
		return nil, false
	}
	b := (sumXY - n*meanX*meanY) / den
	a := meanY - b*meanX

	return []float64{a, b}, finite(a) && finite(b)
}

// quadratic solves the normal equations of y = a + b*x + c*x² with Cramer's
// rule. Fewer than three points or a singular system fall back to a linear
// fit with c = 0.
func quadratic(x, y []float64) ([]float64, bool) {
	linear := func() ([]float64, bool) {
		k, ok := leastSquares(x, y, identity, identity)
		if !ok {
			return nil, false
		}

		return append(k, 0), true
	}
	if len(x) < 3 {
		return linear()
	}

	n := float64(len(x))
	var sx, sx2, sx3, sx4, sy, sxy, sx2y float64
	for i := range x {
		xi, yi := x[i], y[i]
		xi2 := xi * xi
		sx += xi
		sx2 += xi2
		sx3 += xi2 * xi
		sx4 += xi2 * xi2
		sy += yi
		sxy += xi * yi
		sx2y += xi2 * yi
	}

	det := n*(sx2*sx4-sx3*sx3) - sx*(sx*sx4-sx3*sx2) + sx2*(sx*sx3-sx2*sx2)
	if math.Abs(det) < 1e-10 || !finite(det) {
		return linear()
	}

	a := (sy*(sx2*sx4-sx3*sx3) - sx*(sxy*sx4-sx3*sx2y) + sx2*(sxy*sx3-sx2*sx2y)) / det
	b := (n*(sxy*sx4-sx2y*sx3) - sy*(sx*sx4-sx3*sx2) + sx2*(sx*sx2y-sxy*sx2)) / det
	c := (n*(sx2*sx2y-sx3*sxy) - sx*(sx*sx2y-sxy*sx2) + sy*(sx*sx3-sx2*sx2)) / det

	return []float64{a, b, c}, finite(a) && finite(b) && finite(c)
}

// goodness returns R² and RMSE of c on the data in a single pass over the
// residuals. R² is 0 when y is constant.
func goodness(c *Curve, x, y []float64) (r2, rmse float64) {
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var ssTot, ssRes float64
	for i := range x {
		d := y[i] - mean
		r := y[i] - c.Eval(x[i])
		ssTot += d * d
		ssRes += r * r
	}

	rmse = math.Sqrt(ssRes / float64(len(y)))
	if ssTot == 0 {
		return 0, rmse
	}

	return 1 - ssRes/ssTot, rmse
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
