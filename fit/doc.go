// Package fit performs least-squares regression of a series against a small
// family of analytic models and turns the fitted model into a function-backed
// series.
//
// # Model Types
//
//   - Hyperbolic:  y = a + b / x
//   - Logarithmic: y = a + b * ln(x)
//   - Power:       y = a * x^b
//   - Exponential: y = a * e^(b * x)
//   - Polynomial:  y = a + b*x + c*x²
//   - Linear:      y = a + b*x
//
// Analyze fits every model whose transform is defined on the data (the
// logarithmic and power models need x > 0, the power and exponential models
// need y > 0) and ranks the fits by R², best first:
//
//	res, err := fit.AnalyzeSeries(s)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Best.Formula, res.Best.RSquared)
//	m, err := res.Best.Series(s.Scale())
//
// A Curve is fully described by its model type and coefficients, so series
// built from it can be persisted and restored with NewCurve.
package fit
