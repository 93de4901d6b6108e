package persist

import (
	"fmt"

	"github.com/ornl-ndav/ISAW-sub008/encoding"
	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/fit"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

// maxCoefficients bounds the coefficient count read from a model section.
const maxCoefficients = 64

// persistableCurves returns the fit curves behind m's value and error
// functions. ok is false when either function cannot be restored by
// fit.NewCurve, in which case the series is stored sampled.
func persistableCurves(m *series.Modeled) (curves []*fit.Curve, ok bool) {
	fns := []series.Func{m.Func()}
	if m.ErrorFunc() != nil {
		fns = append(fns, m.ErrorFunc())
	}

	for _, fn := range fns {
		p, isParam := fn.(series.Parametric)
		if !isParam {
			return nil, false
		}

		c, err := fit.NewCurve(p.Name(), p.Coefficients())
		if err != nil {
			return nil, false
		}
		curves = append(curves, c)
	}

	return curves, true
}

func encodeModels(engine endian.EndianEngine, curves []*fit.Curve) []byte {
	w := encoding.NewVarStringEncoder(engine)
	defer w.Finish()

	w.WriteUvarint(uint64(len(curves)))
	for _, c := range curves {
		_ = w.Write(c.Name())
		coeffs := c.Coefficients()
		w.WriteUvarint(uint64(len(coeffs)))
		for _, k := range coeffs {
			w.WriteFloat64(k)
		}
	}

	return append([]byte(nil), w.Bytes()...)
}

// decodeModels returns the value curve and, when hasErrors, the error curve.
func decodeModels(engine endian.EndianEngine, block []byte, hasErrors bool) (fn, errFn *fit.Curve, err error) {
	r := encoding.NewVarStringDecoder(block, engine)

	want := uint64(1)
	if hasErrors {
		want = 2
	}
	if n := r.ReadUvarint(); r.Err() == nil && n != want {
		return nil, nil, fmt.Errorf("%w: model section holds %d curves, want %d", errs.ErrCorruptPayload, n, want)
	}

	curves := make([]*fit.Curve, 0, want)
	for range want {
		name := r.ReadString()
		n := r.ReadUvarint()
		if r.Err() == nil && n > maxCoefficients {
			return nil, nil, fmt.Errorf("%w: model %q has %d coefficients", errs.ErrCorruptPayload, name, n)
		}

		coeffs := make([]float64, 0, n)
		for range n {
			coeffs = append(coeffs, r.ReadFloat64())
		}
		if err := r.Err(); err != nil {
			return nil, nil, fmt.Errorf("%w: model section: %w", errs.ErrCorruptPayload, err)
		}

		c, err := fit.NewCurve(name, coeffs)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
		}
		curves = append(curves, c)
	}

	if r.Remaining() != 0 {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes after models", errs.ErrCorruptPayload, r.Remaining())
	}

	fn = curves[0]
	if hasErrors {
		errFn = curves[1]
	}

	return fn, errFn, nil
}
