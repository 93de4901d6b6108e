package persist

import (
	"fmt"
	"math"
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/compress"
	"github.com/ornl-ndav/ISAW-sub008/encoding"
	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/fit"
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
	"github.com/ornl-ndav/ISAW-sub008/internal/hash"
	"github.com/ornl-ndav/ISAW-sub008/scale"
	"github.com/ornl-ndav/ISAW-sub008/section"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

// Compress encodes s into its persisted form.
//
// When sizeLimit > 0 and the result would be larger, Compress fails with a
// PersistenceError{Op: "compress"} wrapping errs.ErrSizeLimitExceeded.
func Compress(s series.Series, sizeLimit int, opts ...Option) ([]byte, error) {
	out, err := compressSeries(s, sizeLimit, opts)
	if err != nil {
		return nil, errs.NewPersistenceError("compress", err)
	}

	return out, nil
}

func compressSeries(s series.Series, sizeLimit int, opts []Option) ([]byte, error) {
	if s == nil {
		return nil, errs.ErrNilSeries
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	var curves []*fit.Curve
	if m, ok := s.(*series.Modeled); ok {
		if curves, ok = persistableCurves(m); !ok {
			s = m.Materialize()
		}
	}

	sc := s.Scale()
	if sc == nil || sc.Len() == 0 {
		return nil, fmt.Errorf("%w: empty scale", errs.ErrInvalidRange)
	}
	if uint64(sc.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d points", errs.ErrInvalidRange, sc.Len())
	}
	attrs := s.Attributes()
	if attrs.Len() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d attributes", errs.ErrInvalidRange, attrs.Len())
	}

	h := section.NewHeader()
	h.Flag.SetBigEndian(cfg.bigEndian)
	h.Flag.SetScaleEncoding(cfg.scaleEnc)
	h.Flag.SetValueEncoding(cfg.valueEnc)
	h.Flag.SetCompression(cfg.compression)
	h.Flag.SetSelected(s.Selected())
	h.Flag.SetVisible(s.Visible())
	h.Count = uint32(sc.Len())
	h.Group = s.Group()
	h.AttrCount = uint16(attrs.Len())

	engine := h.Flag.EndianEngine()
	w := encoding.NewPayloadEncoder(engine)
	defer w.Finish()

	writeColumn(w, cfg.scaleEnc, engine, sc.Points())
	if curves != nil {
		h.Flag.SetModeled(true)
		h.Flag.SetHasErrors(len(curves) > 1)
		w.WriteBytes(encodeModels(engine, curves))
	} else {
		writeColumn(w, cfg.valueEnc, engine, s.Values())
		if errVals := s.Errors(); errVals != nil {
			h.Flag.SetHasErrors(true)
			writeColumn(w, cfg.valueEnc, engine, errVals)
		}
	}

	attrBlock, err := encodeAttributes(engine, attrs)
	if err != nil {
		return nil, err
	}
	w.WriteBytes(attrBlock)

	raw := w.Bytes()
	if uint64(len(raw)) > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: raw payload of %d bytes", errs.ErrSizeLimitExceeded, len(raw))
	}

	packed, stats, err := compress.Measure(cfg.compression, raw)
	if err != nil {
		return nil, err
	}
	if uint64(len(packed)) > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrSizeLimitExceeded, len(packed))
	}

	h.RawLength = uint32(stats.OriginalSize)
	h.PayloadLength = uint32(stats.CompressedSize)
	h.Checksum = hash.Checksum(raw)

	total := section.HeaderSize + len(packed)
	if sizeLimit > 0 && total > sizeLimit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrSizeLimitExceeded, total, sizeLimit)
	}

	out := make([]byte, 0, total)
	out = h.AppendTo(out)

	return append(out, packed...), nil
}

// Inflate restores a series written by Compress. Modeled series come back as
// *series.Modeled backed by fit curves; everything else as *series.Sampled.
func Inflate(data []byte) (series.Series, error) {
	s, err := inflateSeries(data)
	if err != nil {
		return nil, errs.NewPersistenceError("inflate", err)
	}

	return s, nil
}

// Inspect parses and validates only the header of data.
func Inspect(data []byte) (section.Header, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return section.Header{}, errs.NewPersistenceError("inspect", err)
	}

	return h, nil
}

func inflateSeries(data []byte) (series.Series, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	body := data[section.HeaderSize:]
	if uint64(len(body)) != uint64(h.PayloadLength) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrCorruptPayload, len(body), h.PayloadLength)
	}

	codec, err := compress.GetCodec(h.Flag.Compression())
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
	}
	if uint64(len(raw)) != uint64(h.RawLength) {
		return nil, fmt.Errorf("%w: raw payload is %d bytes, header says %d", errs.ErrCorruptPayload, len(raw), h.RawLength)
	}
	if sum := hash.Checksum(raw); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	engine := h.Flag.EndianEngine()
	r := encoding.NewVarStringDecoder(raw, engine)
	count := int(h.Count)

	sc, err := readScale(r, h, engine)
	if err != nil {
		return nil, err
	}

	var (
		values, errVals []float64
		fn, errFn       *fit.Curve
	)
	if h.Flag.IsModeled() {
		block := r.ReadBytes()
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("%w: model section: %w", errs.ErrCorruptPayload, err)
		}
		if fn, errFn, err = decodeModels(engine, block, h.Flag.HasErrors()); err != nil {
			return nil, err
		}
	} else {
		if values, err = readColumn(r, h.Flag.ValueEncoding(), engine, count, "value"); err != nil {
			return nil, err
		}
		if h.Flag.HasErrors() {
			if errVals, err = readColumn(r, h.Flag.ValueEncoding(), engine, count, "error"); err != nil {
				return nil, err
			}
		}
	}

	attrBlock := r.ReadBytes()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: attribute section: %w", errs.ErrCorruptPayload, err)
	}
	attrs, err := decodeAttributes(engine, attrBlock, int(h.AttrCount))
	if err != nil {
		return nil, err
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrCorruptPayload, r.Remaining())
	}

	opts := []series.Option{
		series.WithGroup(h.Group),
		series.WithSelected(h.Flag.Selected()),
		series.WithVisible(h.Flag.Visible()),
		series.WithAttributes(attrs),
	}

	if fn != nil {
		if errFn != nil {
			opts = append(opts, series.WithErrorFunc(errFn))
		}

		return series.NewModeled(sc, fn, opts...)
	}

	if errVals != nil {
		opts = append(opts, series.WithErrors(errVals))
	}

	return series.NewSampled(sc, values, opts...)
}

// readScale restores the scale column. Stored scales are either strictly
// descending or ascending, possibly with repeated points.
func readScale(r *encoding.VarStringDecoder, h section.Header, engine endian.EndianEngine) (*scale.Scale, error) {
	if h.Count == 0 {
		return nil, fmt.Errorf("%w: empty scale", errs.ErrCorruptPayload)
	}

	points, err := readColumn(r, h.Flag.ScaleEncoding(), engine, int(h.Count), "scale")
	if err != nil {
		return nil, err
	}

	if !slices.IsSorted(points) && !strictlyDescending(points) {
		return nil, fmt.Errorf("%w: scale points out of order", errs.ErrCorruptPayload)
	}

	sc, err := scale.FromPoints(points, scale.WithRecorder(diag.Discard))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
	}

	return sc, nil
}

func strictlyDescending(pts []float64) bool {
	for i := 1; i < len(pts); i++ {
		if !(pts[i] < pts[i-1]) {
			return false
		}
	}

	return true
}
