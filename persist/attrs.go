package persist

import (
	"fmt"
	"math"

	"github.com/ornl-ndav/ISAW-sub008/attr"
	"github.com/ornl-ndav/ISAW-sub008/encoding"
	"github.com/ornl-ndav/ISAW-sub008/endian"
	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/collision"
)

// encodeAttributes writes each attribute as name, kind byte and a
// kind-specific payload. Int lists are stored as a count, the first value
// and positive gaps.
func encodeAttributes(engine endian.EndianEngine, list *attr.List) ([]byte, error) {
	w := encoding.NewVarStringEncoder(engine)
	defer w.Finish()

	for a := range list.All() {
		if err := w.Write(a.Name()); err != nil {
			return nil, fmt.Errorf("attribute name: %w", err)
		}
		_ = w.WriteByte(byte(a.Kind()))

		switch a.Kind() {
		case attr.KindInt:
			v, _ := a.Int()
			w.WriteVarint(int64(v))
		case attr.KindFloat:
			v, _ := a.Float()
			w.WriteFloat32(v)
		case attr.KindDouble:
			v, _ := a.Double()
			w.WriteFloat64(v)
		case attr.KindString, attr.KindLabel:
			v, _ := a.Text()
			if err := w.Write(v); err != nil {
				return nil, fmt.Errorf("attribute %q: %w", a.Name(), err)
			}
		case attr.KindIntList:
			v, _ := a.IntList()
			w.WriteUvarint(uint64(len(v)))
			for i, x := range v {
				if i == 0 {
					w.WriteVarint(int64(x))
					continue
				}
				w.WriteUvarint(uint64(int64(x) - int64(v[i-1])))
			}
		case attr.KindDetector:
			d, _ := a.Detector()
			w.WriteVarint(int64(d.ID))
			w.WriteFloat64(d.TwoTheta)
			w.WriteFloat64(d.Azimuth)
			w.WriteFloat64(d.Distance)
		case attr.KindOrientation:
			o, _ := a.Orientation()
			w.WriteFloat64(o.Phi)
			w.WriteFloat64(o.Chi)
			w.WriteFloat64(o.Omega)
		default:
			return nil, fmt.Errorf("attribute %q: %w: %d", a.Name(), errs.ErrUnknownAttributeKind, a.Kind())
		}
	}

	return append([]byte(nil), w.Bytes()...), nil
}

// decodeAttributes reads exactly count attributes from block.
func decodeAttributes(engine endian.EndianEngine, block []byte, count int) (*attr.List, error) {
	r := encoding.NewVarStringDecoder(block, engine)
	list := attr.NewList()
	names := collision.NewTracker(count)

	for i := range count {
		name := r.ReadString()
		kindByte, _ := r.ReadByte()
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("%w: attribute %d: %w", errs.ErrCorruptPayload, i, err)
		}

		if err := names.Track(name); err != nil {
			return nil, fmt.Errorf("%w: attribute %w", errs.ErrCorruptPayload, err)
		}

		a, err := decodeAttribute(r, name, attr.Kind(kindByte))
		if err != nil {
			return nil, err
		}
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("%w: attribute %q: %w", errs.ErrCorruptPayload, name, err)
		}
		list.Set(a)
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after attributes", errs.ErrCorruptPayload, r.Remaining())
	}

	return list, nil
}

func decodeAttribute(r *encoding.VarStringDecoder, name string, kind attr.Kind) (attr.Attribute, error) {
	switch kind {
	case attr.KindInt:
		v := r.ReadVarint()
		if v < math.MinInt32 || v > math.MaxInt32 {
			return attr.Attribute{}, fmt.Errorf("%w: attribute %q: int %d out of range", errs.ErrCorruptPayload, name, v)
		}

		return attr.NewInt(name, int32(v)), nil
	case attr.KindFloat:
		return attr.NewFloat(name, r.ReadFloat32()), nil
	case attr.KindDouble:
		return attr.NewDouble(name, r.ReadFloat64()), nil
	case attr.KindString:
		return attr.NewString(name, r.ReadString()), nil
	case attr.KindLabel:
		return attr.NewLabel(name, r.ReadString()), nil
	case attr.KindIntList:
		return decodeIntList(r, name)
	case attr.KindDetector:
		id := r.ReadVarint()
		if id < math.MinInt32 || id > math.MaxInt32 {
			return attr.Attribute{}, fmt.Errorf("%w: attribute %q: detector id %d out of range", errs.ErrCorruptPayload, name, id)
		}
		d := attr.DetectorInfo{ID: int32(id)}
		d.TwoTheta = r.ReadFloat64()
		d.Azimuth = r.ReadFloat64()
		d.Distance = r.ReadFloat64()

		return attr.NewDetector(name, d), nil
	case attr.KindOrientation:
		var o attr.Orientation
		o.Phi = r.ReadFloat64()
		o.Chi = r.ReadFloat64()
		o.Omega = r.ReadFloat64()

		return attr.NewOrientation(name, o), nil
	default:
		return attr.Attribute{}, fmt.Errorf("attribute %q: %w: %d", name, errs.ErrUnknownAttributeKind, kind)
	}
}

func decodeIntList(r *encoding.VarStringDecoder, name string) (attr.Attribute, error) {
	n := r.ReadUvarint()
	// Every element takes at least one byte.
	if n > uint64(r.Remaining()) {
		return attr.Attribute{}, fmt.Errorf("%w: attribute %q: list of %d values", errs.ErrCorruptPayload, name, n)
	}

	values := make([]int32, 0, n)
	var cur int64
	for i := range n {
		if i == 0 {
			cur = r.ReadVarint()
		} else {
			gap := r.ReadUvarint()
			if gap == 0 || gap > math.MaxUint32 {
				return attr.Attribute{}, fmt.Errorf("%w: attribute %q: list is not strictly ascending", errs.ErrCorruptPayload, name)
			}
			cur += int64(gap)
		}
		if cur < math.MinInt32 || cur > math.MaxInt32 {
			return attr.Attribute{}, fmt.Errorf("%w: attribute %q: list value %d out of range", errs.ErrCorruptPayload, name, cur)
		}
		values = append(values, int32(cur))
	}

	return attr.NewIntList(name, values), nil
}
