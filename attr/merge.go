package attr

import (
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

// Combine returns the averaging merge of a and other: the mean for scalars,
// the sorted union for int lists, and the de-duplicated concatenation for
// text. Detector and orientation attributes keep the receiver.
//
// When the kinds differ the receiver is returned unchanged and a
// diag.CodeIncompatibleCombine diagnostic is recorded.
func (a Attribute) Combine(other Attribute, opts ...Option) Attribute {
	if a.kind != other.kind {
		return a.incompatible(other, "attr.Combine", opts)
	}

	switch a.kind {
	case KindInt:
		a.i = int32((int64(a.i) + int64(other.i)) / 2)
	case KindFloat:
		a.f = float32((float64(a.f) + float64(other.f)) / 2)
	case KindDouble:
		a.d = (a.d + other.d) / 2
	case KindString:
		a.text, _ = combineText(a.text, other.text, 0)
	case KindLabel:
		a = a.combineLabel(other, opts)
	case KindIntList:
		a.list = unionSorted(a.list, other.list)
	case KindDetector, KindOrientation, KindInvalid:
	}

	return a
}

// Add returns the accumulating merge of a and other. Scalars are summed (int
// sums saturate at the int32 range); every other kind merges as in Combine.
func (a Attribute) Add(other Attribute, opts ...Option) Attribute {
	if a.kind != other.kind {
		return a.incompatible(other, "attr.Add", opts)
	}

	switch a.kind {
	case KindInt:
		a.i = saturateInt32(int64(a.i) + int64(other.i))
	case KindFloat:
		a.f += other.f
	case KindDouble:
		a.d += other.d
	case KindString, KindLabel, KindIntList, KindDetector, KindOrientation, KindInvalid:
		return a.Combine(other, opts...)
	}

	return a
}

// SetValue returns a copy of a holding v. Scalar kinds accept every Go
// integer and float type; int values outside the int32 range are rejected.
// Int lists accept []int32, []int and []int64. It returns (a, false) when v
// cannot be converted to the attribute's kind.
func (a Attribute) SetValue(v any) (Attribute, bool) {
	switch a.kind {
	case KindInt:
		n, ok := toInt32(v)
		if !ok {
			return a, false
		}
		a.i = n
	case KindFloat:
		f, ok := toFloat64(v)
		if !ok {
			return a, false
		}
		f32 := float32(f)
		if math.IsInf(float64(f32), 0) && !math.IsInf(f, 0) {
			return a, false
		}
		a.f = f32
	case KindDouble:
		f, ok := toFloat64(v)
		if !ok {
			return a, false
		}
		a.d = f
	case KindString, KindLabel:
		s, ok := v.(string)
		if !ok {
			return a, false
		}
		a.text = s
	case KindIntList:
		values, ok := toInt32Slice(v)
		if !ok {
			return a, false
		}
		a.list = normalizeIntList(values, "attr.SetValue", nil)
	case KindDetector:
		d, ok := v.(DetectorInfo)
		if !ok {
			return a, false
		}
		a.det = d
	case KindOrientation:
		o, ok := v.(Orientation)
		if !ok {
			return a, false
		}
		a.orient = o
	case KindInvalid:
		return a, false
	default:
		return a, false
	}

	return a, true
}

func (a Attribute) incompatible(other Attribute, source string, opts []Option) Attribute {
	newConfig(opts).recorder.Record(diag.Diagnostic{
		Code:    diag.CodeIncompatibleCombine,
		Source:  source,
		Message: "attribute kinds cannot be merged, receiver kept",
		Attrs: []slog.Attr{
			slog.String("name", a.name),
			slog.String("kind", a.kind.String()),
			slog.String("other_kind", other.kind.String()),
		},
	})

	return a
}

func (a Attribute) combineLabel(other Attribute, opts []Option) Attribute {
	text, ok := combineText(a.text, other.text, MaxLabelLength)
	if !ok {
		newConfig(opts).recorder.Record(diag.Diagnostic{
			Code:    diag.CodeLabelOverflow,
			Source:  "attr.Combine",
			Message: "label concatenation exceeds length limit, receiver kept",
			Attrs:   []slog.Attr{slog.String("name", a.name), slog.Int("limit", MaxLabelLength)},
		})

		return a
	}
	a.text = text

	return a
}

// combineText joins a and b with a comma unless one already contains the
// other (case-insensitive). Every string contains the empty string, so an
// empty side leaves a unchanged. With limit > 0 a result longer than limit
// runes is refused and ok is false.
func combineText(a, b string, limit int) (string, bool) {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return a, true
	}

	out := a + "," + b

	if limit > 0 && utf8.RuneCountInString(out) > limit {
		return a, false
	}

	return out, true
}

func saturateInt32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
