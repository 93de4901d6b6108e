package attr

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxLabelLength is the maximum length, in runes, a label may reach through
// Combine. A concatenation that would exceed it is skipped.
const MaxLabelLength = 80

// Attribute is an immutable named value of one Kind.
//
// The zero value has KindInvalid. Attributes are small values and are passed
// by value; the int list payload is never modified after construction, so
// copies may share it.
type Attribute struct {
	name   string
	kind   Kind
	i      int32
	f      float32
	d      float64
	text   string
	list   []int32
	det    DetectorInfo
	orient Orientation
}

// NewInt returns an int32 scalar attribute.
func NewInt(name string, v int32) Attribute {
	return Attribute{name: name, kind: KindInt, i: v}
}

// NewFloat returns a float32 scalar attribute.
func NewFloat(name string, v float32) Attribute {
	return Attribute{name: name, kind: KindFloat, f: v}
}

// NewDouble returns a float64 scalar attribute.
func NewDouble(name string, v float64) Attribute {
	return Attribute{name: name, kind: KindDouble, d: v}
}

// NewString returns a free-text attribute.
func NewString(name, v string) Attribute {
	return Attribute{name: name, kind: KindString, text: v}
}

// NewLabel returns a label attribute. The initial value is kept as given;
// MaxLabelLength only bounds growth through Combine.
func NewLabel(name, v string) Attribute {
	return Attribute{name: name, kind: KindLabel, text: v}
}

// NewDetector returns a detector info attribute.
func NewDetector(name string, v DetectorInfo) Attribute {
	return Attribute{name: name, kind: KindDetector, det: v}
}

// NewOrientation returns a sample orientation attribute.
func NewOrientation(name string, v Orientation) Attribute {
	return Attribute{name: name, kind: KindOrientation, orient: v}
}

// Name returns the attribute name.
func (a Attribute) Name() string {
	return a.name
}

// Kind returns the payload kind.
func (a Attribute) Kind() Kind {
	return a.kind
}

// WithName returns a copy of a under a different name.
func (a Attribute) WithName(name string) Attribute {
	a.name = name
	return a
}

// IsZero reports whether a is the zero Attribute.
func (a Attribute) IsZero() bool {
	return a.kind == KindInvalid && a.name == ""
}

// StringValue renders the payload for display. Int lists use range notation
// ("1:3,7"), which ParseIntList accepts.
func (a Attribute) StringValue() string {
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(int64(a.i), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(a.f), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(a.d, 'g', -1, 64)
	case KindString, KindLabel:
		return a.text
	case KindIntList:
		return FormatIntList(a.list)
	case KindDetector:
		return a.det.String()
	case KindOrientation:
		return a.orient.String()
	case KindInvalid:
		return ""
	default:
		return ""
	}
}

// NumericValue returns the ordering key of the attribute: the scalar itself,
// the first list element (+Inf for an empty list), the detector scattering
// angle, or the sum of the orientation angles. Text kinds are not sortable
// and return NaN.
func (a Attribute) NumericValue() float64 {
	switch a.kind {
	case KindInt:
		return float64(a.i)
	case KindFloat:
		return float64(a.f)
	case KindDouble:
		return a.d
	case KindIntList:
		if len(a.list) == 0 {
			return math.Inf(1)
		}

		return float64(a.list[0])
	case KindDetector:
		return a.det.TwoTheta
	case KindOrientation:
		return a.orient.Sum()
	case KindString, KindLabel, KindInvalid:
		return math.NaN()
	default:
		return math.NaN()
	}
}

// Sortable reports whether NumericValue is a meaningful ordering key.
func (a Attribute) Sortable() bool {
	return a.kind.Valid() && !a.kind.Textual()
}

// Value returns the payload as its Go type: int32, float32, float64, string,
// []int32 (a copy), DetectorInfo or Orientation. It returns nil for the zero
// Attribute.
func (a Attribute) Value() any {
	switch a.kind {
	case KindInt:
		return a.i
	case KindFloat:
		return a.f
	case KindDouble:
		return a.d
	case KindString, KindLabel:
		return a.text
	case KindIntList:
		return slices.Clone(a.list)
	case KindDetector:
		return a.det
	case KindOrientation:
		return a.orient
	case KindInvalid:
		return nil
	default:
		return nil
	}
}

// Int returns the int32 payload of a KindInt attribute.
func (a Attribute) Int() (int32, bool) {
	return a.i, a.kind == KindInt
}

// Float returns the float32 payload of a KindFloat attribute.
func (a Attribute) Float() (float32, bool) {
	return a.f, a.kind == KindFloat
}

// Double returns the float64 payload of a KindDouble attribute.
func (a Attribute) Double() (float64, bool) {
	return a.d, a.kind == KindDouble
}

// Text returns the payload of a KindString or KindLabel attribute.
func (a Attribute) Text() (string, bool) {
	return a.text, a.kind.Textual()
}

// IntList returns a copy of the payload of a KindIntList attribute.
func (a Attribute) IntList() ([]int32, bool) {
	if a.kind != KindIntList {
		return nil, false
	}

	return slices.Clone(a.list), true
}

// Detector returns the payload of a KindDetector attribute.
func (a Attribute) Detector() (DetectorInfo, bool) {
	return a.det, a.kind == KindDetector
}

// Orientation returns the payload of a KindOrientation attribute.
func (a Attribute) Orientation() (Orientation, bool) {
	return a.orient, a.kind == KindOrientation
}

// Equal reports whether a and b have the same name, kind and payload.
func (a Attribute) Equal(b Attribute) bool {
	if a.name != b.name || a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindDouble:
		return a.d == b.d
	case KindString, KindLabel:
		return a.text == b.text
	case KindIntList:
		return slices.Equal(a.list, b.list)
	case KindDetector:
		return a.det == b.det
	case KindOrientation:
		return a.orient == b.orient
	case KindInvalid:
		return true
	default:
		return false
	}
}

func (a Attribute) String() string {
	return a.name + "=" + a.StringValue()
}

// Compare orders attributes by NumericValue. Sortable attributes come before
// text attributes, which are ordered case-insensitively by StringValue.
func Compare(a, b Attribute) int {
	as, bs := a.Sortable(), b.Sortable()
	switch {
	case as && bs:
		return cmp.Compare(a.NumericValue(), b.NumericValue())
	case as:
		return -1
	case bs:
		return 1
	default:
		return strings.Compare(strings.ToLower(a.StringValue()), strings.ToLower(b.StringValue()))
	}
}

// SortByNumeric sorts attrs in place with Compare. The sort is stable.
func SortByNumeric(attrs []Attribute) {
	slices.SortStableFunc(attrs, Compare)
}
