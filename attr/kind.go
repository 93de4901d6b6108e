package attr

// Kind identifies the payload type of an Attribute.
type Kind uint8

const (
	KindInvalid     Kind = iota
	KindInt              // int32 scalar
	KindFloat            // float32 scalar
	KindDouble           // float64 scalar
	KindString           // free text
	KindLabel            // short text bounded by MaxLabelLength
	KindIntList          // strictly ascending []int32
	KindDetector         // composite DetectorInfo
	KindOrientation      // composite Orientation
)

var kindNames = [...]string{
	KindInvalid:     "invalid",
	KindInt:         "int",
	KindFloat:       "float",
	KindDouble:      "double",
	KindString:      "string",
	KindLabel:       "label",
	KindIntList:     "int_list",
	KindDetector:    "detector",
	KindOrientation: "orientation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Valid reports whether k is a known, non-invalid kind.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindOrientation
}

// Scalar reports whether k is one of the numeric scalar kinds.
func (k Kind) Scalar() bool {
	return k == KindInt || k == KindFloat || k == KindDouble
}

// Textual reports whether k is a string kind.
func (k Kind) Textual() bool {
	return k == KindString || k == KindLabel
}

// ParseKind returns the kind named by s, or KindInvalid.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s && Kind(k) != KindInvalid {
			return Kind(k)
		}
	}

	return KindInvalid
}
