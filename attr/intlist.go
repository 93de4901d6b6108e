package attr

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ornl-ndav/ISAW-sub008/errs"
	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

// NewIntList returns an int list attribute. Values are kept strictly
// ascending: unsorted input is sorted (recording diag.CodeNonMonotonicInput)
// and repeated values are collapsed. The input slice is not retained.
func NewIntList(name string, values []int32, opts ...Option) Attribute {
	return Attribute{name: name, kind: KindIntList, list: normalizeIntList(values, "attr.NewIntList", opts)}
}

func normalizeIntList(values []int32, source string, opts []Option) []int32 {
	list := slices.Clone(values)
	if slices.IsSorted(list) {
		return slices.Compact(list)
	}

	slices.Sort(list)
	cfg := newConfig(opts)
	cfg.recorder.Record(diag.Diagnostic{
		Code:    diag.CodeNonMonotonicInput,
		Source:  source,
		Message: "int list values not ascending, sorted copy used",
		Attrs:   []slog.Attr{slog.Int("len", len(list))},
	})

	return slices.Compact(list)
}

// unionSorted merges two strictly ascending lists into a new strictly
// ascending list.
func unionSorted(a, b []int32) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	push := func(v int32) {
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			push(a[i])
			i++
		case a[i] > b[j]:
			push(b[j])
			j++
		default:
			push(a[i])
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		push(a[i])
	}
	for ; j < len(b); j++ {
		push(b[j])
	}

	return out
}

// FormatIntList renders an ascending list with consecutive runs collapsed to
// "first:last", e.g. [1 2 3 7] -> "1:3,7".
func FormatIntList(values []int32) string {
	var sb strings.Builder
	for i := 0; i < len(values); {
		j := i
		for j+1 < len(values) && int64(values[j+1]) == int64(values[j])+1 {
			j++
		}

		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(values[i]), 10))
		if j > i {
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatInt(int64(values[j]), 10))
		}
		i = j + 1
	}

	return sb.String()
}

// ParseIntList parses a comma separated list of integers and "first:last"
// ranges, the format produced by FormatIntList. The result is not sorted.
func ParseIntList(s string) ([]int32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int32{}, nil
	}

	var out []int32
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, isRange := strings.Cut(part, ":")

		first, err := parseInt32(lo)
		if err != nil {
			return nil, err
		}
		if !isRange {
			out = append(out, first)
			continue
		}

		last, err := parseInt32(hi)
		if err != nil {
			return nil, err
		}
		if last < first {
			return nil, fmt.Errorf("int list range %q: %w", part, errs.ErrInvalidRange)
		}
		for v := int64(first); v <= int64(last); v++ {
			out = append(out, int32(v))
		}
	}

	return out, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("int list element %q: %w", s, errs.ErrTypeMismatch)
	}

	return int32(v), nil
}

// toInt32 converts any Go integer or float type to int32. Floats are
// truncated; out of range values and NaN are rejected.
func toInt32(v any) (int32, bool) {
	switch x := v.(type) {
	case int32:
		return x, true
	case int:
		return int64ToInt32(int64(x))
	case int8:
		return int32(x), true
	case int16:
		return int32(x), true
	case int64:
		return int64ToInt32(x)
	case uint:
		return uint64ToInt32(uint64(x))
	case uint8:
		return int32(x), true
	case uint16:
		return int32(x), true
	case uint32:
		return uint64ToInt32(uint64(x))
	case uint64:
		return uint64ToInt32(x)
	case float32:
		return floatToInt32(float64(x))
	case float64:
		return floatToInt32(x)
	default:
		return 0, false
	}
}

func int64ToInt32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}

	return int32(v), true
}

func uint64ToInt32(v uint64) (int32, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}

	return int32(v), true
}

func floatToInt32(v float64) (int32, bool) {
	if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}

	return int32(v), true
}

// toFloat64 converts any Go integer or float type to float64.
func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

// toInt32Slice accepts []int32, []int and []int64.
func toInt32Slice(v any) ([]int32, bool) {
	switch x := v.(type) {
	case []int32:
		return x, true
	case []int:
		out := make([]int32, len(x))
		for i, e := range x {
			n, ok := int64ToInt32(int64(e))
			if !ok {
				return nil, false
			}
			out[i] = n
		}

		return out, true
	case []int64:
		out := make([]int32, len(x))
		for i, e := range x {
			n, ok := int64ToInt32(e)
			if !ok {
				return nil, false
			}
			out[i] = n
		}

		return out, true
	default:
		return nil, false
	}
}
