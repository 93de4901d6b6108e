package series

import (
	"slices"

	"github.com/ornl-ndav/ISAW-sub008/attr"
)

// SortByAttribute orders list in place by the numeric value of the attribute
// named name (see attr.Compare). Series lacking the attribute go last. The
// sort is stable.
func SortByAttribute(list []Series, name string) {
	slices.SortStableFunc(list, func(a, b Series) int {
		av, aok := a.Attributes().Get(name)
		bv, bok := b.Attributes().Get(name)
		switch {
		case aok && bok:
			return attr.Compare(av, bv)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}
