// Package attr implements typed, named series metadata ("attributes") and the
// ordered Attribute List attached to every series.
//
// An Attribute is an immutable tagged variant: a name, a Kind and the payload
// of that kind. Every kind-dependent operation is a single switch over Kind,
// so adding a kind is a change in one place per operation.
//
// Two merge operations exist. Combine is the averaging merge used when two
// measurements are aggregated (scalar mean, sorted list union, de-duplicated
// string concatenation). Add is the accumulating merge (scalar sum). Both
// return a new Attribute and never modify the receiver or the argument:
//
//	a := attr.NewDouble("temperature", 3)
//	b := attr.NewDouble("temperature", 7)
//	a.Combine(b).NumericValue() // 5
//	a.Add(b).NumericValue()     // 10
//
// A merge between kinds that cannot be combined returns the receiver
// unchanged and records a diag.CodeIncompatibleCombine diagnostic.
//
// A List keeps attributes in insertion order, keyed by name, and performs the
// replacement when two lists are combined.
package attr
