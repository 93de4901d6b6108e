// Package series implements one-dimensional measurement series: a scale, the
// ordinate values at its points, optional errors, and an attribute list.
//
// Two variants share the Series interface. A Sampled series owns its value
// and error arrays; resampling interpolates them onto the new scale. A
// Modeled series owns a function that is evaluated lazily at the scale
// points; resampling only installs the new scale.
//
// Arithmetic between series (Add, Subtract, Multiply, Divide, ScaleBy)
// always produces a new Sampled series. Operands on different scales are
// sampled onto the merged scale first, and errors propagate in quadrature.
package series
