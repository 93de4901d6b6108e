// Package persist converts a series to a compact byte form and back.
//
// A persisted series is a 32-byte section.Header followed by one compressed
// payload. The raw payload is a sequence of uvarint length-prefixed blocks:
//
//	scale column
//	value column            (sampled series)
//	error column            (sampled series with errors)
//	model section           (modeled series)
//	attribute section
//
// Columns use the raw or Gorilla float64 codecs from package encoding. The
// model section lists the parametric value function and, when present, the
// error function as (name, coefficients) pairs that fit.NewCurve restores.
// A modeled series whose functions are not parametric fit curves is stored
// as its sampled materialisation.
//
// The header records the raw length and an xxHash64 checksum of the raw
// payload; Inflate rejects payloads that fail either check. All failures are
// *errs.PersistenceError values matching errs.ErrPersistence.
package persist
