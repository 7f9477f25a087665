// Package jsonval provides a generic, immutable value tree for
// already-parsed JSON-like documents, with loss-checked typed
// extraction.
//
// Schema documents carry free-form fields (offset, scale, max, min,
// noData, default) whose concrete type depends on the property they
// belong to. Those fields are decoded into Value nodes first; the
// property view engine in pkg/propview interprets them later, once
// the target shape is known.
//
// Numbers preserve their source precision: an integer that fits
// int64 or uint64 is stored as such, and converting between numeric
// kinds succeeds only when the conversion is exact.
package jsonval
