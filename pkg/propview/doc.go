// Package propview resolves class-level property definitions into
// typed, immutable property views.
//
// A view is constructed from a schema.ClassProperty, optionally
// combined with a per-instance override (a property table or
// property texture entry). Construction always completes: structural
// problems with the definition are reported through the view's
// Status, never through an error return or panic. Callers must check
// Status() == StatusValid before trusting the other accessors.
//
// One construction algorithm serves every element shape. The shape
// (scalar of a numeric kind, fixed-size vector or matrix, boolean,
// string, and arrays of each) is a value-level descriptor, and the
// resolved optional fields are stored in a closed set of
// representations: packed component bytes for numeric values, a
// bitstream for boolean arrays, and a byte blob plus offset table
// for string arrays.
//
// Views are pure values. Once constructed they are immutable and
// safe to share across goroutines without synchronization.
package propview
