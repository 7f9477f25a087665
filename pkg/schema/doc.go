// Package schema defines the structural-metadata schema model: the
// classes and properties a metadata document declares, and the
// per-instance property entries (property table, property texture)
// that may override class-level transform values.
//
// Documents are accepted as JSON, YAML, or CBOR; all three fronts
// funnel into the same generic value tree (pkg/jsonval) and the same
// field mapping, so a schema parsed from any format behaves
// identically downstream.
//
// Validation of a property definition itself lives in pkg/propview;
// this package only carries the declared fields.
package schema
