package propview

// Status reports the outcome of property view construction.
//
// Construction never fails hard; at most one status fires per view,
// and checks run in a fixed order, so the value identifies the first
// structural rule the definition violated.
type Status int32

const (
	// StatusValid means the view is resolved and ready to use.
	StatusValid Status = 0

	// StatusErrorNonexistentProperty marks an empty view constructed
	// for a property that does not exist.
	StatusErrorNonexistentProperty Status = 1

	// StatusErrorTypeMismatch means the view's type does not match
	// the class property's declared type.
	StatusErrorTypeMismatch Status = 2

	// StatusErrorComponentTypeMismatch means the view's component
	// type does not match the class property's declared component
	// type.
	StatusErrorComponentTypeMismatch Status = 3

	// StatusErrorArrayTypeMismatch means the view's array-ness
	// differs from the class property's array flag.
	StatusErrorArrayTypeMismatch Status = 4

	// StatusErrorInvalidNormalization means the normalized flag of
	// the class property disagrees with the requested view variant.
	StatusErrorInvalidNormalization Status = 5

	// StatusErrorInvalidOffset means the property declared an
	// offset that is illegal or unparseable for its shape.
	StatusErrorInvalidOffset Status = 6

	// StatusErrorInvalidScale means the property declared a scale
	// that is illegal or unparseable for its shape.
	StatusErrorInvalidScale Status = 7

	// StatusErrorInvalidMax means the property declared an invalid
	// maximum value.
	StatusErrorInvalidMax Status = 8

	// StatusErrorInvalidMin means the property declared an invalid
	// minimum value.
	StatusErrorInvalidMin Status = 9

	// StatusErrorInvalidNoDataValue means the property declared an
	// invalid "no data" sentinel.
	StatusErrorInvalidNoDataValue Status = 10

	// StatusErrorInvalidDefaultValue means the property declared an
	// invalid default value.
	StatusErrorInvalidDefaultValue Status = 11
)

// IsValid reports whether the status is StatusValid.
func (s Status) IsValid() bool { return s == StatusValid }

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusErrorNonexistentProperty:
		return "ErrorNonexistentProperty"
	case StatusErrorTypeMismatch:
		return "ErrorTypeMismatch"
	case StatusErrorComponentTypeMismatch:
		return "ErrorComponentTypeMismatch"
	case StatusErrorArrayTypeMismatch:
		return "ErrorArrayTypeMismatch"
	case StatusErrorInvalidNormalization:
		return "ErrorInvalidNormalization"
	case StatusErrorInvalidOffset:
		return "ErrorInvalidOffset"
	case StatusErrorInvalidScale:
		return "ErrorInvalidScale"
	case StatusErrorInvalidMax:
		return "ErrorInvalidMax"
	case StatusErrorInvalidMin:
		return "ErrorInvalidMin"
	case StatusErrorInvalidNoDataValue:
		return "ErrorInvalidNoDataValue"
	case StatusErrorInvalidDefaultValue:
		return "ErrorInvalidDefaultValue"
	default:
		return "Unknown"
	}
}
