package bitfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is returned when a field is declared with an empty name
	// or a non-positive width.
	ErrInvalidField = errors.New("invalid field")

	// ErrDuplicateField is returned when a field is added to a layout which
	// already has a field of the same name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrInvalidRange is returned when a range is constructed with a maximum
	// lower than its minimum.
	ErrInvalidRange = errors.New("invalid range")

	// ErrCapacityExceeded is returned when adding a field would take a bounded
	// layout past its bit limit.
	ErrCapacityExceeded = errors.New("bit capacity exceeded")

	// ErrOutOfRange is returned when a value falls outside of the bounds of
	// the field it is assigned to.
	ErrOutOfRange = errors.New("value out of range")

	// ErrFieldNotFound is returned when referencing a field name which does
	// not exist in the layout.
	ErrFieldNotFound = errors.New("field not found")

	// ErrOverflow is returned when a packed value does not fit in the backing
	// type it is converted to.
	ErrOverflow = errors.New("overflow")

	// ErrIncompatibleLayout is returned by Layout.Compatible when two layouts
	// would not encode values the same way.
	//
	// All errors of this package may be wrapped with details about the
	// problem, applications must use errors.Is rather than equality
	// comparisons to test them.
	ErrIncompatibleLayout = errors.New("incompatible layout")
)

func errFieldNotFound(name string) error {
	return fmt.Errorf("%q: %w", name, ErrFieldNotFound)
}

func errDuplicateField(name string) error {
	return fmt.Errorf("%q: %w", name, ErrDuplicateField)
}

func errCapacityExceeded(name string, width, used, limit int) error {
	return fmt.Errorf("field %q requires %d bits but %d of %d bits are already in use: %w",
		name, width, used, limit, ErrCapacityExceeded)
}
