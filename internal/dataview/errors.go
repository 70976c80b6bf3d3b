package dataview

import (
	"errors"
	"fmt"

	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

// Domain errors for view operations.
var (
	// ErrNotImplemented indicates a view without a coordinate mapper.
	ErrNotImplemented = errors.New("dataview: coordinate mapping not implemented")

	// ErrEmpty indicates sampling or viewing before anything was recorded.
	ErrEmpty = errors.New("dataview: no data recorded")

	// ErrKeyNotFound indicates a point lookup for an unrecorded index value.
	ErrKeyNotFound = index.ErrKeyNotFound

	// ErrOutOfRange indicates a coordinate that maps outside the data matrix.
	ErrOutOfRange = errors.New("dataview: coordinate outside data matrix")

	// ErrParameterBounds indicates an option value outside its valid range.
	ErrParameterBounds = errors.New("dataview: parameter out of valid bounds")

	// ErrNilData indicates a nil snapshot passed to Record.
	ErrNilData = errors.New("dataview: nil data")

	// ErrShape indicates a matrix with invalid dimensions.
	ErrShape = errors.New("dataview: invalid matrix shape")

	ErrLengthMismatch = index.ErrLengthMismatch
)

// KeyError wraps a failed lookup with the index feature and key.
type KeyError struct {
	Feature string
	Key     float64
	Wrapped error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("dataview: %s=%g: %v", e.Feature, e.Key, e.Wrapped)
}

func (e *KeyError) Unwrap() error {
	return e.Wrapped
}

// RangeError reports where an out of range sample landed.
type RangeError struct {
	Point      sheet.Point
	Row, Col   int
	Rows, Cols int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dataview: point (%g, %g) maps to cell (%d, %d) outside %dx%d matrix",
		e.Point.X, e.Point.Y, e.Row, e.Col, e.Rows, e.Cols)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
