package sheet

import (
	"fmt"
	"math"
)

// CoordinateSystem maps continuous sheet coordinates onto matrix indices.
type CoordinateSystem struct {
	bounds   Bounds
	xdensity float64
	ydensity float64
}

func NewCoordinateSystem(b Bounds, xdensity, ydensity float64) (*CoordinateSystem, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !(xdensity > 0) || !(ydensity > 0) || math.IsInf(xdensity, 0) || math.IsInf(ydensity, 0) {
		return nil, fmt.Errorf("sheet: density must be positive and finite, got x=%g y=%g", xdensity, ydensity)
	}
	return &CoordinateSystem{bounds: b, xdensity: xdensity, ydensity: ydensity}, nil
}

// ForShape builds a coordinate system whose densities fit a rows x cols
// matrix exactly inside b.
func ForShape(b Bounds, rows, cols int) (*CoordinateSystem, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("sheet: shape must be positive, got %dx%d", rows, cols)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return NewCoordinateSystem(b, float64(cols)/b.Width(), float64(rows)/b.Height())
}

func (cs *CoordinateSystem) Bounds() Bounds    { return cs.bounds }
func (cs *CoordinateSystem) XDensity() float64 { return cs.xdensity }
func (cs *CoordinateSystem) YDensity() float64 { return cs.ydensity }

// Matrix returns the continuous (row, col) position of (x, y).
func (cs *CoordinateSystem) Matrix(x, y float64) (row, col float64) {
	col = (x - cs.bounds.Left) * cs.xdensity
	row = (cs.bounds.Top - y) * cs.ydensity
	return row, col
}

// MatrixIndex returns the discrete matrix cell containing (x, y). The
// result may lie outside the matrix when the point is outside the bounds
// or on the right/bottom edge.
func (cs *CoordinateSystem) MatrixIndex(x, y float64) (row, col int) {
	r, c := cs.Matrix(x, y)
	return int(math.Floor(r)), int(math.Floor(c))
}

// Sheet is the inverse of Matrix.
func (cs *CoordinateSystem) Sheet(row, col float64) (x, y float64) {
	x = cs.bounds.Left + col/cs.xdensity
	y = cs.bounds.Top - row/cs.ydensity
	return x, y
}

// CellCenter returns the sheet coordinate at the centre of a matrix cell.
func (cs *CoordinateSystem) CellCenter(row, col int) (x, y float64) {
	return cs.Sheet(float64(row)+0.5, float64(col)+0.5)
}
