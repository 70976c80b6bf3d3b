package dataview

import "github.com/san-kum/sheetview/internal/sheet"

// CoordinateMapper converts a sheet coordinate into the matrix cell of a
// rows x cols snapshot laid over bounds.
type CoordinateMapper interface {
	MatrixIndex(bounds sheet.Bounds, rows, cols int, p sheet.Point) (row, col int, err error)
}

// Cartesian maps points on a 2D Cartesian sheet. Density along x is
// cols per unit width and along y rows per unit height.
type Cartesian struct{}

func (Cartesian) MatrixIndex(bounds sheet.Bounds, rows, cols int, p sheet.Point) (int, int, error) {
	cs, err := sheet.ForShape(bounds, rows, cols)
	if err != nil {
		return 0, 0, err
	}
	row, col := cs.MatrixIndex(p.X, p.Y)
	return row, col, nil
}
