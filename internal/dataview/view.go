package dataview

import "github.com/san-kum/sheetview/internal/sheet"

// DataView holds a single snapshot together with its bounds.
type DataView struct {
	frame
	data *Matrix
}

// New creates an empty view. A nil mapper is allowed, but Sample then
// fails with ErrNotImplemented.
func New(bounds sheet.Bounds, mapper CoordinateMapper, opts Options) (*DataView, error) {
	f, err := newFrame(bounds, mapper, opts)
	if err != nil {
		return nil, err
	}
	return &DataView{frame: f}, nil
}

// Record replaces the stored snapshot with a copy of data.
func (v *DataView) Record(data *Matrix) error {
	if data == nil {
		return ErrNilData
	}
	v.data = data.Clone()
	v.logger.Debug("recorded snapshot", "rows", data.Rows(), "cols", data.Cols())
	return nil
}

func (v *DataView) Sample(p sheet.Point) (float64, error) {
	if v.data == nil {
		return 0, ErrEmpty
	}
	v.checkROI(p)
	row, col, err := v.locate(v.data, p)
	if err != nil {
		return 0, err
	}
	return v.data.At(row, col), nil
}

// View returns the stored snapshot and the bounds. The snapshot belongs
// to the view and must not be modified.
func (v *DataView) View() (*Matrix, sheet.Bounds, error) {
	if v.data == nil {
		return nil, v.bounds, ErrEmpty
	}
	return v.data, v.bounds, nil
}

func (v *DataView) Len() int {
	if v.data == nil {
		return 0
	}
	return 1
}
