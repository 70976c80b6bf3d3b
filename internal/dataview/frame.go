package dataview

import (
	"log/slog"
	"maps"

	"github.com/san-kum/sheetview/internal/sheet"
)

// frame holds what every view shares: bounds, metadata and the mapper.
type frame struct {
	bounds sheet.Bounds
	opts   Options
	mapper CoordinateMapper
	logger *slog.Logger
}

func newFrame(bounds sheet.Bounds, mapper CoordinateMapper, opts Options) (frame, error) {
	if err := opts.Validate(bounds); err != nil {
		return frame{}, err
	}
	opts = opts.normalized()
	return frame{bounds: bounds, opts: opts, mapper: mapper, logger: opts.Logger}, nil
}

func (f *frame) Bounds() sheet.Bounds { return f.bounds }

func (f *frame) Timestamp() (float64, bool) {
	if f.opts.Timestamp == nil {
		return 0, false
	}
	return *f.opts.Timestamp, true
}

func (f *frame) CyclicInterval() (float64, bool) {
	if f.opts.CyclicInterval == nil {
		return 0, false
	}
	return *f.opts.CyclicInterval, true
}

func (f *frame) ROI() (sheet.Bounds, bool) {
	if f.opts.ROI == nil {
		return sheet.Bounds{}, false
	}
	return *f.opts.ROI, true
}

func (f *frame) Labels() map[string]any { return maps.Clone(f.opts.Labels) }
func (f *frame) Style() map[string]any  { return maps.Clone(f.opts.Style) }

func (f *frame) SetLabel(key string, v any) { f.opts.Labels[key] = v }

// locate maps p onto m through the view's mapper.
func (f *frame) locate(m *Matrix, p sheet.Point) (row, col int, err error) {
	if f.mapper == nil {
		return 0, 0, ErrNotImplemented
	}
	row, col, err = f.mapper.MatrixIndex(f.bounds, m.Rows(), m.Cols(), p)
	if err != nil {
		return 0, 0, err
	}
	if !m.Contains(row, col) {
		return 0, 0, &RangeError{Point: p, Row: row, Col: col, Rows: m.Rows(), Cols: m.Cols()}
	}
	return row, col, nil
}

func (f *frame) checkROI(p sheet.Point) {
	if f.opts.ROI != nil && !f.opts.ROI.Contains(p) {
		f.logger.Warn("sample outside region of interest",
			"x", p.X, "y", p.Y, "roi", f.opts.ROI.String())
	}
}
