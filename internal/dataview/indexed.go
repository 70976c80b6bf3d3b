package dataview

import (
	"errors"
	"fmt"

	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

// IndexedView holds snapshots keyed by the value of an index feature,
// time by default.
type IndexedView struct {
	frame
	stack *index.Stack[float64, *Matrix]
}

func NewIndexed(bounds sheet.Bounds, mapper CoordinateMapper, opts Options) (*IndexedView, error) {
	f, err := newFrame(bounds, mapper, opts)
	if err != nil {
		return nil, err
	}
	stack, err := index.New[float64, *Matrix](index.Config[*Matrix]{
		Ascending: f.opts.IndexedAscending,
		Backend:   f.opts.Backend,
		Clone:     (*Matrix).Clone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParameterBounds, err)
	}
	return &IndexedView{frame: f, stack: stack}, nil
}

func (v *IndexedView) IndexedFeature() string { return v.opts.IndexedFeature }
func (v *IndexedView) Ascending() bool        { return v.opts.IndexedAscending }
func (v *IndexedView) Len() int               { return v.stack.Len() }

// Keys returns the recorded index values in stored order.
func (v *IndexedView) Keys() []float64 { return v.stack.Keys() }

// Record stores a copy of data under key. Ascending views insert before
// any snapshot already recorded under an equal key.
func (v *IndexedView) Record(data *Matrix, key float64) error {
	if data == nil {
		return ErrNilData
	}
	if !finite(key) {
		return fmt.Errorf("%w: %s must be finite, got %g", ErrParameterBounds, v.opts.IndexedFeature, key)
	}
	v.stack.Insert(key, data)
	v.logger.Debug("recorded snapshot",
		"feature", v.opts.IndexedFeature, "key", key, "entries", v.stack.Len())
	return nil
}

// RecordAll records data[i] under keys[i]. Nothing is recorded unless
// every pair is valid.
func (v *IndexedView) RecordAll(data []*Matrix, keys []float64) error {
	if len(data) != len(keys) {
		return fmt.Errorf("%w: %d snapshots, %d keys", ErrLengthMismatch, len(data), len(keys))
	}
	for i := range data {
		if data[i] == nil {
			return fmt.Errorf("snapshot %d: %w", i, ErrNilData)
		}
		if !finite(keys[i]) {
			return fmt.Errorf("%w: %s must be finite, got %g", ErrParameterBounds, v.opts.IndexedFeature, keys[i])
		}
	}
	for i := range data {
		v.stack.Insert(keys[i], data[i])
	}
	v.logger.Debug("recorded snapshots",
		"feature", v.opts.IndexedFeature, "count", len(data), "entries", v.stack.Len())
	return nil
}

// At returns the snapshot recorded under key. The snapshot belongs to the
// view and must not be modified.
func (v *IndexedView) At(key float64) (*Matrix, error) {
	m, err := v.stack.Get(key)
	if err != nil {
		if errors.Is(err, index.ErrKeyNotFound) {
			return nil, &KeyError{Feature: v.opts.IndexedFeature, Key: key, Wrapped: err}
		}
		return nil, err
	}
	return m, nil
}

// Slice returns the snapshots whose keys fall between start and stop; see
// index.Stack.Slice for the interval rules of each mode.
func (v *IndexedView) Slice(start, stop *float64, step int) index.Entries[float64, *Matrix] {
	return v.stack.Slice(start, stop, step)
}

func (v *IndexedView) Between(start, stop float64) index.Entries[float64, *Matrix] {
	return v.stack.Slice(&start, &stop, 1)
}

// Sample returns the value at p in every snapshot, in stored order.
func (v *IndexedView) Sample(p sheet.Point) ([]float64, error) {
	if v.stack.Len() == 0 {
		return nil, ErrEmpty
	}
	v.checkROI(p)

	entries := v.stack.Entries()
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		row, col, err := v.locate(e.Value, p)
		if err != nil {
			return nil, &KeyError{Feature: v.opts.IndexedFeature, Key: e.Key, Wrapped: err}
		}
		out = append(out, e.Value.At(row, col))
	}
	return out, nil
}

// View returns the snapshot in the last stored position and the bounds.
// In ascending views that is the one with the largest key.
func (v *IndexedView) View() (*Matrix, sheet.Bounds, error) {
	last, ok := v.stack.Last()
	if !ok {
		return nil, v.bounds, ErrEmpty
	}
	return last.Value, v.bounds, nil
}
