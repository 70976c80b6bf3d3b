package dataview

import (
	"fmt"
	"log/slog"
	"maps"
	"math"

	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

const DefaultIndexedFeature = "time"

// Options configures a view. Start from DefaultOptions; constructors
// validate the result.
type Options struct {
	// Timestamp of the view, for staleness checks. Record never updates it.
	Timestamp *float64
	// CyclicInterval is the period of a cyclic dimension, nil if the
	// dimension does not wrap.
	CyclicInterval *float64
	// ROI is the region of interest. Samples outside it are logged.
	ROI    *sheet.Bounds
	Labels map[string]any
	// Style carries presentation hints and has no effect on data.
	Style map[string]any

	IndexedFeature   string
	IndexedAscending bool
	Backend          index.Backend

	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		IndexedFeature:   DefaultIndexedFeature,
		IndexedAscending: true,
		Backend:          index.SliceBackend,
	}
}

func (o Options) Validate(bounds sheet.Bounds) error {
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("%w: bounds: %w", ErrParameterBounds, err)
	}
	if o.Timestamp != nil && !finite(*o.Timestamp) {
		return fmt.Errorf("%w: timestamp must be finite, got %g", ErrParameterBounds, *o.Timestamp)
	}
	if o.CyclicInterval != nil && (!finite(*o.CyclicInterval) || *o.CyclicInterval <= 0) {
		return fmt.Errorf("%w: cyclic interval must be positive, got %g", ErrParameterBounds, *o.CyclicInterval)
	}
	if o.ROI != nil {
		if err := o.ROI.Validate(); err != nil {
			return fmt.Errorf("%w: roi: %w", ErrParameterBounds, err)
		}
	}
	if o.IndexedFeature == "" {
		return fmt.Errorf("%w: indexed feature must be named", ErrParameterBounds)
	}
	if err := o.Backend.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrParameterBounds, err)
	}
	if o.Backend == index.BTreeBackend && !o.IndexedAscending {
		return fmt.Errorf("%w: %w", ErrParameterBounds, index.ErrUnsupported)
	}
	return nil
}

// normalized returns a copy that shares no maps or pointers with o.
func (o Options) normalized() Options {
	c := o
	c.Labels = maps.Clone(o.Labels)
	c.Style = maps.Clone(o.Style)
	if c.Labels == nil {
		c.Labels = map[string]any{}
	}
	if c.Style == nil {
		c.Style = map[string]any{}
	}
	if o.Timestamp != nil {
		c.Timestamp = ptr(*o.Timestamp)
	}
	if o.CyclicInterval != nil {
		c.CyclicInterval = ptr(*o.CyclicInterval)
	}
	if o.ROI != nil {
		c.ROI = ptr(*o.ROI)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func ptr[T any](v T) *T { return &v }
