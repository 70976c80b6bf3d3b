package dataview

import "github.com/san-kum/sheetview/internal/sheet"

// Cartesian2D is a DataView for data on a 2D Cartesian sheet.
type Cartesian2D = DataView

// Cartesian2Dx is an IndexedView for data on a 2D Cartesian sheet.
type Cartesian2Dx = IndexedView

func NewCartesian2D(bounds sheet.Bounds, opts Options) (*Cartesian2D, error) {
	return New(bounds, Cartesian{}, opts)
}

func NewCartesian2Dx(bounds sheet.Bounds, opts Options) (*Cartesian2Dx, error) {
	return NewIndexed(bounds, Cartesian{}, opts)
}
