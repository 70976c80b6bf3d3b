// Package dataview associates recorded sheet data with its spatial bounds.
//
// The package defines the containers used to hold activity recorded on a
// sheet during a simulation:
//
//   - [Matrix]: row-major snapshot of sheet activity
//   - [DataView]: a single snapshot plus bounds and metadata
//   - [IndexedView]: snapshots ordered by an index feature such as time
//   - [CoordinateMapper]: converts sheet coordinates to matrix cells
//   - [Cartesian]: mapper for data on a 2D Cartesian sheet
//
// # Example
//
//	v, _ := dataview.NewCartesian2Dx(sheet.Radius(0.5), dataview.DefaultOptions())
//	_ = v.Record(activity, 0.05)
//	series, _ := v.Sample(sheet.Point{X: 0, Y: 0})
//
// # Slicing
//
// [IndexedView.Slice] follows the index package: half-open intervals
// when the view is ascending, strict intervals when it is not.
//
// # Thread Safety
//
// Views are NOT thread-safe. A view shared between goroutines needs a
// single writer or an external mutex around Record and every read.
package dataview
