// Package sheet provides the two-dimensional sheet coordinate system.
//
// A sheet is a continuous rectangle described by [Bounds]. Data recorded
// on a sheet is a discrete matrix, so every lookup needs to translate a
// continuous [Point] into a (row, col) matrix index:
//
//   - [Bounds]: left, bottom, right, top extent of a sheet
//   - [CoordinateSystem]: bounds plus per-axis density
//
// Rows grow downwards from the top edge, columns grow rightwards from
// the left edge.
//
// # Example
//
//	b := sheet.NewBounds(-0.5, -0.5, 0.5, 0.5)
//	cs, _ := sheet.NewCoordinateSystem(b, 10, 10)
//	row, col := cs.MatrixIndex(0, 0) // 5, 5
package sheet
