package dataview

import (
	"fmt"
	"slices"
)

// Matrix is a dense row-major grid of activity values.
type Matrix struct {
	rows int
	cols int
	data []float64
}

func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// MatrixFrom copies nested rows into a new matrix. Rows must be non-empty
// and of equal length.
func MatrixFrom(values [][]float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	m, err := NewMatrix(len(values), len(values[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range values {
		if len(row) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, r, len(row), m.cols)
		}
		copy(m.data[r*m.cols:], row)
	}
	return m, nil
}

// Fill returns a rows x cols matrix with every cell set to v.
func Fill(rows, cols int, v float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = v
	}
	return m, nil
}

func (m *Matrix) Rows() int               { return m.rows }
func (m *Matrix) Cols() int               { return m.cols }
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

func (m *Matrix) Contains(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.cols+col]
}

func (m *Matrix) Set(row, col int, v float64) {
	m.data[row*m.cols+col] = v
}

func (m *Matrix) Clone() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
}

// Rowwise returns a nested copy of the matrix.
func (m *Matrix) Rowwise() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = slices.Clone(m.data[r*m.cols : (r+1)*m.cols])
	}
	return out
}

func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.rows == o.rows && m.cols == o.cols && slices.Equal(m.data, o.data)
}
