// SPDX-License-Identifier: MIT

// Package coo - coordinate (DOK) storage & safe accessors.
//
// Storage is a map keyed by a structured Coord, so lookups and writes are
// O(1) and memory is proportional to the number of stored cells. Map
// iteration order is unspecified; every surface that needs determinism
// (Cells, String, the codec) sorts row-major first.

package coo

import (
	"fmt"
	"sort"
)

// Coord identifies a single matrix cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Entry is a stored cell together with its coordinate, as returned by Cells.
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is a sparse integer matrix in coordinate form.
//   - rows, cols hold the declared dimensions (>= 0).
//   - cells maps each stored coordinate to its value; absent means 0.
//
// Dimensions never shrink below the extent of stored data: Set at an
// out-of-range coordinate grows the declared dimensions to cover it.
type Matrix struct {
	rows, cols int
	cells      map[Coord]int64
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates an empty rows×cols matrix with no stored cells.
// Zero dimensions are legal (a 0×0 matrix grows on the first Set).
// Returns ErrNegativeDimension if either dimension is negative.
// Complexity: O(1).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrNegativeDimension)
	}

	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: make(map[Coord]int64),
	}, nil
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored cells. Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.cells) }

// At returns the value stored at (row, col), or 0 when nothing is stored
// there. It never fails: declared dimensions are advisory for reads, so
// out-of-range (including negative) coordinates simply yield 0.
// Complexity: O(1).
func (m *Matrix) At(row, col int) int64 {
	return m.cells[Coord{row, col}]
}

// Set stores v at (row, col), overwriting any existing cell. Writing at or
// beyond the declared bounds grows rows/cols to row+1/col+1; this is the
// only way dimensions change. Explicit zeros are stored like any other
// value - Set reflects exactly what the caller asked for.
// Returns ErrNegativeIndex for negative coordinates.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v int64) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("Set(%d,%d): %w", row, col, ErrNegativeIndex)
	}
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}
	m.cells[Coord{row, col}] = v

	return nil
}

// Clone returns a deep copy; mutations of the copy never affect the
// original. Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	cp := make(map[Coord]int64, len(m.cells))
	for k, v := range m.cells {
		cp[k] = v
	}

	return &Matrix{rows: m.rows, cols: m.cols, cells: cp}
}

// Do visits every stored cell in unspecified order and stops early when f
// returns false. The callback must not call Set on the receiver.
// Complexity: O(nnz).
func (m *Matrix) Do(f func(row, col int, v int64) bool) {
	for k, v := range m.cells {
		if !f(k.Row, k.Col, v) {
			return
		}
	}
}

// Cells returns all stored cells sorted row-major (by row, then column).
// The stable order makes serialization and test comparison reproducible.
// Complexity: O(nnz·log nnz).
func (m *Matrix) Cells() []Entry {
	out := make([]Entry, 0, len(m.cells))
	for k, v := range m.cells {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Val: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Equal reports whether m and o have identical shape and agree at every
// coordinate. A stored zero compares equal to an absent cell, matching the
// semantics of At. Complexity: O(nnz(m)+nnz(o)).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for k, v := range m.cells {
		if v != o.cells[k] {
			return false
		}
	}
	for k, v := range o.cells {
		if v != m.cells[k] {
			return false
		}
	}

	return true
}

// String renders a compact diagnostic summary, not the wire format;
// use the coocodec package to serialize a matrix.
func (m *Matrix) String() string {
	return fmt.Sprintf("coo.Matrix(%dx%d, nnz=%d)", m.rows, m.cols, len(m.cells))
}
