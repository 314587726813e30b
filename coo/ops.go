// SPDX-License-Identifier: MIT

// Package coo - sparse arithmetic.
//
// All operations here are pure: operands are read-only and every result is a
// freshly constructed Matrix. A result under construction is discarded on
// error, so callers never observe partial state.

package coo

// Add returns a+b. Both operands must share the same shape; otherwise a
// *ShapeError (wrapping ErrShapeMismatch) names the operation and both
// shapes. Cells present in only one operand keep that operand's value.
// Complexity: O(nnz(a)+nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, shapeError(OpAdd, a, b)
	}
	res := a.Clone()
	for k, v := range b.cells {
		res.cells[k] += v
	}

	return res, nil
}

// Sub returns a-b under the same shape precondition as Add. Cells present
// only in a keep a's value; cells present only in b contribute their
// negation. Complexity: O(nnz(a)+nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, shapeError(OpSub, a, b)
	}
	res := a.Clone()
	for k, v := range b.cells {
		res.cells[k] -= v
	}

	return res, nil
}

// Mul returns the a.Rows()×b.Cols() product of a and b. The inner
// dimensions must agree (a.Cols() == b.Rows()); otherwise a *ShapeError
// names the operation and both shapes.
//
// The scan is sparse-aware: only the stored cells of a drive the
// accumulation, and zero cells of b contribute nothing, so the cost is
// O(nnz(a)·cols(b)) instead of the dense triple loop. Zero products are
// skipped outright to keep the result sparse; int64 addition is commutative,
// so the unspecified map order cannot affect the accumulated values.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, shapeError(OpMul, a, b)
	}
	res := &Matrix{rows: a.rows, cols: b.cols, cells: make(map[Coord]int64)}
	for k, av := range a.cells {
		for j := 0; j < b.cols; j++ {
			bv := b.cells[Coord{k.Col, j}]
			if bv == 0 {
				continue
			}
			res.cells[Coord{k.Row, j}] += av * bv
		}
	}

	return res, nil
}

// Scale returns a copy of m with every stored cell multiplied by k.
// Scaling by zero keeps the coordinates but stores explicit zeros, since a
// Matrix reflects exactly what was written. Complexity: O(nnz).
func (m *Matrix) Scale(k int64) *Matrix {
	res := &Matrix{rows: m.rows, cols: m.cols, cells: make(map[Coord]int64, len(m.cells))}
	for c, v := range m.cells {
		res.cells[c] = v * k
	}

	return res
}

// Transpose returns the cols×rows mirror of m, with every stored cell moved
// from (r,c) to (c,r). Complexity: O(nnz).
func (m *Matrix) Transpose() *Matrix {
	res := &Matrix{rows: m.cols, cols: m.rows, cells: make(map[Coord]int64, len(m.cells))}
	for c, v := range m.cells {
		res.cells[Coord{c.Col, c.Row}] = v
	}

	return res
}
