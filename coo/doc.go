// Package coo implements a sparse integer matrix in coordinate form
// (a "dictionary of keys"): only explicitly set cells are stored, keyed by
// their (row, column) coordinate, and every other position is implicitly zero.
//
// The coo package provides:
//
//   - Matrix, a mutable container of int64 cells with declared dimensions
//     that grow on out-of-range writes.
//   - Element access (At/Set), deterministic enumeration (Cells),
//     and structural helpers (Clone, Equal, NNZ, Do).
//   - Arithmetic over sparse operands: Add, Sub, Mul, Scale, Transpose.
//     Mul visits only the stored cells of its left operand, so its cost is
//     O(nnz(a)·cols(b)) rather than the dense O(rows·inner·cols).
//
// Coordinate storage is best when the fraction of nonzero cells is small;
// memory is O(nnz), independent of the declared dimensions.
//
// A Matrix is not safe for concurrent mutation: populate it from one
// goroutine, then share it freely once no more Set calls will occur.
package coo
