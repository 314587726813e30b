// Package sparsemat is a small toolkit for integer matrices stored in
// sparse coordinate form, together with the plain-text format they live in
// on disk.
//
// What's inside?
//
//	A compact library split by concern:
//		• coo/      — the sparse matrix itself: coordinate-keyed storage,
//		              element access, Add/Sub/Mul plus Scale and Transpose
//		• coocodec/ — the text codec: parse and emit rows=, cols= and
//		              (row, col, value) lines, load and save files atomically
//		• cli/      — the interactive driver: prompt, compute, save
//		• cmd/      — the sparsemat binary (cobra)
//
// Why coordinate storage?
//
//   - Memory tracks the number of stored cells, not the declared shape
//   - Multiplication walks stored cells only: O(nnz·cols), never the dense
//     triple loop
//   - Everything absent reads as zero, so callers never branch on presence
//
// Errors are package-prefixed sentinels (matched with errors.Is) carried by
// structured types (inspected with errors.As), never formatted strings.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
