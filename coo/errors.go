// SPDX-License-Identifier: MIT

// Package coo: sentinel error set and structured shape errors.
// All operations return these sentinels (possibly wrapped with context via
// fmt.Errorf and %w, or via ShapeError); tests match them with errors.Is.
// Nothing in this package panics on caller-triggered conditions.

package coo

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeDimension is returned by New when rows or cols is negative.
	ErrNegativeDimension = errors.New("coo: negative dimension")

	// ErrNegativeIndex is returned by Set when row or col is negative.
	// Reads at negative coordinates are legal and yield 0.
	ErrNegativeIndex = errors.New("coo: negative index")

	// ErrShapeMismatch indicates incompatible operand dimensions:
	// Add/Sub with different shapes, or Mul where a.Cols() != b.Rows().
	// The returned error is always a *ShapeError wrapping this sentinel.
	ErrShapeMismatch = errors.New("coo: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("coo: nil matrix")
)

// Op names an arithmetic operation for error reporting.
type Op string

// Operation names used in ShapeError messages.
const (
	OpAdd Op = "addition"
	OpSub Op = "subtraction"
	OpMul Op = "multiplication"
)

// ShapeError reports incompatible operand shapes for an arithmetic operation.
// It unwraps to ErrShapeMismatch so callers can branch with errors.Is and
// still recover the operation and both shapes via errors.As.
type ShapeError struct {
	Op           Op
	ARows, ACols int
	BRows, BCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("coo: %s: dimension mismatch: %dx%d vs %dx%d",
		e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// shapeError builds a *ShapeError from two operands.
func shapeError(op Op, a, b *Matrix) error {
	return &ShapeError{
		Op:    op,
		ARows: a.rows, ACols: a.cols,
		BRows: b.rows, BCols: b.cols,
	}
}
