package coo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sparsemat/coo"
)

// OpsSuite exercises the sparse arithmetic operations.
type OpsSuite struct {
	suite.Suite
}

// mustMatrix builds a rows×cols matrix from (row, col, val) triples.
func (s *OpsSuite) mustMatrix(rows, cols int, cells ...[3]int64) *coo.Matrix {
	m, err := coo.New(rows, cols)
	require.NoError(s.T(), err)
	for _, c := range cells {
		require.NoError(s.T(), m.Set(int(c[0]), int(c[1]), c[2]))
	}

	return m
}

// TestAddOverlap verifies summing of shared coordinates and pass-through of
// coordinates present in only one operand.
func (s *OpsSuite) TestAddOverlap() {
	a := s.mustMatrix(2, 2, [3]int64{0, 0, 1}, [3]int64{1, 1, 2})
	b := s.mustMatrix(2, 2, [3]int64{0, 0, 3}, [3]int64{0, 1, 4})

	res, err := coo.Add(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), res.At(0, 0))
	require.Equal(s.T(), int64(4), res.At(0, 1))
	require.Equal(s.T(), int64(0), res.At(1, 0))
	require.Equal(s.T(), int64(2), res.At(1, 1))
}

// TestAddCommutative checks Add(a,b) == Add(b,a) element-wise.
func (s *OpsSuite) TestAddCommutative() {
	a := s.mustMatrix(3, 3, [3]int64{0, 2, 5}, [3]int64{2, 2, -1})
	b := s.mustMatrix(3, 3, [3]int64{0, 2, -5}, [3]int64{1, 0, 7})

	ab, err := coo.Add(a, b)
	require.NoError(s.T(), err)
	ba, err := coo.Add(b, a)
	require.NoError(s.T(), err)
	require.True(s.T(), ab.Equal(ba))
}

// TestAddThenSubRoundTrip verifies Sub(Add(a,b), b) == a at every coordinate.
func (s *OpsSuite) TestAddThenSubRoundTrip() {
	a := s.mustMatrix(2, 3, [3]int64{0, 0, 1}, [3]int64{1, 2, -4})
	b := s.mustMatrix(2, 3, [3]int64{0, 0, 9}, [3]int64{1, 1, 6})

	sum, err := coo.Add(a, b)
	require.NoError(s.T(), err)
	back, err := coo.Sub(sum, b)
	require.NoError(s.T(), err)

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(s.T(), a.At(r, c), back.At(r, c), "cell (%d,%d)", r, c)
		}
	}
}

// TestSubAsymmetric checks the three membership cases of subtraction.
func (s *OpsSuite) TestSubAsymmetric() {
	a := s.mustMatrix(2, 2, [3]int64{0, 0, 10}, [3]int64{0, 1, 3})
	b := s.mustMatrix(2, 2, [3]int64{0, 0, 4}, [3]int64{1, 0, 5})

	res, err := coo.Sub(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), res.At(0, 0))  // present in both
	require.Equal(s.T(), int64(3), res.At(0, 1))  // only in a
	require.Equal(s.T(), int64(-5), res.At(1, 0)) // only in b: negated
}

// TestMulConcrete pins the worked multiplication scenario.
func (s *OpsSuite) TestMulConcrete() {
	a := s.mustMatrix(2, 2, [3]int64{0, 0, 1}, [3]int64{1, 1, 2})
	b := s.mustMatrix(2, 2, [3]int64{0, 0, 3}, [3]int64{0, 1, 4})

	res, err := coo.Mul(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Rows())
	require.Equal(s.T(), 2, res.Cols())
	require.Equal(s.T(), int64(3), res.At(0, 0))
	require.Equal(s.T(), int64(4), res.At(0, 1))
	require.Equal(s.T(), int64(0), res.At(1, 0))
	require.Equal(s.T(), int64(0), res.At(1, 1))
}

// TestMulZeroLeft verifies that a zero left operand yields an all-zero
// result with no stored cells, whatever the right operand holds.
func (s *OpsSuite) TestMulZeroLeft() {
	zero := s.mustMatrix(3, 2)
	b := s.mustMatrix(2, 4, [3]int64{0, 0, 8}, [3]int64{1, 3, -2})

	res, err := coo.Mul(zero, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Rows())
	require.Equal(s.T(), 4, res.Cols())
	require.Equal(s.T(), 0, res.NNZ())
}

// TestMulRectangular exercises non-square shapes and accumulation across the
// inner dimension.
func (s *OpsSuite) TestMulRectangular() {
	// a = [1 2; 3 4] stored fully, b = 2×1 column [5; 6].
	a := s.mustMatrix(2, 2,
		[3]int64{0, 0, 1}, [3]int64{0, 1, 2},
		[3]int64{1, 0, 3}, [3]int64{1, 1, 4})
	b := s.mustMatrix(2, 1, [3]int64{0, 0, 5}, [3]int64{1, 0, 6})

	res, err := coo.Mul(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Rows())
	require.Equal(s.T(), 1, res.Cols())
	require.Equal(s.T(), int64(17), res.At(0, 0)) // 1*5 + 2*6
	require.Equal(s.T(), int64(39), res.At(1, 0)) // 3*5 + 4*6
}

// TestShapeMismatch covers the error surface of all three operations.
func (s *OpsSuite) TestShapeMismatch() {
	a := s.mustMatrix(2, 2, [3]int64{0, 0, 1})
	b := s.mustMatrix(3, 3, [3]int64{0, 0, 1})

	_, err := coo.Add(a, b)
	require.ErrorIs(s.T(), err, coo.ErrShapeMismatch)
	var shapeErr *coo.ShapeError
	require.ErrorAs(s.T(), err, &shapeErr)
	require.Equal(s.T(), coo.OpAdd, shapeErr.Op)
	require.Equal(s.T(), 2, shapeErr.ARows)
	require.Equal(s.T(), 3, shapeErr.BRows)

	_, err = coo.Sub(a, b)
	require.ErrorIs(s.T(), err, coo.ErrShapeMismatch)
	require.ErrorAs(s.T(), err, &shapeErr)
	require.Equal(s.T(), coo.OpSub, shapeErr.Op)

	// 2×2 · 3×3: inner dimensions 2 and 3 disagree.
	_, err = coo.Mul(a, b)
	require.ErrorIs(s.T(), err, coo.ErrShapeMismatch)
	require.ErrorAs(s.T(), err, &shapeErr)
	require.Equal(s.T(), coo.OpMul, shapeErr.Op)
}

// TestNilOperands checks the nil guard on all three operations.
func (s *OpsSuite) TestNilOperands() {
	a := s.mustMatrix(1, 1)
	for _, op := range []func(x, y *coo.Matrix) (*coo.Matrix, error){coo.Add, coo.Sub, coo.Mul} {
		_, err := op(nil, a)
		require.ErrorIs(s.T(), err, coo.ErrNilMatrix)
		_, err = op(a, nil)
		require.ErrorIs(s.T(), err, coo.ErrNilMatrix)
	}
}

// TestOperandsNotMutated verifies that arithmetic never touches its inputs.
func (s *OpsSuite) TestOperandsNotMutated() {
	a := s.mustMatrix(2, 2, [3]int64{0, 0, 1}, [3]int64{1, 1, 2})
	b := s.mustMatrix(2, 2, [3]int64{0, 0, 3}, [3]int64{1, 0, 4})
	aCopy := a.Clone()
	bCopy := b.Clone()

	_, err := coo.Add(a, b)
	require.NoError(s.T(), err)
	_, err = coo.Sub(a, b)
	require.NoError(s.T(), err)
	_, err = coo.Mul(a, b)
	require.NoError(s.T(), err)

	require.True(s.T(), a.Equal(aCopy))
	require.True(s.T(), b.Equal(bCopy))
}

// TestScale covers scaling, including the zero factor keeping coordinates.
func (s *OpsSuite) TestScale() {
	a := s.mustMatrix(2, 2, [3]int64{0, 1, 3}, [3]int64{1, 0, -2})

	doubled := a.Scale(2)
	require.Equal(s.T(), int64(6), doubled.At(0, 1))
	require.Equal(s.T(), int64(-4), doubled.At(1, 0))
	require.Equal(s.T(), int64(3), a.At(0, 1)) // original untouched

	zeroed := a.Scale(0)
	require.Equal(s.T(), int64(0), zeroed.At(0, 1))
	require.Equal(s.T(), 2, zeroed.NNZ()) // explicit zeros stay stored
}

// TestTranspose checks coordinate mirroring and shape swap.
func (s *OpsSuite) TestTranspose() {
	a := s.mustMatrix(2, 3, [3]int64{0, 2, 7}, [3]int64{1, 0, -1})

	tr := a.Transpose()
	require.Equal(s.T(), 3, tr.Rows())
	require.Equal(s.T(), 2, tr.Cols())
	require.Equal(s.T(), int64(7), tr.At(2, 0))
	require.Equal(s.T(), int64(-1), tr.At(0, 1))
	require.Equal(s.T(), int64(0), tr.At(0, 2))

	// Transposing twice restores the original.
	require.True(s.T(), tr.Transpose().Equal(a))
}

func TestOpsSuite(t *testing.T) {
	suite.Run(t, new(OpsSuite))
}

// TestAdd_IdentityWithZero keeps a plain-testing check outside the suite:
// adding an all-zero matrix is an identity at every coordinate.
func TestAdd_IdentityWithZero(t *testing.T) {
	a, _ := coo.New(2, 2)
	_ = a.Set(0, 1, 5)
	zero, _ := coo.New(2, 2)

	res, err := coo.Add(a, zero)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if !res.Equal(a) {
		t.Error("A + 0 differs from A")
	}
}
