// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/cratefit/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.NewInt(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFloat(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.New[int32](-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewZeroInitialized verifies every cell starts at the additive identity.
func TestNewZeroInitialized(t *testing.T) {
	m, err := matrix.NewFloat(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

// TestKindSelection checks the element kind is derived from T.
func TestKindSelection(t *testing.T) {
	type meters float64

	require.Equal(t, matrix.KindInteger, matrix.KindOf[int]())
	require.Equal(t, matrix.KindInteger, matrix.KindOf[uint8]())
	require.Equal(t, matrix.KindFloating, matrix.KindOf[float32]())
	require.Equal(t, matrix.KindFloating, matrix.KindOf[meters]())

	im, err := matrix.NewInt(1, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.KindInteger, im.Kind())
	require.Equal(t, "integer", im.Kind().String())

	fm, err := matrix.NewFloat(1, 1)
	require.NoError(t, err)
	require.Equal(t, matrix.KindFloating, fm.Kind())
	require.Equal(t, "floating", fm.Kind().String())
}

// TestAtSetBounds exercises every edge of the valid index rectangle.
func TestAtSetBounds(t *testing.T) {
	const rows, cols = 3, 2
	m, err := matrix.NewInt(rows, cols)
	require.NoError(t, err)

	bad := [][2]int{{rows, 0}, {0, cols}, {-1, 0}, {0, -1}, {rows, cols}}
	for _, ij := range bad {
		_, err = m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])
		err = m.Set(ij[0], ij[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, i*cols+j))
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, i*cols+j, v)
		}
	}
}

// TestOutOfRangeMessage checks the error names the offending indices and size.
func TestOutOfRangeMessage(t *testing.T) {
	m, err := matrix.NewInt(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 1)
	require.EqualError(t, err, "Dense.At(2,1): matrix: index out of range in 2x2 matrix")
}

// TestFloatingRoundingBound checks stored values stay within one rounding
// unit of what was written and that rewrites are idempotent.
func TestFloatingRoundingBound(t *testing.T) {
	m, err := matrix.NewFloat(1, 1)
	require.NoError(t, err)

	inputs := []float64{
		0.123456789, -0.987654321, 1e-7, 12345.678901, math.Pi, -math.E, 0.000015,
		1e300, -1e304, 1e304, math.MaxFloat64, -math.MaxFloat64, 1 << 60,
	}
	for _, in := range inputs {
		require.NoError(t, m.Set(0, 0, in))
		first, err := m.At(0, 0)
		require.NoError(t, err)
		require.LessOrEqual(t, math.Abs(first-in), matrix.DefaultRoundingUnit, "input %v", in)

		require.NoError(t, m.Set(0, 0, in))
		second, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, first, second)

		require.NoError(t, m.Set(0, 0, first))
		third, err := m.At(0, 0)
		require.NoError(t, err)
		require.Equal(t, first, third)
	}
}

// TestFloatingRoundingOptions checks the rounding unit is configuration.
func TestFloatingRoundingOptions(t *testing.T) {
	quarter, err := matrix.NewFloat(1, 2, matrix.WithRoundingUnit(0.25))
	require.NoError(t, err)
	require.NoError(t, quarter.Set(0, 0, 0.3))
	require.NoError(t, quarter.Set(0, 1, 0.4))
	row, err := quarter.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.5}, row)

	two, err := matrix.NewFloat(1, 1, matrix.WithPrecision(2))
	require.NoError(t, err)
	require.NoError(t, two.Set(0, 0, 1.23456))
	v, err := two.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 1.23, v, 1e-12)
}

// TestIntegerWritesExact verifies integer matrices store values untouched.
func TestIntegerWritesExact(t *testing.T) {
	m, err := matrix.NewInt(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.MaxInt32))
	require.NoError(t, m.Set(0, 1, -7))

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{math.MaxInt32, -7}, row)
}

// TestRowCol validates row and column extraction return independent copies.
func TestRowCol(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	row[0] = 100
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewFromRowsRagged ensures rectangularity is enforced.
func TestNewFromRowsRagged(t *testing.T) {
	_, err := matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows[int](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(0.5))
	require.NoError(t, err)

	clone := m.Clone()
	require.True(t, clone.Equal(m))
	require.Equal(t, m.Options(), clone.Options())

	require.NoError(t, clone.Set(0, 0, 9))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.False(t, clone.Equal(m))
}

// TestEqualInteger verifies exact equality and dimension checks.
func TestEqualInteger(t *testing.T) {
	a, err := matrix.NewFromRows([][]int{{1, 2, 3}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]int{{1, 2, 3}})
	require.NoError(t, err)
	c, err := matrix.NewFromRows([][]int{{1}, {2}, {3}})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))

	require.NoError(t, b.Set(0, 2, 4))
	require.False(t, a.Equal(b))
}

// TestEqualFloatingTolerance verifies the epsilon comparison.
func TestEqualFloatingTolerance(t *testing.T) {
	base, err := matrix.NewFromRows([][]float64{{0.1, 2}})
	require.NoError(t, err)
	near, err := matrix.NewFromRows([][]float64{{0.10005, 2}})
	require.NoError(t, err)
	far, err := matrix.NewFromRows([][]float64{{0.1002, 2}})
	require.NoError(t, err)

	require.True(t, base.Equal(near))
	require.True(t, near.Equal(base))
	require.False(t, base.Equal(far))

	strict, err := matrix.NewFromRows([][]float64{{0.1, 2}}, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.False(t, strict.Equal(near))
}

// TestCopyValues covers a block copy and its bounds checks.
func TestCopyValues(t *testing.T) {
	src, err := matrix.NewFromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	dst, err := matrix.NewInt(4, 4)
	require.NoError(t, err)

	require.NoError(t, dst.CopyValues(src, 1, 2, 1, 1, 2, 2))
	want, err := matrix.NewFromRows([][]int{
		{0, 0, 0, 0},
		{0, 0, 5, 6},
		{0, 0, 8, 9},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	require.True(t, dst.Equal(want), "got\n%s", dst)

	before := dst.Clone()
	err = dst.CopyValues(src, 3, 3, 0, 0, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = dst.CopyValues(src, 0, 0, 2, 2, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = dst.CopyValues(src, -1, 0, 0, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.True(t, dst.Equal(before), "failed copies must not write")

	require.ErrorIs(t, dst.CopyValues(nil, 0, 0, 0, 0, 1, 1), matrix.ErrNilMatrix)
	require.NoError(t, dst.CopyValues(src, 0, 0, 0, 0, 0, 3))
}

// TestMoveRow shifts a row down by one.
func TestMoveRow(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	require.NoError(t, m.MoveRow(2))
	row, err := m.Row(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, row)

	require.ErrorIs(t, m.MoveRow(0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.MoveRow(3), matrix.ErrOutOfRange)
}

// TestStringAndDump checks the diagnostic rendering.
func TestStringAndDump(t *testing.T) {
	m, err := matrix.NewFromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", m.String())

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	require.Equal(t, "2x2 integer matrix\n[1, 0]\n[0, 1]\n", buf.String())
}
