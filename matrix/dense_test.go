// Package matrix_test contains unit tests for the Dense complex matrix type.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdlab/tmdlattice/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)            // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDense(5, -1)             // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape
}

// TestRowsCols verifies that Rows() and Cols() return the construction sizes.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4) // create a 3x4 Dense matrix
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.False(t, m.IsSquare())
}

// TestFromRowsRagged ensures FromRows rejects ragged and empty input.
func TestFromRowsRagged(t *testing.T) {
	_, err := matrix.FromRows(nil) // empty input
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]complex128{{1, 2}, {3}}) // ragged rows
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRowsValues verifies element placement of FromRows.
func TestFromRowsValues(t *testing.T) {
	m, err := matrix.FromRows([][]complex128{
		{1, 2i},
		{3, 4},
	})
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2i, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(3), v)
}

// TestDiagEye verifies Diag and Eye place values on the main diagonal only.
func TestDiagEye(t *testing.T) {
	d := matrix.Diag(1, 2i, 3)
	require.Equal(t, 3, d.Rows())
	require.True(t, d.IsSquare())

	v, err := d.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2i, v)

	v, err = d.At(0, 2) // off-diagonal entries stay zero
	require.NoError(t, err)
	require.Equal(t, complex128(0), v)

	want, err := matrix.FromRows([][]complex128{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.True(t, matrix.Eye(2).EqualApprox(want, 0))
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1) // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7+8i))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7+8i, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := matrix.Diag(1, 2)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), orig) // original remains unchanged

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(3), got)
}

// TestStringOutput checks that String() renders one bracketed row per line.
func TestStringOutput(t *testing.T) {
	m, err := matrix.FromRows([][]complex128{{1, 0}, {0, 1}})
	require.NoError(t, err)

	require.Equal(t, "[(1+0i), (0+0i)]\n[(0+0i), (1+0i)]\n", m.String())
}
