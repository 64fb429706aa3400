// Package tmd_test: tests for the term-storage consistency checks.
package tmd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmdlab/tmdlattice/matrix"
	"github.com/tmdlab/tmdlattice/tmd"
)

// TestTermsValidate verifies the component and shape checks.
func TestTermsValidate(t *testing.T) {
	empty := &tmd.Terms{}
	require.ErrorIs(t, empty.Validate(), tmd.ErrNoAtoms)

	onsiteOnly := &tmd.Terms{H0M: matrix.Eye(3)}
	require.ErrorIs(t, onsiteOnly.Validate(), tmd.ErrNoHoppings)

	noChalcogen := &tmd.Terms{H0M: matrix.Eye(3), H2X: matrix.Eye(3)}
	require.ErrorIs(t, noChalcogen.Validate(), tmd.ErrMissingOnsite)

	h1, err := matrix.NewDense(3, 3) // first shell must be chalcogen x metal
	require.NoError(t, err)
	noMetalDim := &tmd.Terms{H0M: matrix.Eye(3), H0X: matrix.Eye(6), H1M: h1}
	require.ErrorIs(t, noMetalDim.Validate(), tmd.ErrShapeMismatch)

	ok63, err := matrix.NewDense(6, 3)
	require.NoError(t, err)
	good := &tmd.Terms{H0M: matrix.Eye(3), H0X: matrix.Eye(6), H1M: ok63}
	require.NoError(t, good.Validate())

	metalOnly := &tmd.Terms{H0M: matrix.Eye(3), H2M: matrix.Eye(3), H6M: matrix.Eye(3)}
	require.NoError(t, metalOnly.Validate())

	badSquare := &tmd.Terms{H0M: matrix.Eye(3), H2M: matrix.Eye(4)}
	require.ErrorIs(t, badSquare.Validate(), tmd.ErrShapeMismatch)
}
