// SPDX-License-Identifier: MIT
// Package tmd: validated per-model term storage.

package tmd

import (
	"fmt"

	"github.com/tmdlab/tmdlattice/matrix"
)

// Terms holds the matrices and scalars one model feeds into the lattice
// assembly. A nil matrix means the shell (or atom kind) is absent from the
// model; Validate checks that the present terms form a consistent whole.
type Terms struct {
	H0M, H0X *matrix.Dense

	H1M      *matrix.Dense
	H2M, H2X *matrix.Dense
	H3M      *matrix.Dense
	H4M      *matrix.Dense
	H5M, H5X *matrix.Dense
	H6M, H6X *matrix.Dense

	A            float64
	LambM, LambX float64
}

// Validate checks component consistency (every hopping touches atoms the
// model carries, and at least one hopping exists) and shape consistency
// (every block's dimensions match the onsite dimensions it connects).
func (t *Terms) Validate() error {
	if t.H0M == nil && t.H0X == nil {
		return fmt.Errorf("Terms.Validate: %w", ErrNoAtoms)
	}
	type req struct {
		name       string
		h          *matrix.Dense
		needM      bool
		needX      bool
		rows, cols int
	}
	mDim, xDim := 0, 0
	if t.H0M != nil {
		mDim = t.H0M.Rows()
	}
	if t.H0X != nil {
		xDim = t.H0X.Rows()
	}
	shells := []req{
		{"h_1_m", t.H1M, true, true, xDim, mDim},
		{"h_2_m", t.H2M, true, false, mDim, mDim},
		{"h_2_c", t.H2X, false, true, xDim, xDim},
		{"h_3_m", t.H3M, true, true, xDim, mDim},
		{"h_4_m", t.H4M, true, true, xDim, mDim},
		{"h_5_m", t.H5M, true, false, mDim, mDim},
		{"h_5_c", t.H5X, false, true, xDim, xDim},
		{"h_6_m", t.H6M, true, false, mDim, mDim},
		{"h_6_c", t.H6X, false, true, xDim, xDim},
	}
	hasHop := false
	for _, s := range shells {
		if s.h == nil {
			continue
		}
		hasHop = true
		if s.needM && t.H0M == nil {
			return fmt.Errorf("Terms.Validate: %s needs a metal onsite: %w", s.name, ErrMissingOnsite)
		}
		if s.needX && t.H0X == nil {
			return fmt.Errorf("Terms.Validate: %s needs a chalcogen onsite: %w", s.name, ErrMissingOnsite)
		}
		if s.h.Rows() != s.rows || s.h.Cols() != s.cols {
			return fmt.Errorf("Terms.Validate: %s is %dx%d, want %dx%d: %w",
				s.name, s.h.Rows(), s.h.Cols(), s.rows, s.cols, ErrShapeMismatch)
		}
	}
	if !hasHop {
		return fmt.Errorf("Terms.Validate: %w", ErrNoHoppings)
	}
	return nil
}
