// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// lattice package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is.

package lattice

import "errors"

// Every message is prefixed with "lattice: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) where the
// offending name matters — callers still match via errors.Is.
var (
	// ErrEmptyName is returned when a sublattice or hopping energy is
	// registered under an empty name.
	ErrEmptyName = errors.New("lattice: empty name")

	// ErrDuplicateSublattice is returned when AddSublattice sees a name
	// that is already registered.
	ErrDuplicateSublattice = errors.New("lattice: duplicate sublattice")

	// ErrUnknownSublattice is returned when a hopping references a
	// sublattice name that was never added.
	ErrUnknownSublattice = errors.New("lattice: unknown sublattice")

	// ErrDuplicateHopping is returned when RegisterHoppingEnergy sees an
	// energy name that is already registered.
	ErrDuplicateHopping = errors.New("lattice: duplicate hopping energy")

	// ErrUnknownHopping is returned when AddHopping references an energy
	// name that was never registered.
	ErrUnknownHopping = errors.New("lattice: unknown hopping energy")

	// ErrShapeMismatch is returned when a term's matrix dimensions disagree
	// with the onsite dimensions of the sublattices it connects.
	ErrShapeMismatch = errors.New("lattice: hopping shape mismatch")

	// ErrNilMatrix is returned when a nil onsite or energy matrix is
	// supplied.
	ErrNilMatrix = errors.New("lattice: nil matrix")
)
