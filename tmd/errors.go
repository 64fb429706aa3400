// SPDX-License-Identifier: MIT
// Package tmd: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tmd
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is.

package tmd

import "errors"

// Every message is prefixed with "tmd: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) where the
// offending kind, key or shape matters — callers still match via errors.Is.
var (
	// ErrBadOrbitals is returned when the orbital configuration is
	// inconsistent: mismatched atom kinds or lengths across the maps, a
	// symmetry group with more than two members, or a paired group whose
	// angular momenta are not opposite.
	ErrBadOrbitals = errors.New("tmd: invalid orbital configuration")

	// ErrNoAtoms is returned when a model carries neither a metal nor a
	// chalcogen onsite term.
	ErrNoAtoms = errors.New("tmd: no atoms in model")

	// ErrNoHoppings is returned when a model carries onsite terms but not
	// a single hopping matrix.
	ErrNoHoppings = errors.New("tmd: no hoppings in model")

	// ErrMissingOnsite is returned when a hopping matrix touches an atom
	// kind whose onsite term is absent.
	ErrMissingOnsite = errors.New("tmd: hopping without matching onsite")

	// ErrShapeMismatch is returned when a term's dimensions disagree with
	// the onsite dimensions of the atoms it connects.
	ErrShapeMismatch = errors.New("tmd: term shape mismatch")

	// ErrBadMaterial is returned when the material formula does not parse
	// into a metal and a chalcogen symbol, e.g. anything unlike "MoS2".
	ErrBadMaterial = errors.New("tmd: malformed material formula")

	// ErrSpinFlipShape is returned when the even/odd spin-flip coupling is
	// requested for a model whose orbital set cannot host it.
	ErrSpinFlipShape = errors.New("tmd: orbital set does not support spin-flip coupling")
)
