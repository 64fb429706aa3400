// SPDX-License-Identifier: MIT

// Package tmd builds tight-binding lattice models of 1H transition-metal
// dichalcogenide monolayers.
//
// What:
//   - Orbitals: per-atom-kind angular momenta, names and symmetry groups,
//     with the derived rotation (Ur, UrAngle), mirror (Sr) and spin (Sh)
//     matrices assembled group by group.
//   - Matrices: the fixed symmetry-constrained shapes of every onsite and
//     hopping block, filled from a params.Set.
//   - Terms: the per-model selection of those blocks, validated for
//     component and shape consistency.
//   - Model: a preset plus functional options (spin-orbit coupling, the
//     rectangular four-atom cell, single-orbital splitting), with Lattice()
//     deriving a lattice.Lattice.
//   - Preset constructors TmdNN2Me through TmdNN123456MeoXeo, one per
//     published parameterization family.
//
// Why:
//   The symmetry group of the monolayer fixes every hopping matrix up to a
//   handful of independent parameters. Keeping the shapes here and the
//   numbers in params lets one assembly path serve three-, five-, six- and
//   eleven-band models alike.
//
// Errors:
//
//	ErrBadOrbitals   - inconsistent orbital configuration.
//	ErrNoAtoms       - model without onsite terms.
//	ErrNoHoppings    - model without hopping terms.
//	ErrMissingOnsite - hopping touching an absent atom kind.
//	ErrShapeMismatch - block dimensions disagree with the onsites.
//	ErrBadMaterial   - material formula does not split into two symbols.
//	ErrSpinFlipShape - spin-flip coupling on an unsupported orbital set.
//
// Parameter reads are silent-zero: a model built from a sparse set simply
// carries zero entries where the table gives no value.
package tmd
