// SPDX-License-Identifier: MIT

// Package lattice holds the assembled crystal description a tight-binding
// model produces: unit-cell vectors, ordered sublattices with onsite
// matrices, a registry of named hopping-energy matrices, and the hopping
// terms that reference them per relative cell index.
//
// What:
//   - Lattice: the container built via New(a1, a2) and populated through
//     AddSublattice, RegisterHoppingEnergy and AddHopping.
//   - Sublattice: a named site with a position and an onsite *matrix.Dense
//     whose dimension fixes the orbital count at that site.
//   - Hopping: one term, i.e. (relative cell, from-sublattice,
//     to-sublattice, energy name).
//
// Why:
//   Separating the named energy matrices from the terms that use them keeps
//   the container small and mirrors how the physics works: a handful of
//   distinct matrices reappear across many symmetry-related bonds. Sharing
//   by name means a model can be inspected or exported without duplicating
//   complex blocks.
//
// Errors:
//
//	ErrEmptyName           - empty sublattice or energy name.
//	ErrDuplicateSublattice - sublattice name already registered.
//	ErrUnknownSublattice   - hopping to or from an unregistered site.
//	ErrDuplicateHopping    - energy name already registered.
//	ErrUnknownHopping      - hopping references an unregistered energy.
//	ErrShapeMismatch       - energy dimensions disagree with the onsites.
//	ErrNilMatrix           - nil onsite or energy matrix.
//
// Insertion order is preserved everywhere: Sublattices, HoppingEnergies and
// Hoppings report items in the order they were added.
package lattice
