// SPDX-License-Identifier: MIT

// Package params holds the tight-binding parameter lists for
// transition-metal-dichalcogenide monolayers, together with the embedded
// literature tables they are loaded from.
//
// What:
//   - List: a parameter set in the symmetry-group (SG) convention, keyed by
//     onsite energies eps_{i}_{m|x}_{e|o} and hopping strengths
//     u_{shell}_{i}_{m|x}_{e|o} plus the lattice constant and spin-orbit
//     couplings.
//   - SKList: the Slater-Koster (SK) convention with separate even/odd
//     two-center integrals; the SG energies are derived from them and become
//     read-only.
//   - SKSimpleList: SK without the even/odd split; the split SK values fan
//     out from the parity-free ones and both layers become read-only.
//   - StrainList: the SG keys extended with strain-derivative families
//     (biaxial, uniaxial and shear).
//   - Table and the package-level registry (Liu2, Fang, Dias, ...): the
//     literature parameter sets, embedded as YAML and decoded once at init.
//
// Why:
//   Every lattice preset is "geometry plus one of these lists". Keeping the
//   lists as validated value objects with a uniform Get/Set surface lets the
//   assembly code stay convention-agnostic: it only ever reads SG keys, and
//   the SK lists keep those keys up to date through automatic recalculation.
//
// Reads are deliberately forgiving: Get returns 0.0 for any unset or unknown
// key, because a model that does not use a shell simply leaves its keys
// unset. Use Lookup when presence matters. Writes are strict: Set rejects
// keys outside the list's schema (ErrUnknownParam) and keys maintained by
// recalculation (ErrDerivedParam).
//
// Errors:
//
//	ErrUnknownParam    - key outside the list's schema.
//	ErrDerivedParam    - write to a recalculated, read-only key.
//	ErrUnknownTable    - registry lookup for a table that does not exist.
//	ErrUnknownMaterial - table lookup for a material or variant without an entry.
package params
