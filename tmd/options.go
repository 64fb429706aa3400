// SPDX-License-Identifier: MIT
// Package tmd: functional options shared by every preset constructor.

package tmd

import "github.com/tmdlab/tmdlattice/params"

// DefaultSOCSz is the spin projection used when spin-orbit coupling is
// enabled and no explicit value is given.
const DefaultSOCSz = 1.0

// Option adjusts a model at construction time.
type Option func(*Model)

// WithSOC enables spin-orbit coupling. Unless polarized, the Hamiltonian
// doubles into spin-up and spin-down sectors.
func WithSOC() Option {
	return func(m *Model) { m.soc = true }
}

// WithSOCEOFlip enables the even/odd spin-flip coupling. It takes effect
// only under unpolarized spin-orbit coupling and requires the full d- and
// p-orbital sets.
func WithSOCEOFlip() Option {
	return func(m *Model) { m.socEOFlip = true }
}

// WithSOCPolarized keeps a single spin sector instead of doubling.
func WithSOCPolarized() Option {
	return func(m *Model) { m.socPolarized = true }
}

// WithoutSOCSzPart drops the diagonal Sz contribution of the spin-orbit
// coupling from the onsite terms.
func WithoutSOCSzPart() Option {
	return func(m *Model) { m.socSzPart = false }
}

// WithSOCSz sets the spin projection entering the Sz part.
func WithSOCSz(sz float64) Option {
	return func(m *Model) { m.sz = sz }
}

// WithLat4 switches to the rectangular four-atom cell used for armchair
// edges: doubled sublattices and six neighbour entries per shell.
func WithLat4() Option {
	return func(m *Model) { m.lat4 = true }
}

// WithSingleOrbital splits every matrix term into scalar per-orbital
// sublattices and hoppings.
func WithSingleOrbital() Option {
	return func(m *Model) { m.singleOrbital = true }
}

// WithParams replaces the preset's default parameter set.
func WithParams(p params.Set) Option {
	return func(m *Model) { m.params = p }
}
