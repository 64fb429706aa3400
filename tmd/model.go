// SPDX-License-Identifier: MIT
// Package tmd: the model configuration and its derived quantities.

package tmd

import (
	"fmt"
	"math"
	"regexp"

	"github.com/tmdlab/tmdlattice/params"
)

// atomRe splits a material formula like "MoS2" into element symbols.
var atomRe = regexp.MustCompile(`[A-Z][a-z]*`)

// Model is one tight-binding model: an orbital configuration, a parameter
// set, band counts, and the flags that shape the produced lattice. Models
// are built by the preset constructors; Lattice derives the crystal.
type Model struct {
	name     string
	orbitals *Orbitals
	params   params.Set

	nV, nB int

	soc           bool
	socEOFlip     bool
	socPolarized  bool
	socSzPart     bool
	sz            float64
	lat4          bool
	singleOrbital bool

	terms func(Matrices) (*Terms, error)
}

// newModel wires a preset configuration and applies the options.
func newModel(name string, orbitals *Orbitals, defaults params.Set, nV, nB int,
	terms func(Matrices) (*Terms, error), opts []Option) *Model {
	m := &Model{
		name:      name,
		orbitals:  orbitals,
		params:    defaults,
		nV:        nV,
		nB:        nB,
		socSzPart: true,
		sz:        DefaultSOCSz,
		terms:     terms,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the display name of the model, e.g. "11 bands 6NN model".
func (m *Model) Name() string { return m.name }

// Material returns the material formula of the bound parameter set.
func (m *Model) Material() string { return m.params.Material() }

// Params returns the bound parameter set.
func (m *Model) Params() params.Set { return m.params }

// Orbitals returns the orbital configuration.
func (m *Model) Orbitals() *Orbitals { return m.orbitals }

// atomNames splits the material formula into metal and chalcogen symbols.
func (m *Model) atomNames() (string, string, error) {
	parts := atomRe.FindAllString(m.Material(), -1)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("atomNames(%q): %w", m.Material(), ErrBadMaterial)
	}
	return parts[0], parts[1], nil
}

// MetalName returns the metal element symbol, or "" when the material
// formula does not parse.
func (m *Model) MetalName() string {
	mn, _, err := m.atomNames()
	if err != nil {
		return ""
	}
	return mn
}

// ChalcogenName returns the chalcogen element symbol, or "" when the
// material formula does not parse.
func (m *Model) ChalcogenName() string {
	_, xn, err := m.atomNames()
	if err != nil {
		return ""
	}
	return xn
}

// SOCDoubled reports whether the Hamiltonian doubles into two spin sectors.
func (m *Model) SOCDoubled() bool { return m.soc && !m.socPolarized }

// socEOFlipUsed reports whether the even/odd spin-flip blocks are inserted.
func (m *Model) socEOFlipUsed() bool { return m.soc && m.socEOFlip && !m.socPolarized }

// NValenceBand returns the index of the highest valence band, corrected for
// the spin doubling.
func (m *Model) NValenceBand() int {
	if m.SOCDoubled() {
		return (m.nV+1)*2 - 1
	}
	return m.nV
}

// NBands returns the number of bands in the unit cell, corrected for the
// spin doubling.
func (m *Model) NBands() int {
	if m.SOCDoubled() {
		return m.nB * 2
	}
	return m.nB
}

// Lat4 reports whether the rectangular four-atom cell is used.
func (m *Model) Lat4() bool { return m.lat4 }

// A1 returns the first unit-cell vector.
func (m *Model) A1() [2]float64 {
	a := m.params.Get("a")
	return [2]float64{a, 0}
}

// A2 returns the second unit-cell vector, rectangular when lat4 is set.
func (m *Model) A2() [2]float64 {
	a := m.params.Get("a")
	if m.lat4 {
		return [2]float64{0, math.Sqrt(3) * a}
	}
	return [2]float64{-a / 2, math.Sqrt(3) / 2 * a}
}
