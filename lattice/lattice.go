// SPDX-License-Identifier: MIT
// Package lattice: the crystal container and its population operations.

package lattice

import (
	"fmt"

	"github.com/tmdlab/tmdlattice/matrix"
)

// Sublattice is one named site of the unit cell. The dimension of Onsite
// fixes the orbital count at the site; every hopping touching the site is
// validated against it.
type Sublattice struct {
	Name     string
	Position [2]float64
	Onsite   *matrix.Dense
}

// Hopping is one term: the energy matrix named Energy connects sublattice
// From in the home cell to sublattice To in the cell displaced by Cell unit
// vectors.
type Hopping struct {
	Cell   [2]int
	From   string
	To     string
	Energy string
}

// Lattice is a two-dimensional crystal: unit-cell vectors, ordered
// sublattices, a registry of named hopping-energy matrices, and the hopping
// terms referencing them. Zero value is not usable; construct with New.
type Lattice struct {
	a1, a2 [2]float64

	subs   []Sublattice
	subIdx map[string]int

	energies    map[string]*matrix.Dense
	energyNames []string

	hoppings []Hopping
}

// New returns an empty lattice spanned by the unit-cell vectors a1 and a2.
func New(a1, a2 [2]float64) *Lattice {
	return &Lattice{
		a1:       a1,
		a2:       a2,
		subIdx:   make(map[string]int),
		energies: make(map[string]*matrix.Dense),
	}
}

// A1 returns the first unit-cell vector.
func (l *Lattice) A1() [2]float64 { return l.a1 }

// A2 returns the second unit-cell vector.
func (l *Lattice) A2() [2]float64 { return l.a2 }

// AddSublattice registers a site under a unique non-empty name. The onsite
// matrix must be square; its dimension becomes the orbital count of the
// site.
func (l *Lattice) AddSublattice(name string, position [2]float64, onsite *matrix.Dense) error {
	if name == "" {
		return fmt.Errorf("AddSublattice: %w", ErrEmptyName)
	}
	if onsite == nil {
		return fmt.Errorf("AddSublattice(%q): %w", name, ErrNilMatrix)
	}
	if !onsite.IsSquare() {
		return fmt.Errorf("AddSublattice(%q): onsite %dx%d: %w",
			name, onsite.Rows(), onsite.Cols(), ErrShapeMismatch)
	}
	if _, ok := l.subIdx[name]; ok {
		return fmt.Errorf("AddSublattice(%q): %w", name, ErrDuplicateSublattice)
	}
	l.subIdx[name] = len(l.subs)
	l.subs = append(l.subs, Sublattice{Name: name, Position: position, Onsite: onsite})
	return nil
}

// RegisterHoppingEnergy stores a named energy matrix for later use by
// AddHopping. Names are unique; shape is validated per term, not here,
// since one matrix may serve bonds between differently sized sites only
// when their dimensions agree.
func (l *Lattice) RegisterHoppingEnergy(name string, energy *matrix.Dense) error {
	if name == "" {
		return fmt.Errorf("RegisterHoppingEnergy: %w", ErrEmptyName)
	}
	if energy == nil {
		return fmt.Errorf("RegisterHoppingEnergy(%q): %w", name, ErrNilMatrix)
	}
	if _, ok := l.energies[name]; ok {
		return fmt.Errorf("RegisterHoppingEnergy(%q): %w", name, ErrDuplicateHopping)
	}
	l.energies[name] = energy
	l.energyNames = append(l.energyNames, name)
	return nil
}

// AddHopping appends one term. Both sublattices and the energy must already
// be registered, and the energy shape must be (from-orbitals × to-orbitals).
func (l *Lattice) AddHopping(cell [2]int, from, to, energy string) error {
	fi, ok := l.subIdx[from]
	if !ok {
		return fmt.Errorf("AddHopping(%q): from %q: %w", energy, from, ErrUnknownSublattice)
	}
	ti, ok := l.subIdx[to]
	if !ok {
		return fmt.Errorf("AddHopping(%q): to %q: %w", energy, to, ErrUnknownSublattice)
	}
	h, ok := l.energies[energy]
	if !ok {
		return fmt.Errorf("AddHopping(%q): %w", energy, ErrUnknownHopping)
	}
	fd, td := l.subs[fi].Onsite.Rows(), l.subs[ti].Onsite.Rows()
	if h.Rows() != fd || h.Cols() != td {
		return fmt.Errorf("AddHopping(%q): energy %dx%d vs sites %dx%d: %w",
			energy, h.Rows(), h.Cols(), fd, td, ErrShapeMismatch)
	}
	l.hoppings = append(l.hoppings, Hopping{Cell: cell, From: from, To: to, Energy: energy})
	return nil
}

// Sublattices returns the registered sites in insertion order.
func (l *Lattice) Sublattices() []Sublattice {
	out := make([]Sublattice, len(l.subs))
	copy(out, l.subs)
	return out
}

// SublatticeByName returns the named site and whether it exists.
func (l *Lattice) SublatticeByName(name string) (Sublattice, bool) {
	i, ok := l.subIdx[name]
	if !ok {
		return Sublattice{}, false
	}
	return l.subs[i], true
}

// HoppingEnergy returns the registered energy matrix and whether it exists.
func (l *Lattice) HoppingEnergy(name string) (*matrix.Dense, bool) {
	h, ok := l.energies[name]
	return h, ok
}

// HoppingEnergies returns the registered energy names in insertion order.
func (l *Lattice) HoppingEnergies() []string {
	out := make([]string, len(l.energyNames))
	copy(out, l.energyNames)
	return out
}

// Hoppings returns the hopping terms in insertion order.
func (l *Lattice) Hoppings() []Hopping {
	out := make([]Hopping, len(l.hoppings))
	copy(out, l.hoppings)
	return out
}

// NSublattices reports the number of registered sites.
func (l *Lattice) NSublattices() int { return len(l.subs) }

// NHoppings reports the number of hopping terms.
func (l *Lattice) NHoppings() int { return len(l.hoppings) }
