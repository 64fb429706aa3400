// SPDX-License-Identifier: MIT
// Package tmd: orbital bookkeeping and the groupwise symmetry matrices.

package tmd

import (
	"fmt"
	"math"

	"github.com/tmdlab/tmdlattice/matrix"
)

// Kind identifies the atom species an orbital set belongs to.
type Kind string

const (
	// KindMetal is the transition-metal site of the trigonal-prismatic cell.
	KindMetal Kind = "M"
	// KindChalcogen is the chalcogen dimer site.
	KindChalcogen Kind = "X"
)

// kindOrder fixes iteration order over the orbital maps.
var kindOrder = []Kind{KindMetal, KindChalcogen}

// Orbitals stores, per atom kind, the angular-momentum numbers of the
// orbitals, their display names, and the symmetry groups that pair ±l
// orbitals into two-dimensional representations. The derived matrices
// (Ur, Sr, Sh) are assembled group by group: a paired group receives a 2x2
// block, a lone orbital a scalar.
type Orbitals struct {
	kinds     []Kind
	l         map[Kind][]int
	names     map[Kind][]string
	groups    map[Kind][]int
	clockwise bool
}

// OrbitalsOption adjusts optional orbital behaviour.
type OrbitalsOption func(*Orbitals)

// WithClockwise flips the sense of the threefold rotation matrices.
func WithClockwise() OrbitalsOption {
	return func(o *Orbitals) { o.clockwise = true }
}

// NewOrbitals validates and stores an orbital configuration. The three maps
// must agree on atom kinds and per-kind lengths; groups may be nil, in which
// case |l| is used and every l must appear alone or as an opposite pair.
func NewOrbitals(l map[Kind][]int, names map[Kind][]string, groups map[Kind][]int, opts ...OrbitalsOption) (*Orbitals, error) {
	if len(l) == 0 {
		return nil, fmt.Errorf("NewOrbitals: no atom kinds: %w", ErrBadOrbitals)
	}
	o := &Orbitals{
		l:      make(map[Kind][]int, len(l)),
		names:  make(map[Kind][]string, len(l)),
		groups: make(map[Kind][]int, len(l)),
	}
	for _, kind := range kindOrder {
		ls, ok := l[kind]
		if !ok {
			continue
		}
		ns, ok := names[kind]
		if !ok || len(ns) != len(ls) {
			return nil, fmt.Errorf("NewOrbitals(%s): names disagree with l: %w", kind, ErrBadOrbitals)
		}
		gs, ok := groups[kind]
		if groups != nil && !ok {
			return nil, fmt.Errorf("NewOrbitals(%s): groups missing for kind: %w", kind, ErrBadOrbitals)
		}
		if !ok {
			gs = make([]int, len(ls))
			for i, li := range ls {
				gs[i] = abs(li)
			}
		} else if len(gs) != len(ls) {
			return nil, fmt.Errorf("NewOrbitals(%s): groups disagree with l: %w", kind, ErrBadOrbitals)
		}
		if err := checkGroups(ls, gs); err != nil {
			return nil, fmt.Errorf("NewOrbitals(%s): %w", kind, err)
		}
		o.kinds = append(o.kinds, kind)
		o.l[kind] = append([]int(nil), ls...)
		o.names[kind] = append([]string(nil), ns...)
		o.groups[kind] = append([]int(nil), gs...)
	}
	if len(o.kinds) != len(l) {
		return nil, fmt.Errorf("NewOrbitals: unexpected atom kind: %w", ErrBadOrbitals)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// checkGroups enforces the representation rule: a group holds at most two
// orbitals, and a pair must carry opposite angular momenta.
func checkGroups(ls, gs []int) error {
	for _, g := range gs {
		var members []int
		for i, gi := range gs {
			if gi == g {
				members = append(members, i)
			}
		}
		switch len(members) {
		case 1:
		case 2:
			if ls[members[0]] != -ls[members[1]] {
				return fmt.Errorf("group %d pairs l=%d with l=%d: %w",
					g, ls[members[0]], ls[members[1]], ErrBadOrbitals)
			}
		default:
			return fmt.Errorf("group %d has %d members: %w", g, len(members), ErrBadOrbitals)
		}
	}
	return nil
}

// Kinds returns the configured atom kinds in canonical (M, X) order.
func (o *Orbitals) Kinds() []Kind {
	return append([]Kind(nil), o.kinds...)
}

// Has reports whether kind carries orbitals.
func (o *Orbitals) Has(kind Kind) bool {
	_, ok := o.l[kind]
	return ok
}

// L returns the angular-momentum numbers of kind.
func (o *Orbitals) L(kind Kind) []int {
	return append([]int(nil), o.l[kind]...)
}

// Names returns the orbital names of kind.
func (o *Orbitals) Names(kind Kind) []string {
	return append([]string(nil), o.names[kind]...)
}

// Groups returns the symmetry groups of kind.
func (o *Orbitals) Groups(kind Kind) []int {
	return append([]int(nil), o.groups[kind]...)
}

// Dim returns the orbital count of kind, 0 for an absent kind.
func (o *Orbitals) Dim(kind Kind) int { return len(o.l[kind]) }

// Ur returns the orbital rotation matrix over 2π/3 for kind.
func (o *Orbitals) Ur(kind Kind) *matrix.Dense {
	return o.UrAngle(kind, 2*math.Pi/3)
}

// UrAngle returns the orbital rotation matrix over phi for kind. Paired
// groups rotate as 2x2 blocks over phi·l; a negative leading l transposes
// the block, as does the clockwise setting.
func (o *Orbitals) UrAngle(kind Kind, phi float64) *matrix.Dense {
	return o.makeMatrix(kind,
		func(lm int, neg bool) [2][2]float64 {
			b := rotBlock(phi * float64(lm))
			if neg {
				b = transpose2(b)
			}
			if o.clockwise {
				b = transpose2(b)
			}
			return b
		},
		func(lm int, neg bool) float64 { return 1 },
	)
}

// Sr returns the yz-mirror matrix for kind.
func (o *Orbitals) Sr(kind Kind) *matrix.Dense {
	return o.makeMatrix(kind,
		func(lm int, neg bool) [2][2]float64 {
			f := 1.0
			if neg {
				f = -1
			}
			if lm != 1 {
				f = -f
			}
			return [2][2]float64{{-f, 0}, {0, f}}
		},
		func(lm int, neg bool) float64 { return 1 },
	)
}

// Sh returns the spin factor for kind: l/2 · [[0,−1],[1,0]] blocks on the
// paired groups, zero on lone orbitals.
func (o *Orbitals) Sh(kind Kind) *matrix.Dense {
	return o.makeMatrix(kind,
		func(lm int, neg bool) [2][2]float64 {
			h := float64(lm) / 2
			b := [2][2]float64{{0, -h}, {h, 0}}
			if neg {
				b = transpose2(b)
			}
			return b
		},
		func(lm int, neg bool) float64 { return 0 },
	)
}

// makeMatrix assembles a derived matrix group by group. The leading member
// of each group fixes |l| and the sign passed to the block builders.
func (o *Orbitals) makeMatrix(kind Kind, pair func(lm int, neg bool) [2][2]float64, single func(lm int, neg bool) float64) *matrix.Dense {
	ls := o.l[kind]
	gs := o.groups[kind]
	n := len(ls)
	if n == 0 {
		return nil // absent kind
	}
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil
	}
	for _, g := range distinct(gs) {
		var members []int
		for i, gi := range gs {
			if gi == g {
				members = append(members, i)
			}
		}
		lm := abs(ls[members[0]])
		neg := ls[members[0]] < 0
		if len(members) == 2 {
			b := pair(lm, neg)
			for bi, i := range members {
				for bj, j := range members {
					_ = out.Set(i, j, complex(b[bi][bj], 0))
				}
			}
		} else {
			_ = out.Set(members[0], members[0], complex(single(lm, neg), 0))
		}
	}
	return out
}

// rotBlock is the 2x2 rotation matrix over phi.
func rotBlock(phi float64) [2][2]float64 {
	c, s := math.Cos(phi), math.Sin(phi)
	return [2][2]float64{{c, -s}, {s, c}}
}

func transpose2(b [2][2]float64) [2][2]float64 {
	return [2][2]float64{{b[0][0], b[1][0]}, {b[0][1], b[1][1]}}
}

// distinct keeps the first occurrence order of values in gs.
func distinct(gs []int) []int {
	var out []int
	seen := make(map[int]bool, len(gs))
	for _, g := range gs {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
