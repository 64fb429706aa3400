// SPDX-License-Identifier: MIT
// Package tmd: derivation of the crystal from a model's terms.

package tmd

import (
	"fmt"
	"math"

	"github.com/tmdlab/tmdlattice/lattice"
	"github.com/tmdlab/tmdlattice/matrix"
)

// refsMetal and refsChalcogen are the angular-momentum orderings the fixed
// spin-flip blocks are written in; reordering maps them onto the model's
// own orbital ordering.
var (
	refsMetal     = []int{0, 2, -2, 1, -1}
	refsChalcogen = []int{1, -1, 0}
)

// shellSpec describes one neighbour shell: its base matrix, the atom kinds
// it connects, the relative-cell tables for the three-site and four-site
// cells, and which of the two chalcogen/metal copies each lat4 bond ends on.
type shellSpec struct {
	name     string
	h        *matrix.Dense
	from, to Kind
	cos3     [3][2]int
	cos6     [6][2]int
	toPat    [6]int
}

// assembler carries the state of one Lattice() derivation.
type assembler struct {
	m     *Model
	terms *Terms
	lat   *lattice.Lattice

	mName, xName string
	a            float64
}

// Lattice derives the crystal: validated terms, onsite sublattices with the
// configured spin-orbit treatment, and every neighbour shell the model
// carries, as threefold-rotated hopping families.
func (m *Model) Lattice() (*lattice.Lattice, error) {
	const tag = "Lattice"
	t, err := m.terms(NewMatrices(m.params))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	t.A = m.params.Get("a")
	t.LambM = m.params.Get("lamb_m")
	t.LambX = m.params.Get("lamb_x")
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	mName, xName, err := m.atomNames()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if m.socEOFlipUsed() {
		if err := m.checkSpinFlipShapes(t); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}
	asm := &assembler{
		m:     m,
		terms: t,
		lat:   lattice.New(m.A1(), m.A2()),
		mName: mName,
		xName: xName,
		a:     t.A,
	}
	if err := asm.build(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return asm.lat, nil
}

// checkSpinFlipShapes verifies the orbital sets admit the fixed flip blocks.
func (m *Model) checkSpinFlipShapes(t *Terms) error {
	if t.H0M != nil && !sameMultiset(m.orbitals.L(KindMetal), []int{0, 2, -2, 1, -1}) {
		return fmt.Errorf("metal orbitals %v: %w", m.orbitals.L(KindMetal), ErrSpinFlipShape)
	}
	if t.H0X != nil && !sameMultiset(m.orbitals.L(KindChalcogen), []int{1, -1, 0, 1, -1, 0}) {
		return fmt.Errorf("chalcogen orbitals %v: %w", m.orbitals.L(KindChalcogen), ErrSpinFlipShape)
	}
	return nil
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

func (b *assembler) build() error {
	if b.terms.H0M != nil {
		if err := b.addOnsites(b.terms.H0M, KindMetal, b.terms.LambM); err != nil {
			return err
		}
	}
	if b.terms.H0X != nil {
		if err := b.addOnsites(b.terms.H0X, KindChalcogen, b.terms.LambX); err != nil {
			return err
		}
	}
	return b.addShells()
}

// siteBase returns the sublattice base name of kind, with copy 2 for the
// lat4 duplicate.
func (b *assembler) siteBase(kind Kind, cp int) string {
	base := b.mName
	if kind == KindChalcogen {
		base = b.xName
	}
	if cp == 2 {
		base += "2"
	}
	return base
}

// sitePos returns the position of the (kind, copy) sublattice.
func (b *assembler) sitePos(kind Kind, cp int) [2]float64 {
	s3 := math.Sqrt(3)
	switch {
	case kind == KindMetal && cp == 1:
		return [2]float64{0, 0}
	case kind == KindMetal && cp == 2:
		return [2]float64{b.a / 2, b.a * s3 / 2}
	case kind == KindChalcogen && cp == 1:
		return [2]float64{b.a / 2, b.a * s3 / 6}
	default:
		return [2]float64{0, 2 * b.a * s3 / 3}
	}
}

// siteOrbs returns the per-orbital sublattice names of (kind, copy),
// doubled with u/d suffixes under unpolarized spin-orbit coupling.
func (b *assembler) siteOrbs(kind Kind, cp int) []string {
	base := b.siteBase(kind, cp)
	names := b.m.orbitals.Names(kind)
	out := make([]string, 0, 2*len(names))
	for _, n := range names {
		out = append(out, base+n)
	}
	if b.m.SOCDoubled() {
		up := make([]string, 0, 2*len(out))
		for _, n := range out {
			up = append(up, n+"u")
		}
		for _, n := range out {
			up = append(up, n+"d")
		}
		out = up
	}
	return out
}

// hopName builds the registry name of one hopping-energy entry.
func hopName(h string, n int, from, to string) string {
	return fmt.Sprintf("%s-%d-%s-%s", h, n, from, to)
}

// makeOnsite applies the configured spin-orbit treatment to an onsite term.
func (b *assembler) makeOnsite(h *matrix.Dense, kind Kind, lamb float64) (*matrix.Dense, error) {
	hamSz := func(sz float64) (*matrix.Dense, error) {
		if !b.m.socSzPart {
			return h.Clone(), nil
		}
		return h.Add(b.m.orbitals.Sh(kind).Scale(complex(0, sz*lamb)))
	}
	if !b.m.soc {
		return hamSz(0)
	}
	if b.m.socPolarized {
		return hamSz(b.m.sz)
	}
	up, err := hamSz(b.m.sz)
	if err != nil {
		return nil, err
	}
	down, err := hamSz(-b.m.sz)
	if err != nil {
		return nil, err
	}
	return matrix.BlockDiag(up, down)
}

// spinFlipBlock builds the fixed even/odd coupling block of kind, reordered
// onto the model's angular-momentum ordering.
func (b *assembler) spinFlipBlock(kind Kind, lamb float64) (*matrix.Dense, error) {
	sz := b.m.sz
	ls := b.m.orbitals.L(kind)
	if kind == KindMetal {
		part, err := matrix.NewDense(5, 5)
		if err != nil {
			return nil, err
		}
		f := complex(sz*lamb, 0)
		rows := [2][3]complex128{
			{complex(math.Sqrt(3)/2, 0), -0.5, 0.5i},
			{complex(0, -math.Sqrt(3)/2), -0.5i, -0.5},
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				v := f * rows[i][j]
				if err := part.Set(3+i, j, v); err != nil {
					return nil, err
				}
				if err := part.Set(j, 3+i, -v); err != nil {
					return nil, err
				}
			}
		}
		keys := make([]int, len(ls))
		for i, l := range ls {
			keys[i] = nearestIndex(refsMetal, l)
		}
		return part.Reorder(keys, keys)
	}
	part, err := matrix.NewDense(6, 6)
	if err != nil {
		return nil, err
	}
	f := complex(sz*lamb, 0)
	block := [3][3]complex128{
		{0, 0, 0.5},
		{0, 0, -0.5i},
		{-0.5, 0.5i, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := f * block[i][j]
			if err := part.Set(i, 3+j, v); err != nil {
				return nil, err
			}
			if err := part.Set(3+j, i, -v); err != nil {
				return nil, err
			}
		}
	}
	keys := make([]int, len(ls))
	for i, l := range ls[:3] {
		keys[i] = nearestIndex(refsChalcogen, l)
	}
	for i, l := range ls[3:] {
		keys[3+i] = 3 + nearestIndex(refsChalcogen, l)
	}
	return part.Reorder(keys, keys)
}

// nearestIndex returns the position in refs closest to l, first hit wins.
func nearestIndex(refs []int, l int) int {
	best, bestD := 0, math.MaxInt
	for i, r := range refs {
		d := abs(r - l)
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// addOnsites places the sublattices of kind, including the lat4 copy and
// the single-orbital split.
func (b *assembler) addOnsites(h *matrix.Dense, kind Kind, lamb float64) error {
	h0, err := b.makeOnsite(h, kind, lamb)
	if err != nil {
		return err
	}
	if b.m.socEOFlipUsed() {
		dim := b.m.orbitals.Dim(kind)
		part, err := b.spinFlipBlock(kind, lamb)
		if err != nil {
			return err
		}
		if err := h0.SetBlock(0, dim, part); err != nil {
			return err
		}
		if err := h0.SetBlock(dim, 0, part.ConjT()); err != nil {
			return err
		}
	}
	copies := 1
	if b.m.lat4 {
		copies = 2
	}
	for c := 1; c <= copies; c++ {
		pos := b.sitePos(kind, c)
		if !b.m.singleOrbital {
			if err := b.lat.AddSublattice(b.siteBase(kind, c), pos, h0); err != nil {
				return err
			}
			continue
		}
		orbs := b.siteOrbs(kind, c)
		for i, orb := range orbs {
			v, err := h0.At(i, i)
			if err != nil {
				return err
			}
			if err := b.lat.AddSublattice(orb, pos, matrix.Diag(complex(real(v), 0))); err != nil {
				return err
			}
		}
		onsiteName := "h_0_m"
		if kind == KindChalcogen {
			onsiteName = "h_0_c"
		}
		for i := range orbs {
			for j := i + 1; j < len(orbs); j++ {
				v, err := h0.At(i, j)
				if err != nil {
					return err
				}
				name := hopName(onsiteName, 0, orbs[i], orbs[j])
				if err := b.lat.RegisterHoppingEnergy(name, matrix.Diag(v)); err != nil {
					return err
				}
				if err := b.lat.AddHopping([2]int{0, 0}, orbs[i], orbs[j], name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// sandwich computes l · h · r.
func sandwich(l, h, r *matrix.Dense) (*matrix.Dense, error) {
	lh, err := l.Mul(h)
	if err != nil {
		return nil, err
	}
	return lh.Mul(r)
}

// rotated returns the three symmetry-related variants of a bond matrix:
// the matrix itself, ur·h·urᵀ and urᵀ·h·ur, with ur taken per atom kind.
func (b *assembler) rotated(h *matrix.Dense, from, to Kind) ([3]*matrix.Dense, error) {
	urL := b.m.orbitals.Ur(to)
	urR := b.m.orbitals.Ur(from)
	return rotatedWith(h, urL, urR)
}

// rotatedAngle is the same over an arbitrary rotation angle.
func (b *assembler) rotatedAngle(h *matrix.Dense, from, to Kind, phi float64) ([3]*matrix.Dense, error) {
	urL := b.m.orbitals.UrAngle(to, phi)
	urR := b.m.orbitals.UrAngle(from, phi)
	return rotatedWith(h, urL, urR)
}

func rotatedWith(h, urL, urR *matrix.Dense) ([3]*matrix.Dense, error) {
	var out [3]*matrix.Dense
	out[0] = h
	h2, err := sandwich(urL, h, urR.T())
	if err != nil {
		return out, err
	}
	h3, err := sandwich(urL.T(), h, urR)
	if err != nil {
		return out, err
	}
	out[1], out[2] = h2, h3
	return out, nil
}

// addShells walks the neighbour shells in canonical order.
func (b *assembler) addShells() error {
	t := b.terms
	shells := make([]shellSpec, 0, 11)
	if t.H1M != nil {
		shells = append(shells, shellSpec{
			name: "h_1_m", h: t.H1M, from: KindMetal, to: KindChalcogen,
			cos3:  [3][2]int{{-1, -1}, {0, 0}, {-1, 0}},
			cos6:  [6][2]int{{0, -1}, {0, 0}, {0, 0}, {1, 0}, {-1, 0}, {0, 0}},
			toPat: [6]int{2, 1, 1, 2, 1, 2},
		})
	}
	if t.H2M != nil {
		shells = append(shells, shellSpec{
			name: "h_2_m", h: t.H2M, from: KindMetal, to: KindMetal,
			cos3:  [3][2]int{{1, 0}, {0, 1}, {-1, -1}},
			cos6:  [6][2]int{{1, 0}, {1, 0}, {-1, 0}, {0, 1}, {-1, -1}, {0, 0}},
			toPat: [6]int{1, 2, 2, 1, 2, 1},
		})
	}
	if t.H2X != nil {
		shells = append(shells, shellSpec{
			name: "h_2_c", h: t.H2X, from: KindChalcogen, to: KindChalcogen,
			cos3:  [3][2]int{{1, 0}, {0, 1}, {-1, -1}},
			cos6:  [6][2]int{{1, 0}, {1, 0}, {0, 0}, {-1, 1}, {0, -1}, {-1, 0}},
			toPat: [6]int{1, 2, 2, 1, 2, 1},
		})
	}
	if t.H3M != nil {
		shells = append(shells, shellSpec{
			name: "h_3_m", h: t.H3M, from: KindMetal, to: KindChalcogen,
			cos3:  [3][2]int{{0, 1}, {-2, -1}, {0, -1}},
			cos6:  [6][2]int{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}, {1, -1}, {1, 0}},
			toPat: [6]int{2, 1, 2, 1, 2, 1},
		})
	}
	for _, s := range shells {
		if err := b.addShell(s); err != nil {
			return err
		}
	}
	if t.H4M != nil {
		if err := b.addFourthShell(); err != nil {
			return err
		}
	}
	tail := make([]shellSpec, 0, 4)
	if t.H5M != nil {
		tail = append(tail, shellSpec{
			name: "h_5_m", h: t.H5M, from: KindMetal, to: KindMetal,
			cos3:  [3][2]int{{1, 2}, {-2, -1}, {1, -1}},
			cos6:  [6][2]int{{0, 1}, {0, 1}, {-2, -1}, {-1, 0}, {1, -1}, {2, 0}},
			toPat: [6]int{1, 2, 2, 1, 2, 1},
		})
	}
	if t.H5X != nil {
		tail = append(tail, shellSpec{
			name: "h_5_c", h: t.H5X, from: KindChalcogen, to: KindChalcogen,
			cos3:  [3][2]int{{1, 2}, {-2, -1}, {1, -1}},
			cos6:  [6][2]int{{0, 1}, {0, 1}, {-1, -1}, {-2, 0}, {2, -1}, {1, 0}},
			toPat: [6]int{1, 2, 2, 1, 2, 1},
		})
	}
	if t.H6M != nil {
		tail = append(tail, shellSpec{
			name: "h_6_m", h: t.H6M, from: KindMetal, to: KindMetal,
			cos3:  [3][2]int{{2, 0}, {0, 2}, {-2, -2}},
			cos6:  [6][2]int{{2, 0}, {2, 0}, {-1, 1}, {-1, 1}, {-1, -1}, {-1, -1}},
			toPat: [6]int{1, 2, 1, 2, 1, 2},
		})
	}
	if t.H6X != nil {
		tail = append(tail, shellSpec{
			name: "h_6_c", h: t.H6X, from: KindChalcogen, to: KindChalcogen,
			cos3:  [3][2]int{{2, 0}, {0, 2}, {-2, -2}},
			cos6:  [6][2]int{{2, 0}, {2, 0}, {-1, 1}, {-1, 1}, {-1, -1}, {-1, -1}},
			toPat: [6]int{1, 2, 1, 2, 1, 2},
		})
	}
	for _, s := range tail {
		if err := b.addShell(s); err != nil {
			return err
		}
	}
	return nil
}

// addFourthShell handles the shell rotated off the threefold axes: the base
// matrix is first tilted by arctan(√3/5), and the two tilted variants form
// separate bond families with their own offsets.
func (b *assembler) addFourthShell() error {
	phi := math.Atan(math.Sqrt(3) / 5)
	hn, err := b.rotatedAngle(b.terms.H4M, KindMetal, KindChalcogen, phi)
	if err != nil {
		return err
	}
	families := []shellSpec{
		{
			name: "h_4_ma", h: hn[1], from: KindMetal, to: KindChalcogen,
			cos3:  [3][2]int{{-1, -2}, {1, 1}, {-2, 0}},
			cos6:  [6][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {-2, 0}, {-1, 0}},
			toPat: [6]int{1, 2, 2, 1, 1, 2},
		},
		{
			name: "h_4_mb", h: hn[2], from: KindMetal, to: KindChalcogen,
			cos3:  [3][2]int{{-2, -2}, {1, 0}, {-1, 1}},
			cos6:  [6][2]int{{-1, -1}, {0, -1}, {1, 0}, {2, 0}, {-1, 0}, {-1, 1}},
			toPat: [6]int{1, 2, 1, 2, 2, 1},
		},
	}
	for _, s := range families {
		if err := b.addShell(s); err != nil {
			return err
		}
	}
	return nil
}

// addShell registers the rotated hopping family of one shell: three
// variants in the rhombic cell, six bonds over the doubled sublattices in
// the rectangular one.
func (b *assembler) addShell(s shellSpec) error {
	hn, err := b.rotated(s.h, s.from, s.to)
	if err != nil {
		return err
	}
	if b.m.SOCDoubled() {
		for i := range hn {
			hn[i] = hn[i].KronEye2()
		}
	}

	var (
		hs      []*matrix.Dense
		variant []int
		cells   [][2]int
		fromPat []int
		toPat   []int
	)
	if b.m.lat4 {
		hs = []*matrix.Dense{hn[0], hn[0], hn[1], hn[1], hn[2], hn[2]}
		variant = []int{0, 0, 1, 1, 2, 2}
		cells = s.cos6[:]
		fromPat = []int{1, 2, 1, 2, 1, 2}
		toPat = s.toPat[:]
	} else {
		hs = []*matrix.Dense{hn[0], hn[1], hn[2]}
		variant = []int{0, 1, 2}
		cells = s.cos3[:]
		fromPat = []int{1, 1, 1}
		toPat = []int{1, 1, 1}
	}

	if !b.m.singleOrbital {
		for i := range hs {
			fromName := b.siteBase(s.from, fromPat[i])
			toName := b.siteBase(s.to, toPat[i])
			name := hopName(s.name, variant[i], fromName, toName)
			if err := b.lat.RegisterHoppingEnergy(name, hs[i].T()); err != nil {
				return err
			}
			if err := b.lat.AddHopping(cells[i], fromName, toName, name); err != nil {
				return err
			}
		}
		return nil
	}

	fOrbs := [2][]string{b.siteOrbs(s.from, 1), b.siteOrbs(s.from, 2)}
	tOrbs := [2][]string{b.siteOrbs(s.to, 1), b.siteOrbs(s.to, 2)}
	nF, nT := len(fOrbs[0]), len(tOrbs[0])
	for fi := 0; fi < nF; fi++ {
		for tj := 0; tj < nT; tj++ {
			for i := range hs {
				fromName := fOrbs[fromPat[i]-1][fi]
				toName := tOrbs[toPat[i]-1][tj]
				name := hopName(s.name, variant[i], fromName, toName)
				v, err := hs[i].At(tj, fi) // transposed entry
				if err != nil {
					return err
				}
				if err := b.lat.RegisterHoppingEnergy(name, matrix.Diag(v)); err != nil {
					return err
				}
				if err := b.lat.AddHopping(cells[i], fromName, toName, name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
