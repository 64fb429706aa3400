// SPDX-License-Identifier: MIT
// Package tmd: the published model presets.

package tmd

import (
	"github.com/tmdlab/tmdlattice/matrix"
	"github.com/tmdlab/tmdlattice/params"
)

// eo stacks the even and odd sector blocks diagonally.
func eo(even, odd *matrix.Dense) *matrix.Dense {
	m, err := matrix.BlockDiag(even, odd)
	if err != nil {
		panic(err) // unreachable: both sectors have fixed literal shapes
	}
	return m
}

// metalEvenOrbitals is the d-even configuration of the three-band models.
func metalEvenOrbitals() (*Orbitals, error) {
	return NewOrbitals(
		map[Kind][]int{KindMetal: {0, 2, -2}},
		map[Kind][]string{KindMetal: {"dz2", "dx2y2", "dxy"}},
		map[Kind][]int{KindMetal: {0, 1, 1}},
	)
}

// fullOrbitals is the complete d- and p-set of the eleven-band models.
func fullOrbitals() (*Orbitals, error) {
	return NewOrbitals(
		map[Kind][]int{
			KindMetal:     {0, 2, -2, 1, -1},
			KindChalcogen: {1, -1, 0, 1, -1, 0},
		},
		map[Kind][]string{
			KindMetal:     {"dz2", "dx2y2", "dxy", "dxz", "dyz"},
			KindChalcogen: {"pxe", "pye", "pze", "pxo", "pyo", "pzo"},
		},
		map[Kind][]int{
			KindMetal:     {0, 1, 1, 2, 2},
			KindChalcogen: {0, 0, 1, 2, 2, 3},
		},
	)
}

// preset assembles a Model once orbitals and the default table resolved.
func preset(name string, orb *Orbitals, orbErr error, table *params.Table, nV, nB int,
	terms func(Matrices) (*Terms, error), opts []Option) (*Model, error) {
	if orbErr != nil {
		return nil, orbErr
	}
	def, err := table.Get("MoS2")
	if err != nil {
		return nil, err
	}
	return newModel(name, orb, def, nV, nB, terms, opts), nil
}

// TmdNN2Me is the three-band model of the even metal d-orbitals with
// second-shell hopping.
func TmdNN2Me(opts ...Option) (*Model, error) {
	orb, err := metalEvenOrbitals()
	return preset("3 bands 2NN model", orb, err, params.Liu2, 0, 3,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: t.EMe(),
				H2M: t.T2Me(),
			}, nil
		}, opts)
}

// TmdNN12MeXe is the six-band model of the even metal and chalcogen
// orbitals with first- and second-shell hopping.
func TmdNN12MeXe(opts ...Option) (*Model, error) {
	orb, err := NewOrbitals(
		map[Kind][]int{KindMetal: {0, 2, -2}, KindChalcogen: {1, -1, 0}},
		map[Kind][]string{
			KindMetal:     {"dz2", "dx2y2", "dxy"},
			KindChalcogen: {"pxe", "pye", "pze"},
		},
		map[Kind][]int{KindMetal: {0, 2, 2}, KindChalcogen: {0, 0, 1}},
	)
	return preset("6 bands 2NN model", orb, err, params.Jorissen, 3, 6,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: t.EMe(),
				H0X: t.EXe(),
				H1M: t.T1Me(),
				H2M: t.T2Me(),
				H2X: t.T2Xe(),
			}, nil
		}, opts)
}

// TmdNN12MeoXeo is the eleven-band model with first- and second-shell
// hopping.
func TmdNN12MeoXeo(opts ...Option) (*Model, error) {
	orb, err := fullOrbitals()
	return preset("11 bands 2NN model", orb, err, params.Cappelluti, 6, 11,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: eo(t.EMe(), t.EMo()),
				H0X: eo(t.EXe(), t.EXo()),
				H1M: eo(t.T1Me(), t.T1Mo()),
				H2M: eo(t.T2Me(), t.T2Mo()),
				H2X: eo(t.T2Xe(), t.T2Xo()),
			}, nil
		}, opts)
}

// TmdNN123MeoXeo is the eleven-band model with first-, second- and
// third-shell hopping. The odd third-shell block is zero in the published
// parameterization.
func TmdNN123MeoXeo(opts ...Option) (*Model, error) {
	orb, err := fullOrbitals()
	return preset("11 bands 3NN model", orb, err, params.Fang, 6, 11,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: eo(t.EMe(), t.EMo()),
				H0X: eo(t.EXe(), t.EXo()),
				H1M: eo(t.T1Me(), t.T1Mo()),
				H2M: eo(t.T2Me(), t.T2Mo()),
				H2X: eo(t.T2Xe(), t.T2Xo()),
				H3M: eo(t.T3Me(), t.T1Mo().Scale(0)),
			}, nil
		}, opts)
}

// TmdNN125MeoXeo is the eleven-band model with first-, second- and
// fifth-shell hopping.
func TmdNN125MeoXeo(opts ...Option) (*Model, error) {
	orb, err := fullOrbitals()
	return preset("11 bands 5NN model", orb, err, params.Dias, 6, 11,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: eo(t.EMe(), t.EMo()),
				H0X: eo(t.EXe(), t.EXo()),
				H1M: eo(t.T1Me(), t.T1Mo()),
				H2M: eo(t.T2Me(), t.T2Mo()),
				H2X: eo(t.T2Xe(), t.T2Xo()),
				H5M: eo(t.T5Me(), t.T5Mo()),
				H5X: eo(t.T5Xe(), t.T5Xo()),
			}, nil
		}, opts)
}

// TmdNN256Me is the three-band model with second-, fifth- and sixth-shell
// hopping.
func TmdNN256Me(opts ...Option) (*Model, error) {
	orb, err := metalEvenOrbitals()
	return preset("3 bands 6NN model", orb, err, params.Liu6, 0, 3,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: t.EMe(),
				H2M: t.T2Me(),
				H5M: t.T5Me(),
				H6M: t.T6Me(),
			}, nil
		}, opts)
}

// TmdNN256Meo is the five-band metal-only model with second-, fifth- and
// sixth-shell hopping. The symmetry groups derive from |l|.
func TmdNN256Meo(opts ...Option) (*Model, error) {
	orb, err := NewOrbitals(
		map[Kind][]int{KindMetal: {0, 2, -2, 1, -1}},
		map[Kind][]string{KindMetal: {"dz2", "dx2y2", "dxy", "dxz", "dyz"}},
		nil,
	)
	return preset("5 bands 6NN model", orb, err, params.Wu, 0, 5,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: eo(t.EMe(), t.EMo()),
				H2M: eo(t.T2Me(), t.T2Mo()),
				H5M: eo(t.T5Me(), t.T5Mo()),
				H6M: eo(t.T6Me(), t.T6Mo()),
			}, nil
		}, opts)
}

// TmdNN123456MeoXeo is the eleven-band model with every hopping shell up to
// the sixth.
func TmdNN123456MeoXeo(opts ...Option) (*Model, error) {
	orb, err := fullOrbitals()
	return preset("11 bands 6NN model", orb, err, params.All, 6, 11,
		func(t Matrices) (*Terms, error) {
			return &Terms{
				H0M: eo(t.EMe(), t.EMo()),
				H0X: eo(t.EXe(), t.EXo()),
				H1M: eo(t.T1Me(), t.T1Mo()),
				H2M: eo(t.T2Me(), t.T2Mo()),
				H2X: eo(t.T2Xe(), t.T2Xo()),
				H3M: eo(t.T3Me(), t.T3Mo()),
				H4M: eo(t.T4Me(), t.T4Mo()),
				H5M: eo(t.T5Me(), t.T5Mo()),
				H5X: eo(t.T5Xe(), t.T5Xo()),
				H6M: eo(t.T6Me(), t.T6Mo()),
				H6X: eo(t.T6Xe(), t.T6Xo()),
			}, nil
		}, opts)
}
