// SPDX-License-Identifier: MIT
// Package tmd: the fixed symmetry-group hopping-matrix shapes.

package tmd

import (
	"fmt"

	"github.com/tmdlab/tmdlattice/matrix"
	"github.com/tmdlab/tmdlattice/params"
)

// Matrices builds the onsite and hopping blocks of the 1H-phase from a
// symmetry-group parameter set. Unset parameters read as zero, so a sparse
// set produces a matrix with zero entries rather than an error.
type Matrices struct {
	p params.Set
}

// NewMatrices wraps a parameter set for block construction.
func NewMatrices(p params.Set) Matrices { return Matrices{p: p} }

// fromRows builds a Dense from fixed-shape literal rows.
func fromRows(rows [][]complex128) *matrix.Dense {
	m, err := matrix.FromRows(rows)
	if err != nil {
		panic(err) // unreachable: literal shapes are fixed
	}
	return m
}

// seq reads the numbered parameters pattern(0) .. pattern(n-1).
func (m Matrices) seq(pattern string, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(m.p.Get(fmt.Sprintf(pattern, i)), 0)
	}
	return out
}

// pick reads the parameters of pattern at the given indices.
func (m Matrices) pick(pattern string, idx ...int) []complex128 {
	out := make([]complex128, len(idx))
	for i, j := range idx {
		out[i] = complex(m.p.Get(fmt.Sprintf(pattern, j)), 0)
	}
	return out
}

// tNEven is the shell-1/3/4 matrix from the even metal orbitals.
func tNEven(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{0, 0, u[0]},
		{u[1], u[2], 0},
		{u[3], u[4], 0},
	})
}

// tNOdd is the shell-1/3/4 matrix from the odd metal orbitals.
func tNOdd(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{u[0], 0},
		{0, u[1]},
		{0, u[2]},
	})
}

// tMEven is the shell-2/6 matrix from the even metal orbitals.
func tMEven(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{u[0], u[1], u[2]},
		{u[1], u[3], u[4]},
		{-u[2], -u[4], u[5]},
	})
}

// tMOdd is the shell-2/5/6 matrix from the odd metal orbitals.
func tMOdd(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{u[0], u[1]},
		{-u[1], u[2]},
	})
}

// tXRot is the shell-2/6 matrix from the chalcogen orbitals.
func tXRot(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{u[0], u[1], u[2]},
		{-u[1], u[3], u[4]},
		{-u[2], u[4], u[5]},
	})
}

// t5XRot is the shell-5 matrix from the chalcogen orbitals, fed with the
// surviving components u_0, u_2, u_3, u_5, u_6.
func t5XRot(u []complex128) *matrix.Dense {
	return fromRows([][]complex128{
		{u[2], 0, 0},
		{0, u[0], u[1]},
		{0, u[4], u[3]},
	})
}

// EMe is the even metal onsite block.
func (m Matrices) EMe() *matrix.Dense {
	return matrix.Diag(
		complex(m.p.Get("eps_0_m_e"), 0),
		complex(m.p.Get("eps_1_m_e"), 0),
		complex(m.p.Get("eps_1_m_e"), 0),
	)
}

// EMo is the odd metal onsite block.
func (m Matrices) EMo() *matrix.Dense {
	return matrix.Diag(
		complex(m.p.Get("eps_0_m_o"), 0),
		complex(m.p.Get("eps_0_m_o"), 0),
	)
}

// EXe is the even chalcogen onsite block.
func (m Matrices) EXe() *matrix.Dense {
	return matrix.Diag(
		complex(m.p.Get("eps_0_x_e"), 0),
		complex(m.p.Get("eps_0_x_e"), 0),
		complex(m.p.Get("eps_1_x_e"), 0),
	)
}

// EXo is the odd chalcogen onsite block.
func (m Matrices) EXo() *matrix.Dense {
	return matrix.Diag(
		complex(m.p.Get("eps_0_x_o"), 0),
		complex(m.p.Get("eps_0_x_o"), 0),
		complex(m.p.Get("eps_1_x_o"), 0),
	)
}

// T1Me is the first-shell matrix from the even metal orbitals.
func (m Matrices) T1Me() *matrix.Dense { return tNEven(m.seq("u_1_%d_m_e", 5)) }

// T1Mo is the first-shell matrix from the odd metal orbitals.
func (m Matrices) T1Mo() *matrix.Dense { return tNOdd(m.seq("u_1_%d_m_o", 3)) }

// T2Me is the second-shell matrix from the even metal orbitals.
func (m Matrices) T2Me() *matrix.Dense { return tMEven(m.seq("u_2_%d_m_e", 6)) }

// T2Mo is the second-shell matrix from the odd metal orbitals.
func (m Matrices) T2Mo() *matrix.Dense { return tMOdd(m.seq("u_2_%d_m_o", 3)) }

// T2Xe is the second-shell matrix from the even chalcogen orbitals.
func (m Matrices) T2Xe() *matrix.Dense { return tXRot(m.seq("u_2_%d_x_e", 6)) }

// T2Xo is the second-shell matrix from the odd chalcogen orbitals.
func (m Matrices) T2Xo() *matrix.Dense { return tXRot(m.seq("u_2_%d_x_o", 6)) }

// T3Me is the third-shell matrix from the even metal orbitals.
func (m Matrices) T3Me() *matrix.Dense { return tNEven(m.seq("u_3_%d_m_e", 5)) }

// T3Mo is the third-shell matrix from the odd metal orbitals.
func (m Matrices) T3Mo() *matrix.Dense { return tNOdd(m.seq("u_3_%d_m_o", 3)) }

// T4Me is the fourth-shell matrix from the even metal orbitals.
func (m Matrices) T4Me() *matrix.Dense { return tNEven(m.seq("u_4_%d_m_e", 5)) }

// T4Mo is the fourth-shell matrix from the odd metal orbitals.
func (m Matrices) T4Mo() *matrix.Dense { return tNOdd(m.seq("u_4_%d_m_o", 3)) }

// T5Me is the fifth-shell matrix from the even metal orbitals.
func (m Matrices) T5Me() *matrix.Dense {
	u := m.pick("u_5_%d_m_e", 0, 1, 3, 5, 6)
	return fromRows([][]complex128{
		{u[0], -u[1], 0},
		{-u[4], u[2], 0},
		{0, 0, u[3]},
	})
}

// T5Mo is the fifth-shell matrix from the odd metal orbitals.
func (m Matrices) T5Mo() *matrix.Dense {
	return matrix.Diag(
		complex(m.p.Get("u_5_2_m_o"), 0),
		complex(m.p.Get("u_5_0_m_o"), 0),
	)
}

// T5Xe is the fifth-shell matrix from the even chalcogen orbitals.
func (m Matrices) T5Xe() *matrix.Dense { return t5XRot(m.pick("u_5_%d_x_e", 0, 2, 3, 5, 6)) }

// T5Xo is the fifth-shell matrix from the odd chalcogen orbitals.
func (m Matrices) T5Xo() *matrix.Dense { return t5XRot(m.pick("u_5_%d_x_o", 0, 2, 3, 5, 6)) }

// T6Me is the sixth-shell matrix from the even metal orbitals.
func (m Matrices) T6Me() *matrix.Dense { return tMEven(m.seq("u_6_%d_m_e", 6)) }

// T6Mo is the sixth-shell matrix from the odd metal orbitals.
func (m Matrices) T6Mo() *matrix.Dense { return tMOdd(m.seq("u_6_%d_m_o", 3)) }

// T6Xe is the sixth-shell matrix from the even chalcogen orbitals.
func (m Matrices) T6Xe() *matrix.Dense { return tXRot(m.seq("u_6_%d_x_e", 6)) }

// T6Xo is the sixth-shell matrix from the odd chalcogen orbitals.
func (m Matrices) T6Xo() *matrix.Dense { return tXRot(m.seq("u_6_%d_x_o", 6)) }
