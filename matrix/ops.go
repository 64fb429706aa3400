// SPDX-License-Identifier: MIT
// Package matrix: value-semantics operations on Dense.
// Every operation returns a fresh matrix; operands are never mutated.

package matrix

import (
	"math"
	"math/cmplx"
)

// T returns the transpose of m.
// Complexity: O(r*c).
func (m *Dense) T() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.at(i, j)
		}
	}

	return out
}

// ConjT returns the conjugate transpose of m.
// Complexity: O(r*c).
func (m *Dense) ConjT() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = cmplx.Conj(m.at(i, j))
		}
	}

	return out
}

// Scale returns s*m.
// Complexity: O(r*c).
func (m *Dense) Scale(s complex128) *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = s * v
	}

	return out
}

// Add returns m+b, or ErrDimensionMismatch when the shapes disagree.
// Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if m.r != b.r || m.c != b.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = v + b.data[i]
	}

	return out, nil
}

// Mul returns the matrix product m*b, or ErrDimensionMismatch when
// m.Cols != b.Rows.
// Complexity: O(r*c*k) with the naive triple loop; operands stay tiny here.
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if b == nil {
		return nil, ErrNilMatrix
	}
	if m.c != b.r {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: b.c, data: make([]complex128, m.r*b.c)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			v := m.data[i*m.c+k]
			if v == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += v * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// BlockDiag stitches the given matrices into one block-diagonal matrix.
// A single argument is returned as a clone; no argument yields ErrBadShape.
// Complexity: O(R*C) of the result.
func BlockDiag(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, ErrBadShape
	}
	var r, c int
	for _, b := range blocks {
		if b == nil {
			return nil, ErrNilMatrix
		}
		r += b.r
		c += b.c
	}
	out := &Dense{r: r, c: c, data: make([]complex128, r*c)}
	var ro, co int
	for _, b := range blocks {
		for i := 0; i < b.r; i++ {
			copy(out.data[(ro+i)*c+co:(ro+i)*c+co+b.c], b.data[i*b.c:(i+1)*b.c])
		}
		ro += b.r
		co += b.c
	}

	return out, nil
}

// KronEye2 returns kron(I2, m): two copies of m on the diagonal.
// Used for doubling a Hamiltonian term over the spin sectors.
// Complexity: O(r*c).
func (m *Dense) KronEye2() *Dense {
	out, _ := BlockDiag(m, m) // shapes always agree

	return out
}

// Reorder permutes m by index keys: out[i][j] = m[rowKeys[i]][colKeys[j]].
// Key slices must match the receiver's shape; every key must be in range.
// Complexity: O(r*c).
func (m *Dense) Reorder(rowKeys, colKeys []int) (*Dense, error) {
	if len(rowKeys) != m.r || len(colKeys) != m.c {
		return nil, ErrDimensionMismatch
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, ri := range rowKeys {
		if ri < 0 || ri >= m.r {
			return nil, ErrOutOfRange
		}
		for j, cj := range colKeys {
			if cj < 0 || cj >= m.c {
				return nil, ErrOutOfRange
			}
			out.data[i*m.c+j] = m.data[ri*m.c+cj]
		}
	}

	return out, nil
}

// SetBlock copies src into m starting at (row, col), in place.
// Returns ErrOutOfRange when src does not fit.
func (m *Dense) SetBlock(row, col int, src *Dense) error {
	if src == nil {
		return ErrNilMatrix
	}
	if row < 0 || col < 0 || row+src.r > m.r || col+src.c > m.c {
		return denseErrorf("SetBlock", row, col, ErrOutOfRange)
	}
	for i := 0; i < src.r; i++ {
		copy(m.data[(row+i)*m.c+col:(row+i)*m.c+col+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// EqualApprox reports whether m and b share a shape and agree element-wise
// within eps (absolute complex distance). Intended for tests.
func (m *Dense) EqualApprox(b *Dense, eps float64) bool {
	if b == nil || m.r != b.r || m.c != b.c {
		return false
	}
	for i, v := range m.data {
		if cmplx.Abs(v-b.data[i]) > eps {
			return false
		}
	}

	return true
}

// MaxAbs returns the largest element magnitude, 0 for the zero matrix.
func (m *Dense) MaxAbs() float64 {
	var max float64
	for _, v := range m.data {
		max = math.Max(max, cmplx.Abs(v))
	}

	return max
}
