// SPDX-License-Identifier: MIT

// Package matrix provides the small complex dense-matrix kernel used by the
// tight-binding lattice assembly.
//
// What:
//   - Dense: a row-major matrix of complex128 values with explicit
//     constructors (NewDense, FromRows, Diag, Eye) and checked element access.
//   - The operations the hopping-matrix pipeline needs: transpose and
//     conjugate transpose, scaling, addition, multiplication, block-diagonal
//     composition, spin doubling (KronEye2) and index reordering (Reorder).
//
// Why:
//   Onsite and hopping terms of a tight-binding model are small (≤ 12×12)
//   complex matrices that get rotated, mirrored, doubled and stitched
//   together. A flat complex128 slice with value-semantics operations keeps
//   every step allocation-predictable and trivially testable.
//
// Errors:
//
//	ErrBadShape          - requested shape is invalid or rows are ragged.
//	ErrOutOfRange        - row or column index outside valid bounds.
//	ErrDimensionMismatch - incompatible operand dimensions.
//	ErrNilMatrix         - nil receiver or argument.
//
// All operations return fresh matrices; no method mutates its operands
// except Set on the receiver. Public indexers return errors, never panic.
package matrix
