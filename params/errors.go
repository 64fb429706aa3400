// SPDX-License-Identifier: MIT
// Package params: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the params
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is.

package params

import "errors"

// Every message is prefixed with "params: ..." for consistency and to allow
// easy grepping across logs. Callers that need context wrap with
// fmt.Errorf("ctx: %w", ErrX) and still match via errors.Is.
var (
	// ErrUnknownParam is returned by Set and Apply when a key is not part of
	// the list's schema. Reads of unknown keys do not error; Get yields 0.0.
	ErrUnknownParam = errors.New("params: unknown parameter")

	// ErrDerivedParam is returned when writing a key that is maintained by
	// recalculation (SG energies on SK lists, split SK values on simple SK
	// lists). Derived keys are read-only.
	ErrDerivedParam = errors.New("params: derived parameter is read-only")

	// ErrUnknownTable is returned by registry lookups for table names that
	// do not exist.
	ErrUnknownTable = errors.New("params: unknown table")

	// ErrUnknownMaterial is returned by Table lookups when no entry exists
	// for the requested material or variant.
	ErrUnknownMaterial = errors.New("params: unknown material")
)
