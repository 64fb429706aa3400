// SPDX-License-Identifier: MIT
// Package params: the symmetry-group parameter list and the Set interface
// shared by every convention.

package params

import "fmt"

// Set is one named parameter collection, independent of convention. SG
// lists expose exactly their schema; SK lists additionally keep the derived
// SG energies readable while rejecting writes to them.
type Set interface {
	// Get returns the value of key, or 0.0 when key is unset or unknown.
	Get(key string) float64
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (float64, bool)
	// Set assigns value to key. Writes outside the schema fail with
	// ErrUnknownParam; writes to derived keys fail with ErrDerivedParam.
	Set(key string, value float64) error
	// Apply bulk-assigns values, validating every key first. Lists with
	// derived keys recalculate once after the whole map is applied.
	Apply(values map[string]float64) error
	// Material returns the material formula, e.g. "MoS2".
	Material() string
	// SetMaterial sets the material formula.
	SetMaterial(material string)
	// Keys returns every schema key in declaration order.
	Keys() []string
	// Label returns the display (LaTeX) label of key, or "" when unknown.
	Label(key string) string
	// Values returns the set keys and their values, excluding derived ones.
	Values() map[string]float64
	// Clone returns an independent deep copy.
	Clone() Set
}

// List is a parameter set in the symmetry-group convention.
// The zero value is not usable; construct with NewList.
type List struct {
	material string
	schema   *schema
	derived  map[string]bool
	vals     map[string]float64
	// recalc, when non-nil, runs after every successful write. SK lists use
	// it to keep the derived SG energies current.
	recalc func()
}

// NewList returns an empty SG list. The lattice constant defaults to 1 so
// that geometry stays well defined before a table is applied.
func NewList() *List {
	l := &List{
		schema: sgSchema,
		vals:   map[string]float64{"a": 1},
	}

	return l
}

// Get returns the value of key, or 0.0 when key is unset or unknown.
// Unknown keys are not an error on the read path: a model that does not use
// a shell simply never sets its keys.
func (l *List) Get(key string) float64 {
	return l.vals[key]
}

// Lookup returns the value of key and whether it has been set.
func (l *List) Lookup(key string) (float64, bool) {
	v, ok := l.vals[key]

	return v, ok
}

// Set assigns value to key.
func (l *List) Set(key string, value float64) error {
	if err := l.set(key, value); err != nil {
		return err
	}
	if l.recalc != nil {
		l.recalc()
	}

	return nil
}

// set validates and writes without triggering recalculation.
func (l *List) set(key string, value float64) error {
	if !l.schema.has(key) {
		return fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	if l.derived[key] {
		return fmt.Errorf("%w: %q", ErrDerivedParam, key)
	}
	l.vals[key] = value

	return nil
}

// setDerived writes a recalculated key, bypassing the read-only guard.
func (l *List) setDerived(key string, value float64) {
	l.vals[key] = value
}

// Apply bulk-assigns values. Every key is validated before the first write,
// so a failing Apply leaves the list unchanged. Recalculation runs once at
// the end.
func (l *List) Apply(values map[string]float64) error {
	for key := range values {
		if !l.schema.has(key) {
			return fmt.Errorf("%w: %q", ErrUnknownParam, key)
		}
		if l.derived[key] {
			return fmt.Errorf("%w: %q", ErrDerivedParam, key)
		}
	}
	for key, value := range values {
		l.vals[key] = value
	}
	if l.recalc != nil {
		l.recalc()
	}

	return nil
}

// Material returns the material formula, e.g. "MoS2".
func (l *List) Material() string { return l.material }

// SetMaterial sets the material formula.
func (l *List) SetMaterial(material string) { l.material = material }

// Keys returns every schema key in declaration order.
func (l *List) Keys() []string {
	out := make([]string, len(l.schema.order))
	copy(out, l.schema.order)

	return out
}

// Label returns the display (LaTeX) label of key, or "" when unknown.
func (l *List) Label(key string) string { return l.schema.labels[key] }

// Values returns the set keys and their values, excluding derived ones.
// Used by the registry round-trip and the CLI dump.
func (l *List) Values() map[string]float64 {
	out := make(map[string]float64, len(l.vals))
	for key, v := range l.vals {
		if !l.derived[key] {
			out[key] = v
		}
	}

	return out
}

// Clone returns an independent deep copy.
func (l *List) Clone() Set {
	cp := &List{}
	l.cloneInto(cp)

	return cp
}

// cloneInto copies the shared state into dst. The caller rebinds recalc.
func (l *List) cloneInto(dst *List) {
	dst.material = l.material
	dst.schema = l.schema
	dst.derived = l.derived
	dst.vals = make(map[string]float64, len(l.vals))
	for key, v := range l.vals {
		dst.vals[key] = v
	}
}
