// SPDX-License-Identifier: MIT
// Package params: the embedded literature tables.
// Each tables/*.yaml file holds one published parameter table. The files are
// decoded once at init; a malformed embedded file is a build defect and
// panics. Lookups hand out fresh lists, so callers can never mutate a table.

package params

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// Kind discriminates the parameter convention a table is stored in.
type Kind string

const (
	KindSG       Kind = "sg"
	KindSK       Kind = "sk"
	KindSKSimple Kind = "sk_simple"
)

// VariantFitted names the re-fitted variant several tables carry next to
// their published values.
const VariantFitted = "fitted"

// tableFile mirrors the YAML layout of one embedded table.
type tableFile struct {
	Name    string       `yaml:"name"`
	Kind    Kind         `yaml:"kind"`
	Entries []tableEntry `yaml:"entries"`
}

// tableEntry is one parameter set of a table. Key is the lookup key
// (usually the material formula); Variant distinguishes alternative fits of
// the same material and is empty for the default entry. Material is the
// formula stored in the resulting list, which can differ from Key.
type tableEntry struct {
	Key      string             `yaml:"key"`
	Variant  string             `yaml:"variant"`
	Material string             `yaml:"material"`
	Values   map[string]float64 `yaml:"values"`
}

// Table is one published parameter table with entries keyed by material and
// optional variant. Tables are immutable; every lookup builds a new list.
type Table struct {
	name    string
	kind    Kind
	entries []tableEntry
}

// Name returns the registry name of the table, e.g. "liu2".
func (t *Table) Name() string { return t.name }

// Kind returns the convention the table is stored in.
func (t *Table) Kind() Kind { return t.kind }

// Materials returns the sorted lookup keys of the default entries.
func (t *Table) Materials() []string {
	var out []string
	for _, e := range t.entries {
		if e.Variant == "" {
			out = append(out, e.Key)
		}
	}
	sort.Strings(out)

	return out
}

// Variants returns the sorted non-default variants available for material.
func (t *Table) Variants(material string) []string {
	var out []string
	for _, e := range t.entries {
		if e.Key == material && e.Variant != "" {
			out = append(out, e.Variant)
		}
	}
	sort.Strings(out)

	return out
}

// Get returns a fresh list holding the default entry for material.
func (t *Table) Get(material string) (Set, error) {
	return t.GetVariant(material, "")
}

// Fitted returns a fresh list holding the re-fitted entry for material.
func (t *Table) Fitted(material string) (Set, error) {
	return t.GetVariant(material, VariantFitted)
}

// GetVariant returns a fresh list holding the requested entry.
func (t *Table) GetVariant(material, variant string) (Set, error) {
	for _, e := range t.entries {
		if e.Key != material || e.Variant != variant {
			continue
		}
		list := t.newList()
		if err := list.Apply(e.Values); err != nil {
			return nil, fmt.Errorf("table %s entry %s/%s: %w", t.name, material, variant, err)
		}
		list.SetMaterial(e.Material)

		return list, nil
	}

	return nil, fmt.Errorf("%w: %s/%s in table %s", ErrUnknownMaterial, material, variant, t.name)
}

func (t *Table) newList() Set {
	switch t.kind {
	case KindSK:
		return NewSKList()
	case KindSKSimple:
		return NewSKSimpleList()
	default:
		return NewList()
	}
}

// The published tables, by first author. SG tables carry symmetry-group
// energies directly; the rest are Slater-Koster parameterizations.
var (
	Liu2          = mustTable("liu2")
	Liu6          = mustTable("liu6")
	Wu            = mustTable("wu")
	Fang          = mustTable("fang")
	Jorissen      = mustTable("jorissen")
	All           = mustTable("all")
	Dias          = mustTable("dias")
	Rostami       = mustTable("rostami")
	Cappelluti    = mustTable("cappelluti")
	Roldan        = mustTable("roldan")
	Ridolfi       = mustTable("ridolfi")
	Venkateswarlu = mustTable("venkateswarlu")
	SilvaGuillen  = mustTable("silva_guillen")
	Pearce        = mustTable("pearce")
	Bieniek       = mustTable("bieniek")
	Abdi          = mustTable("abdi")
)

var registry = func() map[string]*Table {
	out := make(map[string]*Table)
	dir, err := tablesFS.ReadDir("tables")
	if err != nil {
		panic(fmt.Sprintf("params: embedded tables missing: %v", err))
	}
	for _, entry := range dir {
		raw, err := tablesFS.ReadFile("tables/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("params: read embedded table %s: %v", entry.Name(), err))
		}
		var file tableFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			panic(fmt.Sprintf("params: decode embedded table %s: %v", entry.Name(), err))
		}
		out[file.Name] = &Table{name: file.Name, kind: file.Kind, entries: file.Entries}
	}

	return out
}()

func mustTable(name string) *Table {
	t, ok := registry[name]
	if !ok {
		panic(fmt.Sprintf("params: embedded table %q missing", name))
	}

	return t
}

// Tables returns the sorted names of every embedded table.
func Tables() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// LookupTable returns the table registered under name.
func LookupTable(name string) (*Table, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	return t, nil
}
