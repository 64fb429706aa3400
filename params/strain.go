// SPDX-License-Identifier: MIT
// Package params: strain-derivative parameter lists.

package params

// StrainList extends the SG convention with strain-derivative keys up to a
// chosen order: <energy>_b_<n> (biaxial) and <energy>_u_<n> (uniaxial) for
// every SG energy, plus the shear family <energy>_s_<n> holding only the
// hopping entries that shear symmetry breaking newly allows. Onsite shear
// corrections are covered by the uniaxial keys.
type StrainList struct {
	List
	maxOrder int
}

// NewStrainList returns an empty strain list carrying derivatives up to
// maxOrder. Orders below one fall back to one.
func NewStrainList(maxOrder int) *StrainList {
	if maxOrder < 1 {
		maxOrder = 1
	}

	return &StrainList{
		List: List{
			schema: newSchema(generalDefs(), sgEnergyDefs(), strainDefs(maxOrder)),
			vals:   map[string]float64{"a": 1},
		},
		maxOrder: maxOrder,
	}
}

// MaxOrder returns the highest strain order the list carries.
func (l *StrainList) MaxOrder() int { return l.maxOrder }

// Clone returns an independent deep copy.
func (l *StrainList) Clone() Set {
	cp := &StrainList{maxOrder: l.maxOrder}
	l.cloneInto(&cp.List)

	return cp
}
