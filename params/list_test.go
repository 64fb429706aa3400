// Package params_test contains unit tests for the parameter lists.
package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdlab/tmdlattice/params"
)

// TestListDefaults ensures a fresh SG list has a unit lattice constant and
// reads every other key as zero.
func TestListDefaults(t *testing.T) {
	l := params.NewList()

	require.Equal(t, 1.0, l.Get("a")) // lattice constant defaults to 1
	require.Equal(t, 0.0, l.Get("eps_0_m_e"))
	require.Equal(t, 0.0, l.Get("no_such_key")) // unknown keys read as zero

	_, ok := l.Lookup("eps_0_m_e")
	require.False(t, ok)
}

// TestListSetAndLookup validates the write path and presence reporting.
func TestListSetAndLookup(t *testing.T) {
	l := params.NewList()

	require.NoError(t, l.Set("eps_0_m_e", 1.046))

	v, ok := l.Lookup("eps_0_m_e")
	require.True(t, ok)
	require.Equal(t, 1.046, v)
	require.Equal(t, 1.046, l.Get("eps_0_m_e"))
}

// TestListSetUnknownKey ensures writes outside the schema fail.
func TestListSetUnknownKey(t *testing.T) {
	l := params.NewList()

	err := l.Set("u_7_0_m_e", 1) // there is no seventh shell
	require.ErrorIs(t, err, params.ErrUnknownParam)

	err = l.Set("theta", 0.7) // theta is an SK key, not an SG key
	require.ErrorIs(t, err, params.ErrUnknownParam)
}

// TestListApplyAtomic ensures a failing Apply leaves the list unchanged.
func TestListApplyAtomic(t *testing.T) {
	l := params.NewList()

	err := l.Apply(map[string]float64{
		"eps_0_m_e": 1.0,
		"bogus":     2.0,
	})
	require.ErrorIs(t, err, params.ErrUnknownParam)

	_, ok := l.Lookup("eps_0_m_e") // nothing was written
	require.False(t, ok)
}

// TestListMaterial verifies the material accessor pair.
func TestListMaterial(t *testing.T) {
	l := params.NewList()
	require.Empty(t, l.Material())

	l.SetMaterial("MoS2")
	require.Equal(t, "MoS2", l.Material())
}

// TestListKeysAndLabels checks the schema surface: deterministic key order,
// known labels, empty label for unknown keys.
func TestListKeysAndLabels(t *testing.T) {
	l := params.NewList()
	keys := l.Keys()

	require.Equal(t, "a", keys[0]) // general keys come first
	require.Contains(t, keys, "eps_0_x_e")
	require.Contains(t, keys, "u_5_2_m_o")
	require.NotContains(t, keys, "u_5_1_m_o") // shell 5 skips index 1 for the odd metal block

	require.Equal(t, `$a$`, l.Label("a"))
	require.Equal(t, `$\lambda_M$`, l.Label("lamb_m"))
	require.Equal(t, `$u_2^{3,Xe}$`, l.Label("u_2_3_x_e"))
	require.Equal(t, `$u_1^{0,e}$`, l.Label("u_1_0_m_e"))
	require.Empty(t, l.Label("bogus"))
}

// TestListCloneIndependence ensures Clone copies values and material and
// does not share storage.
func TestListCloneIndependence(t *testing.T) {
	l := params.NewList()
	l.SetMaterial("WS2")
	require.NoError(t, l.Set("lamb_m", 0.211))

	cp := l.Clone()
	require.Equal(t, "WS2", cp.Material())
	require.Equal(t, 0.211, cp.Get("lamb_m"))

	require.NoError(t, cp.Set("lamb_m", 0.5))
	require.Equal(t, 0.211, l.Get("lamb_m")) // original unchanged
}

// TestListValuesExcludesUnset verifies the dump surface.
func TestListValuesExcludesUnset(t *testing.T) {
	l := params.NewList()
	require.NoError(t, l.Set("eps_1_m_e", 2.104))

	vals := l.Values()
	require.Equal(t, map[string]float64{"a": 1, "eps_1_m_e": 2.104}, vals)
}
