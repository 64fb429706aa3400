// Package params_test contains unit tests for the embedded table registry.
package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdlab/tmdlattice/params"
)

// TestTablesComplete ensures every published table is embedded.
func TestTablesComplete(t *testing.T) {
	require.Equal(t, []string{
		"abdi", "all", "bieniek", "cappelluti", "dias", "fang", "jorissen",
		"liu2", "liu6", "pearce", "ridolfi", "roldan", "rostami",
		"silva_guillen", "venkateswarlu", "wu",
	}, params.Tables())
}

// TestLookupTable verifies registry lookup by name.
func TestLookupTable(t *testing.T) {
	tbl, err := params.LookupTable("liu2")
	require.NoError(t, err)
	require.Equal(t, "liu2", tbl.Name())
	require.Equal(t, params.KindSG, tbl.Kind())

	_, err = params.LookupTable("bogus")
	require.ErrorIs(t, err, params.ErrUnknownTable)
}

// TestTableMaterials checks the material coverage of representative tables.
func TestTableMaterials(t *testing.T) {
	require.Equal(t, []string{"MoS2", "MoSe2", "MoTe2", "WS2", "WSe2", "WTe2"}, params.Liu2.Materials())
	require.Equal(t, []string{"MoS2", "MoSe2", "WS2", "WSe2"}, params.Fang.Materials())
	require.Equal(t, []string{"MoS2"}, params.Wu.Materials())
	require.Equal(t, []string{"MoS2", "MoSe2", "MoTe2", "WS2", "WSe2"}, params.Dias.Materials())
}

// TestTableGetValues verifies a known entry loads with its published values.
func TestTableGetValues(t *testing.T) {
	l, err := params.Liu2.Get("MoS2")
	require.NoError(t, err)

	require.Equal(t, "MoS2", l.Material())
	require.Equal(t, 0.319, l.Get("a"))
	require.Equal(t, 0.073, l.Get("lamb_m"))
	require.Equal(t, 1.046, l.Get("eps_0_m_e"))
	require.Equal(t, -0.184, l.Get("u_2_0_m_e"))
	_, ok := l.Lookup("lamb_x") // liu2 does not fit the chalcogen coupling
	require.False(t, ok)

	_, err = params.Liu2.Get("NbSe2")
	require.ErrorIs(t, err, params.ErrUnknownMaterial)
}

// TestTableFitted verifies the re-fitted variants load separately.
func TestTableFitted(t *testing.T) {
	l, err := params.Liu2.Fitted("MoS2")
	require.NoError(t, err)
	require.Equal(t, 0.318955279, l.Get("a"))
	require.Equal(t, -4.75202031, l.Get("eps_0_m_e"))

	_, err = params.Liu2.Fitted("WS2")
	require.ErrorIs(t, err, params.ErrUnknownMaterial)
}

// TestRidolfiVariants checks the variant layout of the ridolfi table: the
// published fit is the default, the valence-band and minimal fits are
// variants.
func TestRidolfiVariants(t *testing.T) {
	require.Equal(t, []string{"minimal", "vb"}, params.Ridolfi.Variants("MoS2"))

	def, err := params.Ridolfi.Get("MoS2")
	require.NoError(t, err)
	require.Equal(t, 0.201, def.Get("delta_0"))

	vb, err := params.Ridolfi.GetVariant("MoS2", "vb")
	require.NoError(t, err)
	require.Equal(t, 0.191, vb.Get("delta_0"))

	minimal, err := params.Ridolfi.GetVariant("MoS2", "minimal")
	require.NoError(t, err)
	require.Equal(t, -11.683, minimal.Get("delta_0"))
}

// TestAbdiWS2Material preserves the published table's quirk: the WS2 entry
// carries the WSe2 parameter set.
func TestAbdiWS2Material(t *testing.T) {
	l, err := params.Abdi.Get("WS2")
	require.NoError(t, err)
	require.Equal(t, "WSe2", l.Material())
	require.Equal(t, 0.326, l.Get("a"))
}

// TestRegistryImmutability ensures lookups hand out independent lists.
func TestRegistryImmutability(t *testing.T) {
	first, err := params.Liu2.Get("MoS2")
	require.NoError(t, err)
	require.NoError(t, first.Set("eps_0_m_e", 99))

	second, err := params.Liu2.Get("MoS2")
	require.NoError(t, err)
	require.Equal(t, 1.046, second.Get("eps_0_m_e"))
}

// TestEveryEntryLoads walks the whole registry: every material and variant
// of every table must produce a list with a material and a positive lattice
// constant.
func TestEveryEntryLoads(t *testing.T) {
	for _, name := range params.Tables() {
		tbl, err := params.LookupTable(name)
		require.NoError(t, err)
		for _, material := range tbl.Materials() {
			l, err := tbl.Get(material)
			require.NoError(t, err, "%s/%s", name, material)
			require.NotEmpty(t, l.Material(), "%s/%s", name, material)
			require.Greater(t, l.Get("a"), 0.0, "%s/%s", name, material)
			for _, variant := range tbl.Variants(material) {
				v, err := tbl.GetVariant(material, variant)
				require.NoError(t, err, "%s/%s/%s", name, material, variant)
				require.Greater(t, v.Get("a"), 0.0, "%s/%s/%s", name, material, variant)
			}
		}
	}
}
