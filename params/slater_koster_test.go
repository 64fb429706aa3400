// Package params_test contains unit tests for the Slater-Koster lists and
// their recalculation into symmetry-group energies.
package params_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdlab/tmdlattice/params"
)

const recalcTol = 1e-10

// TestSKDerivedReadOnly ensures the SG energies cannot be written on an SK
// list while the SK keys themselves stay writable.
func TestSKDerivedReadOnly(t *testing.T) {
	l := params.NewSKList()

	err := l.Set("eps_0_m_e", 1.0)
	require.ErrorIs(t, err, params.ErrDerivedParam)

	err = l.Apply(map[string]float64{"u_1_0_m_e": 1.0})
	require.ErrorIs(t, err, params.ErrDerivedParam)

	require.NoError(t, l.Set("delta_0", -0.4939))
	require.Equal(t, -0.4939, l.Get("eps_0_m_e")) // recalculated immediately
}

// TestSKOnsiteRecalculation checks the onsite reduction: the chalcogen
// dimer splitting and the direct metal mapping.
func TestSKOnsiteRecalculation(t *testing.T) {
	l := params.NewSKList()
	require.NoError(t, l.Apply(map[string]float64{
		"delta_p": -3.0,
		"delta_z": -4.0,
		"delta_0": -0.5,
		"delta_1": 0.6,
		"delta_2": -0.2,
		"v_0_pps": 4.0,
		"v_0_ppp": -1.8,
	}))

	require.InDelta(t, -4.8, l.Get("eps_0_x_e"), recalcTol) // delta_p + v_0_ppp
	require.InDelta(t, -8.0, l.Get("eps_1_x_e"), recalcTol) // delta_z - v_0_pps
	require.InDelta(t, -1.2, l.Get("eps_0_x_o"), recalcTol) // delta_p - v_0_ppp
	require.InDelta(t, 0.0, l.Get("eps_1_x_o"), recalcTol)  // delta_z + v_0_pps
	require.InDelta(t, -0.5, l.Get("eps_0_m_e"), recalcTol)
	require.InDelta(t, -0.2, l.Get("eps_1_m_e"), recalcTol)
	require.InDelta(t, 0.6, l.Get("eps_0_m_o"), recalcTol)
}

// TestSKThetaDefault verifies the ideal trigonal-prism fallback: without
// theta the shell-1 reduction uses tan(theta) = sqrt(3/4).
func TestSKThetaDefault(t *testing.T) {
	withDefault := params.NewSKList()
	require.NoError(t, withDefault.Apply(map[string]float64{
		"v_1_e_pds": 4.0,
		"v_1_e_pdp": -1.2,
	}))

	explicit := params.NewSKList()
	require.NoError(t, explicit.Apply(map[string]float64{
		"theta":     math.Atan(math.Sqrt(3.0 / 4.0)),
		"v_1_e_pds": 4.0,
		"v_1_e_pdp": -1.2,
	}))

	for _, key := range []string{"u_1_0_m_e", "u_1_1_m_e", "u_1_2_m_e", "u_1_3_m_e", "u_1_4_m_e"} {
		require.InDelta(t, explicit.Get(key), withDefault.Get(key), recalcTol, key)
	}
}

// TestSKRecalculationReference checks the full reduction against reference
// values for the dias MoS2 parameter set.
func TestSKRecalculationReference(t *testing.T) {
	l, err := params.Dias.Get("MoS2")
	require.NoError(t, err)
	require.Equal(t, "MoS2", l.Material())

	want := map[string]float64{
		"eps_0_x_e": -5.0335,
		"eps_1_x_e": -8.2584,
		"eps_0_x_o": -1.2488000000000001,
		"eps_1_x_o": 0.1394000000000002,
		"eps_0_m_e": -0.4939,
		"eps_1_m_e": -0.2473,
		"eps_0_m_o": 0.5624,
		"u_1_0_m_e": 1.3312764376087514,
		"u_1_1_m_e": -1.6041820945429428,
		"u_1_2_m_e": 1.6991086822439525,
		"u_1_3_m_e": -0.6030937324745369,
		"u_1_4_m_e": -2.604702877160274,
		"u_1_0_m_o": -0.7018830061606544,
		"u_1_1_m_o": 2.148660090712999,
		"u_1_2_m_o": -1.6335329291273937,
		"u_2_0_m_e": 0.036750000000000005,
		"u_2_1_m_e": 0.4090237982073903,
		"u_2_2_m_e": 0.0,
		"u_2_3_m_e": -0.43555,
		"u_2_4_m_e": 0.0,
		"u_2_5_m_e": 0.5706,
		"u_2_0_x_e": -0.0914,
		"u_2_1_x_e": 0.0,
		"u_2_2_x_e": 0.0,
		"u_2_3_x_e": -0.4619,
		"u_2_4_x_e": 0.0,
		"u_2_5_x_e": -0.4619,
		"u_5_0_m_e": -0.015025,
		"u_5_1_m_e": -0.026803486247128375,
		"u_5_3_m_e": 0.015924999999999998,
		"u_5_5_m_e": 0.0961,
		"u_5_6_m_e": -0.026803486247128375,
		"u_5_0_x_o": -0.0395,
		"u_5_2_x_o": 0.0,
		"u_5_3_x_o": 0.0092,
		"u_5_5_x_o": 0.0092,
		"u_5_6_x_o": 0.0,
		// dias carries no shell 3, 4 or 6 integrals, so those energies
		// reduce to zero.
		"u_3_0_m_e": 0.0,
		"u_4_0_m_o": 0.0,
		"u_6_0_x_e": 0.0,
	}
	for key, v := range want {
		require.InDelta(t, v, l.Get(key), recalcTol, key)
	}
}

// TestSKSimpleFanOut ensures the parity-free keys reach both split keys and
// the derived SG energies follow, checked against reference values for the
// cappelluti MoS2 parameter set.
func TestSKSimpleFanOut(t *testing.T) {
	l, err := params.Cappelluti.Get("MoS2")
	require.NoError(t, err)

	require.InDelta(t, l.Get("v_1_e_pds"), l.Get("v_1_o_pds"), recalcTol)
	require.InDelta(t, l.Get("v_2_e_ppp"), l.Get("v_2_o_ppp"), recalcTol)

	want := map[string]float64{
		"eps_0_x_e": -0.998,
		"eps_1_x_e": -8.932,
		"eps_0_x_o": -1.554,
		"eps_1_x_o": -7.540000000000001,
		"eps_0_m_e": -1.512,
		"eps_1_m_e": -3.025,
		"eps_0_m_o": 0.0, // cappelluti leaves delta_1 unset
		"u_1_0_m_e": 1.4894417985185024,
		"u_1_1_m_e": -0.7028064419806089,
		"u_1_2_m_e": -2.019057525333229,
		"u_1_3_m_e": -1.6330040142871947,
		"u_1_4_m_e": 0.4607739502672685,
		"u_1_0_m_o": -1.2958376166889003,
		"u_1_1_m_o": -2.217385517223437,
		"u_1_2_m_o": 2.291202858454608,
		"u_2_0_m_e": -0.5647500000000001,
		"u_2_1_m_e": 0.21260923662907968,
		"u_2_3_m_e": -0.8102500000000001,
		"u_2_5_m_e": -0.478,
		"u_2_0_x_e": 0.696,
		"u_2_3_x_e": 0.278,
		"u_2_5_x_e": 0.278,
	}
	for key, v := range want {
		require.InDelta(t, v, l.Get(key), recalcTol, key)
	}
}

// TestSKSimpleSplitReadOnly ensures the split SK keys are derived on simple
// lists.
func TestSKSimpleSplitReadOnly(t *testing.T) {
	l := params.NewSKSimpleList()

	err := l.Set("v_1_e_pds", 1.0)
	require.ErrorIs(t, err, params.ErrDerivedParam)

	require.NoError(t, l.Set("v_1_pds", 1.0))
	require.Equal(t, 1.0, l.Get("v_1_e_pds"))
	require.Equal(t, 1.0, l.Get("v_1_o_pds"))
}

// TestSKCloneKeepsRecalculation ensures a cloned SK list still derives.
func TestSKCloneKeepsRecalculation(t *testing.T) {
	l := params.NewSKList()
	require.NoError(t, l.Set("delta_0", -1.0))

	cp := l.Clone()
	require.Equal(t, -1.0, cp.Get("eps_0_m_e"))

	require.NoError(t, cp.Set("delta_0", -2.0))
	require.Equal(t, -2.0, cp.Get("eps_0_m_e"))
	require.Equal(t, -1.0, l.Get("eps_0_m_e")) // original unchanged
}
