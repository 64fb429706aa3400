// Package params_test contains unit tests for the strain-derivative lists.
package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmdlab/tmdlattice/params"
)

// TestStrainListSchema checks that biaxial and uniaxial derivatives exist
// for every SG energy while shear carries only its own index families.
func TestStrainListSchema(t *testing.T) {
	l := params.NewStrainList(1)
	require.Equal(t, 1, l.MaxOrder())

	require.NoError(t, l.Set("eps_0_m_e", 0.68)) // plain SG keys stay writable
	require.NoError(t, l.Set("eps_0_m_e_b_1", 0.1))
	require.NoError(t, l.Set("u_2_3_x_e_u_1", -0.2))

	// Shear only adds the entries symmetry breaking newly allows: shell 1
	// gains even indices 5..8, not a derivative of index 0.
	require.NoError(t, l.Set("u_1_5_m_e_s_1", 0.3))
	require.NoError(t, l.Set("u_1_8_m_e_s_1", 0.4))
	err := l.Set("u_1_0_m_e_s_1", 0.5)
	require.ErrorIs(t, err, params.ErrUnknownParam)

	// Shell 5 shear families.
	require.NoError(t, l.Set("u_5_2_m_e_s_1", 0.6))
	require.NoError(t, l.Set("u_5_1_x_o_s_1", 0.7))
	require.NoError(t, l.Set("u_5_3_m_o_s_1", 0.8))
}

// TestStrainListOrders ensures higher orders extend the schema.
func TestStrainListOrders(t *testing.T) {
	first := params.NewStrainList(1)
	err := first.Set("eps_0_m_e_b_2", 0.1)
	require.ErrorIs(t, err, params.ErrUnknownParam)

	second := params.NewStrainList(2)
	require.NoError(t, second.Set("eps_0_m_e_b_2", 0.1))
	require.NoError(t, second.Set("u_1_5_m_e_s_2", 0.2))

	clamped := params.NewStrainList(0) // orders below one fall back to one
	require.Equal(t, 1, clamped.MaxOrder())
}

// TestStrainCloneIndependence ensures clones keep the order and values.
func TestStrainCloneIndependence(t *testing.T) {
	l := params.NewStrainList(2)
	require.NoError(t, l.Set("eps_0_m_e_u_2", 0.25))

	cp := l.Clone()
	require.Equal(t, 0.25, cp.Get("eps_0_m_e_u_2"))

	require.NoError(t, cp.Set("eps_0_m_e_u_2", 0.5))
	require.Equal(t, 0.25, l.Get("eps_0_m_e_u_2"))
}
