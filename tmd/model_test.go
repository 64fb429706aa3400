// Package tmd_test: tests for the model configuration and accessors.
package tmd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmdlab/tmdlattice/params"
	"github.com/tmdlab/tmdlattice/tmd"
)

// TestPresetDefaults verifies names, default materials and band counts.
func TestPresetDefaults(t *testing.T) {
	m, err := tmd.TmdNN2Me()
	require.NoError(t, err)
	require.Equal(t, "3 bands 2NN model", m.Name())
	require.Equal(t, "MoS2", m.Material())
	require.Equal(t, "Mo", m.MetalName())
	require.Equal(t, "S", m.ChalcogenName())
	require.Equal(t, 0, m.NValenceBand())
	require.Equal(t, 3, m.NBands())

	full, err := tmd.TmdNN123456MeoXeo()
	require.NoError(t, err)
	require.Equal(t, "11 bands 6NN model", full.Name())
	require.Equal(t, 6, full.NValenceBand())
	require.Equal(t, 11, full.NBands())
}

// TestBandCountsUnderSOC verifies the doubling arithmetic.
func TestBandCountsUnderSOC(t *testing.T) {
	m, err := tmd.TmdNN12MeoXeo(tmd.WithSOC())
	require.NoError(t, err)
	require.True(t, m.SOCDoubled())
	require.Equal(t, 13, m.NValenceBand()) // (6+1)*2-1
	require.Equal(t, 22, m.NBands())

	pol, err := tmd.TmdNN12MeoXeo(tmd.WithSOC(), tmd.WithSOCPolarized())
	require.NoError(t, err)
	require.False(t, pol.SOCDoubled())
	require.Equal(t, 6, pol.NValenceBand())
	require.Equal(t, 11, pol.NBands())
}

// TestUnitCellVectors verifies the rhombic and rectangular cells.
func TestUnitCellVectors(t *testing.T) {
	m, err := tmd.TmdNN2Me()
	require.NoError(t, err)
	a := m.Params().Get("a")
	require.InDelta(t, 0.319, a, 1e-12)
	require.Equal(t, [2]float64{a, 0}, m.A1())
	require.InDelta(t, -a/2, m.A2()[0], 1e-12)
	require.InDelta(t, a*math.Sqrt(3)/2, m.A2()[1], 1e-12)

	rect, err := tmd.TmdNN2Me(tmd.WithLat4())
	require.NoError(t, err)
	require.True(t, rect.Lat4())
	require.Equal(t, [2]float64{a, 0}, rect.A1())
	require.InDelta(t, 0, rect.A2()[0], 1e-12)
	require.InDelta(t, a*math.Sqrt(3), rect.A2()[1], 1e-12)
}

// TestWithParamsRebinds verifies a preset accepts another table's set.
func TestWithParamsRebinds(t *testing.T) {
	p, err := params.Liu2.Get("WS2")
	require.NoError(t, err)

	m, err := tmd.TmdNN2Me(tmd.WithParams(p))
	require.NoError(t, err)
	require.Equal(t, "WS2", m.Material())
	require.Equal(t, "W", m.MetalName())
	require.Equal(t, "S", m.ChalcogenName())
}

// TestBadMaterialFormula verifies the formula must split into two symbols.
func TestBadMaterialFormula(t *testing.T) {
	p, err := params.Liu2.Get("MoS2")
	require.NoError(t, err)
	p.SetMaterial("junk2")

	m, err := tmd.TmdNN2Me(tmd.WithParams(p))
	require.NoError(t, err)
	require.Equal(t, "", m.MetalName())

	_, err = m.Lattice()
	require.ErrorIs(t, err, tmd.ErrBadMaterial)
}
