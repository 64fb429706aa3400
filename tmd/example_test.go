// Package tmd_test provides examples demonstrating how to build lattices
// from the published presets. Each example is runnable via "go test -run Example".
package tmd_test

import (
	"fmt"

	"github.com/tmdlab/tmdlattice/params"
	"github.com/tmdlab/tmdlattice/tmd"
)

// ExampleTmdNN2Me demonstrates the minimal three-band model: one metal
// sublattice with a threefold family of second-shell hoppings.
func ExampleTmdNN2Me() {
	// 1) Build the preset with its default MoS2 parameter set.
	m, err := tmd.TmdNN2Me()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Derive the crystal.
	l, err := m.Lattice()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 3) Print the layout: the unit cell carries one site and three bonds.
	fmt.Printf("%s (%s): %d bands\n", m.Name(), m.Material(), m.NBands())
	fmt.Printf("sublattices=%d hoppings=%d\n", l.NSublattices(), l.NHoppings())
	for _, h := range l.Hoppings() {
		fmt.Printf("%s cell=%v\n", h.Energy, h.Cell)
	}
	// Output:
	// 3 bands 2NN model (MoS2): 3 bands
	// sublattices=1 hoppings=3
	// h_2_m-0-Mo-Mo cell=[1 0]
	// h_2_m-1-Mo-Mo cell=[0 1]
	// h_2_m-2-Mo-Mo cell=[-1 -1]
}

// ExampleTmdNN123MeoXeo_withParams demonstrates rebinding a preset to a
// different material and switching on spin-orbit coupling.
func ExampleTmdNN123MeoXeo_withParams() {
	// 1) Fetch a WS2 parameter set from the registry.
	p, err := params.Fang.Get("WS2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2) Build the eleven-band preset on it, with unpolarized SOC doubling.
	m, err := tmd.TmdNN123MeoXeo(tmd.WithParams(p), tmd.WithSOC())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 3) Band and site counts reflect the spin doubling.
	l, err := m.Lattice()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s/%s: bands=%d valence=%d\n", m.MetalName(), m.ChalcogenName(), m.NBands(), m.NValenceBand())
	fmt.Printf("sublattices=%d hoppings=%d\n", l.NSublattices(), l.NHoppings())
	// Output:
	// W/S: bands=22 valence=13
	// sublattices=2 hoppings=12
}
