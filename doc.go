// Package tmdlattice is your in-memory toolkit for building tight-binding
// lattices of transition-metal dichalcogenide monolayers — from published
// parameter tables to fully assembled crystals.
//
// 🚀 What is tmdlattice?
//
//	A small, value-object library that brings together:
//		• Parameter registry: published symmetry-group and Slater-Koster tables,
//		  embedded as data files and exposed through one Set interface
//		• Hopping matrices: the onsite and neighbour-shell blocks of the
//		  symmetry-group parameterization, even and odd sectors
//		• Orbital symmetry: rotation, mirror and spin-orbit operators per
//		  orbital group
//		• Model presets: the published 3-, 5-, 6- and 11-band models, with
//		  spin-orbit coupling, rectangular cells and per-orbital splitting
//		• Lattice container: sublattices, hopping energies and bonds, ready
//		  for Bloch-Hamiltonian construction
//
// ✨ Why choose tmdlattice?
//
//   - Published values – every table carries its literature parameterization
//   - Explicit errors – sentinel errors per package, wrapped with context
//   - Pure data out – the lattice is a plain container, solve it your way
//   - Extensible – functional options (WithSOC, WithLat4…) on every preset
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/  — complex dense matrices: blocks, Kronecker products, rotations
//	params/  — parameter sets, the embedded table registry, SK conversion
//	tmd/     — orbitals, hopping matrices, model presets, lattice assembly
//	lattice/ — the assembled crystal: sublattices, energies, bonds
//
// Quick ASCII example:
//
//	    M───X
//	    │   │
//	    X───M
//
//	a honeycomb of metal and chalcogen sites; each bond carries a matrix.
//
// Dive into the tmd package examples for preset usage, or run the
// tmdlattice CLI to inspect tables and assembled layouts.
//
//	go get github.com/tmdlab/tmdlattice
package tmdlattice
