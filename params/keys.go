// SPDX-License-Identifier: MIT
// Package params: key schemas.
// The schemas enumerate every legal key of each list convention together
// with its display (LaTeX) label. They are built once at package init and
// shared read-only between all lists.

package params

import "fmt"

// paramDef pairs a parameter key with its display label.
type paramDef struct {
	key   string
	label string
}

// schema is the immutable key set of one list convention. order preserves
// the declaration order for deterministic Keys() output.
type schema struct {
	labels map[string]string
	order  []string
}

func newSchema(defGroups ...[]paramDef) *schema {
	s := &schema{labels: make(map[string]string)}
	for _, defs := range defGroups {
		for _, d := range defs {
			if _, dup := s.labels[d.key]; dup {
				panic(fmt.Sprintf("params: duplicate schema key %q", d.key))
			}
			s.labels[d.key] = d.label
			s.order = append(s.order, d.key)
		}
	}

	return s
}

func (s *schema) has(key string) bool {
	_, ok := s.labels[key]

	return ok
}

// generalDefs lists the keys shared by every convention. The material name
// is carried separately as a string, not through the float surface.
func generalDefs() []paramDef {
	return []paramDef{
		{"a", `$a$`},
		{"lamb_m", `$\lambda_M$`},
		{"lamb_x", `$\lambda_X$`},
	}
}

// sgEnergyDefs enumerates the symmetry-group onsite and hopping energies.
// The index ranges differ per shell: the even metal blocks of shells 1, 3
// and 4 carry five independent entries and the odd blocks three; shells 2
// and 6 carry six (three for the odd metal block); shell 5 skips the entries
// its mirror symmetry forces to zero.
func sgEnergyDefs() []paramDef {
	var defs []paramDef
	for _, i := range []string{"0", "1"} {
		for _, r := range []string{"e", "o"} {
			defs = append(defs, paramDef{
				"eps_" + i + "_x_" + r,
				`$\epsilon_` + i + `^{X,` + r + `}$`,
			})
		}
	}
	defs = append(defs,
		paramDef{"eps_0_m_e", `$\epsilon_0^{M,e}$`},
		paramDef{"eps_0_m_o", `$\epsilon_0^{M,o}$`},
		paramDef{"eps_1_m_e", `$\epsilon_1^{M,e}$`},
	)
	for _, u := range []string{"1", "3", "4"} {
		for i := 0; i < 5; i++ {
			defs = append(defs, uDef(u, fmt.Sprint(i), "m", "e"))
		}
	}
	for _, u := range []string{"1", "3", "4"} {
		for i := 0; i < 3; i++ {
			defs = append(defs, uDef(u, fmt.Sprint(i), "m", "o"))
		}
	}
	for _, u := range []string{"2", "6"} {
		for i := 0; i < 6; i++ {
			for _, m := range []string{"m", "x"} {
				defs = append(defs, uDef(u, fmt.Sprint(i), m, "e"))
			}
		}
	}
	for _, u := range []string{"2", "6"} {
		for i := 0; i < 6; i++ {
			defs = append(defs, uDef(u, fmt.Sprint(i), "x", "o"))
		}
	}
	for _, u := range []string{"2", "6"} {
		for i := 0; i < 3; i++ {
			defs = append(defs, uDef(u, fmt.Sprint(i), "m", "o"))
		}
	}
	for _, i := range []string{"0", "1", "3", "5", "6"} {
		defs = append(defs, uDef("5", i, "m", "e"))
	}
	for _, i := range []string{"0", "2", "3", "5", "6"} {
		for _, r := range []string{"e", "o"} {
			defs = append(defs, uDef("5", i, "x", r))
		}
	}
	for _, i := range []string{"0", "2"} {
		defs = append(defs, uDef("5", i, "m", "o"))
	}

	return defs
}

// uDef builds one hopping-energy definition, e.g. u_2_3_x_e with label
// $u_2^{3,Xe}$. Shells 1, 3 and 4 only couple metal to chalcogen, so their
// labels carry the parity alone.
func uDef(shell, idx, atom, parity string) paramDef {
	key := "u_" + shell + "_" + idx + "_" + atom + "_" + parity
	sup := idx + ","
	switch {
	case shell == "1" || shell == "3" || shell == "4":
		sup += parity
	case atom == "m":
		sup += "M" + parity
	default:
		sup += "X" + parity
	}

	return paramDef{key, `$u_` + shell + `^{` + sup + `}$`}
}

// skOnsiteDefs lists the onsite Slater-Koster keys: the orbital splittings,
// the interlayer chalcogen couplings and the reference angle theta.
func skOnsiteDefs() []paramDef {
	defs := []paramDef{{"theta", `$\theta$`}}
	for _, r := range []string{"p", "z", "0", "1", "2"} {
		defs = append(defs, paramDef{"delta_" + r, `$\delta_` + r + `$`})
	}
	defs = append(defs,
		paramDef{"v_0_pps", `$V^0_{pp\sigma}$`},
		paramDef{"v_0_ppp", `$V^0_{pp\pi}$`},
	)

	return defs
}

var greekBond = map[string]string{"s": `\sigma`, "p": `\pi`, "d": `\delta`}

// skSplitDefs lists the even/odd two-center integrals: pd couplings for the
// metal-chalcogen shells 1, 3 and 4, and pp/dd couplings for shells 2, 5 and
// 6 (the _tb suffix marks the top-bottom chalcogen combinations).
func skSplitDefs() []paramDef {
	var defs []paramDef
	for _, n := range []string{"1", "3", "4"} {
		for _, r := range []string{"e", "o"} {
			for _, i := range []string{"s", "p"} {
				defs = append(defs, paramDef{
					"v_" + n + "_" + r + "_pd" + i,
					`$V^{` + n + `_` + r + `}_{pd` + greekBond[i] + `}$`,
				})
			}
		}
	}
	for _, n := range []string{"2", "5", "6"} {
		for _, r := range []string{"e", "o"} {
			for _, i := range []string{"s", "p"} {
				for _, t := range []string{"", "_tb"} {
					lt := ""
					if t != "" {
						lt = ",tb"
					}
					defs = append(defs, paramDef{
						"v_" + n + "_" + r + "_pp" + i + t,
						`$V^{` + n + `_` + r + `}_{pp` + greekBond[i] + lt + `}$`,
					})
				}
			}
		}
	}
	for _, n := range []string{"2", "5", "6"} {
		defs = append(defs, paramDef{"v_" + n + "_e_dds", `$V^{` + n + `_e}_{dd\sigma}$`})
	}
	for _, n := range []string{"2", "5", "6"} {
		for _, r := range []string{"e", "o"} {
			for _, i := range []string{"p", "d"} {
				defs = append(defs, paramDef{
					"v_" + n + "_" + r + "_dd" + i,
					`$V^{` + n + `_` + r + `}_{dd` + greekBond[i] + `}$`,
				})
			}
		}
	}

	return defs
}

// skSimpleDefs lists the parity-free two-center integrals of the simplified
// SK convention. Each key fans out to its even and odd counterparts.
func skSimpleDefs() []paramDef {
	var defs []paramDef
	for _, n := range []string{"1", "3", "4"} {
		for _, i := range []string{"s", "p"} {
			defs = append(defs, paramDef{
				"v_" + n + "_pd" + i,
				`$V^{` + n + `}_{pd` + greekBond[i] + `}$`,
			})
		}
	}
	for _, n := range []string{"2", "5", "6"} {
		for _, i := range []string{"s", "p"} {
			for _, t := range []string{"", "_tb"} {
				lt := ""
				if t != "" {
					lt = ",tb"
				}
				defs = append(defs, paramDef{
					"v_" + n + "_pp" + i + t,
					`$V^{` + n + `}_{pp` + greekBond[i] + lt + `}$`,
				})
			}
		}
	}
	for _, n := range []string{"2", "5", "6"} {
		for _, i := range []string{"s", "p", "d"} {
			defs = append(defs, paramDef{
				"v_" + n + "_dd" + i,
				`$V^{` + n + `}_{dd` + greekBond[i] + `}$`,
			})
		}
	}

	return defs
}

// strainDefs lists the strain derivatives up to maxOrder. Biaxial (b) and
// uniaxial (u) strain derive every SG energy; shear (s) only carries the
// hopping families its reduced symmetry newly allows.
func strainDefs(maxOrder int) []paramDef {
	var defs []paramDef
	for _, st := range []string{"b", "u", "s"} {
		for order := 1; order <= maxOrder; order++ {
			part := fmt.Sprintf("%s_%d", st, order)
			if st != "s" {
				for _, d := range sgEnergyDefs() {
					defs = append(defs, strainDef(d, part))
				}
				continue
			}
			for _, u := range []string{"1", "3", "4"} {
				for i := 5; i < 9; i++ {
					defs = append(defs, strainDef(uDef(u, fmt.Sprint(i), "m", "e"), part))
				}
			}
			for _, u := range []string{"1", "3", "4"} {
				for i := 3; i < 6; i++ {
					defs = append(defs, strainDef(uDef(u, fmt.Sprint(i), "m", "o"), part))
				}
			}
			for _, u := range []string{"2", "6"} {
				for _, i := range []string{"1", "2", "4"} {
					for _, m := range []string{"m", "x"} {
						defs = append(defs, strainDef(uDef(u, i, m, "e"), part))
					}
				}
			}
			for _, u := range []string{"2", "6"} {
				for _, i := range []string{"1", "2", "4"} {
					defs = append(defs, strainDef(uDef(u, i, "x", "o"), part))
				}
			}
			for _, u := range []string{"2", "6"} {
				defs = append(defs, strainDef(uDef(u, "0", "m", "o"), part))
			}
			for _, i := range []string{"2", "4", "7", "8"} {
				defs = append(defs, strainDef(uDef("5", i, "m", "e"), part))
			}
			for _, i := range []string{"1", "4", "7", "8"} {
				for _, r := range []string{"e", "o"} {
					defs = append(defs, strainDef(uDef("5", i, "x", r), part))
				}
			}
			for _, i := range []string{"1", "3"} {
				defs = append(defs, strainDef(uDef("5", i, "m", "o"), part))
			}
		}
	}

	return defs
}

// strainDef suffixes an energy definition with the strain part, e.g.
// u_2_1_m_e with part b_1 becomes u_2_1_m_e_b_1.
func strainDef(d paramDef, part string) paramDef {
	return paramDef{d.key + "_" + part, d.label[:len(d.label)-2] + `,` + part + `}$`}
}

func keysOf(defs []paramDef) map[string]bool {
	set := make(map[string]bool, len(defs))
	for _, d := range defs {
		set[d.key] = true
	}

	return set
}

// Shared, read-only schema instances.
var (
	sgSchema       = newSchema(generalDefs(), sgEnergyDefs())
	skSchema       = newSchema(generalDefs(), skOnsiteDefs(), skSplitDefs(), sgEnergyDefs())
	skSimpleSchema = newSchema(generalDefs(), skOnsiteDefs(), skSimpleDefs(), skSplitDefs(), sgEnergyDefs())

	sgEnergyKeySet = keysOf(sgEnergyDefs())
	skSplitKeySet  = keysOf(skSplitDefs())
)
