// SPDX-License-Identifier: MIT
// Package params: Slater-Koster parameter lists.
// The SK conventions store two-center integrals and derive the SG energies
// from them through the closed-form reductions below. Derivation runs after
// every write, so the SG view is always current.

package params

import "math"

// SKList is a parameter set in the Slater-Koster convention with separate
// even and odd two-center integrals. The SG energy keys are derived and
// read-only.
type SKList struct {
	List
}

// NewSKList returns an empty SK list.
func NewSKList() *SKList {
	l := &SKList{List: List{
		schema:  skSchema,
		derived: sgEnergyKeySet,
		vals:    map[string]float64{"a": 1},
	}}
	l.recalc = l.recalculate
	l.recalculate()

	return l
}

// Clone returns an independent deep copy.
func (l *SKList) Clone() Set {
	cp := &SKList{}
	l.cloneInto(&cp.List)
	cp.recalc = cp.recalculate

	return cp
}

// tanTheta is the tangent of the metal-chalcogen angle. When theta is unset
// the geometry falls back to the ideal trigonal prism, tan(theta) = sqrt(3/4).
func (l *SKList) tanTheta() float64 {
	if v, ok := l.Lookup("theta"); ok {
		return math.Tan(v)
	}

	return math.Sqrt(3.0 / 4.0)
}

// recalculate rewrites every derived SG energy from the current SK values.
// Unset SK values read as zero, so unused shells reduce to zero energies.
func (l *SKList) recalculate() {
	tan := l.tanTheta()

	// Onsite energies. The chalcogen dimer splits each p level by the
	// interlayer coupling; the metal levels map one to one.
	l.setDerived("eps_0_x_e", l.Get("delta_p")+l.Get("v_0_ppp"))
	l.setDerived("eps_1_x_e", l.Get("delta_z")-l.Get("v_0_pps"))
	l.setDerived("eps_0_x_o", l.Get("delta_p")-l.Get("v_0_ppp"))
	l.setDerived("eps_1_x_o", l.Get("delta_z")+l.Get("v_0_pps"))
	l.setDerived("eps_0_m_e", l.Get("delta_0"))
	l.setDerived("eps_1_m_e", l.Get("delta_2"))
	l.setDerived("eps_0_m_o", l.Get("delta_1"))

	// Metal-chalcogen shells 1, 3 and 4 share one reduction with a
	// shell-dependent in-plane distance ratio r.
	for _, mx := range []struct {
		shell string
		r     float64
	}{
		{"1", -1},
		{"3", 2},
		{"4", -math.Sqrt(7)},
	} {
		e := hMXEven(tan, mx.r, l.Get("v_"+mx.shell+"_e_pds"), l.Get("v_"+mx.shell+"_e_pdp"))
		o := hMXOdd(tan, mx.r, l.Get("v_"+mx.shell+"_o_pds"), l.Get("v_"+mx.shell+"_o_pdp"))
		for i, v := range e {
			l.setDerived(uKey(mx.shell, i, "m", "e"), v)
		}
		for i, v := range o {
			l.setDerived(uKey(mx.shell, i, "m", "o"), v)
		}
	}

	// Metal-metal and chalcogen-chalcogen shells 2 and 6 (along x).
	for _, shell := range []string{"2", "6"} {
		me := hMMXEven(l.Get("v_"+shell+"_e_dds"), l.Get("v_"+shell+"_e_ddp"), l.Get("v_"+shell+"_e_ddd"))
		mo := hMMXOdd(l.Get("v_"+shell+"_o_ddp"), l.Get("v_"+shell+"_o_ddd"))
		xe := hXXXEven(tan, math.Sqrt(3),
			l.Get("v_"+shell+"_e_pps"), l.Get("v_"+shell+"_e_ppp"),
			l.Get("v_"+shell+"_e_pps_tb"), l.Get("v_"+shell+"_e_ppp_tb"))
		xo := hXXXOdd(tan, math.Sqrt(3),
			l.Get("v_"+shell+"_o_pps"), l.Get("v_"+shell+"_o_ppp"),
			l.Get("v_"+shell+"_o_pps_tb"), l.Get("v_"+shell+"_o_ppp_tb"))
		for i, v := range me {
			l.setDerived(uKey(shell, i, "m", "e"), v)
		}
		for i, v := range mo {
			l.setDerived(uKey(shell, i, "m", "o"), v)
		}
		for i, v := range xe {
			l.setDerived(uKey(shell, i, "x", "e"), v)
		}
		for i, v := range xo {
			l.setDerived(uKey(shell, i, "x", "o"), v)
		}
	}

	// Shell 5 (along y) keeps only the entries its mirror symmetry allows.
	me := hMMYEven(l.Get("v_5_e_dds"), l.Get("v_5_e_ddp"), l.Get("v_5_e_ddd"))
	mo := hMMYOdd(l.Get("v_5_o_ddp"), l.Get("v_5_o_ddd"))
	xe := hXXYEven(tan, 3,
		l.Get("v_5_e_pps"), l.Get("v_5_e_ppp"),
		l.Get("v_5_e_pps_tb"), l.Get("v_5_e_ppp_tb"))
	// The odd chalcogen block reuses the even pps_tb value, matching the
	// published parameterization.
	xo := hXXYOdd(tan, 3,
		l.Get("v_5_o_pps"), l.Get("v_5_o_ppp"),
		l.Get("v_5_e_pps_tb"), l.Get("v_5_o_ppp_tb"))
	for i, idx := range []int{0, 1, 3, 5, 6} {
		l.setDerived(uKey("5", idx, "m", "e"), me[i])
	}
	for i, idx := range []int{0, 2} {
		l.setDerived(uKey("5", idx, "m", "o"), mo[i])
	}
	for i, idx := range []int{0, 2, 3, 5, 6} {
		l.setDerived(uKey("5", idx, "x", "e"), xe[i])
		l.setDerived(uKey("5", idx, "x", "o"), xo[i])
	}
}

func uKey(shell string, idx int, atom, parity string) string {
	return "u_" + shell + "_" + string(rune('0'+idx)) + "_" + atom + "_" + parity
}

// hMXEven reduces the even metal-chalcogen pd integrals of one shell to its
// five independent hopping energies.
func hMXEven(tan, r, vpds, vpdp float64) [5]float64 {
	n := math.Sqrt(r*r + tan*tan)
	d := math.Sqrt2 * n * n * n

	return [5]float64{
		math.Sqrt2 * r * vpdp / n,
		-r * (2*math.Sqrt(3)*tan*tan*vpdp + (r*r-2*tan*tan)*vpds) / d,
		-r * (2*tan*tan*vpdp + math.Sqrt(3)*r*r*vpds) / d,
		tan * (2*math.Sqrt(3)*r*r*vpdp + (2*tan*tan-r*r)*vpds) / d,
		r * r * tan * (2*vpdp - math.Sqrt(3)*vpds) / d,
	}
}

// hMXOdd reduces the odd metal-chalcogen pd integrals of one shell to its
// three independent hopping energies.
func hMXOdd(tan, r, vpds, vpdp float64) [3]float64 {
	n := math.Sqrt(r*r + tan*tan)
	d := n * n * n

	return [3]float64{
		math.Sqrt2 * tan * vpdp / n,
		math.Sqrt2 * tan * ((tan*tan-r*r)*vpdp + math.Sqrt(3)*r*r*vpds) / d,
		math.Sqrt2 * r * ((r*r-tan*tan)*vpdp + math.Sqrt(3)*tan*tan*vpds) / d,
	}
}

// hMMXEven reduces the even metal-metal dd integrals of a shell along x.
func hMMXEven(vdds, vddp, vddd float64) [6]float64 {
	return [6]float64{
		(vdds + 3*vddd) / 4,
		math.Sqrt(3) / 4 * (-vdds + vddd),
		0,
		(3*vdds + vddd) / 4,
		0,
		vddp,
	}
}

// hMMYEven is the shell-5 variant of hMMXEven; indices 2 and 4 vanish and a
// sixth entry appears instead.
func hMMYEven(vdds, vddp, vddd float64) [5]float64 {
	return [5]float64{
		(vdds + 3*vddd) / 4,
		math.Sqrt(3) / 4 * (-vdds + vddd),
		(3*vdds + vddd) / 4,
		vddp,
		math.Sqrt(3) / 4 * (-vdds + vddd),
	}
}

// hMMXOdd reduces the odd metal-metal dd integrals of a shell along x.
func hMMXOdd(vddp, vddd float64) [3]float64 {
	return [3]float64{vddp, 0, vddd}
}

// hMMYOdd is the shell-5 variant of hMMXOdd.
func hMMYOdd(vddp, vddd float64) [2]float64 {
	return [2]float64{vddp, vddd}
}

// hXXXEven reduces the even chalcogen-chalcogen pp integrals of a shell
// along x. The _tb values couple the top and bottom chalcogen layers.
func hXXXEven(tan, r, vpps, vppp, vppstb, vppptb float64) [6]float64 {
	q := (vppptb - vppstb) / (r*r + 4*tan*tan)

	return [6]float64{
		vpps + vppptb - r*r*q,
		0,
		-2 * tan * r * q,
		vppp + vppptb,
		0,
		vppp - vppstb - r*r*q,
	}
}

// hXXYEven is the shell-5 variant of hXXXEven.
func hXXYEven(tan, r, vpps, vppp, vppstb, vppptb float64) [5]float64 {
	q := (vppptb - vppstb) / (r*r + 4*tan*tan)

	return [5]float64{
		vpps + vppptb - r*r*q,
		-2 * tan * r * q,
		vppp + vppptb,
		vppp - vppstb - r*r*q,
		2 * tan * r * q,
	}
}

// hXXXOdd reduces the odd chalcogen-chalcogen pp integrals of a shell
// along x. The top-bottom contributions enter with flipped signs.
func hXXXOdd(tan, r, vpps, vppp, vppstb, vppptb float64) [6]float64 {
	q := (vppptb - vppstb) / (r*r + 4*tan*tan)

	return [6]float64{
		vpps - vppptb + r*r*q,
		0,
		-2 * tan * r * q,
		vppp - vppptb,
		0,
		vppp + vppstb + r*r*q,
	}
}

// hXXYOdd is the shell-5 variant of hXXXOdd.
func hXXYOdd(tan, r, vpps, vppp, vppstb, vppptb float64) [5]float64 {
	q := (vppptb - vppstb) / (r*r + 4*tan*tan)

	return [5]float64{
		vpps - vppptb + r*r*q,
		2 * tan * r * q,
		vppp - vppptb,
		vppp + vppstb + r*r*q,
		-2 * tan * r * q,
	}
}

// SKSimpleList is the Slater-Koster convention without the even/odd split.
// Each parity-free integral fans out to both split keys; the split keys and
// the SG energies are derived and read-only.
type SKSimpleList struct {
	SKList
}

// NewSKSimpleList returns an empty simplified SK list.
func NewSKSimpleList() *SKSimpleList {
	l := &SKSimpleList{SKList: SKList{List: List{
		schema:  skSimpleSchema,
		derived: skSimpleDerivedSet,
		vals:    map[string]float64{"a": 1},
	}}}
	l.recalc = l.recalculateSimple
	l.recalculateSimple()

	return l
}

// Clone returns an independent deep copy.
func (l *SKSimpleList) Clone() Set {
	cp := &SKSimpleList{}
	l.cloneInto(&cp.List)
	cp.recalc = cp.recalculateSimple

	return cp
}

// recalculateSimple fans the parity-free integrals out to both split keys
// and then runs the shared SK reduction.
func (l *SKSimpleList) recalculateSimple() {
	for _, n := range []string{"1", "3", "4"} {
		for _, i := range []string{"s", "p"} {
			v := l.Get("v_" + n + "_pd" + i)
			l.setDerived("v_"+n+"_e_pd"+i, v)
			l.setDerived("v_"+n+"_o_pd"+i, v)
		}
	}
	for _, n := range []string{"2", "5", "6"} {
		l.setDerived("v_"+n+"_e_dds", l.Get("v_"+n+"_dds"))
		for _, i := range []string{"p", "d"} {
			v := l.Get("v_" + n + "_dd" + i)
			l.setDerived("v_"+n+"_e_dd"+i, v)
			l.setDerived("v_"+n+"_o_dd"+i, v)
		}
		for _, i := range []string{"s", "p"} {
			for _, t := range []string{"", "_tb"} {
				v := l.Get("v_" + n + "_pp" + i + t)
				l.setDerived("v_"+n+"_e_pp"+i+t, v)
				l.setDerived("v_"+n+"_o_pp"+i+t, v)
			}
		}
	}
	l.recalculate()
}

// skSimpleDerivedSet marks both the split SK keys and the SG energies as
// read-only on simple lists.
var skSimpleDerivedSet = func() map[string]bool {
	set := make(map[string]bool, len(sgEnergyKeySet)+len(skSplitKeySet))
	for key := range sgEnergyKeySet {
		set[key] = true
	}
	for key := range skSplitKeySet {
		set[key] = true
	}

	return set
}()
