// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical plate-bending solutions used to verify
// the finite element results
package ana

import "math"

// FlexRigidity returns the flexural rigidity of a plate
//
//            E t³
//   D = ─────────────
//        12 (1 - ν²)
func FlexRigidity(e, ν, t float64) float64 {
	return e * t * t * t / (12.0 * (1.0 - ν*ν))
}

// ClampedHydrostatic computes Timoshenko's solution for a rectangular plate
// clamped along three edges, free along the fourth, loaded by a hydrostatic
// pressure that is largest at the edge opposite the free one
//
//        y
//        ↑ free
//        o-----------o ─
//      ▷ |           | ◁
//      ▷ |  E, ν, t  | ◁  b       p(y) = γ (b - y)
//      ▷ |           | ◁
//        o-----------o ─ → x
//           clamped
//        |─────a─────|
type ClampedHydrostatic struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	T float64 // plate thickness
	A float64 // clamped span (x direction)
	B float64 // height towards the free edge (y direction)
	γ float64 // fluid unit weight

	// derived
	D float64 // flexural rigidity
}

// NewClampedHydrostatic returns an initialised solution
func NewClampedHydrostatic(e, ν, t, a, b, γ float64) (o *ClampedHydrostatic) {
	o = &ClampedHydrostatic{E: e, ν: ν, T: t, A: a, B: b, γ: γ}
	o.D = FlexRigidity(e, ν, t)
	return
}

// MaxDeflection returns the largest transverse deflection, at the middle of
// the free edge. The tabulated coefficient holds for b/a = 1.5.
func (o *ClampedHydrostatic) MaxDeflection() float64 {
	q := o.γ * o.B
	return 0.00042 * q * math.Pow(o.A, 4) / o.D
}

// SimplySupportedUniform computes Navier's double-series solution for a
// rectangular plate simply supported on all four edges under uniform pressure
//
//        y
//        ↑
//        o-----△-----o ─
//        |           |
//        △  E, ν, t  △  b       p(x,y) = q
//        |           |
//        o-----△-----o ─ → x
//        |─────a─────|
type SimplySupportedUniform struct {
	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	T float64 // plate thickness
	A float64 // span in x
	B float64 // span in y
	Q float64 // uniform pressure

	// derived
	D float64 // flexural rigidity
}

// NewSimplySupportedUniform returns an initialised solution
func NewSimplySupportedUniform(e, ν, t, a, b, q float64) (o *SimplySupportedUniform) {
	o = &SimplySupportedUniform{E: e, ν: ν, T: t, A: a, B: b, Q: q}
	o.D = FlexRigidity(e, ν, t)
	return
}

// Deflection returns the transverse deflection at (x, y). The series converges
// quickly; 50 odd terms per direction give far more digits than needed.
func (o *SimplySupportedUniform) Deflection(x, y float64) (w float64) {
	coef := 16.0 * o.Q / (math.Pow(math.Pi, 6) * o.D)
	for m := 1; m < 100; m += 2 {
		fm := float64(m)
		sx := math.Sin(fm * math.Pi * x / o.A)
		for n := 1; n < 100; n += 2 {
			fn := float64(n)
			den := fm * fn * math.Pow(fm*fm/(o.A*o.A)+fn*fn/(o.B*o.B), 2)
			w += coef * sx * math.Sin(fn*math.Pi*y/o.B) / den
		}
	}
	return
}

// MaxDeflection returns the deflection at the centre of the plate
func (o *SimplySupportedUniform) MaxDeflection() float64 {
	return o.Deflection(o.A/2.0, o.B/2.0)
}
