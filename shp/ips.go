// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

// Ipoint is an integration point with natural coordinates and weight {r, s, t, w}
type Ipoint []float64

// integration point sets for qua4 elements
var (

	// IpsQua4 holds the 2x2 Gauss rule (exact for the bilinear stiffness integrands)
	IpsQua4 []Ipoint

	// IpsQuaCentre holds the single centre point rule with the full weight
	IpsQuaCentre []Ipoint
)

func init() {
	g := 1.0 / math.Sqrt(3.0)
	IpsQua4 = []Ipoint{
		{-g, -g, 0, 1},
		{g, -g, 0, 1},
		{g, g, 0, 1},
		{-g, g, 0, 1},
	}
	IpsQuaCentre = []Ipoint{
		{0, 0, 0, 4},
	}
}
