// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the bilinear quadrilateral shape functions and the
// Gauss quadrature rules used by the plate elements
package shp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// MINDET is the minimum determinant allowed for the dxdR Jacobian
const MINDET = 1.0e-14

// Qua4NatCoords holds the natural coordinates of the qua4 vertices [gndim][nverts]
//
//         3 ------------- 2
//         |       s       |
//         |       |       |
//         |       +-- r   |
//         |               |
//         |               |
//         0 ------------- 1
var Qua4NatCoords = [][]float64{
	{-1, 1, 1, -1},
	{-1, -1, 1, 1},
}

// Qua4 computes the shape functions (S) and derivatives of shape functions (dSdR)
// of the qua4 element at natural coordinates r
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	S[0] = (1.0 - r[0]) * (1.0 - s) / 4.0
	S[1] = (1.0 + r[0]) * (1.0 - s) / 4.0
	S[2] = (1.0 + r[0]) * (1.0 + s) / 4.0
	S[3] = (1.0 - r[0]) * (1.0 + s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = -(1.0 - s) / 4.0
	dSdR[0][1] = -(1.0 - r[0]) / 4.0
	dSdR[1][0] = (1.0 - s) / 4.0
	dSdR[1][1] = -(1.0 + r[0]) / 4.0
	dSdR[2][0] = (1.0 + s) / 4.0
	dSdR[2][1] = (1.0 + r[0]) / 4.0
	dSdR[3][0] = -(1.0 + s) / 4.0
	dSdR[3][1] = (1.0 - r[0]) / 4.0
}

// Shape holds the qua4 geometry data and a scratchpad for computations at
// integration points. Not safe for concurrent use; allocate one per element.
type Shape struct {

	// geometry
	Type   string // name; "qua4"
	Gndim  int    // geometry dimension == 2
	Nverts int    // number of vertices == 4

	// scratchpad: computed by CalcAtIp
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
}

// NewShape returns a new qua4 Shape structure with allocated scratchpad
func NewShape() (o *Shape) {
	o = new(Shape)
	o.Type = "qua4"
	o.Gndim = 2
	o.Nverts = 4
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)
	return
}

// CalcAtIp calculates S, DSdR, DxdR, DRdx, G and J at natural coordinates ip
//  Input:
//   x[gndim][nverts] -- matrix of nodal coordinates (element local system)
//   ip               -- integration point or natural coordinates {r,s,...}
//   derivs           -- compute the mapping and G as well
func (o *Shape) CalcAtIp(x [][]float64, ip []float64, derivs bool) (err error) {

	// S and dSdR
	Qua4(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < o.Gndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// J and dRdx := inv(dxdR)
	o.J = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
	if o.J < MINDET {
		return chk.Err("shp: qua4 mapping is singular or inverted: det(dxdR) = %g", o.J)
	}
	o.DRdx[0][0] = o.DxdR[1][1] / o.J
	o.DRdx[0][1] = -o.DxdR[0][1] / o.J
	o.DRdx[1][0] = -o.DxdR[1][0] / o.J
	o.DRdx[1][1] = o.DxdR[0][0] / o.J

	// G == dSdx := dSdR * dRdx
	for n := 0; n < o.Nverts; n++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[n][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[n][j] += o.DSdR[n][i] * o.DRdx[i][j]
			}
		}
	}
	return
}
