// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/utl"

	"github.com/tamalone1/PyNite/shp"
)

// pointData holds the shape function and mapping data of one evaluation
// point in the element's local plane
type pointData struct {
	S        []float64 // [4] shape functions
	DSr, DSs []float64 // [4] derivatives of S w.r.t natural coordinates r and s
	Gx, Gy   []float64 // [4] derivatives of S w.r.t local cartesian coordinates x and y
	XR, YR   float64   // dx/dr and dy/dr
	XS, YS   float64   // dx/ds and dy/ds
	Det      float64   // determinant of the mapping Jacobian
}

// evaluator computes pointData at natural coordinates (r, s). The rectangle
// uses closed-form expressions; the quadrilateral the isoparametric mapping.
type evaluator interface {
	At(r, s float64) (*pointData, error)
}

// transverse shear tying points (Dvorkin & Bathe): midpoints of the four
// edges of the natural domain
var (
	tyA = []float64{0, 1}  // edge s == +1, ties γr
	tyC = []float64{0, -1} // edge s == -1, ties γr
	tyD = []float64{1, 0}  // edge r == +1, ties γs
	tyB = []float64{-1, 0} // edge r == -1, ties γs
)

// drillFactor scales the smallest stiffness diagonal into the artificial
// drilling (local Rz) spring
const drillFactor = 1.0 / 1000.0

// buildLocal computes the 24x24 local stiffness matrix of a plate and the
// shape-function area integrals used to convert surface pressure into
// consistent nodal forces.
//
// The matrix combines MITC4 bending (full 2x2 Gauss quadrature with the
// covariant transverse shear field tied at the edge midpoints), a bilinear
// plane-stress membrane, and the drilling stabilization springs.
//
//  Output:
//   kl -- [24][24] local stiffness; local DOF order per node: u,v,w,θx,θy,θz
//   fw -- [4] ∫ Sm dA: nodal shares of a unit pressure along local +z
func buildLocal(ev evaluator, t, e, ν float64) (kl [][]float64, fw []float64, err error) {

	// material moduli
	db := e * t * t * t / (12.0 * (1.0 - ν*ν)) // flexural rigidity D
	dm := e * t / (1.0 - ν*ν)                  // membrane modulus (plane stress, times t)
	ds := 5.0 / 6.0 * e / (2.0 * (1.0 + ν)) * t // shear modulus with κ = 5/6, times t

	// tying point data for the MITC4 shear field
	tpA, err := ev.At(tyA[0], tyA[1])
	if err != nil {
		return nil, nil, err
	}
	tpC, err := ev.At(tyC[0], tyC[1])
	if err != nil {
		return nil, nil, err
	}
	tpD, err := ev.At(tyD[0], tyD[1])
	if err != nil {
		return nil, nil, err
	}
	tpB, err := ev.At(tyB[0], tyB[1])
	if err != nil {
		return nil, nil, err
	}

	// covariant shear rows at the tying points: γr at A and C, γs at D and B
	rowA := covariantShearRow(tpA, true)
	rowC := covariantShearRow(tpC, true)
	rowD := covariantShearRow(tpD, false)
	rowB := covariantShearRow(tpB, false)

	// scratch
	kl = utl.Alloc(Nu, Nu)
	fw = make([]float64, Nverts)
	bb := utl.Alloc(3, Nu) // bending strain-displacement matrix
	bm := utl.Alloc(3, Nu) // membrane strain-displacement matrix
	bs := utl.Alloc(2, Nu) // transverse shear strain-displacement matrix
	γr := make([]float64, Nu)
	γs := make([]float64, Nu)

	// for each integration point
	for _, ip := range shp.IpsQua4 {
		r, s, w := ip[0], ip[1], ip[3]
		p, err := ev.At(r, s)
		if err != nil {
			return nil, nil, err
		}
		coef := p.Det * w

		// bending and membrane strain-displacement matrices
		//  curvatures: κx = θy,x   κy = -θx,y   κxy = θy,y - θx,x
		for i := 0; i < 3; i++ {
			for j := 0; j < Nu; j++ {
				bb[i][j] = 0
				bm[i][j] = 0
			}
		}
		for m := 0; m < Nverts; m++ {
			cu, cv := NdofPerNode*m+Ux, NdofPerNode*m+Uy
			cθx, cθy := NdofPerNode*m+Rx, NdofPerNode*m+Ry
			bb[0][cθy] = p.Gx[m]
			bb[1][cθx] = -p.Gy[m]
			bb[2][cθx] = -p.Gx[m]
			bb[2][cθy] = p.Gy[m]
			bm[0][cu] = p.Gx[m]
			bm[1][cv] = p.Gy[m]
			bm[2][cu] = p.Gy[m]
			bm[2][cv] = p.Gx[m]
		}

		// interpolated covariant shear rows, then cartesian components
		for j := 0; j < Nu; j++ {
			γr[j] = 0.5*(1.0+s)*rowA[j] + 0.5*(1.0-s)*rowC[j]
			γs[j] = 0.5*(1.0+r)*rowD[j] + 0.5*(1.0-r)*rowB[j]
			bs[0][j] = (p.YS*γr[j] - p.YR*γs[j]) / p.Det
			bs[1][j] = (p.XR*γs[j] - p.XS*γr[j]) / p.Det
		}

		// kl += coef * (trans(Bb)*Db*Bb + trans(Bm)*Dm*Bm + trans(Bs)*Ds*Bs)
		for i := 0; i < Nu; i++ {
			for j := i; j < Nu; j++ {
				kb := db * (bb[0][i]*(bb[0][j]+ν*bb[1][j]) +
					bb[1][i]*(bb[1][j]+ν*bb[0][j]) +
					bb[2][i]*bb[2][j]*(1.0-ν)/2.0)
				km := dm * (bm[0][i]*(bm[0][j]+ν*bm[1][j]) +
					bm[1][i]*(bm[1][j]+ν*bm[0][j]) +
					bm[2][i]*bm[2][j]*(1.0-ν)/2.0)
				ks := ds * (bs[0][i]*bs[0][j] + bs[1][i]*bs[1][j])
				kl[i][j] += coef * (kb + km + ks)
			}
		}

		// pressure shape integrals
		for m := 0; m < Nverts; m++ {
			fw[m] += p.S[m] * coef
		}
	}

	// mirror the upper triangle
	for i := 0; i < Nu; i++ {
		for j := i + 1; j < Nu; j++ {
			kl[j][i] = kl[i][j]
		}
	}

	// drilling stabilization: a small diagonal spring on the local θz DOFs
	kmin := 0.0
	for i := 0; i < Nu; i++ {
		if kl[i][i] > 0 && (kmin == 0 || kl[i][i] < kmin) {
			kmin = kl[i][i]
		}
	}
	for m := 0; m < Nverts; m++ {
		c := NdofPerNode*m + Rz
		kl[c][c] = kmin * drillFactor
	}
	return
}

// covariantShearRow builds the row of coefficients mapping the 24 local DOFs
// to the covariant transverse shear strain at a tying point:
//   γr = w,r + x,r·φx + y,r·φy     (covR == true)
//   γs = w,s + x,s·φx + y,s·φy     (covR == false)
// with the normal rotations φx = θy and φy = -θx
func covariantShearRow(p *pointData, covR bool) (row []float64) {
	row = make([]float64, Nu)
	for m := 0; m < Nverts; m++ {
		cw := NdofPerNode*m + Uz
		cθx, cθy := NdofPerNode*m+Rx, NdofPerNode*m+Ry
		if covR {
			row[cw] = p.DSr[m]
			row[cθy] = p.S[m] * p.XR
			row[cθx] = -p.S[m] * p.YR
		} else {
			row[cw] = p.DSs[m]
			row[cθy] = p.S[m] * p.XS
			row[cθx] = -p.S[m] * p.YS
		}
	}
	return
}
