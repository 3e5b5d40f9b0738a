// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. qua4: delta property and partition of unity")

	o := NewShape()
	tol := 1e-15

	// Sm(rn) = δmn
	r := []float64{0, 0}
	for n := 0; n < o.Nverts; n++ {
		r[0] = Qua4NatCoords[0][n]
		r[1] = Qua4NatCoords[1][n]
		Qua4(o.S, o.DSdR, r, false)
		for m := 0; m < o.Nverts; m++ {
			if m == n {
				chk.Float64(tst, io.Sf("S%d(r%d)", m, n), tol, o.S[m], 1.0)
			} else {
				chk.Float64(tst, io.Sf("S%d(r%d)", m, n), tol, o.S[m], 0.0)
			}
		}
	}

	// sum(S) = 1 and sum(dSdR) = 0 inside the element
	points := [][]float64{{0, 0}, {0.25, -0.75}, {-0.9, 0.1}, {0.5, 0.5}}
	for _, r := range points {
		Qua4(o.S, o.DSdR, r, true)
		sum, sumDr, sumDs := 0.0, 0.0, 0.0
		for m := 0; m < o.Nverts; m++ {
			sum += o.S[m]
			sumDr += o.DSdR[m][0]
			sumDs += o.DSdR[m][1]
		}
		chk.Float64(tst, io.Sf("sum(S) @ %v", r), tol, sum, 1.0)
		chk.Float64(tst, io.Sf("sum(dSdr) @ %v", r), tol, sumDr, 0.0)
		chk.Float64(tst, io.Sf("sum(dSds) @ %v", r), tol, sumDs, 0.0)
	}
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02. qua4: dSdR versus central differences")

	o := NewShape()
	h := 1e-6
	tol := 1e-9
	r := []float64{0.25, -0.5}
	Qua4(o.S, o.DSdR, r, true)
	Sp := make([]float64, o.Nverts)
	Sm := make([]float64, o.Nverts)
	dum := o.DSdR
	for j := 0; j < o.Gndim; j++ {
		rp := []float64{r[0], r[1]}
		rm := []float64{r[0], r[1]}
		rp[j] += h
		rm[j] -= h
		Qua4(Sp, dum, rp, false)
		Qua4(Sm, dum, rm, false)
		for m := 0; m < o.Nverts; m++ {
			dnum := (Sp[m] - Sm[m]) / (2.0 * h)
			chk.AnaNum(tst, io.Sf("dS%d/dR%d", m, j), tol, o.DSdR[m][j], dnum, chk.Verbose)
		}
	}
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03. qua4: mapping of a stretched rectangle")

	// 3 x 1 rectangle with origin at (10,8)
	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0

	o := NewShape()
	err := o.CalcAtIp(xmat, []float64{0, 0}, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	io.Pforan("J = %v\n", o.J)
	chk.Float64(tst, "J", 1e-15, o.J, (dx/dr)*(dy/ds))

	// constant G for the rectangle: dS/dx = dS/dr * (2/dx), dS/dy = dS/ds * (2/dy)
	for m := 0; m < o.Nverts; m++ {
		chk.Float64(tst, io.Sf("G%d0", m), 1e-15, o.G[m][0], o.DSdR[m][0]*2.0/dx)
		chk.Float64(tst, io.Sf("G%d1", m), 1e-15, o.G[m][1], o.DSdR[m][1]*2.0/dy)
	}

	// sum of weights covers the natural domain
	sumw := 0.0
	for _, ip := range IpsQua4 {
		sumw += ip[3]
	}
	chk.Float64(tst, "sum(w) 2x2", 1e-15, sumw, 4.0)
	chk.Float64(tst, "sum(w) centre", 1e-15, IpsQuaCentre[0][3], 4.0)
}

func Test_shp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp04. qua4: inverted cell must fail")

	// bow-tie: vertices 2 and 3 swapped
	xmat := [][]float64{
		{0, 1, 0, 1},
		{0, 0, 1, 1},
	}
	o := NewShape()
	err := o.CalcAtIp(xmat, []float64{0.5, 0.5}, true)
	if err == nil {
		tst.Errorf("error due to inverted cell was not raised\n")
		return
	}
	io.Pf("OK. error = %v\n", err)
}
