// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. skewed quadrilateral: symmetry and rigid modes")

	// planar but not rectangular
	x := [][]float64{
		{0, 2.2, 2.5, -0.3},
		{0, 0.1, 1.8, 1.6},
		{0, 0, 0, 0},
	}
	q, err := NewQuad("Q1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err != nil {
		tst.Errorf("NewQuad failed:\n%v", err)
		return
	}
	checkSymmetry(tst, "quad K", q.K(), 1e-12)
	checkRigidModes(tst, "quad", x, q.K(), 1e-10)
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. rectangle: both formulations agree")

	a, b := 2.0, 1.5
	x := rectCoords(a, b)
	p, err := NewPlate("R1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err != nil {
		tst.Errorf("NewPlate failed:\n%v", err)
		return
	}
	q, err := NewQuad("Q1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err != nil {
		tst.Errorf("NewQuad failed:\n%v", err)
		return
	}

	// stiffness matrices match within roundoff of the mapping inversion
	ref := 0.0
	for i := 0; i < Nu; i++ {
		if math.Abs(p.K()[i][i]) > ref {
			ref = math.Abs(p.K()[i][i])
		}
	}
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			if math.Abs(p.K()[i][j]-q.K()[i][j]) > 1e-9*ref {
				tst.Errorf("K mismatch at (%d,%d): %g != %g\n", i, j, p.K()[i][j], q.K()[i][j])
				return
			}
		}
	}
	io.Pf("stiffness agreement OK (ref=%g)\n", ref)

	// consistent pressure loads match as well
	p.AddPressure(500, "live")
	q.AddPressure(500, "live")
	chk.Array(tst, "load vectors", 1e-8, p.LoadVector("live"), q.LoadVector("live"))
}

func Test_quad03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad03. rectangle rotated in space: agreement survives the frame change")

	// rotate the rectangle out of the XY plane about the x axis by 60 degrees
	a, b, ang := 2.0, 1.5, math.Pi/3.0
	c, s := math.Cos(ang), math.Sin(ang)
	x := [][]float64{
		{0, a, a, 0},
		{0, 0, b * c, b * c},
		{0, 0, b * s, b * s},
	}
	p, err := NewPlate("R1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err != nil {
		tst.Errorf("NewPlate failed:\n%v", err)
		return
	}
	q, err := NewQuad("Q1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err != nil {
		tst.Errorf("NewQuad failed:\n%v", err)
		return
	}
	chk.Float64(tst, "a", 1e-14, p.A, a)
	chk.Float64(tst, "b", 1e-14, p.B, b)
	checkSymmetry(tst, "rotated plate K", p.K(), 1e-12)
	checkSymmetry(tst, "rotated quad K", q.K(), 1e-12)

	ref := 0.0
	for i := 0; i < Nu; i++ {
		if math.Abs(p.K()[i][i]) > ref {
			ref = math.Abs(p.K()[i][i])
		}
	}
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			if math.Abs(p.K()[i][j]-q.K()[i][j]) > 1e-9*ref {
				tst.Errorf("K mismatch at (%d,%d): %g != %g\n", i, j, p.K()[i][j], q.K()[i][j])
				return
			}
		}
	}

	// pressure acts along the rotated normal
	q.AddPressure(100, "snow")
	fe := q.LoadVector("snow")
	nz := []float64{0, -s, c} // unit normal of the rotated plane
	for m := 0; m < Nverts; m++ {
		fzl := 100.0 * a * b / 4.0
		chk.Float64(tst, io.Sf("fx%d", m), 1e-9, fe[NdofPerNode*m+Ux], fzl*nz[0])
		chk.Float64(tst, io.Sf("fy%d", m), 1e-9, fe[NdofPerNode*m+Uy], fzl*nz[1])
		chk.Float64(tst, io.Sf("fz%d", m), 1e-9, fe[NdofPerNode*m+Uz], fzl*nz[2])
	}
}

func Test_quad04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad04. degenerate quadrilaterals must fail")

	// zero area: all corners on one line
	x := [][]float64{
		{0, 1, 2, 3},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	_, err := NewQuad("Q1", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err == nil {
		tst.Errorf("zero-area error was not raised\n")
		return
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		tst.Errorf("wrong error kind: %v\n", err)
		return
	}
	io.Pf("OK. error = %v\n", err)

	// bow-tie: corners m and n swapped makes the mapping invert
	x = [][]float64{
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{0, 0, 0, 0},
	}
	_, err = NewQuad("Q2", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err == nil {
		tst.Errorf("bow-tie error was not raised\n")
		return
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		tst.Errorf("wrong error kind: %v\n", err)
		return
	}
	io.Pf("OK. error = %v\n", err)

	// excessive warp: corner m lifted far out of the plane of i, j, n
	x = [][]float64{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0.5, 0},
	}
	_, err = NewQuad("Q3", []int{0, 1, 2, 3}, x, 0.1, 200e9, 0.3)
	if err == nil {
		tst.Errorf("warp error was not raised\n")
		return
	}
	if !errors.Is(err, ErrDegenerateGeometry) {
		tst.Errorf("wrong error kind: %v\n", err)
		return
	}
	io.Pf("OK. error = %v\n", err)
}
