// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. rectangle grid: continuity and spacing")

	m, err := NewRectangleMesh(0.1, 200e9, 0.3, 1.0, 4.0, 3.0, Rectangle)
	if err != nil {
		tst.Errorf("NewRectangleMesh failed:\n%v", err)
		return
	}

	// counts: (nx+1)*(ny+1) vertices exactly, nx*ny cells
	chk.IntAssert(m.Nx, 4)
	chk.IntAssert(m.Ny, 3)
	chk.IntAssert(len(m.Verts), 5*4)
	chk.IntAssert(len(m.Cells), 4*3)

	// coordinates are exact multiples of the spacing
	for _, v := range m.Verts {
		i := v.C[0] / m.Dx
		j := v.C[1] / m.Dy
		chk.Float64(tst, io.Sf("v%d x-multiple", v.Id), 1e-15, i, math.Floor(i+0.5))
		chk.Float64(tst, io.Sf("v%d y-multiple", v.Id), 1e-15, j, math.Floor(j+0.5))
		chk.Float64(tst, io.Sf("v%d z", v.Id), 1e-15, v.C[2], 0)
	}

	// neighbouring cells share vertex ids (structural continuity)
	for _, c := range m.Cells {
		chk.IntAssert(len(c.Verts), 4)
		if (c.Id+1)%m.Nx != 0 { // has a neighbour to the right
			right := m.Cells[c.Id+1]
			chk.IntAssert(c.Verts[1], right.Verts[0])
			chk.IntAssert(c.Verts[2], right.Verts[3])
		}
		if c.Id+m.Nx < len(m.Cells) { // has a neighbour above
			above := m.Cells[c.Id+m.Nx]
			chk.IntAssert(c.Verts[3], above.Verts[0])
			chk.IntAssert(c.Verts[2], above.Verts[1])
		}
	}

	// counter-clockwise winding: cross product of first two edges along +z
	for _, c := range m.Cells {
		xi, xj, xn := m.Verts[c.Verts[0]].C, m.Verts[c.Verts[1]].C, m.Verts[c.Verts[3]].C
		cz := (xj[0]-xi[0])*(xn[1]-xi[1]) - (xj[1]-xi[1])*(xn[0]-xi[0])
		if cz <= 0 {
			tst.Errorf("cell %d winding is not counter-clockwise\n", c.Id)
			return
		}
	}
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. boundary tags and centroids")

	m, err := NewRectangleMesh(1, 1000.0, 0.25, 1.0, 2.0, 2.0, Quadrilateral)
	if err != nil {
		tst.Errorf("NewRectangleMesh failed:\n%v", err)
		return
	}

	// 3x3 grid: edges have 3 verts each, interior vertex is untagged
	chk.IntAssert(len(m.TaggedVerts(TagLeft)), 3)
	chk.IntAssert(len(m.TaggedVerts(TagRight)), 3)
	chk.IntAssert(len(m.TaggedVerts(TagBottom)), 3)
	chk.IntAssert(len(m.TaggedVerts(TagTop)), 3)
	chk.IntAssert(m.Verts[4].Tag, 0) // centre of the grid

	// corner carries two tags
	chk.IntAssert(m.Verts[0].Tag, TagLeft|TagBottom)

	// centroid of first cell
	x := m.CellCentroid(m.Cells[0])
	chk.Array(tst, "centroid cell0", 1e-15, x, []float64{0.5, 0.5, 0})

	// cells carry the requested type
	for _, c := range m.Cells {
		chk.IntAssert(int(c.Type), int(Quadrilateral))
	}
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. invalid geometry must fail")

	for _, args := range [][]float64{
		{1, 1000, 0.3, 1.0, -4.0, 3.0}, // negative width
		{1, 1000, 0.3, 1.0, 4.0, 0.0},  // zero height
		{1, 1000, 0.3, 0.0, 4.0, 3.0},  // zero element size
		{1, 1000, 0.3, 5.0, 4.0, 3.0},  // element larger than plan
		{0, 1000, 0.3, 1.0, 4.0, 3.0},  // zero thickness
		{1, -10, 0.3, 1.0, 4.0, 3.0},   // negative modulus
	} {
		_, err := NewRectangleMesh(args[0], args[1], args[2], args[3], args[4], args[5], Rectangle)
		if err == nil {
			tst.Errorf("InvalidGeometry error was not raised for %v\n", args)
			return
		}
		if !errors.Is(err, ErrInvalidGeometry) {
			tst.Errorf("wrong error kind for %v: %v\n", args, err)
			return
		}
		io.Pf("OK. error = %v\n", err)
	}
}
