// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements mesh structures and the generation of regular
// rectangular-grid plate meshes
package msh

import (
	"errors"
	"fmt"
)

// ElemType selects the plate formulation of the generated cells
type ElemType int

const (
	// Rectangle selects the axis-aligned rectangular plate formulation
	Rectangle ElemType = iota

	// Quadrilateral selects the general (isoparametric) quadrilateral formulation
	Quadrilateral
)

// edge tags: boundary vertices carry a bitmask combining these values
const (
	TagLeft   = 1 << iota // x == 0
	TagRight              // x == a
	TagBottom             // y == 0
	TagTop                // y == b
)

// ErrInvalidGeometry indicates impossible mesh dimensions or element sizes
var ErrInvalidGeometry = errors.New("invalid geometry")

// Vert holds vertex data
type Vert struct {
	Id  int       // id
	Tag int       // edge bitmask; 0 for interior vertices
	C   []float64 // coordinates (size==3)
}

// Cell holds 4-node cell data. Verts are ordered counter-clockwise
// i, j, m, n so that the local normal points along +z
type Cell struct {
	Id    int      // id
	Type  ElemType // plate formulation
	Verts []int    // vertex ids [4]
}

// Mesh holds a set of vertices and cells together with the material data
// shared by all generated plate cells
type Mesh struct {

	// vertices and cells
	Verts []*Vert // vertices
	Cells []*Cell // cells

	// material and thickness shared by all cells
	Thick float64 // plate thickness
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient

	// derived: grid data
	Nx, Ny int     // number of divisions along x and y
	Dx, Dy float64 // grid spacing along x and y
}

// NewRectangleMesh generates a regular grid of vertices and 4-node plate cells
// spanning a (width, along x) times b (height, along y) at z == 0.
//
// The number of divisions along each side is found by rounding a/size and
// b/size to the nearest integer (at least one) and the spacing is recomputed
// so that a and b are covered exactly. Cells sharing an edge reference the
// same vertex ids; no coincident vertices are ever created.
func NewRectangleMesh(thick, e, ν, size, a, b float64, etype ElemType) (o *Mesh, err error) {

	// check
	if thick <= 0 || e <= 0 {
		return nil, fmt.Errorf("%w: thickness and Young's modulus must be positive. t=%g, E=%g", ErrInvalidGeometry, thick, e)
	}
	if a <= 0 || b <= 0 || size <= 0 {
		return nil, fmt.Errorf("%w: plan dimensions and element size must be positive. a=%g, b=%g, size=%g", ErrInvalidGeometry, a, b, size)
	}
	if size > a || size > b {
		return nil, fmt.Errorf("%w: element size must not exceed plan dimensions. a=%g, b=%g, size=%g", ErrInvalidGeometry, a, b, size)
	}

	// number of divisions and exact spacing
	nx := round(a / size)
	ny := round(b / size)
	dx := a / float64(nx)
	dy := b / float64(ny)

	// new mesh
	o = new(Mesh)
	o.Thick = thick
	o.E = e
	o.Nu = ν
	o.Nx = nx
	o.Ny = ny
	o.Dx = dx
	o.Dy = dy

	// vertices: row-major, bottom row first
	o.Verts = make([]*Vert, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			tag := 0
			if i == 0 {
				tag |= TagLeft
			}
			if i == nx {
				tag |= TagRight
			}
			if j == 0 {
				tag |= TagBottom
			}
			if j == ny {
				tag |= TagTop
			}
			v := &Vert{
				Id:  len(o.Verts),
				Tag: tag,
				C:   []float64{float64(i) * dx, float64(j) * dy, 0},
			}
			o.Verts = append(o.Verts, v)
		}
	}

	// cells: counter-clockwise i, j, m, n
	o.Cells = make([]*Cell, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			c := &Cell{
				Id:   len(o.Cells),
				Type: etype,
				Verts: []int{
					j*(nx+1) + i,       // i: bottom-left
					j*(nx+1) + i + 1,   // j: bottom-right
					(j+1)*(nx+1) + i + 1, // m: top-right
					(j+1)*(nx+1) + i,   // n: top-left
				},
			}
			o.Cells = append(o.Cells, c)
		}
	}
	return
}

// TaggedVerts returns all vertices carrying the given edge tag, in id order
func (o *Mesh) TaggedVerts(tag int) (verts []*Vert) {
	for _, v := range o.Verts {
		if v.Tag&tag != 0 {
			verts = append(verts, v)
		}
	}
	return
}

// CellCentroid returns the average of the cell's vertex coordinates
func (o *Mesh) CellCentroid(c *Cell) (x []float64) {
	x = make([]float64, 3)
	for _, vid := range c.Verts {
		for i := 0; i < 3; i++ {
			x[i] += o.Verts[vid].C[i] / 4.0
		}
	}
	return
}

// round returns the nearest integer to v, never smaller than 1
func round(v float64) int {
	n := int(v + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
