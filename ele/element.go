// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the plate finite elements: the axis-aligned
// rectangular plate and the general quadrilateral plate
package ele

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// DOF indices within a node, matching the global ordering
// {Dx, Dy, Dz, Rx, Ry, Rz}
const (
	Ux = iota // translation along x
	Uy        // translation along y
	Uz        // translation along z
	Rx        // rotation about x
	Ry        // rotation about y
	Rz        // rotation about z
)

// NdofPerNode is the number of degrees of freedom per node
const NdofPerNode = 6

// Nverts is the number of corner nodes of a plate element (i, j, m, n)
const Nverts = 4

// Nu is the total number of element unknowns == NdofPerNode * Nverts
const Nu = NdofPerNode * Nverts

// ErrDegenerateGeometry indicates a zero-area, inverted, collapsed or
// excessively warped element
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// Pressure is a uniform transverse surface pressure applied under a load
// case. Positive pressure acts along the element's local +z (normal) axis.
type Pressure struct {
	Lcase string  // load case name
	P     float64 // magnitude
}

// Element defines what both plate formulations must implement. The set is
// closed: the formulation is chosen at mesh-generation time.
type Element interface {

	// information and initialisation
	Name() string            // the element name
	Vids() []int             // the mesh vertex ids of the corners (i, j, m, n)
	SetEqs(eqs [][]int) error // sets the [4][6] global equation numbers (-1 == eliminated)

	// stiffness
	K() [][]float64       // the 24x24 stiffness matrix in global coordinates
	AddToKb(kb *la.Triplet) // scatter-adds K into the global stiffness matrix

	// loads
	AddPressure(p float64, lcase string)                   // records a surface pressure under a load case
	LoadVector(lcase string) []float64                     // the 24-entry global consistent load vector of a case
	AddToRhs(fb la.Vector, lcase string, factor float64)   // scatter-adds factor * LoadVector(lcase) into fb
}

// maxWarp is the maximum out-of-plane corner offset, relative to the longest
// diagonal, accepted before an element is flagged as degenerate
const maxWarp = 0.05

// localFrame computes the element local axes and the corner coordinates in
// the local plane.
//  Input:
//   x[3][4] -- global coordinates of the corners i, j, m, n
//  Output:
//   T[3][3]  -- rows are the local axes expressed in global components
//   xl[2][4] -- corner coordinates in the local plane (corner i at the origin)
func localFrame(name string, x [][]float64) (T [][]float64, xl [][]float64, err error) {

	// local x: from corner i towards corner j
	e1 := []float64{x[0][1] - x[0][0], x[1][1] - x[1][0], x[2][1] - x[2][0]}
	a := vecNorm(e1)
	if a < 1e-14 {
		return nil, nil, fmt.Errorf("%w: element %q has coincident corners i and j", ErrDegenerateGeometry, name)
	}
	for i := 0; i < 3; i++ {
		e1[i] /= a
	}

	// local z: normal to the plane through i, j and n
	v2 := []float64{x[0][3] - x[0][0], x[1][3] - x[1][0], x[2][3] - x[2][0]}
	e3 := cross(e1, v2)
	nrm := vecNorm(e3)
	if nrm < 1e-14 {
		return nil, nil, fmt.Errorf("%w: element %q has collinear corners i, j and n", ErrDegenerateGeometry, name)
	}
	for i := 0; i < 3; i++ {
		e3[i] /= nrm
	}

	// local y completes the right-handed triad
	e2 := cross(e3, e1)

	T = [][]float64{e1, e2, e3}

	// project corners onto the local plane
	xl = [][]float64{make([]float64, 4), make([]float64, 4)}
	warp := 0.0
	for m := 1; m < 4; m++ {
		d := []float64{x[0][m] - x[0][0], x[1][m] - x[1][0], x[2][m] - x[2][0]}
		xl[0][m] = dot(d, e1)
		xl[1][m] = dot(d, e2)
		if w := math.Abs(dot(d, e3)); w > warp {
			warp = w
		}
	}

	// warp limit relative to the longest diagonal
	diag := math.Max(dist(x, 0, 2), dist(x, 1, 3))
	if warp > maxWarp*diag {
		return nil, nil, fmt.Errorf("%w: element %q is too far from planar: warp=%g, diagonal=%g", ErrDegenerateGeometry, name, warp, diag)
	}
	return
}

// transform returns Kg = trans(T24) * kl * T24 where T24 is the block-diagonal
// expansion of the 3x3 rotation T over the eight 3-DOF sub-vectors
func transform(kl, T [][]float64) (kg [][]float64) {

	// T24
	t24 := utl.Alloc(Nu, Nu)
	for b := 0; b < 8; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t24[3*b+i][3*b+j] = T[i][j]
			}
		}
	}

	// aux = kl * T24
	aux := utl.Alloc(Nu, Nu)
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			for k := 0; k < Nu; k++ {
				aux[i][j] += kl[i][k] * t24[k][j]
			}
		}
	}

	// kg = trans(T24) * aux
	kg = utl.Alloc(Nu, Nu)
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			for k := 0; k < Nu; k++ {
				kg[i][j] += t24[k][i] * aux[k][j]
			}
		}
	}
	return
}

// small vector helpers /////////////////////////////////////////////////////////////////////////////

func cross(u, v []float64) []float64 {
	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

func dot(u, v []float64) (res float64) {
	for i := 0; i < len(u); i++ {
		res += u[i] * v[i]
	}
	return
}

func vecNorm(u []float64) float64 {
	return math.Sqrt(dot(u, u))
}

// dist returns the distance between corners p and q of x[3][4]
func dist(x [][]float64, p, q int) float64 {
	return math.Sqrt(
		(x[0][p]-x[0][q])*(x[0][p]-x[0][q]) +
			(x[1][p]-x[1][q])*(x[1][p]-x[1][q]) +
			(x[2][p]-x[2][q])*(x[2][p]-x[2][q]))
}
