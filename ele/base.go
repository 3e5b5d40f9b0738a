// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// base holds the data and behaviour shared by both plate formulations. The
// stiffness matrix and the pressure shape integrals are computed once at
// construction; geometry is immutable afterwards.
type base struct {
	name  string      // element name
	vids  []int       // mesh vertex ids (i, j, m, n)
	x     [][]float64 // [3][4] global coordinates of the corners
	trans [][]float64 // [3][3] local axes (rows) in global components
	k     [][]float64 // [24][24] stiffness matrix in global coordinates
	fw    []float64   // [4] ∫ Sm dA: unit-pressure nodal shares (local +z)
	eqs   []int       // [24] global equation numbers; -1 == eliminated DOF
	loads []Pressure  // applied surface pressures
}

// Name returns the element name
func (o *base) Name() string { return o.name }

// Vids returns the mesh vertex ids of the corners
func (o *base) Vids() []int { return o.vids }

// K returns the 24x24 stiffness matrix in global coordinates
func (o *base) K() [][]float64 { return o.k }

// SetEqs sets the global equation numbers. eqs is [4][6] following the
// corner order i, j, m, n and the DOF order Ux..Rz; -1 marks an eliminated
// (restrained) DOF
func (o *base) SetEqs(eqs [][]int) (err error) {
	if len(eqs) != Nverts {
		return chk.Err("element %q: SetEqs needs %d corner equation sets, got %d", o.name, Nverts, len(eqs))
	}
	o.eqs = make([]int, Nu)
	for m := 0; m < Nverts; m++ {
		if len(eqs[m]) != NdofPerNode {
			return chk.Err("element %q: corner %d needs %d equation numbers, got %d", o.name, m, NdofPerNode, len(eqs[m]))
		}
		for i := 0; i < NdofPerNode; i++ {
			o.eqs[NdofPerNode*m+i] = eqs[m][i]
		}
	}
	return
}

// AddToKb scatter-adds the element stiffness into the global matrix,
// skipping eliminated DOFs
func (o *base) AddToKb(kb *la.Triplet) {
	for i, I := range o.eqs {
		if I < 0 {
			continue
		}
		for j, J := range o.eqs {
			if J < 0 {
				continue
			}
			kb.Put(I, J, o.k[i][j])
		}
	}
}

// AddPressure records a uniform surface pressure under a load case.
// Positive pressure acts along the local +z axis
func (o *base) AddPressure(p float64, lcase string) {
	o.loads = append(o.loads, Pressure{Lcase: lcase, P: p})
}

// LoadVector returns the 24-entry consistent load vector, in global
// coordinates, of all pressures recorded under the given load case
func (o *base) LoadVector(lcase string) (fe []float64) {
	fe = make([]float64, Nu)
	for _, load := range o.loads {
		if load.Lcase != lcase {
			continue
		}
		for m := 0; m < Nverts; m++ {
			fzl := load.P * o.fw[m] // local normal force at corner m
			for c := 0; c < 3; c++ {
				fe[NdofPerNode*m+c] += fzl * o.trans[2][c]
			}
		}
	}
	return
}

// AddToRhs scatter-adds factor times the load vector of a load case into
// the global load vector, skipping eliminated DOFs
func (o *base) AddToRhs(fb la.Vector, lcase string, factor float64) {
	fe := o.LoadVector(lcase)
	for i, I := range o.eqs {
		if I < 0 {
			continue
		}
		fb[I] += factor * fe[i]
	}
}
