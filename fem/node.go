// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/tamalone1/PyNite/msh"

// DofKeys lists the degree-of-freedom keys of a node in global equation order
var DofKeys = []string{"ux", "uy", "uz", "rx", "ry", "rz"}

// Dof holds information about one degree of freedom of one node
type Dof struct {
	Key   string // one of "ux", "uy", "uz", "rx", "ry", "rz"
	Eq    int    // global equation number; -1 when the DOF is eliminated
	Fixed bool   // prescribed by a support
}

// Node holds the DOFs and solved results of one mesh vertex
type Node struct {

	// input
	Vert *msh.Vert // pointer to corresponding vertex (Id == -1 for standalone nodes)
	Name string    // node name, e.g. "N13"
	Idx  int       // index in the model's node registry

	// DOFs
	Dofs [6]*Dof // one per key, in DofKeys order

	// results, per combination name
	U map[string][]float64 // displacements/rotations {ux, uy, uz, rx, ry, rz}
	R map[string][]float64 // support reactions, nonzero only at fixed DOFs
}

// newNode creates a node with all DOFs free and unnumbered
func newNode(idx int, name string, v *msh.Vert) *Node {
	o := &Node{Vert: v, Name: name, Idx: idx}
	for i, key := range DofKeys {
		o.Dofs[i] = &Dof{Key: key, Eq: -1}
	}
	return o
}

// fix sets the support state of all six DOFs; true entries are prescribed to
// zero and false entries are released
func (o *Node) fix(flags [6]bool) {
	for i, f := range flags {
		o.Dofs[i].Fixed = f
	}
}
