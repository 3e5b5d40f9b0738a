// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the plate model: node and element registries,
// supports, loads, load combinations and the linear solver
package fem

import (
	"fmt"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tamalone1/PyNite/ele"
	"github.com/tamalone1/PyNite/msh"
)

// eallocators maps an element type to its constructor
var eallocators = map[msh.ElemType]func(name string, vids []int, x [][]float64, t, e, ν float64) (ele.Element, error){}

// nodeLoad is a concentrated load or moment applied directly at a node DOF
type nodeLoad struct {
	node *Node   // target node
	idx  int     // DOF index within the node
	val  float64 // magnitude
}

// meshRef records where a mesh's vertices and cells landed in the registries
type meshRef struct {
	m     *msh.Mesh
	nOff  int // index of the mesh's first node in Nodes
	eOff  int // index of the mesh's first element in Elems
}

// Model holds the complete plate model: nodes, elements, supports, loads and
// combinations, plus the results after Analyze. Node and element names
// resolve to integer indices at the API boundary; the assembly and solve
// loops work on indices only.
type Model struct {

	// registries, in insertion order
	Nodes []*Node
	Elems []ele.Element

	// access by name
	nodeMap map[string]*Node
	elemMap map[string]ele.Element

	// meshes added so far
	meshes []meshRef

	// loads
	combos    map[string]map[string]float64 // combination name => {case => factor}
	nodeLoads map[string][]nodeLoad         // case => loads

	// options
	Solver string // linear solver kind: "chol" (default) or "umfpack"

	// solution
	Nf     int  // number of free equations after numbering
	solved bool // results are available
}

// NewModel creates an empty model
func NewModel() *Model {
	return &Model{
		nodeMap:   make(map[string]*Node),
		elemMap:   make(map[string]ele.Element),
		combos:    make(map[string]map[string]float64),
		nodeLoads: make(map[string][]nodeLoad),
	}
}

// AddNode registers one standalone node. The name must be unused.
func (o *Model) AddNode(name string, x, y, z float64) (*Node, error) {
	if _, ok := o.nodeMap[name]; ok {
		return nil, chk.Err("node name %q is already taken", name)
	}
	n := newNode(len(o.Nodes), name, &msh.Vert{Id: -1, C: []float64{x, y, z}})
	o.Nodes = append(o.Nodes, n)
	o.nodeMap[name] = n
	o.invalidate()
	return n, nil
}

// AddMesh registers every vertex and cell of a generated mesh. Nodes are
// named "N1", "N2", ... and elements "R1", ... or "Q1", ... depending on the
// element type, continuing any previous numbering. Element stiffness
// construction runs concurrently.
func (o *Model) AddMesh(m *msh.Mesh) error {

	ref := meshRef{m: m, nOff: len(o.Nodes), eOff: len(o.Elems)}

	// nodes
	for _, v := range m.Verts {
		idx := ref.nOff + v.Id
		n := newNode(idx, io.Sf("N%d", idx+1), v)
		if _, ok := o.nodeMap[n.Name]; ok {
			return chk.Err("node name %q is already taken", n.Name)
		}
		o.Nodes = append(o.Nodes, n)
		o.nodeMap[n.Name] = n
	}

	// elements, concurrently
	elems := make([]ele.Element, len(m.Cells))
	errs := make([]error, len(m.Cells))
	var wg sync.WaitGroup
	for i, c := range m.Cells {
		alloc, ok := eallocators[c.Type]
		if !ok {
			return chk.Err("cannot find allocator for element type %d", c.Type)
		}
		prefix := "R"
		if c.Type == msh.Quadrilateral {
			prefix = "Q"
		}
		name := io.Sf("%s%d", prefix, ref.eOff+c.Id+1)
		vids := make([]int, len(c.Verts))
		x := [][]float64{make([]float64, 4), make([]float64, 4), make([]float64, 4)}
		for m2, vid := range c.Verts {
			vids[m2] = ref.nOff + vid
			for j := 0; j < 3; j++ {
				x[j][m2] = m.Verts[vid].C[j]
			}
		}
		wg.Add(1)
		go func(i int, name string, vids []int, x [][]float64) {
			defer wg.Done()
			elems[i], errs[i] = alloc(name, vids, x, m.Thick, m.E, m.Nu)
		}(i, name, vids, x)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, e := range elems {
		o.Elems = append(o.Elems, e)
		o.elemMap[e.Name()] = e
	}
	o.meshes = append(o.meshes, ref)
	o.invalidate()
	return nil
}

// Node returns a node by name
func (o *Model) Node(name string) (*Node, error) {
	n, ok := o.nodeMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n, nil
}

// Elem returns an element by name
func (o *Model) Elem(name string) (ele.Element, error) {
	e, ok := o.elemMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	return e, nil
}

// DefineSupport sets the support state of one node. Flags follow the DOF order
// {ux, uy, uz, rx, ry, rz}; a repeated call replaces the previous state, so a
// false entry releases a previously restrained DOF.
func (o *Model) DefineSupport(nodeName string, flags [6]bool) error {
	n, err := o.Node(nodeName)
	if err != nil {
		return err
	}
	n.fix(flags)
	o.invalidate()
	return nil
}

// FixEdge clamps all six DOFs of every node on the tagged edges of every
// registered mesh
func (o *Model) FixEdge(tag int) {
	all := [6]bool{true, true, true, true, true, true}
	for _, ref := range o.meshes {
		for _, v := range ref.m.TaggedVerts(tag) {
			o.Nodes[ref.nOff+v.Id].fix(all)
		}
	}
	o.invalidate()
}

// AddNodeLoad applies a concentrated load or moment at one node DOF under a
// load case. key is one of "fx", "fy", "fz", "mx", "my", "mz".
func (o *Model) AddNodeLoad(nodeName, key string, value float64, lcase string) error {
	n, err := o.Node(nodeName)
	if err != nil {
		return err
	}
	idx := -1
	for i, k := range []string{"fx", "fy", "fz", "mx", "my", "mz"} {
		if k == key {
			idx = i
		}
	}
	if idx < 0 {
		return chk.Err("unknown load key %q", key)
	}
	o.nodeLoads[lcase] = append(o.nodeLoads[lcase], nodeLoad{n, idx, value})
	o.invalidate()
	return nil
}

// AddSurfacePressure applies a uniform pressure to one element under a load
// case. Positive pressure acts along the element's local +z axis.
func (o *Model) AddSurfacePressure(elemName string, p float64, lcase string) error {
	e, err := o.Elem(elemName)
	if err != nil {
		return err
	}
	e.AddPressure(p, lcase)
	o.invalidate()
	return nil
}

// AddSurfacePressureFunc applies a spatially varying pressure to every
// element, evaluated at each element's centroid. Useful for hydrostatic
// loading where the pressure varies linearly with position.
func (o *Model) AddSurfacePressureFunc(fcn func(x []float64) float64, lcase string) {
	for _, ref := range o.meshes {
		for _, c := range ref.m.Cells {
			o.Elems[ref.eOff+c.Id].AddPressure(fcn(ref.m.CellCentroid(c)), lcase)
		}
	}
	o.invalidate()
}

// AddLoadCombo registers a load combination mapping case names to scale
// factors. Re-registering a name replaces the previous factors.
func (o *Model) AddLoadCombo(name string, factors map[string]float64) {
	cp := make(map[string]float64, len(factors))
	for k, v := range factors {
		cp[k] = v
	}
	o.combos[name] = cp
	o.invalidate()
}

// Disp returns the solved displacement or rotation at one node DOF under one
// combination. key is one of "ux", "uy", "uz", "rx", "ry", "rz".
func (o *Model) Disp(nodeName, key, combo string) (float64, error) {
	n, idx, err := o.resultTarget(nodeName, key, combo)
	if err != nil {
		return 0, err
	}
	return n.U[combo][idx], nil
}

// Reaction returns the solved support reaction at one node DOF under one
// combination. The value is zero at DOFs that are not fixed.
func (o *Model) Reaction(nodeName, key, combo string) (float64, error) {
	n, idx, err := o.resultTarget(nodeName, key, combo)
	if err != nil {
		return 0, err
	}
	return n.R[combo][idx], nil
}

// resultTarget validates a result query and locates the node and DOF index
func (o *Model) resultTarget(nodeName, key, combo string) (*Node, int, error) {
	n, err := o.Node(nodeName)
	if err != nil {
		return nil, 0, err
	}
	if _, ok := o.combos[combo]; !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownCombination, combo)
	}
	if !o.solved {
		return nil, 0, fmt.Errorf("%w: call Analyze first", ErrNoResults)
	}
	idx := -1
	for i, k := range DofKeys {
		if k == key {
			idx = i
		}
	}
	if idx < 0 {
		return nil, 0, chk.Err("unknown DOF key %q", key)
	}
	return n, idx, nil
}

// invalidate drops stale results after any model mutation
func (o *Model) invalidate() {
	if !o.solved {
		return
	}
	o.solved = false
	for _, n := range o.Nodes {
		n.U = nil
		n.R = nil
	}
}

func init() {
	eallocators[msh.Rectangle] = func(name string, vids []int, x [][]float64, t, e, ν float64) (ele.Element, error) {
		return ele.NewPlate(name, vids, x, t, e, ν)
	}
	eallocators[msh.Quadrilateral] = func(name string, vids []int, x [][]float64, t, e, ν float64) (ele.Element, error) {
		return ele.NewQuad(name, vids, x, t, e, ν)
	}
}
