// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the plate model definition read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tamalone1/PyNite/fem"
	"github.com/tamalone1/PyNite/msh"
)

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path, relative to the sim file
	LinSol  string `json:"linsol"`  // linear solver kind; empty means the default
}

// PlateData defines the meshed plate
type PlateData struct {
	Material string  `json:"material"` // material name in the database
	Thick    float64 `json:"thick"`    // plate thickness
	Size     float64 `json:"size"`     // target element size
	Width    float64 `json:"width"`    // plan width (x direction)
	Height   float64 `json:"height"`   // plan height (y direction)
	Etype    string  `json:"etype"`    // element type: "rect" or "quad"
}

// SupportData restrains nodes along tagged mesh edges or by name.
// An empty flags list clamps all six DOFs.
type SupportData struct {
	Edges []string `json:"edges"` // any of "left", "right", "bottom", "top"
	Nodes []string `json:"nodes"` // explicit node names
	Flags []string `json:"flags"` // restrained DOF keys, e.g. ["ux","uy","uz"]
}

// PressureData applies a surface pressure field under a load case. The field
// is a function from the "functions" section, evaluated over the plate plan.
type PressureData struct {
	Lcase string `json:"lcase"` // load case name
	Func  string `json:"func"`  // name of pressure field function
}

// ComboData defines one load combination
type ComboData struct {
	Name    string             `json:"name"`    // combination name
	Factors map[string]float64 `json:"factors"` // load case => scale factor
}

// Simulation holds a complete plate model definition
type Simulation struct {

	// input
	Data      Data           `json:"data"`      // global data
	Plate     PlateData      `json:"plate"`     // plate and mesh definition
	Functions FuncsData      `json:"functions"` // function definitions
	Supports  []SupportData  `json:"supports"`  // support definitions
	Pressures []PressureData `json:"pressures"` // surface pressures
	Combos    []ComboData    `json:"combos"`    // load combinations

	// derived
	MatDb *MatDb `json:"-"` // materials database
	DirIn string `json:"-"` // directory of the sim file
}

// edgetags translates edge names to mesh tags
var edgetags = map[string]int{
	"left":   msh.TagLeft,
	"right":  msh.TagRight,
	"bottom": msh.TagBottom,
	"top":    msh.TagTop,
}

// ReadSim reads a simulation from a .sim JSON file and its materials database
func ReadSim(dir, fn string) (o *Simulation, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read sim file: %v", err)
	}
	o = new(Simulation)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, err
	}
	o.DirIn = dir
	if o.Data.Matfile == "" {
		return nil, chk.Err("sim file %q misses the materials file path", fn)
	}
	if o.MatDb, err = ReadMat(dir, o.Data.Matfile); err != nil {
		return nil, err
	}
	switch o.Plate.Etype {
	case "rect", "quad":
	default:
		return nil, chk.Err("unknown element type %q", o.Plate.Etype)
	}
	for _, s := range o.Supports {
		for _, e := range s.Edges {
			if _, ok := edgetags[e]; !ok {
				return nil, chk.Err("unknown edge name %q", e)
			}
		}
	}
	for _, p := range o.Pressures {
		if _, err = o.Functions.Get(p.Func); err != nil {
			return nil, err
		}
	}
	return
}

// Model builds the finite element model defined by the simulation
func (o *Simulation) Model() (mod *fem.Model, m *msh.Mesh, err error) {

	// mesh
	mat, err := o.MatDb.Get(o.Plate.Material)
	if err != nil {
		return nil, nil, err
	}
	etype := msh.Rectangle
	if o.Plate.Etype == "quad" {
		etype = msh.Quadrilateral
	}
	m, err = msh.NewRectangleMesh(o.Plate.Thick, mat.E, mat.Nu, o.Plate.Size, o.Plate.Width, o.Plate.Height, etype)
	if err != nil {
		return nil, nil, err
	}
	mod = fem.NewModel()
	mod.Solver = o.Data.LinSol
	if err = mod.AddMesh(m); err != nil {
		return nil, nil, err
	}

	// supports
	for _, s := range o.Supports {
		flags, err := supportFlags(s.Flags)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range s.Edges {
			for _, v := range m.TaggedVerts(edgetags[e]) {
				if err = mod.DefineSupport(io.Sf("N%d", v.Id+1), flags); err != nil {
					return nil, nil, err
				}
			}
		}
		for _, name := range s.Nodes {
			if err = mod.DefineSupport(name, flags); err != nil {
				return nil, nil, err
			}
		}
	}

	// pressures
	for _, p := range o.Pressures {
		fcn, err := o.Functions.Get(p.Func)
		if err != nil {
			return nil, nil, err
		}
		mod.AddSurfacePressureFunc(fcn, p.Lcase)
	}

	// combinations
	for _, c := range o.Combos {
		mod.AddLoadCombo(c.Name, c.Factors)
	}
	return
}

// supportFlags converts restrained DOF keys to flags; empty means clamp all
func supportFlags(keys []string) (flags [6]bool, err error) {
	if len(keys) == 0 {
		return [6]bool{true, true, true, true, true, true}, nil
	}
	for _, key := range keys {
		found := false
		for i, k := range fem.DofKeys {
			if k == key {
				flags[i] = true
				found = true
			}
		}
		if !found {
			return flags, chk.Err("unknown DOF key %q", key)
		}
	}
	return
}
