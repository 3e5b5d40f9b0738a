// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// P holds one named parameter of a function definition
type P struct {
	N string  `json:"n"` // name of parameter
	V float64 `json:"v"` // value of parameter
}

// Params holds the parameters of one function definition
type Params []*P

// GetValue reads one parameter by name
func (o Params) GetValue(name string) (val float64, found bool) {
	for _, p := range o {
		if p.N == name {
			return p.V, true
		}
	}
	return
}

// FuncData holds function definition
type FuncData struct {
	Name string `json:"name"` // name of function. ex: waterload, deadload
	Type string `json:"type"` // type of function. ex: cte, grad-y
	Prms Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns a pressure field by name. The field takes the plan coordinates
// {x, y} of a point on the plate and returns the pressure value there.
func (o FuncsData) Get(name string) (fcn func(x []float64) float64, err error) {
	if name == "zero" || name == "none" {
		return func(x []float64) float64 { return 0 }, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = newField(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// newField allocates a pressure field of the given type:
//
//	"cte"    : f(x) = c                    prms: c
//	"grad-y" : f(x) = gamma * (ys - x[1])  prms: gamma, ys
//
// "grad-y" describes a hydrostatic head below the fluid level ys.
func newField(typ string, prms Params) (func(x []float64) float64, error) {
	switch typ {
	case "cte":
		c, ok := prms.GetValue("c")
		if !ok {
			return nil, chk.Err("function type %q needs parameter %q", typ, "c")
		}
		return func(x []float64) float64 { return c }, nil
	case "grad-y":
		γ, ok := prms.GetValue("gamma")
		if !ok {
			return nil, chk.Err("function type %q needs parameter %q", typ, "gamma")
		}
		ys, ok := prms.GetValue("ys")
		if !ok {
			return nil, chk.Err("function type %q needs parameter %q", typ, "ys")
		}
		return func(x []float64) float64 { return γ * (ys - x[1]) }, nil
	}
	return nil, chk.Err("cannot find function type %q", typ)
}

// String prints one function
func (o FuncData) String() string {
	l := io.Sf("    {\"name\":%q, \"type\":%q, \"prms\":[", o.Name, o.Type)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "]}"
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	return l + "\n  ]"
}
