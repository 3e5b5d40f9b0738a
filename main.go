// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// PyNite solves a plate model defined in a (.sim) JSON file and prints the
// deflection profile of each mesh edge
package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tamalone1/PyNite/inp"
	"github.com/tamalone1/PyNite/msh"
	"github.com/tamalone1/PyNite/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// input parameters
	simfn, fnkey := io.ArgToFilename(0, "examples/hydrostatic_tank/tank", ".sim", true)
	verbose := io.ArgToBool(1, true)
	io.Pf("\n%s\n", io.ArgsTable("INPUT ARGUMENTS",
		"simulation filename", "simfn", simfn,
		"write deflection profiles", "verbose", verbose,
	))

	// read and build
	sim, err := inp.ReadSim(filepath.Dir(simfn), filepath.Base(simfn))
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	mod, m, err := sim.Model()
	if err != nil {
		chk.Panic("cannot build model:\n%v", err)
	}
	io.Pf("%q: %d nodes, %d elements\n", sim.Data.Desc, len(mod.Nodes), len(mod.Elems))

	// solve
	if err := mod.Analyze(); err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// report the peak deflection of every combination, edge by edge
	for _, c := range sim.Combos {
		io.Pf("\ncombination %q:\n", c.Name)
		for _, edge := range []struct {
			name string
			tag  int
		}{
			{"bottom", msh.TagBottom},
			{"top", msh.TagTop},
			{"left", msh.TagLeft},
			{"right", msh.TagRight},
		} {
			dist, vals, err := out.Profile(mod, m, edge.tag, "uz", c.Name)
			if err != nil {
				chk.Panic("cannot extract profile:\n%v", err)
			}
			i, peak := out.MaxAbs(vals)
			io.Pf("  %-6s edge: peak uz = %13.6e at %g\n", edge.name, peak, dist[i])
			if verbose {
				out.WriteProfile("/tmp/pynite", io.Sf("%s_%s_%s", fnkey, c.Name, edge.name), dist, vals)
			}
		}
	}
}
