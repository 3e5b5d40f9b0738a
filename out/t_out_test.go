// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tamalone1/PyNite/fem"
	"github.com/tamalone1/PyNite/msh"
)

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. deflection profile along the free edge")

	m, err := msh.NewRectangleMesh(0.1, 30e9, 0.2, 0.5, 4.0, 2.0, msh.Rectangle)
	if err != nil {
		tst.Errorf("mesh generation failed:\n%v", err)
		return
	}
	mod := fem.NewModel()
	if err := mod.AddMesh(m); err != nil {
		tst.Errorf("model creation failed:\n%v", err)
		return
	}
	mod.FixEdge(msh.TagLeft)
	mod.FixEdge(msh.TagRight)
	mod.FixEdge(msh.TagBottom)
	mod.AddSurfacePressureFunc(func(x []float64) float64 { return -2000.0 }, "dead")
	mod.AddLoadCombo("C", map[string]float64{"dead": 1})
	if err := mod.Analyze(); err != nil {
		tst.Errorf("Analyze failed:\n%v", err)
		return
	}

	dist, vals, err := Profile(mod, m, msh.TagTop, "uz", "C")
	if err != nil {
		tst.Errorf("Profile failed:\n%v", err)
		return
	}
	chk.IntAssert(len(dist), 9)
	chk.Float64(tst, "first dist", 1e-15, dist[0], 0)
	chk.Float64(tst, "last dist", 1e-15, dist[8], 4.0)

	// clamped ends of the edge do not move; the middle does, symmetrically
	chk.Float64(tst, "uz left end", 1e-15, vals[0], 0)
	chk.Float64(tst, "uz right end", 1e-15, vals[8], 0)
	chk.Float64(tst, "symmetry", 1e-9, vals[1], vals[7])
	i, peak := MaxAbs(vals)
	io.Pf("peak uz = %g at dist = %g\n", peak, dist[i])
	chk.IntAssert(i, 4)

	// unknown combination propagates
	if _, _, err = Profile(mod, m, msh.TagTop, "uz", "nope"); err == nil {
		tst.Errorf("unknown combination was not reported\n")
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. profile table file")

	dirout := tst.TempDir()
	dist := []float64{0, 0.5, 1.0}
	vals := []float64{0, -2.5e-4, 0}
	WriteProfile(dirout, "edge-uz", dist, vals)

	b, err := os.ReadFile(filepath.Join(dirout, "edge-uz.txt"))
	if err != nil {
		tst.Errorf("cannot read profile file:\n%v", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	chk.IntAssert(len(lines), 4)
	chk.String(tst, lines[0], "# dist value")
	for i := range dist {
		fields := strings.Fields(lines[i+1])
		chk.IntAssert(len(fields), 2)
		chk.Float64(tst, io.Sf("dist%d", i), 1e-15, io.Atof(fields[0]), dist[i])
		chk.Float64(tst, io.Sf("val%d", i), 1e-15, io.Atof(fields[1]), vals[i])
	}
}
