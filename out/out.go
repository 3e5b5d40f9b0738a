// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements extraction of solved results along mesh edges
package out

import (
	"bytes"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/tamalone1/PyNite/fem"
	"github.com/tamalone1/PyNite/msh"
)

// Profile collects one result component along a tagged mesh edge, ordered by
// position. The returned dist holds the coordinate that varies along the edge
// (x for the bottom and top edges, y for the left and right ones). The mesh
// must be the first one registered in the model, so that vertex ids map to
// node names directly.
func Profile(mod *fem.Model, m *msh.Mesh, tag int, key, combo string) (dist, vals []float64, err error) {

	verts := m.TaggedVerts(tag)
	if len(verts) == 0 {
		return nil, nil, chk.Err("no vertices carry tag %d", tag)
	}
	along := 0 // coordinate index along the edge
	if tag == msh.TagLeft || tag == msh.TagRight {
		along = 1
	}

	dist = make([]float64, len(verts))
	vals = make([]float64, len(verts))
	idx := make([]int, len(verts))
	for i, v := range verts {
		dist[i] = v.C[along]
		idx[i] = i
		if vals[i], err = mod.Disp(io.Sf("N%d", v.Id+1), key, combo); err != nil {
			return nil, nil, err
		}
	}
	sort.Slice(idx, func(a, b int) bool { return dist[idx[a]] < dist[idx[b]] })

	sd := make([]float64, len(verts))
	sv := make([]float64, len(verts))
	for i, j := range idx {
		sd[i], sv[i] = dist[j], vals[j]
	}
	return sd, sv, nil
}

// MaxAbs returns the index and value of the entry with the largest magnitude
func MaxAbs(vals []float64) (idx int, val float64) {
	for i, v := range vals {
		if math.Abs(v) > math.Abs(val) {
			idx, val = i, v
		}
	}
	return
}

// WriteProfile writes a two-column profile table to dirout/fnkey.txt
func WriteProfile(dirout, fnkey string, dist, vals []float64) {
	var buf bytes.Buffer
	io.Ff(&buf, "# dist value\n")
	for i := range dist {
		io.Ff(&buf, "%23.15e %23.15e\n", dist[i], vals[i])
	}
	io.WriteFileD(dirout, fnkey+".txt", &buf)
}
