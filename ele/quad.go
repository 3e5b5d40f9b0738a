// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"

	"github.com/tamalone1/PyNite/shp"
)

// Quad is the general quadrilateral plate element. Corners need not be
// axis-aligned or form equal sides: shape data comes from the full
// isoparametric mapping, integrated with 2x2 Gauss quadrature
type Quad struct {
	base
	xl [][]float64 // [2][4] corner coordinates in the local plane
}

// NewQuad returns a new quadrilateral plate element with its global 24x24
// stiffness matrix computed from thickness t, Young's modulus e and
// Poisson's coefficient ν.
//  Input:
//   x[3][4] -- global coordinates of the corners i, j, m, n (counter-clockwise)
func NewQuad(name string, vids []int, x [][]float64, t, e, ν float64) (o *Quad, err error) {

	// local frame
	trans, xl, err := localFrame(name, x)
	if err != nil {
		return nil, err
	}

	// new element
	o = new(Quad)
	o.name = name
	o.vids = vids
	o.x = x
	o.trans = trans
	o.xl = xl

	// local stiffness and pressure integrals via the isoparametric evaluator
	ev := &quadEval{name: name, xl: xl, sh: shp.NewShape()}
	kl, fw, err := buildLocal(ev, t, e, ν)
	if err != nil {
		return nil, err
	}
	o.fw = fw
	o.k = transform(kl, trans)
	return
}

// quadEval evaluates shape data through the qua4 isoparametric mapping
type quadEval struct {
	name string
	xl   [][]float64
	sh   *shp.Shape
}

// At computes shape data at natural coordinates (r, s). A singular or
// inverted mapping (zero area, non-convex connectivity) fails here
func (o *quadEval) At(r, s float64) (p *pointData, err error) {
	err = o.sh.CalcAtIp(o.xl, []float64{r, s}, true)
	if err != nil {
		return nil, fmt.Errorf("%w: quad %q: %v", ErrDegenerateGeometry, o.name, err)
	}
	p = &pointData{
		S:   make([]float64, Nverts),
		DSr: make([]float64, Nverts),
		DSs: make([]float64, Nverts),
		Gx:  make([]float64, Nverts),
		Gy:  make([]float64, Nverts),
		XR:  o.sh.DxdR[0][0],
		YR:  o.sh.DxdR[1][0],
		XS:  o.sh.DxdR[0][1],
		YS:  o.sh.DxdR[1][1],
		Det: o.sh.J,
	}
	for m := 0; m < Nverts; m++ {
		p.S[m] = o.sh.S[m]
		p.DSr[m] = o.sh.DSdR[m][0]
		p.DSs[m] = o.sh.DSdR[m][1]
		p.Gx[m] = o.sh.G[m][0]
		p.Gy[m] = o.sh.G[m][1]
	}
	return
}
