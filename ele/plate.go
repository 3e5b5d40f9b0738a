// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"fmt"

	"github.com/tamalone1/PyNite/shp"
)

// Plate is the axis-aligned rectangular plate element. It assumes the four
// corners form a rectangle of width a (along i→j) and height b (along i→n)
// in the element plane, which turns the isoparametric mapping into the
// closed-form constants used by rectEval: no Jacobian inversion is needed.
type Plate struct {
	base
	A float64 // width: distance from corner i to corner j
	B float64 // height: distance from corner i to corner n
}

// NewPlate returns a new rectangular plate element with its global 24x24
// stiffness matrix computed from thickness t, Young's modulus e and
// Poisson's coefficient ν.
//  Input:
//   x[3][4] -- global coordinates of the corners i, j, m, n (counter-clockwise)
func NewPlate(name string, vids []int, x [][]float64, t, e, ν float64) (o *Plate, err error) {

	// local frame
	trans, xl, err := localFrame(name, x)
	if err != nil {
		return nil, err
	}

	// side lengths
	a := xl[0][1]
	b := xl[1][3]
	if a < 1e-14 || b < 1e-14 {
		return nil, fmt.Errorf("%w: plate %q has a collapsed side: a=%g, b=%g", ErrDegenerateGeometry, name, a, b)
	}

	// new element
	o = new(Plate)
	o.name = name
	o.vids = vids
	o.x = x
	o.trans = trans
	o.A = a
	o.B = b

	// local stiffness and pressure integrals via the closed-form evaluator
	ev := &rectEval{a: a, b: b, sh: shp.NewShape()}
	kl, fw, err := buildLocal(ev, t, e, ν)
	if err != nil {
		return nil, err
	}
	o.fw = fw
	o.k = transform(kl, trans)
	return
}

// rectEval evaluates shape data on an a-by-b rectangle. Axis alignment makes
// the mapping Jacobian the constant diagonal {a/2, b/2}
type rectEval struct {
	a, b float64
	sh   *shp.Shape
}

// At computes shape data at natural coordinates (r, s)
func (o *rectEval) At(r, s float64) (p *pointData, err error) {
	shp.Qua4(o.sh.S, o.sh.DSdR, []float64{r, s}, true)
	p = &pointData{
		S:   make([]float64, Nverts),
		DSr: make([]float64, Nverts),
		DSs: make([]float64, Nverts),
		Gx:  make([]float64, Nverts),
		Gy:  make([]float64, Nverts),
		XR:  o.a / 2.0,
		YR:  0,
		XS:  0,
		YS:  o.b / 2.0,
		Det: o.a * o.b / 4.0,
	}
	for m := 0; m < Nverts; m++ {
		p.S[m] = o.sh.S[m]
		p.DSr[m] = o.sh.DSdR[m][0]
		p.DSs[m] = o.sh.DSdR[m][1]
		p.Gx[m] = o.sh.DSdR[m][0] * 2.0 / o.a
		p.Gy[m] = o.sh.DSdR[m][1] * 2.0 / o.b
	}
	return
}
