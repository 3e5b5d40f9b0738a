// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Material holds the data of one linear elastic plate material
type Material struct {
	Name  string  `json:"name"`  // name of material
	Model string  `json:"model"` // model kind; only "elastic" is implemented
	E     float64 `json:"E"`     // Young's modulus
	Nu    float64 `json:"nu"`    // Poisson's coefficient
	Rho   float64 `json:"rho"`   // density (informative)
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials []*Material `json:"materials"` // all materials

	// derived
	byName map[string]*Material
}

// ReadMat reads a materials database from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file: %v", err)
	}
	mdb = new(MatDb)
	if err = json.Unmarshal(b, mdb); err != nil {
		return nil, err
	}
	mdb.byName = make(map[string]*Material, len(mdb.Materials))
	for _, m := range mdb.Materials {
		if m.Model != "" && m.Model != "elastic" {
			return nil, chk.Err("material %q: unknown model %q", m.Name, m.Model)
		}
		if m.E <= 0 {
			return nil, chk.Err("material %q: E must be positive", m.Name)
		}
		if m.Nu < 0 || m.Nu >= 0.5 {
			return nil, chk.Err("material %q: nu must be in [0, 0.5)", m.Name)
		}
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined twice", m.Name)
		}
		mdb.byName[m.Name] = m
	}
	return
}

// Get returns a material by name
func (o *MatDb) Get(name string) (*Material, error) {
	m, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("cannot find material %q", name)
	}
	return m, nil
}
