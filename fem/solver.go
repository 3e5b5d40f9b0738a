// Copyright 2026 The PyNite Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"

	"github.com/tamalone1/PyNite/ele"
)

// linSolver solves K·u = f for the free partition of the system
type linSolver interface {
	Init(kb *la.Triplet) error
	Solve(b la.Vector) (la.Vector, error)
}

// solverallocators holds all available linear solver backends
var solverallocators = map[string]func() linSolver{}

// Analyze numbers the free DOFs, assembles and factorises the global
// stiffness matrix and solves every registered load combination. Results
// become visible to Disp and Reaction only if every combination solves.
// The backend is selected by Model.Solver ("chol" when empty).
func (o *Model) Analyze() (err error) {

	// number equations: free DOFs in node order, fixed DOFs eliminated
	nf := 0
	for _, n := range o.Nodes {
		for _, d := range n.Dofs {
			if d.Fixed {
				d.Eq = -1
			} else {
				d.Eq = nf
				nf++
			}
		}
	}
	o.Nf = nf

	// hand the numbering to the elements
	for _, e := range o.Elems {
		eqs := make([][]int, ele.Nverts)
		for m, vid := range e.Vids() {
			eqs[m] = make([]int, ele.NdofPerNode)
			for j := 0; j < ele.NdofPerNode; j++ {
				eqs[m][j] = o.Nodes[vid].Dofs[j].Eq
			}
		}
		if err = e.SetEqs(eqs); err != nil {
			return
		}
	}

	// assemble and factorise once; the matrix is shared by all combinations
	var sol linSolver
	if nf > 0 {
		kb := la.NewTriplet(nf, nf, len(o.Elems)*ele.Nu*ele.Nu+1)
		for _, e := range o.Elems {
			e.AddToKb(kb)
		}
		kind := o.Solver
		if kind == "" {
			kind = "chol"
		}
		alloc, ok := solverallocators[kind]
		if !ok {
			return chk.Err("cannot find allocator for solver kind %q", kind)
		}
		sol = alloc()
		if err = sol.Init(kb); err != nil {
			return
		}
	}

	// solve each combination; stage results before committing any
	names := make([]string, 0, len(o.combos))
	for name := range o.combos {
		names = append(names, name)
	}
	sort.Strings(names)

	stagedU := make(map[string][][]float64, len(names))
	stagedR := make(map[string][][]float64, len(names))
	for _, name := range names {
		factors := o.combos[name]

		// right-hand side
		fb := la.NewVector(nf)
		for lcase, factor := range factors {
			for _, e := range o.Elems {
				e.AddToRhs(fb, lcase, factor)
			}
			for _, nl := range o.nodeLoads[lcase] {
				if eq := nl.node.Dofs[nl.idx].Eq; eq >= 0 {
					fb[eq] += factor * nl.val
				}
			}
		}

		// solve
		var u la.Vector
		if nf > 0 {
			if u, err = sol.Solve(fb); err != nil {
				return
			}
		}

		// expand to node results; fixed DOFs hold zero
		U := make([][]float64, len(o.Nodes))
		for i, n := range o.Nodes {
			U[i] = make([]float64, ele.NdofPerNode)
			for j, d := range n.Dofs {
				if d.Eq >= 0 {
					U[i][j] = u[d.Eq]
				}
			}
		}
		stagedU[name] = U
		stagedR[name] = o.reactions(U, factors)
	}

	// commit
	for i, n := range o.Nodes {
		if n.U == nil {
			n.U = make(map[string][]float64, len(names))
			n.R = make(map[string][]float64, len(names))
		}
		for _, name := range names {
			n.U[name] = stagedU[name][i]
			n.R[name] = stagedR[name][i]
		}
	}
	o.solved = true
	return
}

// reactions recovers support reactions as the difference between the internal
// forces K_e·d_e, gathered per node, and the loads applied at fixed DOFs
func (o *Model) reactions(U [][]float64, factors map[string]float64) [][]float64 {

	nn := len(o.Nodes)
	fint := make([][]float64, nn)
	fapp := make([][]float64, nn)
	for i := 0; i < nn; i++ {
		fint[i] = make([]float64, ele.NdofPerNode)
		fapp[i] = make([]float64, ele.NdofPerNode)
	}

	d := make([]float64, ele.Nu)
	for _, e := range o.Elems {
		vids := e.Vids()
		for m, vid := range vids {
			copy(d[ele.NdofPerNode*m:], U[vid])
		}
		K := e.K()
		for m, vid := range vids {
			for j := 0; j < ele.NdofPerNode; j++ {
				row := K[ele.NdofPerNode*m+j]
				sum := 0.0
				for k := 0; k < ele.Nu; k++ {
					sum += row[k] * d[k]
				}
				fint[vid][j] += sum
			}
		}
		for lcase, factor := range factors {
			fe := e.LoadVector(lcase)
			for m, vid := range vids {
				for j := 0; j < ele.NdofPerNode; j++ {
					fapp[vid][j] += factor * fe[ele.NdofPerNode*m+j]
				}
			}
		}
	}
	for lcase, factor := range factors {
		for _, nl := range o.nodeLoads[lcase] {
			fapp[nl.node.Idx][nl.idx] += factor * nl.val
		}
	}

	R := make([][]float64, nn)
	for i, n := range o.Nodes {
		R[i] = make([]float64, ele.NdofPerNode)
		for j, dof := range n.Dofs {
			if dof.Fixed {
				R[i][j] = fint[i][j] - fapp[i][j]
			}
		}
	}
	return R
}

// cholSolver factorises the (symmetric positive definite) free partition with
// a dense Cholesky decomposition. An indefinite or rank-deficient matrix, as
// produced by an insufficiently supported model, fails to factorise.
type cholSolver struct {
	n    int
	chol mat.Cholesky
}

func (o *cholSolver) Init(kb *la.Triplet) error {
	d := kb.ToDense()
	o.n = d.M
	sym := mat.NewSymDense(o.n, nil)
	for i := 0; i < o.n; i++ {
		for j := i; j < o.n; j++ {
			sym.SetSym(i, j, d.Get(i, j))
		}
	}
	if ok := o.chol.Factorize(sym); !ok {
		return fmt.Errorf("%w: stiffness matrix is not positive definite; check supports", ErrSingularSystem)
	}
	return nil
}

func (o *cholSolver) Solve(b la.Vector) (la.Vector, error) {
	var x mat.VecDense
	if err := o.chol.SolveVecTo(&x, mat.NewVecDense(o.n, b)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	u := la.NewVector(o.n)
	for i := 0; i < o.n; i++ {
		u[i] = x.AtVec(i)
	}
	return u, nil
}

// umfSolver delegates to UMFPACK. The sparse backend panics on failure and
// may return non-finite values on near-singular systems, hence the recover
// and the finiteness scan.
type umfSolver struct {
	kb *la.Triplet
}

func (o *umfSolver) Init(kb *la.Triplet) error {
	o.kb = kb
	return nil
}

func (o *umfSolver) Solve(b la.Vector) (u la.Vector, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, err = nil, fmt.Errorf("%w: %v", ErrSingularSystem, r)
		}
	}()
	u = la.SpSolve(o.kb, b)
	for _, v := range u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: solution is not finite", ErrSingularSystem)
		}
	}
	return
}

func init() {
	solverallocators["chol"] = func() linSolver { return new(cholSolver) }
	solverallocators["umfpack"] = func() linSolver { return new(umfSolver) }
}
