//----------------------------------------------------------------------
// This file is part of nfs.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// nfs is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// nfs is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

//********************************************************************/
//*    PGMID.        GENERAL NUMBER FIELD SIEVE ORCHESTRATION.       */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Wires polynomial selection, sieving, Block      */
//*                  Lanczos and square root extraction into a       */
//*                  single factoring pipeline.                      */
//********************************************************************/

// Package gnfs drives the general number field sieve end to end: select a
// polynomial, collect smooth relations, find linear dependencies over
// GF(2), and try each dependency's rational/algebraic square roots until
// one splits N.
package gnfs

import (
	"math/rand"
	"sort"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/lanczos"
	"github.com/bfix/nfs/linalg"
	"github.com/bfix/nfs/logger"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
	"github.com/bfix/nfs/polyselect"
	"github.com/bfix/nfs/sieve"
	"github.com/bfix/nfs/sqrtalg"
)

// NumWorkers is the number of goroutines Collect spawns to sieve lines
// concurrently.
const NumWorkers = 8

// Factorize runs the general number field sieve on n and returns the
// deduplicated, sorted list of non-trivial factors recovered from every
// dependency in the relation matrix's kernel. An empty slice means no
// dependency split n; the caller may retry with a fresh rng or larger
// params.
func Factorize(n *bignum.Int, rng *rand.Rand) []*bignum.Int {
	p := params.New(n)
	f, m := polyselect.Select(n, p)
	logger.Printf(logger.INFO, "[gnfs] selected degree-%d polynomial, m has %d bits\n",
		p.PolynomialDegree, m.BitLen())

	a, rels := sieve.Collect(n, m, f, p, NumWorkers)
	logger.Printf(logger.INFO, "[gnfs] collected %d relations over a %d-row matrix\n",
		len(rels), a.NumRows())

	deps, count := lanczos.FindDependencies(a, rng)
	if count == 0 {
		logger.Println(logger.WARN, "[gnfs] Block Lanczos found no dependencies")
		return nil
	}
	logger.Printf(logger.INFO, "[gnfs] found %d candidate dependencies\n", count)

	var factors []*bignum.Int
	for k := 0; k < count; k++ {
		for _, g := range tryDependency(n, m, f, rels, deps, k, rng) {
			factors = append(factors, g)
		}
	}
	return dedupeSorted(factors)
}

// tryDependency gathers the relations selected by bit k of every row of
// deps, extracts the rational and algebraic square roots of their product,
// and returns every non-trivial factor of n that gcd(x±y, n) yields.
func tryDependency(n, m *bignum.Int, f *poly.MpPolynomial, rels []sieve.Relation,
	deps linalg.BlockMatrix, k int, rng *rand.Rand) []*bignum.Int {

	var rationalInts []*bignum.Int
	var algebraicInts []*poly.MpPolynomial
	for i, r := range rels {
		if (deps[i]>>uint(k))&1 == 0 {
			continue
		}
		aa := bignum.NewInt(r.A)
		bb := bignum.NewInt(int64(r.B))
		rationalInts = append(rationalInts, aa.Add(bb.Mul(m)))
		algebraicInts = append(algebraicInts, poly.NewMpPolynomial([]*bignum.Int{aa, bb}))
	}
	if len(rationalInts) == 0 {
		return nil
	}

	ratRoot, err := sqrtalg.RationalSqrt(rationalInts)
	if err != nil {
		logger.Printf(logger.WARN, "[gnfs] dependency %d: rational product not a square: %v\n", k, err)
		return nil
	}
	// the algebraic side carries an extra f'(theta)^2 factor baked in by
	// AlgebraicSqrt, so the rational root needs the matching f'(m) to stay
	// congruent to it under the x -> m ring homomorphism.
	fPrimeAtM := f.Derivative().Eval(m)
	x := ratRoot.Mul(fPrimeAtM).Mod(n)

	yPoly, err := sqrtalg.AlgebraicSqrt(rng, algebraicInts, f)
	if err != nil {
		logger.Printf(logger.WARN, "[gnfs] dependency %d: algebraic square root failed: %v\n", k, err)
		return nil
	}
	y := yPoly.EvalMod(m, n)

	if !x.Mul(x).Mod(n).Equals(y.Mul(y).Mod(n)) {
		panic("gnfs: invariant violated: x^2 != y^2 (mod n)")
	}

	if x.Cmp(y) < 0 {
		x, y = y, x
	}

	var found []*bignum.Int
	for _, cand := range []*bignum.Int{x.Sub(y).Mod(n), x.Add(y).Mod(n)} {
		g := n.GCD(cand)
		if g.Cmp(bignum.ONE) > 0 && g.Cmp(n) < 0 {
			cofactor := n.Div(g)
			if cofactor.Cmp(g) < 0 {
				g = cofactor
			}
			found = append(found, g)
		}
	}
	return found
}

// dedupeSorted returns factors sorted ascending with duplicates removed.
func dedupeSorted(factors []*bignum.Int) []*bignum.Int {
	sort.Slice(factors, func(i, j int) bool { return factors[i].Cmp(factors[j]) < 0 })
	res := make([]*bignum.Int, 0, len(factors))
	for i, f := range factors {
		if i == 0 || !f.Equals(factors[i-1]) {
			res = append(res, f)
		}
	}
	return res
}
