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
//*    PGMID.        ALGEBRAIC AND RATIONAL SQUARE ROOTS.            */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      q-adic Newton lifting of the inverse square     */
//*                  root found mod an inert prime p.                */
//********************************************************************/

// Package sqrtalg extracts the two square roots a dependency of relations
// must yield: the rational integer square root of the product of a+b*m
// values, and the algebraic square root of the product of a+b*theta
// values in Z[x]/(f(x)), via an inert-prime inverse square root lifted
// q-adically by Newton's method.
package sqrtalg

import (
	stderrors "errors"
	"math/bits"
	"math/rand"

	"github.com/bfix/nfs/bignum"
	nfserr "github.com/bfix/nfs/errors"
	"github.com/bfix/nfs/nt"
	"github.com/bfix/nfs/poly"
)

// ErrNotPerfectSquare is the base error reported when a dependency's
// rational product turns out not to be a perfect square, which would
// indicate a defective relation or a bug in the dependency finder.
var ErrNotPerfectSquare = stderrors.New("sqrtalg: rational product is not a perfect square")

// ErrInvSqrtExhausted is reported when the inverse-square-root search mod
// p didn't converge within invSqrtMaxRetries trials, so that the caller can
// skip the dependency.
var ErrInvSqrtExhausted = stderrors.New("sqrtalg: inverse square root search exhausted its retry budget")

// invSqrtMaxRetries bounds the random search for an inverse square root
// mod p: each trial succeeds with probability roughly 1/2, so 64 retries
// leaves a failure probability below 2^-64.
const invSqrtMaxRetries = 64

// startPrime is the first candidate inert prime tried when selecting p for
// the q-adic lift.
const startPrime = 1000000009

// liftExtraIterations is added to the iteration count derived from the
// coefficient bit length, giving the Newton lift headroom to converge.
const liftExtraIterations = 3

// RationalSqrt returns the square root of the product of the given
// rational integers, failing if that product is not a perfect square.
func RationalSqrt(integers []*bignum.Int) (*bignum.Int, error) {
	prod := mulRationalIntegers(integers)
	if !prod.IsSquare() {
		return nil, nfserr.New(ErrNotPerfectSquare, "product has %d bits", prod.BitLen())
	}
	return prod.Sqrt(), nil
}

func mulRationalIntegers(integers []*bignum.Int) *bignum.Int {
	if len(integers) == 1 {
		return integers[0]
	}
	mid := len(integers) / 2
	return mulRationalIntegers(integers[:mid]).Mul(mulRationalIntegers(integers[mid:]))
}

// AlgebraicSqrt returns the algebraic square root of the product of the
// given algebraic integers a+b*theta (each encoded as a degree <= 1
// polynomial in x, theta being the root of f used to build the number
// field), reduced modulo f. It selects an inert prime p (f irreducible
// mod p), computes the inverse square root of the product times f'(theta)^2
// in GF(p)[x]/(f), and lifts that root q-adically via Newton's method
// until the true integer coefficients can be recovered.
func AlgebraicSqrt(rng *rand.Rand, integers []*poly.MpPolynomial, f *poly.MpPolynomial) (*poly.MpPolynomial, error) {
	fPrime := f.Derivative()
	derivSq := fPrime.MulModF(fPrime, f)
	prod := mulAlgebraicIntegers(integers, f)
	s := prod.MulModF(derivSq, f)

	p := selectInertPrime(f)
	fieldMod := f.ReduceModP(p)
	sModP := s.ReduceModP(p)
	r0, ok := invSqrtModP(sModP, fieldMod, rng)
	if !ok {
		return nil, nfserr.New(ErrInvSqrtExhausted, "p=%d", p)
	}
	r := poly.FromGf(r0)

	numIterations := liftIterationCount(s, p)

	q := bignum.NewInt(int64(p))
	for iter := 0; iter < numIterations; iter++ {
		q = q.Mul(q)

		// Newton step for the inverse square root: r <- r * (3 - s*r^2) / 2
		rr := r.MulMod(r, f, q)
		t := s.MulMod(rr, f, q)
		t = negateCoeffsModQ(t, q)
		t = addConstantModQ(t, bignum.NewInt(3), q)
		t = r.MulMod(t, f, q)
		twoInv := bignum.NewInt(2).ModInverse(q)
		r = scaleModQ(t, twoInv, q)
	}

	resultModQ := s.MulMod(r, f, q)
	result := signedReduce(resultModQ, q)

	if !result.MulModF(result, f).Equals(s) {
		panic("sqrtalg: invariant violated: beta*beta != product (mod f)")
	}
	return result, nil
}

func mulAlgebraicIntegers(integers []*poly.MpPolynomial, f *poly.MpPolynomial) *poly.MpPolynomial {
	if len(integers) == 1 {
		return integers[0]
	}
	mid := len(integers) / 2
	left := mulAlgebraicIntegers(integers[:mid], f)
	right := mulAlgebraicIntegers(integers[mid:], f)
	return left.MulModF(right, f)
}

// selectInertPrime finds the smallest odd-stepped prime p >= startPrime
// for which f is irreducible mod p, i.e. p stays inert in the number
// field Q[x]/(f).
func selectInertPrime(f *poly.MpPolynomial) uint64 {
	p := uint64(startPrime)
	for {
		if p <= 0xFFFFFFFF && nt.MillerRabin(uint32(p)) {
			if poly.IsIrreducible(f.ReduceModP(p)) {
				return p
			}
		}
		p += 2
	}
}

// liftIterationCount derives how many doubling-precision Newton steps are
// needed to recover s's true integer coefficients, given the prime p the
// lift starts from.
func liftIterationCount(s *poly.MpPolynomial, p uint64) int {
	maxBits := 0
	for i := 0; i <= s.Degree(); i++ {
		if b := s.Coef(i).Abs().BitLen(); b > maxBits {
			maxBits = b
		}
	}
	log2P := bits.Len64(p) - 1
	if log2P < 1 {
		log2P = 1
	}
	steps := maxBits / log2P
	return ilog2(steps) + liftExtraIterations
}

func ilog2(x int) int {
	if x <= 0 {
		return 0
	}
	return bits.Len(uint(x)) - 1
}

// invSqrtModP finds v with v^2 * s == 1 in GF(p)[x]/(f), following Jensen's
// extension-field adaptation of Cipolla-Lehmer: adjoin y with y^2 = s,
// raise a random non-trivial element u = u0 - y to the power (p^d-1)/2,
// and read the inverse square root off the y-coefficient of the result.
func invSqrtModP(s, f *poly.GfPolynomial, rng *rand.Rand) (*poly.GfPolynomial, bool) {
	p := f.Modulus()
	d := f.Degree()

	pp := bignum.NewInt(int64(p))
	exponent := pp.Pow(int64(d)).Sub(bignum.ONE).Div(bignum.NewInt(2))

	for attempt := 0; attempt < invSqrtMaxRetries; attempt++ {
		u0 := randomLowerPoly(rng, p, d)
		u1 := poly.NewGfPolynomial(p, []uint64{p - 1})

		v0 := poly.NewGfPolynomial(p, []uint64{1})
		v1 := poly.NewGfPolynomial(p, nil)

		e := exponent
		for e.Sign() != 0 {
			if e.Bit(0) == 1 {
				v0, v1 = mulYPolynomials(u0, u1, v0, v1, s, f)
			}
			u0, u1 = mulYPolynomials(u0, u1, u0, u1, s, f)
			e = e.Rsh(1)
		}

		g := v1.MulMod(v1, f).MulMod(s, f)
		if g.Degree() <= 0 && g.Coef(0) == 1 {
			return v1, true
		}
	}
	return nil, false
}

// mulYPolynomials multiplies u = u0 + u1*y by v = v0 + v1*y modulo
// (f(x), y^2 - s(x)), where u0, u1, v0, v1 are all reduced mod f.
func mulYPolynomials(u0, u1, v0, v1, s, f *poly.GfPolynomial) (*poly.GfPolynomial, *poly.GfPolynomial) {
	r0 := u0.MulMod(v0, f).Add(u1.MulMod(v1, f).MulMod(s, f))
	r1 := u0.MulMod(v1, f).Add(u1.MulMod(v0, f))
	return r0, r1
}

// randomLowerPoly returns a random degree < d polynomial mod p whose
// leading (index d-1) coefficient is nonzero.
func randomLowerPoly(rng *rand.Rand, p uint64, d int) *poly.GfPolynomial {
	c := make([]uint64, d)
	for i := range c {
		c[i] = uint64(rng.Int63n(int64(p)))
	}
	for c[d-1] == 0 {
		c[d-1] = uint64(rng.Int63n(int64(p)))
	}
	return poly.NewGfPolynomial(p, c)
}

func negateCoeffsModQ(f *poly.MpPolynomial, q *bignum.Int) *poly.MpPolynomial {
	n := f.Degree() + 1
	if n <= 0 {
		return f
	}
	c := make([]*bignum.Int, n)
	for i := 0; i < n; i++ {
		c[i] = q.Sub(f.Coef(i)).Mod(q)
	}
	return poly.NewMpPolynomial(c)
}

func addConstantModQ(f *poly.MpPolynomial, k, q *bignum.Int) *poly.MpPolynomial {
	n := f.Degree() + 1
	if n == 0 {
		n = 1
	}
	c := make([]*bignum.Int, n)
	for i := 0; i < n; i++ {
		c[i] = f.Coef(i)
	}
	c[0] = c[0].Add(k).Mod(q)
	return poly.NewMpPolynomial(c)
}

func scaleModQ(f *poly.MpPolynomial, k, q *bignum.Int) *poly.MpPolynomial {
	n := f.Degree() + 1
	c := make([]*bignum.Int, n)
	for i := 0; i < n; i++ {
		c[i] = f.Coef(i).Mul(k).Mod(q)
	}
	return poly.NewMpPolynomial(c)
}

// signedReduce interprets coefficients close to q as the negative residue
// they represent, turning the mod-q result into a balanced integer result.
func signedReduce(f *poly.MpPolynomial, q *bignum.Int) *poly.MpPolynomial {
	n := f.Degree() + 1
	c := make([]*bignum.Int, n)
	for i := 0; i < n; i++ {
		v := f.Coef(i)
		if v.BitLen() >= q.BitLen()-1 {
			v = v.Sub(q)
		}
		c[i] = v
	}
	return poly.NewMpPolynomial(c)
}
