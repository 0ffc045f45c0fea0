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
//*    PGMID.        DENSE GF(P) POLYNOMIALS.                        */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Machine-prime-modulus polynomials used for      */
//*                  factor-base construction and irreducibility.    */
//********************************************************************/

// Package poly implements dense univariate polynomials in the two flavors
// the sieve and square-root stages need: GfPolynomial, with coefficients
// reduced modulo a machine-sized prime p, and MpPolynomial, with arbitrary
// precision bignum.Int coefficients. Coefficients are stored little-endian:
// coeff[i] is the coefficient of x^i.
package poly

// GfPolynomial is a dense polynomial with coefficients in Z/pZ.
type GfPolynomial struct {
	p    uint64
	coef []uint64 // little-endian; coef[deg] != 0 unless the zero polynomial
}

// NewGfPolynomial builds a polynomial modulo p from little-endian
// coefficients, normalizing them into [0, p) and trimming leading zeros.
func NewGfPolynomial(p uint64, coef []uint64) *GfPolynomial {
	c := make([]uint64, len(coef))
	for i, v := range coef {
		c[i] = v % p
	}
	return &GfPolynomial{p: p, coef: trimGf(c)}
}

func trimGf(c []uint64) []uint64 {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return c[:n]
}

// Modulus returns p.
func (f *GfPolynomial) Modulus() uint64 { return f.p }

// Degree returns the degree of f, or -1 for the zero polynomial.
func (f *GfPolynomial) Degree() int { return len(f.coef) - 1 }

// Coef returns the coefficient of x^i, or 0 if i exceeds the degree.
func (f *GfPolynomial) Coef(i int) uint64 {
	if i < 0 || i >= len(f.coef) {
		return 0
	}
	return f.coef[i]
}

// IsZero reports whether f is the zero polynomial.
func (f *GfPolynomial) IsZero() bool { return len(f.coef) == 0 }

// Add returns f + g mod p.
func (f *GfPolynomial) Add(g *GfPolynomial) *GfPolynomial {
	n := len(f.coef)
	if len(g.coef) > n {
		n = len(g.coef)
	}
	c := make([]uint64, n)
	for i := 0; i < n; i++ {
		c[i] = (f.Coef(i) + g.Coef(i)) % f.p
	}
	return &GfPolynomial{p: f.p, coef: trimGf(c)}
}

// mulPlain returns the full (unreduced) product f * g mod p.
func (f *GfPolynomial) mulPlain(g *GfPolynomial) *GfPolynomial {
	if f.IsZero() || g.IsZero() {
		return &GfPolynomial{p: f.p}
	}
	c := make([]uint64, len(f.coef)+len(g.coef)-1)
	for i, a := range f.coef {
		if a == 0 {
			continue
		}
		for j, b := range g.coef {
			c[i+j] = (c[i+j] + a*b) % f.p
		}
	}
	return &GfPolynomial{p: f.p, coef: trimGf(c)}
}

// DivMod returns the quotient and remainder of f / g, deg(remainder) < deg(g).
// g must be nonzero.
func (f *GfPolynomial) DivMod(g *GfPolynomial) (q, r *GfPolynomial) {
	if g.IsZero() {
		panic("poly: division by the zero polynomial")
	}
	p := f.p
	rem := append([]uint64(nil), f.coef...)
	dg := g.Degree()
	lead := g.coef[dg]
	leadInv := modInverse(lead, p)

	qc := make([]uint64, 0)
	for len(rem) > 0 && len(rem)-1 >= dg {
		dr := len(rem) - 1
		coeff := (rem[dr] * leadInv) % p
		shift := dr - dg
		for len(qc) <= shift {
			qc = append(qc, 0)
		}
		qc[shift] = coeff
		for j := 0; j <= dg; j++ {
			rem[shift+j] = (rem[shift+j] + p - (coeff*g.coef[j])%p) % p
		}
		rem = trimGf(rem)
	}
	return &GfPolynomial{p: p, coef: trimGf(qc)}, &GfPolynomial{p: p, coef: rem}
}

// MulMod returns (f * g) mod modulus, i.e. the product reduced modulo the
// polynomial modulus (typically the degree-d field polynomial).
func (f *GfPolynomial) MulMod(g, modulus *GfPolynomial) *GfPolynomial {
	_, r := f.mulPlain(g).DivMod(modulus)
	return r
}

// Derivative returns f'.
func (f *GfPolynomial) Derivative() *GfPolynomial {
	if len(f.coef) <= 1 {
		return &GfPolynomial{p: f.p}
	}
	c := make([]uint64, len(f.coef)-1)
	for i := 1; i < len(f.coef); i++ {
		c[i-1] = (f.coef[i] * uint64(i)) % f.p
	}
	return &GfPolynomial{p: f.p, coef: trimGf(c)}
}

// Eval evaluates f(x) mod p via Horner's method.
func (f *GfPolynomial) Eval(x uint64) uint64 {
	x %= f.p
	r := uint64(0)
	for i := len(f.coef) - 1; i >= 0; i-- {
		r = (r*x + f.coef[i]) % f.p
	}
	return r
}

func modInverse(a, p uint64) uint64 {
	// Fermat's little theorem; p is prime.
	e := p - 2
	c := uint64(1)
	a %= p
	for e != 0 {
		if e&1 == 1 {
			c = (c * a) % p
		}
		a = (a * a) % p
		e >>= 1
	}
	return c
}
