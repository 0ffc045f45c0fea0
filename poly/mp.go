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

package poly

import "github.com/bfix/nfs/bignum"

// MpPolynomial is a dense univariate polynomial with arbitrary-precision
// coefficients, used for the GNFS base-m selection polynomial and for
// arithmetic in Z[x]/(f(x)) during the algebraic square root stage.
type MpPolynomial struct {
	coef []*bignum.Int // little-endian; coef[deg] != 0 unless the zero polynomial
}

// NewMpPolynomial builds a polynomial from little-endian coefficients,
// trimming leading zeros.
func NewMpPolynomial(coef []*bignum.Int) *MpPolynomial {
	return &MpPolynomial{coef: trimMp(coef)}
}

func trimMp(c []*bignum.Int) []*bignum.Int {
	n := len(c)
	for n > 0 && c[n-1].Equals(bignum.ZERO) {
		n--
	}
	return c[:n]
}

// Degree returns the degree of f, or -1 for the zero polynomial.
func (f *MpPolynomial) Degree() int { return len(f.coef) - 1 }

// Coef returns the coefficient of x^i, or zero if i exceeds the degree.
func (f *MpPolynomial) Coef(i int) *bignum.Int {
	if i < 0 || i >= len(f.coef) {
		return bignum.ZERO
	}
	return f.coef[i]
}

// IsZero reports whether f is the zero polynomial.
func (f *MpPolynomial) IsZero() bool { return len(f.coef) == 0 }

// Equals reports whether f and g have identical coefficients.
func (f *MpPolynomial) Equals(g *MpPolynomial) bool {
	if f.Degree() != g.Degree() {
		return false
	}
	for i := 0; i <= f.Degree(); i++ {
		if !f.Coef(i).Equals(g.Coef(i)) {
			return false
		}
	}
	return true
}

// Add returns f + g.
func (f *MpPolynomial) Add(g *MpPolynomial) *MpPolynomial {
	n := len(f.coef)
	if len(g.coef) > n {
		n = len(g.coef)
	}
	c := make([]*bignum.Int, n)
	for i := 0; i < n; i++ {
		c[i] = f.Coef(i).Add(g.Coef(i))
	}
	return &MpPolynomial{coef: trimMp(c)}
}

// Scale returns k*f.
func (f *MpPolynomial) Scale(k *bignum.Int) *MpPolynomial {
	c := make([]*bignum.Int, len(f.coef))
	for i, v := range f.coef {
		c[i] = v.Mul(k)
	}
	return &MpPolynomial{coef: trimMp(c)}
}

// Mul returns the full (unreduced) product f * g.
func (f *MpPolynomial) Mul(g *MpPolynomial) *MpPolynomial {
	if f.IsZero() || g.IsZero() {
		return &MpPolynomial{}
	}
	c := make([]*bignum.Int, len(f.coef)+len(g.coef)-1)
	for i := range c {
		c[i] = bignum.ZERO
	}
	for i, a := range f.coef {
		if a.Equals(bignum.ZERO) {
			continue
		}
		for j, b := range g.coef {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return &MpPolynomial{coef: trimMp(c)}
}

// MulMod returns (f * g) reduced modulo the polynomial modulus, with every
// coefficient additionally reduced mod m.
func (f *MpPolynomial) MulMod(g, modulus *MpPolynomial, m *bignum.Int) *MpPolynomial {
	return f.Mul(g).reduce(modulus).modCoeffs(m)
}

// MulModF returns (f * g) reduced modulo the polynomial modulus, keeping
// full-precision integer coefficients (no coefficient modulus). Used to
// build the algebraic-integer product before q-adic lifting takes over.
func (f *MpPolynomial) MulModF(g, modulus *MpPolynomial) *MpPolynomial {
	return f.Mul(g).reduce(modulus)
}

// reduce performs a pseudo-division of f by modulus and returns the
// pseudo-remainder: at each step the whole working remainder is scaled by
// modulus's leading coefficient before the leading term is cancelled, so
// the result stays integral even when modulus isn't monic (as the GNFS
// selection polynomial generally isn't).
func (f *MpPolynomial) reduce(modulus *MpPolynomial) *MpPolynomial {
	dm := modulus.Degree()
	lead := modulus.coef[dm]
	rem := append([]*bignum.Int(nil), f.coef...)
	for len(rem) > 0 && len(rem)-1 >= dm {
		dr := len(rem) - 1
		coeff := rem[dr]
		shift := dr - dm
		for i := range rem {
			rem[i] = rem[i].Mul(lead)
		}
		for j := 0; j <= dm; j++ {
			rem[shift+j] = rem[shift+j].Sub(coeff.Mul(modulus.Coef(j)))
		}
		rem = trimMp(rem)
	}
	return &MpPolynomial{coef: rem}
}

func (f *MpPolynomial) modCoeffs(m *bignum.Int) *MpPolynomial {
	c := make([]*bignum.Int, len(f.coef))
	for i, v := range f.coef {
		c[i] = v.Mod(m)
	}
	return &MpPolynomial{coef: trimMp(c)}
}

// Derivative returns f'.
func (f *MpPolynomial) Derivative() *MpPolynomial {
	if len(f.coef) <= 1 {
		return &MpPolynomial{}
	}
	c := make([]*bignum.Int, len(f.coef)-1)
	for i := 1; i < len(f.coef); i++ {
		c[i-1] = f.coef[i].Mul(bignum.NewInt(int64(i)))
	}
	return &MpPolynomial{coef: trimMp(c)}
}

// Eval evaluates f(x) via Horner's method.
func (f *MpPolynomial) Eval(x *bignum.Int) *bignum.Int {
	r := bignum.ZERO
	for i := len(f.coef) - 1; i >= 0; i-- {
		r = r.Mul(x).Add(f.coef[i])
	}
	return r
}

// EvalMod evaluates f(x) mod m via Horner's method.
func (f *MpPolynomial) EvalMod(x, m *bignum.Int) *bignum.Int {
	r := bignum.ZERO
	for i := len(f.coef) - 1; i >= 0; i-- {
		r = r.Mul(x).Add(f.coef[i]).Mod(m)
	}
	return r
}

// ReduceModP reduces every coefficient modulo the machine prime p and
// returns the corresponding GfPolynomial.
func (f *MpPolynomial) ReduceModP(p uint64) *GfPolynomial {
	pp := bignum.NewInt(int64(p))
	c := make([]uint64, len(f.coef))
	for i, v := range f.coef {
		c[i] = v.Mod(pp).Uint64()
	}
	return NewGfPolynomial(p, c)
}

// FromGf lifts a GfPolynomial's coefficients (each already in [0, p)) into
// an MpPolynomial with the same values, so GF(p) results can re-enter
// arbitrary-precision arithmetic during q-adic lifting.
func FromGf(g *GfPolynomial) *MpPolynomial {
	c := make([]*bignum.Int, g.Degree()+1)
	for i := range c {
		c[i] = bignum.NewInt(int64(g.Coef(i)))
	}
	return NewMpPolynomial(c)
}
