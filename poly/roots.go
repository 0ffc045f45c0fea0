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

// gcd returns the monic gcd of f and g over F_p.
func gcd(f, g *GfPolynomial) *GfPolynomial {
	for !g.IsZero() {
		_, r := f.DivMod(g)
		f, g = g, r
	}
	return f.monic()
}

func (f *GfPolynomial) monic() *GfPolynomial {
	if f.IsZero() {
		return f
	}
	lead := f.coef[len(f.coef)-1]
	if lead == 1 {
		return f
	}
	inv := modInverse(lead, f.p)
	c := make([]uint64, len(f.coef))
	for i, v := range f.coef {
		c[i] = (v * inv) % f.p
	}
	return &GfPolynomial{p: f.p, coef: c}
}

// xPowP computes x^(p^power) mod (modulus, p) by repeated p-th powering via
// square-and-multiply on the exponent p, power times.
func xPowP(modulus *GfPolynomial, power int) *GfPolynomial {
	p := modulus.p
	x := NewGfPolynomial(p, []uint64{0, 1})
	result := x
	for k := 0; k < power; k++ {
		result = powMod(result, p, modulus)
	}
	return result
}

// powMod computes base^exp mod modulus over F_p[x].
func powMod(base *GfPolynomial, exp uint64, modulus *GfPolynomial) *GfPolynomial {
	p := modulus.p
	result := NewGfPolynomial(p, []uint64{1})
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = result.MulMod(b, modulus)
		}
		b = b.MulMod(b, modulus)
		exp >>= 1
	}
	return result
}

// FindRootsModP returns every r in [0, p) with f(r) ≡ 0 (mod p), in
// ascending order, via the linear factors of gcd(x^p - x, f).
func FindRootsModP(f *GfPolynomial) []uint64 {
	p := f.p
	xp := xPowP(f, 1)
	diff := xp.Add(negate(NewGfPolynomial(p, []uint64{0, 1})))
	g := gcd(f, diff)

	var roots []uint64
	for r := uint64(0); r < p; r++ {
		if g.Eval(r) == 0 {
			roots = append(roots, r)
		}
	}
	return roots
}

func negate(f *GfPolynomial) *GfPolynomial {
	c := make([]uint64, len(f.coef))
	for i, v := range f.coef {
		if v != 0 {
			c[i] = f.p - v
		}
	}
	return &GfPolynomial{p: f.p, coef: trimGf(c)}
}

// primeDivisors returns every prime divisor of d.
func primeDivisors(d int) []int {
	var ps []int
	n := d
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			ps = append(ps, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		ps = append(ps, n)
	}
	return ps
}

// IsIrreducible reports whether f is irreducible over F_p: x^(p^d) ≡ x
// (mod f), and gcd(x^(p^(d/l)) - x, f) = 1 for every prime divisor l of
// d = deg(f).
func IsIrreducible(f *GfPolynomial) bool {
	d := f.Degree()
	if d <= 0 {
		return false
	}
	p := f.p

	xpd := xPowP(f, d)
	x := NewGfPolynomial(p, []uint64{0, 1})
	if !xpd.Add(negate(x)).IsZero() {
		return false
	}

	for _, l := range primeDivisors(d) {
		xp := xPowP(f, d/l)
		diff := xp.Add(negate(x))
		g := gcd(f, diff)
		if g.Degree() != 0 {
			return false
		}
	}
	return true
}
