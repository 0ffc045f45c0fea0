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
//*    PGMID.        BASE-M POLYNOMIAL SELECTION.                    */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Classical base-m method: f is N written in      */
//*                  base m, for m the integer d-th root of N.       */
//********************************************************************/

// Package polyselect picks the GNFS selection polynomial f and the integer
// m with f(m) ≡ 0 (mod N), via the classical base-m method.
package polyselect

import (
	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
)

// Select returns (f, m) with f(m) ≡ 0 (mod N) and deg f = p.PolynomialDegree,
// via the classical base-m method: f's coefficients are N's digits in base
// m, for m the largest integer not above ceil(N^(1/d)) whose leading
// base-m digit is nonzero (floor(N^(1/d)) unless N is a d-th power). This
// does not guarantee f is irreducible over Z in general (a production
// selector would check and retry); it satisfies the f(m) ≡ 0 contract
// exactly, which is enough to drive the rest of the pipeline end to end.
func Select(n *bignum.Int, p params.Params) (*poly.MpPolynomial, *bignum.Int) {
	d := p.PolynomialDegree
	m := nthRootCeil(n, d)

	for {
		f := digitsBaseM(n, m, d)
		if f.Coef(d).Sign() != 0 && f.Eval(m).Mod(n).Equals(bignum.ZERO) {
			return f, m
		}
		// The leading digit vanished: the rounded-up root gives m^d > N
		// unless N is a d-th power. Lower m and retry.
		m = m.Sub(bignum.ONE)
	}
}

// nthRootCeil returns ceil(n^(1/d)).
func nthRootCeil(n *bignum.Int, d int) *bignum.Int {
	return n.NthRoot(d, true)
}

// digitsBaseM writes n in base m, returning the digits as polynomial
// coefficients c_0 + c_1*m + ... + c_d*m^d = n, each 0 <= c_i < m.
func digitsBaseM(n, m *bignum.Int, d int) *poly.MpPolynomial {
	coef := make([]*bignum.Int, d+1)
	rem := n
	for i := 0; i < d; i++ {
		q, r := rem.DivMod(m)
		coef[i] = r
		rem = q
	}
	coef[d] = rem
	return poly.NewMpPolynomial(coef)
}
