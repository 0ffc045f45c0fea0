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
//*    PGMID.        LINE SIEVING AND RELATION DETECTION.            */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Per-line log-approximate sieving over both the  */
//*                  rational and algebraic sides, followed by exact */
//*                  trial division of survivors.                    */
//********************************************************************/

package sieve

import (
	"math/bits"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/nt"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
)

// Relation is a smooth pair (a, b) found by sieving, with a coprime to b.
type Relation struct {
	A int64
	B uint64
}

// baseOffsets locates where each factor-base section starts in the
// relation matrix's row indexing: row 0 is the sign bit, followed by the
// rational primes, the algebraic ideals and finally the quadratic
// characters.
type baseOffsets struct {
	rationalBegin  int
	algebraicBegin int
	quadCharBegin  int
}

// ilog2Rounded approximates log2(p) rounded to the nearest integer, via
// floor(log2(p^2))+1, halved; used as the fixed-point logarithm added to
// the sieve array for each factor-base prime p.
func ilog2Rounded(x uint64) int32 {
	if x == 0 {
		return 0
	}
	sq := x * x
	return (int32(bits.Len64(sq)-1) + 1) >> 1
}

// lineSieve adds log2(p) to every position in arr congruent to the root
// of (a + b*r) == 0 mod p, for every (p, r) in base, skipping primes that
// divide b (b's own factors can't appear in a coprime pair).
func lineSieve(b uint64, arr []int8, base []FactorBaseEntry) {
	s := int64(len(arr))
	a0 := -(s / 2)

	for _, e := range base {
		p, r := e.P, e.R
		if b%p != 0 {
			log2p := int8(ilog2Rounded(p))
			numerator := -int64((b*r)%p) + int64(p) - a0
			i := numerator % int64(p)
			for i < s {
				arr[i] += log2p
				i += int64(p)
			}
		}
	}
}

// norm evaluates (-b)^d * f(-a/b), the norm of a + b*theta and the
// algebraic side's analogue of a + b*m.
func norm(f *poly.MpPolynomial, a int64, b uint64) *bignum.Int {
	d := f.Degree()
	negB := bignum.NewInt(int64(b)).Neg()

	u := bignum.ONE
	v := negB.Pow(int64(d))
	result := bignum.ZERO

	for i := 0; i <= d; i++ {
		result = result.Add(f.Coef(i).Mul(u.Mul(v)))
		u = u.Mul(bignum.NewInt(a))
		if i < d {
			v = v.Div(negB)
		}
	}
	return result
}

func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// sieveLine runs the rational and algebraic sieves for a single line b,
// trial-divides every survivor, and returns the exponent-parity columns
// and (a, b) pairs of every smooth relation found.
func sieveLine(n, m *bignum.Int, f *poly.MpPolynomial, p params.Params,
	rational, algebraic, quadChar []FactorBaseEntry, off baseOffsets, b uint64) ([][]int, []Relation) {

	size := p.SieveArraySize
	rationalArr := make([]int8, size)
	algebraicArr := make([]int8, size)

	sum := int32(ilog2Rounded(b)) + int32(m.BitLen())
	fillVal := int8(-sum) + p.RationalFudge
	for i := range rationalArr {
		rationalArr[i] = fillVal
	}
	lineSieve(b, rationalArr, rational)

	for i := range algebraicArr {
		algebraicArr[i] = -p.AlgebraicThreshold
	}
	lineSieve(b, algebraicArr, algebraic)

	a0 := -(int64(size) / 2)
	var cols [][]int
	var rels []Relation

	bBig := bignum.NewInt(int64(b))
	bSigned := int64(b)

	for i := 0; i < size; i++ {
		if rationalArr[i] < 0 || algebraicArr[i] < 0 {
			continue
		}
		a := a0 + int64(i)
		if a == 0 {
			continue
		}
		amodb := uint64(((a % bSigned) + bSigned) % bSigned)
		if gcdUint64(amodb, b) != 1 {
			continue
		}

		var onesPos []int

		num := bignum.NewInt(a).Add(bBig.Mul(m))
		if num.Sign() < 0 {
			onesPos = append(onesPos, 0)
			num = num.Neg()
		}
		for idx, e := range rational {
			pp := bignum.NewInt(int64(e.P))
			exp := 0
			for num.Mod(pp).Equals(bignum.ZERO) {
				num = num.Div(pp)
				exp++
			}
			if exp&1 == 1 {
				onesPos = append(onesPos, off.rationalBegin+idx)
			}
		}

		algNorm := norm(f, a, b)
		if algNorm.Sign() < 0 {
			algNorm = algNorm.Neg()
		}
		for idx, e := range algebraic {
			if (a+bSigned*int64(e.R))%int64(e.P) == 0 {
				pp := bignum.NewInt(int64(e.P))
				exp := 0
				for algNorm.Mod(pp).Equals(bignum.ZERO) {
					algNorm = algNorm.Div(pp)
					exp++
				}
				if exp&1 == 1 {
					onesPos = append(onesPos, off.algebraicBegin+idx)
				}
			}
		}

		if num.Equals(bignum.ONE) && algNorm.Equals(bignum.ONE) {
			for idx, e := range quadChar {
				val := ((a+bSigned*int64(e.R))%int64(e.P) + int64(e.P)) % int64(e.P)
				if nt.Legendre(uint64(val), e.P) == e.P-1 {
					onesPos = append(onesPos, off.quadCharBegin+idx)
				}
			}
			cols = append(cols, onesPos)
			rels = append(rels, Relation{A: a, B: b})
		}
	}
	return cols, rels
}
