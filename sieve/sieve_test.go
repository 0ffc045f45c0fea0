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

package sieve

import (
	"testing"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/nt"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
)

func toyParams() params.Params {
	return params.Params{
		PolynomialDegree:   3,
		RationalBaseSize:   10,
		AlgebraicBaseSize:  10,
		QuadCharBaseSize:   4,
		SieveArraySize:     64,
		RationalFudge:      10,
		AlgebraicThreshold: 10,
		Oversquareness:     5,
	}
}

func TestRationalFactorBase(t *testing.T) {
	p := toyParams()
	m := bignum.NewInt(123)
	base := RationalFactorBase(m, p)
	if len(base) != p.RationalBaseSize {
		t.Fatalf("got %d entries, want %d", len(base), p.RationalBaseSize)
	}
	for _, e := range base {
		if !nt.MillerRabin(uint32(e.P)) {
			t.Fatalf("%d is not prime", e.P)
		}
		if e.R != m.Mod(bignum.NewInt(int64(e.P))).Uint64() {
			t.Fatalf("residue for p=%d wrong: got %d", e.P, e.R)
		}
	}
}

func TestAlgebraicFactorBaseRootsAreRoots(t *testing.T) {
	p := toyParams()
	// f(x) = x^3 - 2
	f := poly.NewMpPolynomial([]*bignum.Int{
		bignum.NewInt(-2), bignum.NewInt(0), bignum.NewInt(0), bignum.NewInt(1),
	})
	base := AlgebraicFactorBase(f, p)
	if len(base) != p.AlgebraicBaseSize {
		t.Fatalf("got %d entries, want %d", len(base), p.AlgebraicBaseSize)
	}
	for _, e := range base {
		gf := f.ReduceModP(e.P)
		if gf.Eval(e.R) != 0 {
			t.Fatalf("root %d is not a root of f mod %d", e.R, e.P)
		}
	}
}

func TestQuadCharBaseSimpleRoots(t *testing.T) {
	p := toyParams()
	f := poly.NewMpPolynomial([]*bignum.Int{
		bignum.NewInt(-2), bignum.NewInt(0), bignum.NewInt(0), bignum.NewInt(1),
	})
	alg := AlgebraicFactorBase(f, p)
	start := alg[len(alg)-1].P + 1
	base := QuadCharBase(start, f, p)
	if len(base) != p.QuadCharBaseSize {
		t.Fatalf("got %d entries, want %d", len(base), p.QuadCharBaseSize)
	}
	fPrime := f.Derivative()
	for _, e := range base {
		if e.P < start {
			t.Fatalf("quad char prime %d below start %d", e.P, start)
		}
		if fPrime.ReduceModP(e.P).Eval(e.R) == 0 {
			t.Fatalf("root %d of prime %d is not simple", e.R, e.P)
		}
	}
}

func TestNormMatchesDirectEvaluation(t *testing.T) {
	// f(x) = x^2 + 3x + 1, a=5, b=2: norm = (-b)^2 * f(-a/b) = 4*(6.25-7.5+1) -- compute via integer form:
	// homogeneous form: a^2 - 3ab + b^2 = 25-30+4 = -1
	f := poly.NewMpPolynomial([]*bignum.Int{bignum.NewInt(1), bignum.NewInt(3), bignum.NewInt(1)})
	got := norm(f, 5, 2)
	if got.Int64() != -1 {
		t.Fatalf("norm = %v, want -1", got)
	}
}

func TestIlog2Rounded(t *testing.T) {
	if ilog2Rounded(0) != 0 {
		t.Fatal("ilog2Rounded(0) should be 0")
	}
	// for p=2: p*p=4, floor(log2(4))=2, (2+1)>>1 = 1
	if v := ilog2Rounded(2); v != 1 {
		t.Fatalf("ilog2Rounded(2) = %d, want 1", v)
	}
}

func TestGcdUint64(t *testing.T) {
	if g := gcdUint64(12, 18); g != 6 {
		t.Fatalf("gcd(12,18) = %d, want 6", g)
	}
	if g := gcdUint64(7, 13); g != 1 {
		t.Fatalf("gcd(7,13) = %d, want 1", g)
	}
}
