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

package sqrtalg

import (
	"math/rand"
	"testing"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/poly"
)

func TestRationalSqrtPerfectSquare(t *testing.T) {
	integers := []*bignum.Int{
		bignum.NewInt(4), bignum.NewInt(9), bignum.NewInt(16), bignum.NewInt(25),
	}
	// product = 14400 = 120^2
	root, err := RationalSqrt(integers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Int64() != 120 {
		t.Fatalf("sqrt(14400) = %v, want 120", root)
	}
}

func TestRationalSqrtRejectsNonSquare(t *testing.T) {
	integers := []*bignum.Int{bignum.NewInt(2), bignum.NewInt(3)}
	if _, err := RationalSqrt(integers); err == nil {
		t.Fatal("expected error for non-square product")
	}
}

func TestInvSqrtModP(t *testing.T) {
	p := uint64(5)
	// x^2 + 2 is irreducible mod 5 (-2 = 3 is a quadratic non-residue),
	// making GF(5)[x]/(f) a genuine field of size 25.
	f := poly.NewGfPolynomial(p, []uint64{2, 0, 1})

	// Build s as a known square in the field so invSqrtModP is guaranteed
	// to terminate: s = t^2 mod f for an arbitrary nonzero t.
	tElem := poly.NewGfPolynomial(p, []uint64{2, 1})
	s := tElem.MulMod(tElem, f)

	rng := rand.New(rand.NewSource(99))
	r, ok := invSqrtModP(s, f, rng)
	if !ok {
		t.Fatal("invSqrtModP did not converge within the retry budget")
	}

	got := r.MulMod(r, f).MulMod(s, f)
	if got.Degree() > 0 || got.Coef(0) != 1 {
		t.Fatalf("r^2 * s mod f = %v, want constant 1", got)
	}
}

func TestMulAlgebraicIntegersPair(t *testing.T) {
	f := poly.NewMpPolynomial([]*bignum.Int{
		bignum.NewInt(2), bignum.NewInt(0), bignum.NewInt(1),
	}) // x^2 + 2, modulus (not required monic for pseudo-division reduce)

	a := poly.NewMpPolynomial([]*bignum.Int{bignum.NewInt(3), bignum.NewInt(1)})
	b := poly.NewMpPolynomial([]*bignum.Int{bignum.NewInt(5), bignum.NewInt(2)})

	got := mulAlgebraicIntegers([]*poly.MpPolynomial{a, b}, f)
	want := a.MulModF(b, f)

	for i := 0; i < 2; i++ {
		if got.Coef(i).Cmp(want.Coef(i)) != 0 {
			t.Fatalf("coef %d: got %v want %v", i, got.Coef(i), want.Coef(i))
		}
	}
}

func TestMulAlgebraicIntegersSingle(t *testing.T) {
	f := poly.NewMpPolynomial([]*bignum.Int{bignum.NewInt(2), bignum.NewInt(0), bignum.NewInt(1)})
	a := poly.NewMpPolynomial([]*bignum.Int{bignum.NewInt(7), bignum.NewInt(1)})
	got := mulAlgebraicIntegers([]*poly.MpPolynomial{a}, f)
	if got.Coef(0).Cmp(a.Coef(0)) != 0 || got.Coef(1).Cmp(a.Coef(1)) != 0 {
		t.Fatalf("single-element product should be the element itself, got %v", got)
	}
}
