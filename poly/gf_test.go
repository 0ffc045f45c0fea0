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

import "testing"

func TestGfEvalRoots(t *testing.T) {
	// f(x) = (x-2)(x-3) = x^2 - 5x + 6, mod 11
	p := uint64(11)
	f := NewGfPolynomial(p, []uint64{6, p - 5, 1})
	roots := FindRootsModP(f)
	if len(roots) != 2 || roots[0] != 2 || roots[1] != 3 {
		t.Fatalf("FindRootsModP = %v, want [2 3]", roots)
	}
	for _, r := range roots {
		if f.Eval(r) != 0 {
			t.Fatalf("f(%d) != 0", r)
		}
	}
}

func TestGfDivMod(t *testing.T) {
	p := uint64(13)
	f := NewGfPolynomial(p, []uint64{1, 0, 1, 1}) // x^3 + x^2 + 1
	g := NewGfPolynomial(p, []uint64{1, 1})       // x + 1
	q, r := f.DivMod(g)
	// verify f = q*g + r
	prod := q.mulPlain(g).Add(r)
	for i := 0; i <= f.Degree(); i++ {
		if prod.Coef(i) != f.Coef(i) {
			t.Fatalf("q*g+r != f at coef %d: got %d want %d", i, prod.Coef(i), f.Coef(i))
		}
	}
}

func TestIsIrreducible(t *testing.T) {
	p := uint64(5)
	// x^2 + 2 is irreducible mod 5 (no root: 0,1,4,4,1 + 2 = 2,3,1,1,3, never 0)
	f := NewGfPolynomial(p, []uint64{2, 0, 1})
	if !IsIrreducible(f) {
		t.Fatal("x^2+2 should be irreducible mod 5")
	}
	// x^2 - 1 = (x-1)(x+1) is reducible
	g := NewGfPolynomial(p, []uint64{p - 1, 0, 1})
	if IsIrreducible(g) {
		t.Fatal("x^2-1 should be reducible mod 5")
	}
}

func TestDerivative(t *testing.T) {
	p := uint64(97)
	f := NewGfPolynomial(p, []uint64{1, 2, 3}) // 3x^2+2x+1
	d := f.Derivative()
	if d.Degree() != 1 || d.Coef(0) != 2 || d.Coef(1) != 6 {
		t.Fatalf("derivative = %v, want [2 6]", d.coef)
	}
}
