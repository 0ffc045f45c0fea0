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

import (
	"testing"

	"github.com/bfix/nfs/bignum"
)

func mpFromInts(vs ...int64) *MpPolynomial {
	c := make([]*bignum.Int, len(vs))
	for i, v := range vs {
		c[i] = bignum.NewInt(v)
	}
	return NewMpPolynomial(c)
}

func TestMpEval(t *testing.T) {
	f := mpFromInts(1, 2, 3) // 3x^2+2x+1
	if v := f.Eval(bignum.NewInt(2)); v.Int64() != 17 {
		t.Fatalf("f(2) = %v, want 17", v)
	}
}

func TestMpReduce(t *testing.T) {
	// x^3 mod (x^2+1) = x^3 - x*(x^2+1) = -x
	modulus := mpFromInts(1, 0, 1) // x^2+1
	f := mpFromInts(0, 0, 0, 1)    // x^3
	r := f.reduce(modulus)
	if r.Degree() != 1 || r.Coef(0).Int64() != 0 || r.Coef(1).Int64() != -1 {
		t.Fatalf("x^3 mod (x^2+1) = %v, want -x", r.coef)
	}
}

func TestMpDerivative(t *testing.T) {
	f := mpFromInts(5, 0, 3) // 3x^2+5
	d := f.Derivative()
	if d.Degree() != 1 || d.Coef(0).Int64() != 0 || d.Coef(1).Int64() != 6 {
		t.Fatalf("derivative = %v, want [0 6]", d.coef)
	}
}
