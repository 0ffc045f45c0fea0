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

package polyselect

import (
	"testing"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/params"
)

func TestSelect(t *testing.T) {
	n := bignum.NewIntFromString("100000007998244353")
	p := params.New(n)
	f, m := Select(n, p)

	if f.Degree() != p.PolynomialDegree {
		t.Fatalf("deg f = %d, want %d", f.Degree(), p.PolynomialDegree)
	}
	if !f.Eval(m).Equals(n) {
		t.Fatalf("f(m) = %v, want %v", f.Eval(m), n)
	}
	if f.Coef(f.Degree()).Sign() == 0 {
		t.Fatal("leading coefficient is zero")
	}
}
