package bignum

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

import (
	"testing"
)

func TestIntBytes(t *testing.T) {
	c := TWO.Pow(256)
	for i := 0; i < 1000; i++ {
		a := NewIntRnd(c)
		b := NewIntFromBytes(a.Bytes())
		if !a.Equals(b) {
			t.Fatal("Bytes()/NewIntFromBytes() failed")
		}
	}
}

func TestGCD(t *testing.T) {
	m := NewInt(1000000000000000000)
	for i := 0; i < 10; i++ {
		a := NewIntRnd(m).Add(ONE)
		b := NewIntRnd(a).Add(ONE)
		g := a.GCD(b)
		if !a.Mod(g).Equals(ZERO) || !b.Mod(g).Equals(ZERO) {
			t.Fatalf("GCD(%v, %v) = %v does not divide both", a, b, g)
		}
	}
}

func TestSqrt(t *testing.T) {
	for i := int64(0); i < 2000; i++ {
		n := NewInt(i * i)
		if !n.IsSquare() {
			t.Fatalf("IsSquare(%d) should be true", i*i)
		}
		if r := n.Sqrt(); r.Int64() != i {
			t.Fatalf("Sqrt(%d) = %d, want %d", i*i, r.Int64(), i)
		}
	}
	if NewInt(15).IsSquare() {
		t.Fatal("15 is not a perfect square")
	}
}

func TestNextProbablePrime(t *testing.T) {
	p := NewInt(100).NextProbablePrime(30)
	if p.Int64() != 101 {
		t.Fatalf("NextProbablePrime(100) = %v, want 101", p)
	}
	q := NewInt(7).NextProbablePrime(30)
	if q.Int64() != 11 {
		t.Fatalf("NextProbablePrime(7) = %v, want 11", q)
	}
}

func TestModInverse(t *testing.T) {
	p := NewInt(1000000007)
	for i := int64(1); i < 100; i++ {
		a := NewInt(i)
		inv := a.ModInverse(p)
		if !a.Mul(inv).Mod(p).Equals(ONE) {
			t.Fatalf("ModInverse(%d) failed", i)
		}
	}
}

func TestNthRoot(t *testing.T) {
	for i := int64(2); i < 500; i++ {
		v := NewInt(i)
		cube := v.Pow(3)
		if r := cube.NthRoot(3, false); r.Int64() != i {
			t.Fatalf("NthRoot(%d^3, 3) = %v, want %d", i, r, i)
		}
	}
	v := NewInt(10)
	if r := v.NthRoot(3, false); r.Int64() != 2 {
		t.Fatalf("NthRoot(10, 3) floor = %v, want 2", r)
	}
	if r := v.NthRoot(3, true); r.Int64() != 3 {
		t.Fatalf("NthRoot(10, 3) ceil = %v, want 3", r)
	}
}

func TestLegendreAndSqrtModP(t *testing.T) {
	p := NewInt(10007)
	for i := int64(1); i < 50; i++ {
		a := NewInt(i)
		if a.Legendre(p) != 1 {
			continue
		}
		r, err := SqrtModP(a, p)
		if err != nil {
			t.Fatalf("SqrtModP(%d) unexpected error: %v", i, err)
		}
		if !r.Mul(r).Mod(p).Equals(a) {
			t.Fatalf("SqrtModP(%d)^2 != %d (mod p)", i, i)
		}
	}
}
