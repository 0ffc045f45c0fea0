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

package nt

import (
	"math/rand"
	"testing"
)

func genPrime(rng *rand.Rand) uint32 {
	for {
		p := rng.Uint32()
		if p > 2 && MillerRabin(p) {
			return p
		}
	}
}

func TestTonelliShanks(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		p := uint64(genPrime(rng))
		a := uint64(2 + rng.Int63n(int64(p-2)))
		for Legendre(a, p) != 1 {
			a = uint64(2 + rng.Int63n(int64(p-2)))
		}
		x := TonelliShanks(rng, a, p)
		if (x*x)%p != a {
			t.Fatalf("TonelliShanks(%d, %d) = %d, x^2 mod p = %d, want %d", a, p, x, (x*x)%p, a)
		}
	}
}

func TestModInverse(t *testing.T) {
	p := uint64(1000000007)
	for a := uint64(1); a < 200; a++ {
		inv := ModInverse(a, p)
		if (a*inv)%p != 1 {
			t.Fatalf("ModInverse(%d, %d) = %d is not an inverse", a, p, inv)
		}
	}
}

func TestMillerRabinKnownPrimes(t *testing.T) {
	primes := []uint32{2, 3, 5, 7, 11, 13, 104729, 982451653, 4294967291}
	for _, p := range primes {
		if !MillerRabin(p) {
			t.Fatalf("MillerRabin(%d) = false, want true", p)
		}
	}
}

func TestMillerRabinKnownComposites(t *testing.T) {
	composites := []uint32{1, 4, 6, 8, 9, 15, 341, 561, 4294967295}
	for _, c := range composites {
		if MillerRabin(c) {
			t.Fatalf("MillerRabin(%d) = true, want false", c)
		}
	}
}
