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
//*    PGMID.        MACHINE-WIDTH NUMBER THEORY PRIMITIVES.         */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      ModExp/Legendre/ModInverse/TonelliShanks and    */
//*                  deterministic Miller-Rabin on uint32/uint64.    */
//********************************************************************/

// Package nt provides the machine-width (not bignum.Int) number-theoretic
// primitives the sieve and square-root stages need on a per-prime basis:
// modular exponentiation, Legendre symbols, modular inverses, Tonelli-Shanks
// square roots and deterministic Miller-Rabin primality. Every routine that
// needs randomness takes an explicit *rand.Rand so callers can reproduce a
// run exactly.
package nt

import (
	"math/bits"
	"math/rand"
)

// ModExp computes a^b mod n using right-to-left square-and-multiply.
// Inputs must be small enough that a*a does not overflow uint64 under the
// modulus n, i.e. n <= 2^32-1.
func ModExp(a, b, n uint64) uint64 {
	c := uint64(1)
	a %= n
	for b != 0 {
		if b&1 == 1 {
			c = (c * a) % n
		}
		a = (a * a) % n
		b >>= 1
	}
	return c
}

// Legendre returns the Legendre symbol (a/p) for odd prime p, computed as
// a^((p-1)/2) mod p.
func Legendre(a, p uint64) uint64 {
	return ModExp(a, (p-1)>>1, p)
}

// ModInverse returns the multiplicative inverse of a modulo prime p, via
// Fermat's little theorem.
func ModInverse(a, p uint64) uint64 {
	return ModExp(a, p-2, p)
}

// TonelliShanks returns x such that x*x ≡ a (mod p). The caller must ensure
// Legendre(a, p) == 1 (a is a nonzero quadratic residue). rng supplies the
// randomness used to search for a quadratic non-residue.
func TonelliShanks(rng *rand.Rand, a, p uint64) uint64 {
	if p == 2 {
		if a != 1 {
			panic("nt: TonelliShanks: a must be 1 mod 2")
		}
		return 1
	}
	if Legendre(a, p) != 1 {
		panic("nt: TonelliShanks: a is not a quadratic residue mod p")
	}
	if p&3 == 3 {
		return ModExp(a, (p+1)>>2, p)
	}

	// find a quadratic non-residue b, uniformly at random (≈2 trials expected)
	var b uint64
	for {
		b = 2 + uint64(rng.Int63n(int64(p-2)))
		if Legendre(b, p) != 1 {
			break
		}
	}

	// loop invariant: c = b^(2^(k-2)); k starts at 2 since p ≡ 1 (mod 4)
	m := (p - 1) >> 2
	correction := uint64(1)
	c := b
	cinv := ModInverse(b, p)

	for {
		if ModExp(a, m, p) != 1 {
			a = (a * ((c * c) % p)) % p
			correction = (correction * cinv) % p
		}
		if m&1 == 1 {
			break
		}
		m >>= 1
		c = (c * c) % p
		cinv = (cinv * cinv) % p
	}
	return (ModExp(a, (m+1)>>1, p) * correction) % p
}

// millerRabinBases are the deterministic witnesses sufficient to prove
// primality for every n < 2^32 (reduced mod n before use; a base that
// reduces to 0 is skipped).
var millerRabinBases = [3]uint64{15, 7363882082, 992620450144556}

// MillerRabin reports whether n is prime, deterministically for all
// n < 2^32.
func MillerRabin(n uint32) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n&1 == 0 {
		return false
	}
	n64 := uint64(n)
	trailingZeros := bits.TrailingZeros32(n - 1)
	u := uint64(n-1) >> uint(trailingZeros)

	for _, base := range millerRabinBases {
		a := base % n64
		if a == 0 {
			continue
		}
		x := ModExp(a, u, n64)
		for i := 0; i < trailingZeros; i++ {
			y := (x * x) % n64
			if y == 1 && x != 1 && x != n64-1 {
				return false
			}
			x = y
		}
		if x != 1 {
			return false
		}
	}
	return true
}
