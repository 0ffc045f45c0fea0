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
//*    PGMID.        RATIONAL, ALGEBRAIC AND QUADRATIC-CHARACTER     */
//*                  FACTOR BASE CONSTRUCTION.                       */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//********************************************************************/

// Package sieve builds the three GNFS factor bases and runs line sieving
// over them, emitting GF(2) exponent-parity columns for every smooth pair
// (a, b) found.
package sieve

import (
	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/nt"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
)

// FactorBaseEntry is one element of a factor base: a rational prime p,
// together with either the residue m mod p (rational side), a root of f
// mod p (algebraic side, an ideal (p, r - theta)), or a root used to
// evaluate a quadratic character (quadratic-character side).
type FactorBaseEntry struct {
	P uint64
	R uint64
}

// RationalFactorBase returns the first RationalBaseSize rational primes,
// each paired with m mod p.
func RationalFactorBase(m *bignum.Int, p params.Params) []FactorBaseEntry {
	base := make([]FactorBaseEntry, 0, p.RationalBaseSize)
	mm := m
	for prime := uint64(2); len(base) < p.RationalBaseSize; prime++ {
		if prime <= 0xFFFFFFFF && nt.MillerRabin(uint32(prime)) {
			r := mm.Mod(bignum.NewInt(int64(prime))).Uint64()
			base = append(base, FactorBaseEntry{P: prime, R: r})
		}
	}
	return base
}

// AlgebraicFactorBase returns entries (p, r) for primes p with f having a
// root r mod p, i.e. the prime ideals (p, r - theta) of degree one, up to
// AlgebraicBaseSize entries.
func AlgebraicFactorBase(f *poly.MpPolynomial, p params.Params) []FactorBaseEntry {
	base := make([]FactorBaseEntry, 0, p.AlgebraicBaseSize)
	for prime := uint64(2); len(base) < p.AlgebraicBaseSize; prime++ {
		if prime <= 0xFFFFFFFF && nt.MillerRabin(uint32(prime)) {
			roots := poly.FindRootsModP(f.ReduceModP(prime))
			for _, r := range roots {
				base = append(base, FactorBaseEntry{P: prime, R: r})
			}
		}
	}
	if len(base) > p.AlgebraicBaseSize {
		base = base[:p.AlgebraicBaseSize]
	}
	return base
}

// QuadCharBase returns quadratic-character primes starting at startP: for
// each prime p with f having a root s mod p such that f'(s) is not
// divisible by p (s is a simple root), up to QuadCharBaseSize entries.
// These primes must lie above the largest algebraic factor-base prime so
// they can't appear as factors of any smooth norm.
func QuadCharBase(startP uint64, f *poly.MpPolynomial, p params.Params) []FactorBaseEntry {
	base := make([]FactorBaseEntry, 0, p.QuadCharBaseSize)
	fPrime := f.Derivative()
	for prime := startP; len(base) < p.QuadCharBaseSize; prime++ {
		if prime <= 0xFFFFFFFF && nt.MillerRabin(uint32(prime)) {
			roots := poly.FindRootsModP(f.ReduceModP(prime))
			for _, s := range roots {
				if fPrime.ReduceModP(prime).Eval(s) != 0 {
					base = append(base, FactorBaseEntry{P: prime, R: s})
				}
			}
		}
	}
	if len(base) > p.QuadCharBaseSize {
		base = base[:p.QuadCharBaseSize]
	}
	return base
}
