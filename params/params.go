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

// Package params derives the tuning knobs of a GNFS run (polynomial degree,
// factor base sizes, sieve array size, oversquareness) from the bit length
// of the number being factored.
package params

import "github.com/bfix/nfs/bignum"

// Params holds every tuning knob the GNFS pipeline needs, derived once from
// N's bit length and held immutable for the rest of the run.
type Params struct {
	PolynomialDegree   int // degree d of the selection polynomial
	RationalBaseSize   int // Br
	AlgebraicBaseSize  int // Ba
	QuadCharBaseSize   int // Bq
	SieveArraySize     int // S (kept even)
	RationalFudge      int8
	AlgebraicThreshold int8
	Oversquareness     int // extra relations beyond Br+Ba+Bq+1
}

// New derives Params from N's bit length using simple step functions in the
// style of classical GNFS parameter tables; this implementation favors
// correctness and simplicity over optimal running time.
func New(n *bignum.Int) Params {
	bits := n.BitLen()

	var d int
	switch {
	case bits < 120:
		d = 3
	case bits < 200:
		d = 4
	case bits < 280:
		d = 5
	default:
		d = 6
	}

	// base sizes scale roughly with bits^2, matching the quadratic-sieve
	// factor-base heuristic (fbSize = bits^2/10) the cascading factorizer
	// already uses, widened a little since GNFS relations are sparser.
	br := bits*bits/8 + 50
	ba := bits*bits/6 + 80
	bq := 20 + bits/10

	s := 1 << 14
	for s < 8*(br+ba) {
		s <<= 1
	}

	return Params{
		PolynomialDegree:   d,
		RationalBaseSize:   br,
		AlgebraicBaseSize:  ba,
		QuadCharBaseSize:   bq,
		SieveArraySize:     s,
		RationalFudge:      10,
		AlgebraicThreshold: 10,
		Oversquareness:     30,
	}
}

// BaseLength returns R = 1 + Br + Ba + Bq, the row count of the relation
// matrix (sign bit, rational primes, algebraic ideals, quadratic characters).
func (p Params) BaseLength() int {
	return 1 + p.RationalBaseSize + p.AlgebraicBaseSize + p.QuadCharBaseSize
}
