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

package params

import "github.com/bfix/nfs/bignum"

// CascadeParams holds the tuning knobs for the pre-GNFS cascade stages
// (Pollard's rho, Pollard's p-1, Williams' p+1, the two quadratic sieve
// variants), scaled to N's bit length rather than fixed at whatever
// worked for the factorizer's original test inputs.
type CascadeParams struct {
	RhoRetries     int   // distinct pseudo-random sequences to try
	RhoLoopLimit   int   // Floyd cycle-detection steps per sequence
	Pminus1Retries int   // coprime bases to try
	Pminus1Bound   int64 // smoothness bound B for the p-1 step
	Pplus1MaxBase  int   // base values A to try
	Pplus1MaxStep  int   // sequence steps per base
	QsIntervalSize int   // sieve interval width per pass (single-threaded qs)
	SiqsSievers    int   // concurrent siever instances (parallel siqs)
	SiqsSolvers    int   // concurrent solver instances (parallel siqs)
}

// Cascade derives CascadeParams from N's bit length. The smallest prime
// factor a Pollard/Williams-style method can realistically recover within
// a bounded budget grows with N, so their retry counts and bounds grow
// with it too, and the parallel sieve variants get more workers so they
// can still turn around results on larger inputs in reasonable wall time.
func Cascade(n *bignum.Int) CascadeParams {
	bits := n.BitLen()

	sievers := 4 + bits/16
	solvers := 2 + bits/32

	return CascadeParams{
		RhoRetries:     100,
		RhoLoopLimit:   1024 * bits,
		Pminus1Retries: 100,
		Pminus1Bound:   int64(1000 * bits),
		Pplus1MaxBase:  100 * bits,
		Pplus1MaxStep:  100,
		QsIntervalSize: 10000 * bits,
		SiqsSievers:    sievers,
		SiqsSolvers:    solvers,
	}
}
