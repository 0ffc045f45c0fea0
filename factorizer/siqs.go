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
//*    PGMID.        PARALLEL SELF-INITIALIZING QUADRATIC SIEVE.     */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Stage between the single-threaded quadratic    */
//*                  sieve and GNFS; worth trying on inputs too      */
//*                  large for qs but not yet worth a full GNFS run. */
//********************************************************************/

package factorizer

import (
	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/factorizer/siqs"
)

// ParallelQuadraticSieve runs the self-initializing quadratic sieve with
// concurrent siever and solver instances.
type ParallelQuadraticSieve struct{}

// Find a factor of n using the parallel self-initializing quadratic sieve.
// @param n - number to be factorized
// @return - factor of n (or nil)
func (f *ParallelQuadraticSieve) GetFactor(n *bignum.Int) *bignum.Int {
	d := new(siqs.Director)
	factor := d.Factorize(n)
	if factor == nil || factor.Equals(bignum.ONE) || factor.Equals(n) {
		return nil
	}
	return factor
}
