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
//*    PGMID.        GENERAL NUMBER FIELD SIEVE ALGORITHM.           */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Last-resort stage for inputs too large for the  */
//*                  simpler algorithms above.                       */
//********************************************************************/

package factorizer

import (
	mrand "math/rand"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/gnfs"
	"github.com/bfix/nfs/rng"
)

// GeneralNumberFieldSieve runs the general number field sieve.
type GeneralNumberFieldSieve struct{}

// Find a factor of n using the general number field sieve.
// @param n - number to be factorized
// @return - factor of n (or nil)
func (f *GeneralNumberFieldSieve) GetFactor(n *bignum.Int) *bignum.Int {
	r := mrand.New(rng.NewSource())
	factors := gnfs.Factorize(n, r)
	if len(factors) == 0 {
		return nil
	}
	return factors[0]
}
