package main

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
	"fmt"
	"os"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/factorizer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: nfs <integer>")
		os.Exit(1)
	}
	n := bignum.NewIntFromString(os.Args[1])

	fac := factorizer.NewFactorizer(
		factorizer.POLLARD_RHO,
		factorizer.POLLARD_PMINUS1,
		factorizer.WILLIAM_PPLUS1,
		factorizer.LENSTRA_ECM,
		factorizer.QUADRATIC_SIEVE,
		factorizer.SIQS_PARALLEL,
		factorizer.GNFS,
	)
	factors := fac.Decompose(n)

	fmt.Printf("%s =", n.String())
	for i, p := range factors {
		if i > 0 {
			fmt.Print(" *")
		}
		fmt.Printf(" %s", p.String())
	}
	fmt.Println()
}
