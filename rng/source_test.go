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

package rng

import (
	"math/rand"
	"testing"
)

func TestSourceProducesNonNegativeValues(t *testing.T) {
	s := NewSource()
	for i := 0; i < 100; i++ {
		if v := s.Int63(); v < 0 {
			t.Fatalf("Int63() returned negative value %d", v)
		}
	}
}

func TestSourceFeedsRand(t *testing.T) {
	r := rand.New(NewSource())
	seen := make(map[int64]bool)
	for i := 0; i < 20; i++ {
		seen[r.Int63()] = true
	}
	if len(seen) < 15 {
		t.Fatalf("got only %d distinct values out of 20 draws, source looks degenerate", len(seen))
	}
}
