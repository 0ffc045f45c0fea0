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

package lanczos

import (
	"math/rand"
	"testing"

	"github.com/bfix/nfs/linalg"
)

func TestInvert64RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	// Build an invertible matrix by starting from the identity and
	// applying random row-additions (which preserve invertibility).
	m := identity64()
	for i := 0; i < 200; i++ {
		r1, r2 := rng.Intn(linalg.N), rng.Intn(linalg.N)
		if r1 != r2 {
			m[r1] ^= m[r2]
		}
	}
	inv, ok := invert64(m)
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	prod := matMul64(m, inv)
	if !isZero(xorBlocks(prod, identity64())) {
		t.Fatalf("M * M^-1 != I, got %v", prod)
	}
}

func TestFindDependenciesKernelVectors(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// A small oversquare random matrix: more columns than rows, so a
	// nontrivial kernel is all but guaranteed.
	a := linalg.NewRandomCscMatrix(rng, 90, 70, 5)

	m, k := FindDependencies(a, rng)
	if k == 0 {
		t.Skip("no dependencies found for this random seed/matrix shape")
	}
	prod := a.Mul(m)
	for bit := 0; bit < k; bit++ {
		for _, row := range prod {
			if (row>>uint(bit))&1 != 0 {
				t.Fatalf("column %d is not in the kernel of A", bit)
			}
		}
	}
}
