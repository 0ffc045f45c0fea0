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

package linalg

import (
	"math/rand"
	"testing"
)

// denseFromCsc materializes a CscMatrix as an explicit bit matrix, for
// cross-checking sparse products against a naive dense computation.
func denseFromCsc(m *CscMatrix) [][]bool {
	rows := make([][]bool, m.numRows)
	for i := range rows {
		rows[i] = make([]bool, m.NumCols())
	}
	for i := 0; i < m.NumCols(); i++ {
		start, stop := m.colRange(i)
		for _, r := range m.ones[start:stop] {
			rows[r][i] = true
		}
	}
	return rows
}

func TestCscMulMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewRandomCscMatrix(rng, 20, 12, 4)
	b := NewRandomBlockMatrix(rng, 20)

	got := m.Mul(b)
	dense := denseFromCsc(m)
	for r := 0; r < 12; r++ {
		var want uint64
		for c := 0; c < 20; c++ {
			if dense[r][c] {
				want ^= b[c]
			}
		}
		if got[r] != want {
			t.Fatalf("row %d: got %x want %x", r, got[r], want)
		}
	}
}

func TestCscTransposeMulMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m := NewRandomCscMatrix(rng, 20, 12, 4)
	b := NewRandomBlockMatrix(rng, 12)

	got := m.Transpose().Mul(b)
	dense := denseFromCsc(m)
	for c := 0; c < 20; c++ {
		var want uint64
		for r := 0; r < 12; r++ {
			if dense[r][c] {
				want ^= b[r]
			}
		}
		if got[c] != want {
			t.Fatalf("col %d: got %x want %x", c, got[c], want)
		}
	}
}

func TestBlockMatrixIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewRandomBlockMatrix(rng, N)
	sym := a.MulT(a.Transpose())
	if !sym.IsSymmetric() {
		t.Fatal("A * A^T should be symmetric")
	}
}

func TestBlockMulRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	a := NewRandomBlockMatrix(rng, 30)
	b := NewRandomBlockMatrix(rng, N)

	prod := a.Mul(b)
	for i, row := range a {
		var want uint64
		x := row
		k := uint(0)
		for x != 0 {
			if x&1 != 0 {
				want ^= b[k]
			}
			x >>= 1
			k++
		}
		if prod[i] != want {
			t.Fatalf("row %d: got %x want %x", i, prod[i], want)
		}
	}
}

func TestExplicitTransposeConsistentWithView(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := NewRandomBlockMatrix(rng, N)
	explicit := a.ExplicitTranspose()
	for j := 0; j < N; j++ {
		for i := 0; i < len(a); i++ {
			bit := (a[i] >> uint(j)) & 1
			wantWord := explicit[j][i/N]
			got := (wantWord >> uint(i&(N-1))) & 1
			if got != bit {
				t.Fatalf("bit (%d,%d): got %d want %d", i, j, got, bit)
			}
		}
	}
}

func TestTransposeMulIsAdjoint(t *testing.T) {
	// For square N x N a, b: (a^T * b) read as rows should match summing b's
	// rows selected by a's columns; verify against BlockMatrixTranspose.Mul.
	rng := rand.New(rand.NewSource(6))
	a := NewRandomBlockMatrix(rng, N)
	b := NewRandomBlockMatrix(rng, N)

	at := a.Transpose()
	res := at.Mul(b)
	if len(res) != N {
		t.Fatalf("result should have N rows, got %d", len(res))
	}
	for k := 0; k < N; k++ {
		var want uint64
		for i := 0; i < N; i++ {
			if (a[i]>>uint(k))&1 != 0 {
				want ^= b[i]
			}
		}
		if res[k] != want {
			t.Fatalf("row %d: got %x want %x", k, res[k], want)
		}
	}
}
