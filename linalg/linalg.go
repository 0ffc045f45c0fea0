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
//*    PGMID.        BINARY LINEAR ALGEBRA OVER GF(2).               */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Column-sparse relation matrix and dense 64-wide */
//*                  "block" matrices, with the product orientations */
//*                  the Block Lanczos solver needs.                 */
//********************************************************************/

// Package linalg implements GF(2) linear algebra for the relation matrix:
// a column-sparse matrix (one column per relation, one row per factor-base
// element), and dense 64-column "block" matrices used by Block Lanczos.
// XOR is addition and AND is multiplication in GF(2); every product below
// is exact.
package linalg

import "math/rand"

// N is the width, in bits, of a BlockMatrix row and the fixed column count
// of every dense block used by the Lanczos solver.
const N = 64

// CscMatrix is a column-major sparse GF(2) matrix. For column i, the row
// indices of its ones occupy ones[end[i-1]:end[i]] (end[-1] == 0).
type CscMatrix struct {
	numRows int
	end     []int
	ones    []int
}

// NewCscMatrix builds a CscMatrix directly from its column-end offsets and
// row-index array, as produced by a CscMatrixBuilder.
func NewCscMatrix(numRows int, end, ones []int) *CscMatrix {
	return &CscMatrix{numRows: numRows, end: end, ones: ones}
}

// NewRandomCscMatrix builds a CscMatrix with numCols columns over numRows
// rows, each column given a random weight in [1, maxOnes] of distinct rows;
// useful for exercising the solver without a real sieve run.
func NewRandomCscMatrix(rng *rand.Rand, numCols, numRows, maxOnes int) *CscMatrix {
	end := make([]int, 0, numCols)
	ones := make([]int, 0, numCols*maxOnes)
	used := make([]bool, numRows)

	for c := 0; c < numCols; c++ {
		weight := 1 + rng.Intn(maxOnes)
		start := len(ones)
		for k := 0; k < weight; k++ {
			x := rng.Intn(numRows)
			for used[x] {
				x = rng.Intn(numRows)
			}
			ones = append(ones, x)
			used[x] = true
		}
		end = append(end, len(ones))
		for _, r := range ones[start:] {
			used[r] = false
		}
	}
	return &CscMatrix{numRows: numRows, end: end, ones: ones}
}

// NumCols returns the number of columns (relations).
func (m *CscMatrix) NumCols() int { return len(m.end) }

// NumRows returns the number of rows (factor-base elements).
func (m *CscMatrix) NumRows() int { return m.numRows }

// Transpose returns a lightweight view of mᵀ, valid only as the left
// operand of Mul alongside a BlockMatrix.
func (m *CscMatrix) Transpose() *CscMatrixTranspose {
	return &CscMatrixTranspose{m: m}
}

// colRange returns the half-open [start, end) slice of m.ones for column i.
func (m *CscMatrix) colRange(i int) (int, int) {
	start := 0
	if i > 0 {
		start = m.end[i-1]
	}
	return start, m.end[i]
}

// Mul computes m · b, an numRows(m)-row BlockMatrix: for each column i of m
// and each one at row r, res[r] is xored with b's i-th row.
func (m *CscMatrix) Mul(b BlockMatrix) BlockMatrix {
	if m.NumCols() != len(b) {
		panic("linalg: CscMatrix.Mul: dimension mismatch")
	}
	res := make(BlockMatrix, m.numRows)
	for i := 0; i < m.NumCols(); i++ {
		start, stop := m.colRange(i)
		for _, r := range m.ones[start:stop] {
			res[r] ^= b[i]
		}
	}
	return res
}

// CscMatrixTranspose is a view of a CscMatrix's transpose, usable only as
// the left operand of Mul.
type CscMatrixTranspose struct {
	m *CscMatrix
}

// Mul computes mᵀ · b, a NumCols(m)-row BlockMatrix: for each column i of m
// and each one at row r, res[i] is xored with b's r-th row.
func (t *CscMatrixTranspose) Mul(b BlockMatrix) BlockMatrix {
	if t.m.numRows != len(b) {
		panic("linalg: CscMatrixTranspose.Mul: dimension mismatch")
	}
	res := make(BlockMatrix, t.m.NumCols())
	for i := 0; i < t.m.NumCols(); i++ {
		start, stop := t.m.colRange(i)
		for _, r := range t.m.ones[start:stop] {
			res[i] ^= b[r]
		}
	}
	return res
}

// CscMatrixBuilder accumulates columns one at a time (e.g. one per relation
// found during sieving) before materializing a CscMatrix.
type CscMatrixBuilder struct {
	numRows int
	end     []int
	ones    []int
}

// NewCscMatrixBuilder returns an empty builder.
func NewCscMatrixBuilder() *CscMatrixBuilder {
	return &CscMatrixBuilder{}
}

// SetNumRows fixes the row count (the factor-base length) of the matrix
// under construction.
func (b *CscMatrixBuilder) SetNumRows(numRows int) {
	b.numRows = numRows
}

// AddCol appends a column whose ones sit at the given row indices.
func (b *CscMatrixBuilder) AddCol(onesPos []int) {
	b.ones = append(b.ones, onesPos...)
	b.end = append(b.end, len(b.ones))
}

// NumCols reports how many columns have been added so far.
func (b *CscMatrixBuilder) NumCols() int { return len(b.end) }

// Build finalizes the builder into a CscMatrix.
func (b *CscMatrixBuilder) Build() *CscMatrix {
	return &CscMatrix{numRows: b.numRows, end: b.end, ones: b.ones}
}

// BlockMatrix is a dense GF(2) matrix stored one N-bit row per element.
type BlockMatrix []uint64

// NewBlockMatrix returns a zeroed BlockMatrix with n rows.
func NewBlockMatrix(n int) BlockMatrix {
	return make(BlockMatrix, n)
}

// NewRandomBlockMatrix returns an n-row BlockMatrix filled with random bits
// from rng.
func NewRandomBlockMatrix(rng *rand.Rand, n int) BlockMatrix {
	a := make(BlockMatrix, n)
	for i := range a {
		a[i] = rng.Uint64()
	}
	return a
}

// Transpose returns a lightweight view of bᵀ, valid only as an operand of
// the Mul methods below.
func (b BlockMatrix) Transpose() BlockMatrixTranspose {
	return BlockMatrixTranspose{m: b}
}

// ExplicitTranspose materializes bᵀ as an N-row, ceil(len(b)/N)-word-per-row
// BlockMatrix-shaped matrix, packing N source rows' bit j into word j's bit
// (i mod N) of output word (i div N).
func (b BlockMatrix) ExplicitTranspose() [][]uint64 {
	nWords := (len(b) + N - 1) / N
	res := make([][]uint64, N)
	for j := range res {
		res[j] = make([]uint64, nWords)
	}
	for i, row := range b {
		for j := 0; j < N; j++ {
			res[j][i/N] |= ((row >> uint(j)) & 1) << uint(i&(N-1))
		}
	}
	return res
}

// IsSymmetric reports whether a square N×N BlockMatrix equals its own
// transpose.
func (b BlockMatrix) IsSymmetric() bool {
	if len(b) != N {
		panic("linalg: IsSymmetric: matrix is not N x N")
	}
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if (b[i]>>uint(j))&1 != (b[j]>>uint(i))&1 {
				return false
			}
		}
	}
	return true
}

// Mul computes b · c for a dense n-row left operand and an N-row right
// operand c: for each row of b, xor in c's row k wherever bit k is set.
func (b BlockMatrix) Mul(c BlockMatrix) BlockMatrix {
	if len(c) != N {
		panic("linalg: BlockMatrix.Mul: right operand must have N rows")
	}
	res := make(BlockMatrix, len(b))
	for i, x := range b {
		k := uint(0)
		for x != 0 {
			if x&1 != 0 {
				res[i] ^= c[k]
			}
			x >>= 1
			k++
		}
	}
	return res
}

// MulT computes b · cᵀ: output row i, bit j is the parity of
// popcount(b[i] & c.m[j]). The result has len(b) rows, each with bits
// 0..len(c.m) populated (len(c.m) must not exceed N, the result row width).
func (b BlockMatrix) MulT(c BlockMatrixTranspose) BlockMatrix {
	if len(c.m) > N {
		panic("linalg: BlockMatrix.MulT: right operand too wide")
	}
	res := make(BlockMatrix, len(b))
	for i, x := range b {
		for j, y := range c.m {
			if popcountParity(x&y) != 0 {
				res[i] |= 1 << uint(j)
			}
		}
	}
	return res
}

// BlockMatrixTranspose is a lightweight view of a BlockMatrix's transpose,
// valid only as an operand of Mul/MulT.
type BlockMatrixTranspose struct {
	m BlockMatrix
}

// Mul computes bᵀ · c, returning an N-row BlockMatrix: for each source row
// i of b (= column i of bᵀ) and each set bit k of that row, xor c's row i
// into res[k].
func (t BlockMatrixTranspose) Mul(c BlockMatrix) BlockMatrix {
	if len(c) != len(t.m) {
		panic("linalg: BlockMatrixTranspose.Mul: dimension mismatch")
	}
	res := make(BlockMatrix, N)
	for i, x := range t.m {
		k := uint(0)
		for x != 0 {
			if x&1 != 0 {
				res[k] ^= c[i]
			}
			x >>= 1
			k++
		}
	}
	return res
}

// popcountParity returns 1 if x has an odd number of set bits, else 0.
func popcountParity(x uint64) uint64 {
	x ^= x >> 32
	x ^= x >> 16
	x ^= x >> 8
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return x & 1
}
