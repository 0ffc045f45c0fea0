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
//*    PGMID.        BLOCK LANCZOS OVER GF(2).                       */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Montgomery's block Lanczos, finding vectors in  */
//*                  the kernel of the sparse relation matrix.       */
//********************************************************************/

// Package lanczos finds vectors in the kernel of a sparse GF(2) matrix
// using Montgomery's Block Lanczos algorithm, working 64 candidate vectors
// at a time via linalg.BlockMatrix.
package lanczos

import (
	"math/rand"

	"github.com/bfix/nfs/linalg"
)

// maxIterations bounds the recurrence so a malformed or singular matrix
// cannot spin forever; a well-formed oversquare relation matrix converges
// in at most a small multiple of its row count.
const maxIterations = 100000

// FindDependencies runs Block Lanczos on A (R rows, C columns, C > R) and
// returns a dense block M with C rows and 64 columns together with k, the
// number of leading columns of M usable as dependencies: for every column
// j < k, A·M[:,j] = 0. The k columns are not checked for linear
// independence over GF(2); one may be zero or equal to another. Columns at
// index >= k (if any) are not guaranteed to be in the kernel and callers
// must ignore them.
func FindDependencies(a *linalg.CscMatrix, rng *rand.Rand) (linalg.BlockMatrix, int) {
	n := a.NumCols()

	y := linalg.NewRandomBlockMatrix(rng, n)
	v := a.Transpose().Mul(a.Mul(y)) // V_0 := A^T * A * Y

	vPrev2 := linalg.NewBlockMatrix(n) // V_{i-2}
	vPrev1 := linalg.NewBlockMatrix(n) // V_{i-1}

	// Accumulates sum_i V_i * (W_i^-1), the running kernel-space estimate;
	// see Montgomery (1995) for the full derivation.
	x := linalg.NewBlockMatrix(n)

	wInv2 := identity64()
	wInv1 := identity64()

	for iter := 0; iter < maxIterations; iter++ {
		bv := applyB(a, v)
		vtbv := v.Transpose().Mul(bv) // V_i^T * B * V_i, 64x64

		if isZero(vtbv) || isZero(v.Transpose().Mul(v)) {
			break
		}

		wInv, ok := invert64(vtbv)
		if !ok {
			// Singular V_i^T B V_i: the classical algorithm deflates the
			// singular subspace; for our purposes, stop and accept the
			// kernel vectors accumulated so far.
			break
		}

		// x_{i+1} = x_i + V_i * wInv_i, accumulating the coefficient of
		// V_i in the running solution.
		x = xorBlocks(x, v.Mul(wInv))

		d := computeD(bv, v, wInv)
		e := computeE(vPrev1, bv, wInv1)
		f := computeF(vPrev2, bv, wInv1, wInv2, vtbv)

		vNext := xorBlocks(xorBlocks(bv, v.Mul(d)),
			xorBlocks(vPrev1.Mul(e), vPrev2.Mul(f)))

		vPrev2, vPrev1, v = vPrev1, v, vNext
		wInv2, wInv1 = wInv1, wInv
	}

	return extractKernel(a, x)
}

// applyB computes B·v = Aᵀ·(A·v) implicitly, never materializing B.
func applyB(a *linalg.CscMatrix, v linalg.BlockMatrix) linalg.BlockMatrix {
	return a.Transpose().Mul(a.Mul(v))
}

func xorBlocks(a, b linalg.BlockMatrix) linalg.BlockMatrix {
	res := make(linalg.BlockMatrix, len(a))
	for i := range a {
		res[i] = a[i] ^ b[i]
	}
	return res
}

// computeD derives D_i = I - wInv_i * (V_i^T * B * V_i), the coefficient
// keeping V_{i+1} orthogonal to V_i.
func computeD(bv, v, wInv linalg.BlockMatrix) linalg.BlockMatrix {
	vtbv := v.Transpose().Mul(bv)
	prod := matMul64(wInv, vtbv)
	return xorBlocks(identity64(), prod)
}

// computeE derives E_i = wInv_{i-1} * (V_i^T * B * V_i) * wInv_i, keeping
// V_{i+1} orthogonal to V_{i-1}.
func computeE(vPrev1, bv linalg.BlockMatrix, wInvPrev1 linalg.BlockMatrix) linalg.BlockMatrix {
	vtbv := vPrev1.Transpose().Mul(bv)
	return matMul64(wInvPrev1, vtbv)
}

// computeF derives F_i, the coefficient keeping V_{i+1} orthogonal to
// V_{i-2}; it folds in both trailing inverses.
func computeF(vPrev2, bv, wInvPrev1, wInvPrev2, vtbvCur linalg.BlockMatrix) linalg.BlockMatrix {
	vtbv2 := vPrev2.Transpose().Mul(bv)
	term := matMul64(wInvPrev2, vtbv2)
	return matMul64(wInvPrev1, xorBlocks(term, vtbvCur))
}

// matMul64 multiplies two 64x64 dense GF(2) matrices represented as
// linalg.BlockMatrix (64 rows of 64 bits each).
func matMul64(a, b linalg.BlockMatrix) linalg.BlockMatrix {
	return a.Mul(b)
}

// identity64 returns the 64x64 identity matrix as a BlockMatrix.
func identity64() linalg.BlockMatrix {
	id := make(linalg.BlockMatrix, linalg.N)
	for i := range id {
		id[i] = 1 << uint(i)
	}
	return id
}

// isZero reports whether every row of a BlockMatrix is zero.
func isZero(m linalg.BlockMatrix) bool {
	for _, row := range m {
		if row != 0 {
			return false
		}
	}
	return true
}

// invert64 inverts a 64x64 GF(2) matrix via Gauss-Jordan elimination,
// reporting false if the matrix is singular.
func invert64(m linalg.BlockMatrix) (linalg.BlockMatrix, bool) {
	a := make([]uint64, linalg.N)
	copy(a, m)
	inv := identity64()

	for col := 0; col < linalg.N; col++ {
		pivot := -1
		for row := col; row < linalg.N; row++ {
			if (a[row]>>uint(col))&1 != 0 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		inv[col], inv[pivot] = inv[pivot], inv[col]

		for row := 0; row < linalg.N; row++ {
			if row != col && (a[row]>>uint(col))&1 != 0 {
				a[row] ^= a[col]
				inv[row] ^= inv[col]
			}
		}
	}
	return inv, true
}

// extractKernel reduces the accumulated solution block x against A to find
// which of its 64 columns lie (exactly) in ker(A), and permutes those
// columns to the front. Returns the resulting block and the usable count.
func extractKernel(a *linalg.CscMatrix, x linalg.BlockMatrix) (linalg.BlockMatrix, int) {
	ax := a.Mul(x)

	// A column j is a genuine kernel vector iff bit j is clear in every
	// row of A*x.
	var bad uint64
	for _, row := range ax {
		bad |= row
	}

	res := make(linalg.BlockMatrix, len(x))
	k := 0
	// Pass 1: copy good columns to the front.
	for bit := 0; bit < linalg.N; bit++ {
		if (bad>>uint(bit))&1 != 0 {
			continue
		}
		for i, row := range x {
			if (row>>uint(bit))&1 != 0 {
				res[i] |= 1 << uint(k)
			}
		}
		k++
	}
	return res, k
}
