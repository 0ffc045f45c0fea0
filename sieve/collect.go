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
//*    PGMID.        PARALLEL RELATION COLLECTION.                   */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    REMARKS.      Dispatches independent sieve lines across a     */
//*                  worker pool, re-serializing results in          */
//*                  b-ascending order before they reach the matrix. */
//********************************************************************/

package sieve

import (
	"context"
	"sync"

	"github.com/bfix/nfs/bignum"
	"github.com/bfix/nfs/concurrent"
	"github.com/bfix/nfs/linalg"
	"github.com/bfix/nfs/params"
	"github.com/bfix/nfs/poly"
)

// lineResult is one worker's output for a single line b.
type lineResult struct {
	b    uint64
	cols [][]int
	rels []Relation
}

// collector implements concurrent.Dispatchable[uint64, lineResult],
// re-ordering results by b before appending their columns to the shared
// matrix builder, so the final matrix is deterministic regardless of
// worker scheduling.
type collector struct {
	n, m         *bignum.Int
	f            *poly.MpPolynomial
	params       params.Params
	rational     []FactorBaseEntry
	algebraic    []FactorBaseEntry
	quadChar     []FactorBaseEntry
	off          baseOffsets
	targetRelCnt int

	mu      sync.Mutex
	pending map[uint64]lineResult
	nextB   uint64
	builder *linalg.CscMatrixBuilder
	rels    []Relation
}

func (c *collector) Worker(ctx context.Context, _ int, taskCh chan uint64, resCh chan lineResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case b, ok := <-taskCh:
			if !ok {
				return
			}
			cols, rels := sieveLine(c.n, c.m, c.f, c.params, c.rational, c.algebraic, c.quadChar, c.off, b)
			select {
			case resCh <- lineResult{b: b, cols: cols, rels: rels}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *collector) Eval(res lineResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending[res.b] = res
	for {
		r, ok := c.pending[c.nextB]
		if !ok {
			break
		}
		delete(c.pending, c.nextB)
		for i, cols := range r.cols {
			c.builder.AddCol(cols)
			c.rels = append(c.rels, r.rels[i])
		}
		c.nextB++
	}
	return len(c.rels) >= c.targetRelCnt
}

// Collect builds the factor bases, then sieves lines b = 1, 2, ... across
// numWorkers goroutines until base length + oversquareness relations have
// been found, returning the resulting CSC relation matrix and the (a, b)
// pair behind each of its columns, in the order they were added (which is
// always b-ascending, independent of worker scheduling).
func Collect(n, m *bignum.Int, f *poly.MpPolynomial, p params.Params, numWorkers int) (*linalg.CscMatrix, []Relation) {
	rational := RationalFactorBase(m, p)
	algebraic := AlgebraicFactorBase(f, p)
	quadChar := QuadCharBase(algebraic[len(algebraic)-1].P+1, f, p)

	off := baseOffsets{
		rationalBegin:  1,
		algebraicBegin: 1 + len(rational),
		quadCharBegin:  1 + len(rational) + len(algebraic),
	}
	baseLen := off.quadCharBegin + len(quadChar)

	builder := linalg.NewCscMatrixBuilder()
	builder.SetNumRows(baseLen)

	c := &collector{
		n: n, m: m, f: f, params: p,
		rational: rational, algebraic: algebraic, quadChar: quadChar,
		off:          off,
		targetRelCnt: baseLen + p.Oversquareness,
		pending:      make(map[uint64]lineResult),
		nextB:        1,
		builder:      builder,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	disp := concurrent.NewDispatcher[uint64, lineResult](ctx, numWorkers, c)
	for b := uint64(1); ; b++ {
		if !disp.Process(b) {
			break
		}
	}

	return c.builder.Build(), c.rels
}
