//----------------------------------------------------------------------
// This file is part of nfs.
// Copyright (C) 2011-2024 Bernd Fix  >Y<
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

package concurrent

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/bfix/nfs/bignum"
)

// smallPrimes used to strip factors off a sieve value, mirroring the trial
// division a real line-siever runs before handing a value to the solver.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// residualBits returns the bit length remaining in f(b) = b^2 + b + 41 after
// stripping every small prime factor; a small residual means the value is
// close to smooth over the base, which is exactly the quantity a siever
// worker races to minimize across its slice of b values.
func residualBits(b int64) int32 {
	v := bignum.NewInt(b*b + b + 41)
	if v.Sign() < 0 {
		v = v.Neg()
	}
	for _, p := range smallPrimes {
		pp := bignum.NewInt(p)
		for v.Mod(pp).Equals(bignum.ZERO) {
			v = v.Div(pp)
		}
	}
	return int32(v.BitLen())
}

type TestDispatchable struct {
	busy atomic.Int32
	best atomic.Int32
}

func NewTestDispatchable() *TestDispatchable {
	d := new(TestDispatchable)
	d.best.Store(257)
	d.busy.Store(0)
	return d
}

func (d *TestDispatchable) Worker(ctx context.Context, n int, taskCh chan int64, resCh chan int64) {
	for {
		select {
		case <-ctx.Done():
			return

		case i := <-taskCh:
			d.busy.Add(1)
			j := residualBits(i)
			if j < d.best.Load() {
				d.best.Store(j)
				resCh <- i
			}
			d.busy.Add(-1)
		}
	}
}

func (d *TestDispatchable) Eval(result int64) bool {
	j := residualBits(result)
	fmt.Printf("got: b=%d -- residual bits=%d\n", result, j)
	return j < 5
}

func (d *TestDispatchable) Busy() int {
	return int(d.busy.Load())
}

func TestWorker(t *testing.T) {

	// run dispatcher
	ctx, cancel := context.WithCancel(context.Background())
	d := NewDispatcher[int64, int64](ctx, 8, NewTestDispatchable())
	defer cancel()

	// process tasks until finished
	var i int64
	for i = 0; ; i++ {
		if !d.Process(i) {
			break
		}
	}
}
