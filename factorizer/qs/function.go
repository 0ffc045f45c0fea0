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

package qs

import "github.com/bfix/nfs/bignum"

type Function interface {

	// Instanciate function (and compute/initialize helpers).<p>
	// @param n BigInteger - number to be decomposed
	Init(n *bignum.Int) bool

	F(x *bignum.Int) *bignum.Int

	SqrArg(x *bignum.Int) *bignum.Int

	ModP(a, p *bignum.Int) *bignum.Int
}

type FunctionImpl struct {
	m *bignum.Int // number to be factorized
	r *bignum.Int // floor of square root of m
}

// Instanciate function (and compute/initialize helpers).<p>
// @param n BigInteger - number to be decomposed
func NewFunctionImpl(n *bignum.Int) *FunctionImpl {
	fb := new(FunctionImpl)
	fb.Init(n)
	return fb
}

// Prepare function for given integer.<p>
// @param n BigInteger - number to be decomposed
func (f *FunctionImpl) Init(n *bignum.Int) bool {
	f.m = n
	f.r = n.NthRoot(2, false)
	return true
}

func (f *FunctionImpl) F(x *bignum.Int) *bignum.Int {
	return x.Add(f.r).Pow(2).Sub(f.m)
}

func (f *FunctionImpl) ModP(x, p *bignum.Int) *bignum.Int {
	return x.Add(f.r).Mod(p)
}

func (f *FunctionImpl) SqrArg(x *bignum.Int) *bignum.Int {
	return x.Add(f.r)
}
