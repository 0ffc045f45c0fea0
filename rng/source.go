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

// Package rng wraps crypto/rand as a math/rand.Source, so every stage of
// the sieve that needs an explicit *rand.Rand (Block Lanczos' seed block,
// the algebraic square root's witness search) can be handed one backed by
// real entropy instead of a fixed seed.
package rng

import (
	"crypto/rand"
	"math/big"
)

// Source is a math/rand.Source reading from crypto/rand.
type Source struct {
	mask *big.Int
}

// Int63 returns the next random 63-bit non-negative integer.
func (s *Source) Int63() int64 {
	val, err := rand.Int(rand.Reader, s.mask)
	if err != nil {
		panic("rng: entropy source failure: " + err.Error())
	}
	return val.Int64()
}

// Seed is a no-op: randomness comes from the system entropy source, not a
// reproducible seed.
func (s *Source) Seed(int64) {}

// NewSource returns a math/rand.Source backed by crypto/rand.
func NewSource() *Source {
	return &Source{mask: new(big.Int).Lsh(big.NewInt(1), 63)}
}
