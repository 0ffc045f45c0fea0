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

// Package bignum is the arbitrary-precision integer facade the rest of the
// repository builds on. It wraps math/big behind a fluent, allocation-per-
// operation API, named "bignum" rather than "math" to avoid shadowing the
// standard library package of that name, which factorizer's ECM stage
// imports alongside it.
package bignum

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// errNotQuadraticResidue is returned by SqrtModP when a has no square root
// modulo p.
var errNotQuadraticResidue = errors.New("bignum: not a quadratic residue")

var (
	// ZERO as number "0"
	ZERO = NewInt(0)
	// ONE as number "1"
	ONE = NewInt(1)
	// TWO as number "2"
	TWO = NewInt(2)
	// THREE as number "3"
	THREE = NewInt(3)
	// FOUR as number "4"
	FOUR = NewInt(4)
)

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a decimal string representation of an integer.
func NewIntFromString(s string) *Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bignum: malformed integer literal " + s)
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a big-endian binary array into an unsigned integer.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// NewIntFromBig wraps an existing math/big.Int. The caller must not mutate v
// afterwards; Int values are otherwise treated as immutable.
func NewIntFromBig(v *big.Int) *Int {
	return &Int{v: v}
}

// NewIntRnd creates a new random value uniformly distributed in [0, j).
func NewIntRnd(j *Int) *Int {
	r, err := rand.Int(rand.Reader, j.v)
	if err != nil {
		panic(err)
	}
	return &Int{v: r}
}

// NewIntRndRange returns a random integer value within the given range
// [lower, upper].
func NewIntRndRange(lower, upper *Int) *Int {
	return lower.Add(NewIntRnd(upper.Sub(lower).Add(ONE)))
}

// Big returns the underlying math/big.Int. The returned value must not be
// mutated.
func (i *Int) Big() *big.Int {
	return i.v
}

// Bytes returns a big-endian byte array representation of the integer.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String converts an Int to its decimal string representation.
func (i *Int) String() string {
	return i.v.String()
}

// ProbablyPrime checks if an Int is prime. The chance this is wrong is less
// than 2^(-n).
func (i *Int) ProbablyPrime(n int) bool {
	return i.v.ProbablyPrime(n)
}

// NextProbablePrime returns the smallest probable prime strictly greater
// than i, using certainty n for the primality test.
func (i *Int) NextProbablePrime(n int) *Int {
	p := i.Add(ONE)
	if p.Cmp(TWO) <= 0 {
		return TWO
	}
	if p.Bit(0) == 0 {
		p = p.Add(ONE)
	}
	for !p.ProbablyPrime(n) {
		p = p.Add(TWO)
	}
	return p
}

// Add two Ints.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub subtracts two Ints.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul multiplies two Ints.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div divides two Ints (euclidean, truncating toward zero is NOT used;
// matches big.Int.Div, i.e. Euclidean division with a nonnegative remainder).
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Div(i.v, j.v)}
}

// QuoRem returns the truncated quotient and remainder of i / j (sign of the
// remainder follows i, as with Go's native / and % on integers).
func (i *Int) QuoRem(j *Int) (*Int, *Int) {
	q, r := new(big.Int).QuoRem(i.v, j.v, new(big.Int))
	return &Int{v: q}, &Int{v: r}
}

// DivMod returns the Euclidean quotient and nonnegative remainder of two Ints.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	q, m := new(big.Int).DivMod(i.v, j.v, new(big.Int))
	return &Int{v: q}, &Int{v: m}
}

// Mod returns the (nonnegative) Euclidean remainder of two Ints.
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// BitLen returns the number of bits in an Int (its significand length).
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns the sign of an Int: -1, 0 or +1.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// ModInverse returns the multiplicative inverse of i in the ring Z/jZ.
func (i *Int) ModInverse(j *Int) *Int {
	r := new(big.Int).ModInverse(i.v, j.v)
	if r == nil {
		panic("bignum: no modular inverse exists")
	}
	return &Int{v: r}
}

// Cmp returns the comparison between two Ints: -1, 0 or +1.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals checks if two Ints are equal.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// GCD returns the greatest common divisor of two Ints (always nonnegative).
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(i.v), new(big.Int).Abs(j.v))}
}

// Pow raises an Int to the (nonnegative, machine-sized) power n.
func (i *Int) Pow(n int64) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(n), nil)}
}

// ModPow returns the modular exponentiation of an Int as (i^n mod m).
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// Bit returns the bit value of an Int at a given position.
func (i *Int) Bit(n int) uint {
	return i.v.Bit(n)
}

// Rsh returns the right-shifted value of an Int.
func (i *Int) Rsh(n uint) *Int {
	return &Int{v: new(big.Int).Rsh(i.v, n)}
}

// Lsh returns the left-shifted value of an Int.
func (i *Int) Lsh(n uint) *Int {
	return &Int{v: new(big.Int).Lsh(i.v, n)}
}

// Sqrt returns the floor of the integer square root of i. i must be
// nonnegative.
func (i *Int) Sqrt() *Int {
	return &Int{v: new(big.Int).Sqrt(i.v)}
}

// IsSquare reports whether i is a perfect square.
func (i *Int) IsSquare() bool {
	if i.Sign() < 0 {
		return false
	}
	r := i.Sqrt()
	return r.Mul(r).Equals(i)
}

// NthRoot returns the integer n-th root of i via Newton's method. If i is not
// a perfect n-th power, the result is rounded down unless upper is set, in
// which case it is rounded up.
func (i *Int) NthRoot(n int, upper bool) *Int {
	if i.Sign() == 0 {
		return ZERO
	}
	nn := NewInt(int64(n))
	// initial guess: 2^(ceil(bitlen/n))
	x := ONE.Lsh(uint((i.BitLen() + n - 1) / n))
	for {
		// x' = ((n-1)*x + i/x^(n-1)) / n
		xPow := x.Pow(int64(n - 1))
		next := nn.Sub(ONE).Mul(x).Add(i.Div(xPow)).Div(nn)
		if next.Cmp(x) >= 0 {
			break
		}
		x = next
	}
	for x.Pow(int64(n)).Cmp(i) > 0 {
		x = x.Sub(ONE)
	}
	if upper {
		for x.Pow(int64(n)).Cmp(i) < 0 {
			x = x.Add(ONE)
		}
	}
	return x
}

// Legendre returns the Legendre symbol (i/p) for an odd prime p: 1 if i is a
// nonzero quadratic residue mod p, -1 if it is a nonresidue, 0 if p divides i.
func (i *Int) Legendre(p *Int) int {
	a := i.Mod(p)
	if a.Equals(ZERO) {
		return 0
	}
	e := p.Sub(ONE).Div(TWO)
	r := a.ModPow(e, p)
	if r.Equals(ONE) {
		return 1
	}
	return -1
}

// SqrtModP computes a square root of a modulo an odd prime p using the
// Tonelli-Shanks algorithm. It returns an error if a is not a quadratic
// residue mod p.
func SqrtModP(a, p *Int) (*Int, error) {
	a = a.Mod(p)
	if a.Equals(ZERO) {
		return ZERO, nil
	}
	if a.Legendre(p) != 1 {
		return nil, errNotQuadraticResidue
	}
	// p == 3 (mod 4): direct formula
	if p.Mod(FOUR).Equals(THREE) {
		return a.ModPow(p.Add(ONE).Div(FOUR), p), nil
	}
	// factor p-1 = q * 2^s with q odd
	q := p.Sub(ONE)
	s := 0
	for q.Bit(0) == 0 {
		q = q.Rsh(1)
		s++
	}
	// find a quadratic nonresidue z
	z := TWO
	for z.Legendre(p) != -1 {
		z = z.Add(ONE)
	}
	m := s
	c := z.ModPow(q, p)
	t := a.ModPow(q, p)
	r := a.ModPow(q.Add(ONE).Div(TWO), p)
	for {
		if t.Equals(ONE) {
			return r, nil
		}
		// find least i, 0 < i < m, with t^(2^i) == 1
		i := 1
		tt := t.Mul(t).Mod(p)
		for !tt.Equals(ONE) {
			tt = tt.Mul(tt).Mod(p)
			i++
		}
		b := c
		for k := 0; k < m-i-1; k++ {
			b = b.Mul(b).Mod(p)
		}
		m = i
		c = b.Mul(b).Mod(p)
		t = t.Mul(c).Mod(p)
		r = r.Mul(b).Mod(p)
	}
}

// Abs returns the unsigned value of an Int.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Neg flips the sign of an Int.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// Int64 returns the int64 value of an Int. The value must fit.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Uint64 returns the uint64 value of an Int. The value must fit and be
// nonnegative.
func (i *Int) Uint64() uint64 {
	return i.v.Uint64()
}
