// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package binary

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidLiteral is reported when parsing text which contains characters
// other than '0' or '1'.
var ErrInvalidLiteral = errors.New("binary literal must only contain '0' or '1'")

// ErrDivisionByZero is reported when dividing by a number whose value is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Number represents an unbounded non-negative integer as a sequence of bits.
// Numbers are always held in canonical form: there are no leading zero bits,
// except for zero itself which is represented by the single bit 0.  Numbers
// are immutable, hence every operation returns a fresh Number.  The zero value
// of Number is the number zero.
type Number struct {
	// Number of bits in the canonical representation (at least one).
	width uint
	// Bit i holds the bit of significance 2^i.  No bits at or above width are
	// ever set.
	bits *bitset.BitSet
}

// Zero returns the number 0.
func Zero() Number {
	return FromUint64(0)
}

// One returns the number 1.
func One() Number {
	return FromUint64(1)
}

// FromUint64 constructs a number from a given unsigned integer.
func FromUint64(n uint64) Number {
	return Number{max(1, uint(bits.Len64(n))), bitset.From([]uint64{n})}
}

// FromBits constructs a number from a sequence of bits given most significant
// first.  The sequence is copied and then canonicalised.  An empty sequence
// gives zero.
func FromBits(seq []bool) Number {
	var (
		n  = uint(len(seq))
		bs = bitset.New(n)
	)
	//
	for i, b := range seq {
		if b {
			bs.Set(n - 1 - uint(i))
		}
	}
	//
	return canonical(bs, n)
}

// Parse constructs a number from its textual form, which consists of one or
// more '0' or '1' characters (most significant first).  Leading zeros are
// permitted and are removed.
func Parse(text string) (Number, error) {
	if len(text) == 0 {
		return Number{}, fmt.Errorf("%w (found empty string)", ErrInvalidLiteral)
	}
	//
	seq := make([]bool, 0, len(text))
	//
	for _, c := range text {
		switch c {
		case '0':
			seq = append(seq, false)
		case '1':
			seq = append(seq, true)
		default:
			return Number{}, fmt.Errorf("%w (found %q)", ErrInvalidLiteral, c)
		}
	}
	//
	return FromBits(seq), nil
}

// MustParse is like Parse, but panics if the text is not a binary literal.
func MustParse(text string) Number {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	//
	return n
}

// canonical determines the canonical width of a given bitset, considering only
// bits below limit.
func canonical(bs *bitset.BitSet, limit uint) Number {
	for i := limit; i > 0; i-- {
		if bs.Test(i - 1) {
			return Number{i, bs}
		}
	}
	//
	return Number{1, bs}
}

// BitLen returns the number of bits in the canonical representation of this
// number.  This is never less than one.
func (p Number) BitLen() uint {
	return max(1, p.width)
}

// Bit returns the bit of significance 2^i.  Bits beyond the canonical width are
// always zero.
func (p Number) Bit(i uint) bool {
	return p.bits != nil && i < p.width && p.bits.Test(i)
}

// Bits returns the canonical bit sequence of this number, most significant
// first.
func (p Number) Bits() []bool {
	var (
		n   = p.BitLen()
		seq = make([]bool, n)
	)
	//
	for i := range n {
		seq[i] = p.Bit(n - 1 - i)
	}
	//
	return seq
}

// IsZero checks whether this number is zero.
func (p Number) IsZero() bool {
	return p.bits == nil || p.bits.None()
}

// And returns the bitwise conjunction of two numbers.  The shorter operand is
// zero-extended to the width of the longer.
func (p Number) And(other Number) Number {
	return p.combine(other, (*bitset.BitSet).Intersection)
}

// Or returns the bitwise disjunction of two numbers.  The shorter operand is
// zero-extended to the width of the longer.
func (p Number) Or(other Number) Number {
	return p.combine(other, (*bitset.BitSet).Union)
}

// Xor returns the bitwise exclusive-or of two numbers.  The shorter operand is
// zero-extended to the width of the longer.
func (p Number) Xor(other Number) Number {
	return p.combine(other, (*bitset.BitSet).SymmetricDifference)
}

// Since no bits above the canonical width are ever set, the bitset operations
// already treat missing bits as zero.
func (p Number) combine(other Number, fn func(*bitset.BitSet, *bitset.BitSet) *bitset.BitSet) Number {
	n := max(p.BitLen(), other.BitLen())
	//
	return canonical(fn(p.set(), other.set()), n)
}

func (p Number) set() *bitset.BitSet {
	if p.bits == nil {
		return bitset.New(0)
	}
	//
	return p.bits
}

// Cmp compares two numbers, returning -1 if this number is less than other, 0
// if they are equal and +1 if it is greater.  Operands are compared as though
// zero-extended to a common width.
func (p Number) Cmp(other Number) int {
	for i := max(p.BitLen(), other.BitLen()); i > 0; i-- {
		switch l, r := p.Bit(i-1), other.Bit(i-1); {
		case l && !r:
			return 1
		case !l && r:
			return -1
		}
	}
	//
	return 0
}

// Equal checks whether two numbers have the same value.
func (p Number) Equal(other Number) bool {
	return p.Cmp(other) == 0
}

// Less checks whether this number is strictly less than other.
func (p Number) Less(other Number) bool {
	return p.Cmp(other) < 0
}

// Greater checks whether this number is strictly greater than other.
func (p Number) Greater(other Number) bool {
	return p.Cmp(other) > 0
}

// Concat appends the canonical bits of other to the canonical bits of this
// number, such that this number occupies the high-order bits.  For example,
// 101 concatenated with 10 gives 10110.  Since the left operand is canonical,
// a zero left operand contributes nothing, whilst a zero right operand still
// contributes a single (zero) bit.
func (p Number) Concat(other Number) Number {
	var (
		shift = other.BitLen()
		n     = p.BitLen() + shift
		bs    = bitset.New(n)
	)
	//
	for i := range shift {
		bs.SetTo(i, other.Bit(i))
	}
	//
	for i := range p.BitLen() {
		bs.SetTo(i+shift, p.Bit(i))
	}
	//
	return canonical(bs, n)
}

// Parity returns the number of bits set to one in this number.
func (p Number) Parity() uint {
	if p.bits == nil {
		return 0
	}
	//
	return p.bits.Count()
}

// Uint64 converts this number into an unsigned machine word.  Numbers wider
// than 64 bits are truncated to their low 64 bits.
func (p Number) Uint64() uint64 {
	var word uint64
	//
	for i := range min(p.BitLen(), 64) {
		if p.Bit(i) {
			word |= 1 << i
		}
	}
	//
	return word
}

// BigInt converts this number into an (exact) big integer.
func (p Number) BigInt() *big.Int {
	var val big.Int
	//
	for i := range p.BitLen() {
		if p.Bit(i) {
			val.SetBit(&val, int(i), 1)
		}
	}
	//
	return &val
}

// Text returns the string representation of this number in the given base
// (between 2 and 62).  Unlike Uint64, this is exact for numbers of any width.
func (p Number) Text(base int) string {
	return p.BigInt().Text(base)
}

// String returns the canonical textual form of this number, which is its
// sequence of bits (most significant first) as '0' or '1' characters.
func (p Number) String() string {
	var builder strings.Builder
	//
	builder.Grow(int(p.BitLen()))
	//
	for _, b := range p.Bits() {
		if b {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical textual
// form.
func (p Number) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting any text which
// Parse accepts.
func (p *Number) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	//
	*p = n
	//
	return nil
}
