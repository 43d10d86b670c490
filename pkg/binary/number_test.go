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
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Construction
// ============================================================================

func Test_FromUint64_00(t *testing.T) {
	check_FromUint64(t, 0, "0")
	check_FromUint64(t, 1, "1")
	check_FromUint64(t, 2, "10")
	check_FromUint64(t, 666, "1010011010")
	check_FromUint64(t, ^uint64(0), strings.Repeat("1", 64))
}

func Test_FromUint64_01(t *testing.T) {
	// Canonical round trip
	for i := uint64(0); i < 4096; i++ {
		n := FromUint64(i)
		text := n.String()
		//
		if i != 0 {
			assert.Equal(t, byte('1'), text[0])
		}
		//
		m, err := Parse(text)
		require.NoError(t, err)
		assert.True(t, n.Equal(m))
		assert.Equal(t, i, m.Uint64())
		assert.Equal(t, fmt.Sprintf("%b", i), text)
	}
}

func Test_FromBits_00(t *testing.T) {
	assert.Equal(t, "0", FromBits(nil).String())
	assert.Equal(t, "0", FromBits([]bool{false}).String())
	assert.Equal(t, "1", FromBits([]bool{true}).String())
	assert.Equal(t, "101", FromBits([]bool{true, false, true}).String())
	assert.Equal(t, "101", FromBits([]bool{false, false, true, false, true}).String())
	assert.Equal(t, "0", FromBits([]bool{false, false, false}).String())
}

func Test_FromBits_01(t *testing.T) {
	seq := []bool{false, true, true}
	n := FromBits(seq)
	// Mutating the input must not affect the number
	seq[2] = false
	assert.Equal(t, "11", n.String())
	assert.Equal(t, []bool{true, true}, n.Bits())
}

func Test_Parse_00(t *testing.T) {
	check_Parse(t, "0", 0)
	check_Parse(t, "00", 0)
	check_Parse(t, "1", 1)
	check_Parse(t, "101", 5)
	check_Parse(t, "0000101", 5)
}

func Test_Parse_01(t *testing.T) {
	for _, text := range []string{"", "2", "10a", " 1", "1 ", "0x1", "１"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrInvalidLiteral, "parsing %q", text)
	}
}

func Test_Parse_02(t *testing.T) {
	assert.Panics(t, func() { MustParse("12") })
	assert.Equal(t, uint64(3), MustParse("11").Uint64())
}

func Test_Zero_00(t *testing.T) {
	var zero Number
	// The zero value behaves like an explicit zero.
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, uint(1), zero.BitLen())
	assert.Equal(t, uint(0), zero.Parity())
	assert.True(t, zero.Equal(Zero()))
	assert.Equal(t, "101", zero.Or(MustParse("101")).String())
	assert.Equal(t, "1", zero.Concat(One()).String())
}

// ============================================================================
// Bitwise
// ============================================================================

func Test_And_00(t *testing.T) {
	check_Bitwise(t, Number.And, 5, 7, 5)
	check_Bitwise(t, Number.And, 5, 0, 0)
	check_Bitwise(t, Number.And, 4, 1, 0)
}

func Test_Or_00(t *testing.T) {
	check_Bitwise(t, Number.Or, 5, 7, 7)
	check_Bitwise(t, Number.Or, 5, 0, 5)
	check_Bitwise(t, Number.Or, 4, 1, 5)
}

func Test_Xor_00(t *testing.T) {
	check_Bitwise(t, Number.Xor, 5, 7, 2)
	check_Bitwise(t, Number.Xor, 5, 0, 5)
	check_Bitwise(t, Number.Xor, 4, 1, 5)
	check_Bitwise(t, Number.Xor, 7, 7, 0)
}

func Test_Bitwise_01(t *testing.T) {
	// Agreement with machine arithmetic
	for i := uint64(0); i < 64; i++ {
		for j := uint64(0); j < 64; j++ {
			check_Bitwise(t, Number.And, i, j, i&j)
			check_Bitwise(t, Number.Or, i, j, i|j)
			check_Bitwise(t, Number.Xor, i, j, i^j)
		}
	}
}

func Test_Bitwise_02(t *testing.T) {
	// Zero extension: padding either operand does not change the result.
	ops := []func(Number, Number) Number{Number.And, Number.Or, Number.Xor}
	//
	for _, op := range ops {
		for _, pad := range []string{"", "0", "000", strings.Repeat("0", 70)} {
			l := MustParse(pad + "1101")
			r := MustParse("10")
			assert.Equal(t, op(MustParse("1101"), MustParse("10")).String(), op(l, r).String())
			assert.Equal(t, op(MustParse("1101"), MustParse("10")).String(), op(r, l).String())
		}
	}
}

func Test_Bitwise_03(t *testing.T) {
	// Wide operands
	l := MustParse("1" + strings.Repeat("0", 99) + "1")
	r := MustParse("1" + strings.Repeat("1", 99))
	assert.Equal(t, "1", l.And(r).String())
	assert.Equal(t, "11"+strings.Repeat("1", 99), l.Or(r).String())
	assert.Equal(t, "11"+strings.Repeat("1", 98)+"0", l.Xor(r).String())
}

// ============================================================================
// Comparison
// ============================================================================

func Test_Cmp_00(t *testing.T) {
	assert.True(t, FromUint64(0).Less(FromUint64(1)))
	assert.True(t, FromUint64(1).Less(FromUint64(2)))
	assert.True(t, FromUint64(5).Less(FromUint64(6)))
	assert.True(t, FromUint64(1).Greater(FromUint64(0)))
	assert.True(t, FromUint64(2).Greater(FromUint64(1)))
	assert.True(t, FromUint64(6).Greater(FromUint64(5)))
	assert.True(t, FromUint64(100).Equal(FromUint64(100)))
	assert.False(t, FromUint64(100).Equal(FromUint64(101)))
	assert.True(t, MustParse("1").Equal(MustParse("001")))
}

func Test_Cmp_01(t *testing.T) {
	// Totality
	for i := uint64(0); i < 100; i++ {
		for j := uint64(0); j < 100; j++ {
			l, r := FromUint64(i), FromUint64(j)
			count := 0
			//
			for _, b := range []bool{l.Less(r), l.Equal(r), l.Greater(r)} {
				if b {
					count++
				}
			}
			//
			assert.Equal(t, 1, count)
			assert.Equal(t, i < j, l.Less(r))
			assert.Equal(t, i > j, l.Greater(r))
			assert.Equal(t, -r.Cmp(l), l.Cmp(r))
		}
	}
}

// ============================================================================
// Concatenation
// ============================================================================

func Test_Concat_00(t *testing.T) {
	check_Concat(t, "0", "0", "0")
	check_Concat(t, "1", "0", "10")
	check_Concat(t, "101", "101", "101101")
	check_Concat(t, "101", "010", "10110")
	check_Concat(t, "0", "101", "101")
	check_Concat(t, "101", "0", "1010")
	check_Concat(t, "000", "011", "11")
}

func Test_Concat_01(t *testing.T) {
	assert.Equal(t, uint64(45), FromUint64(5).Concat(FromUint64(5)).Uint64())
	// Concatenating a zero left operand is order sensitive
	x := MustParse("110")
	assert.True(t, Zero().Concat(x).Equal(x))
	assert.Equal(t, uint64(12), x.Concat(Zero()).Uint64())
}

// ============================================================================
// Parity
// ============================================================================

func Test_Parity_00(t *testing.T) {
	assert.Equal(t, uint(0), FromUint64(0).Parity())
	assert.Equal(t, uint(1), FromUint64(1).Parity())
	assert.Equal(t, uint(2), FromUint64(5).Parity())
	assert.Equal(t, uint(3), MustParse("0010101").Parity())
	assert.Equal(t, uint(100), MustParse(strings.Repeat("1", 100)).Parity())
}

func Test_Parity_01(t *testing.T) {
	for i := uint64(0); i < 1024; i++ {
		n := FromUint64(i)
		assert.LessOrEqual(t, n.Parity(), n.BitLen())
	}
}

// ============================================================================
// Conversion
// ============================================================================

func Test_Text_00(t *testing.T) {
	assert.Equal(t, "22", MustParse("10110").Text(10))
	assert.Equal(t, "0", Zero().Text(10))
	// 2^64 wraps when converted to a machine word, but not as text.
	wide := MustParse("1" + strings.Repeat("0", 64))
	assert.Equal(t, "18446744073709551616", wide.Text(10))
	assert.Equal(t, uint64(0), wide.Uint64())
}

func Test_Json_00(t *testing.T) {
	var (
		input  = map[string]Number{"x": MustParse("1011")}
		output map[string]Number
	)
	//
	bytes, err := json.Marshal(input)
	require.NoError(t, err)
	assert.Equal(t, `{"x":"1011"}`, string(bytes))
	require.NoError(t, json.Unmarshal([]byte(`{"y":"00110"}`), &output))
	assert.Equal(t, "110", output["y"].String())
	assert.Error(t, json.Unmarshal([]byte(`{"y":"12"}`), &output))
}

// ============================================================================
// Helpers
// ============================================================================

func check_FromUint64(t *testing.T, n uint64, expected string) {
	assert.Equal(t, expected, FromUint64(n).String())
	assert.Equal(t, n, FromUint64(n).Uint64())
}

func check_Parse(t *testing.T, text string, expected uint64) {
	n, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, expected, n.Uint64())
	assert.Equal(t, FromUint64(expected).String(), n.String())
}

func check_Bitwise(t *testing.T, op func(Number, Number) Number, lhs, rhs, expected uint64) {
	actual := op(FromUint64(lhs), FromUint64(rhs))
	assert.Equal(t, FromUint64(expected).String(), actual.String(), "%d op %d", lhs, rhs)
}

func check_Concat(t *testing.T, lhs, rhs, expected string) {
	assert.Equal(t, expected, MustParse(lhs).Concat(MustParse(rhs)).String())
}
