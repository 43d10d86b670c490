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
package calc

import (
	"testing"

	"github.com/consensys/go-bincalc/pkg/binary"
	"github.com/consensys/go-bincalc/pkg/util/source"
	"github.com/stretchr/testify/assert"
)

func Test_Operator_00(t *testing.T) {
	assert.Equal(t, uint(4), Parity.Precedence())
	//
	for _, op := range []Op{And, Or, Xor, Concat, Div} {
		assert.Equal(t, uint(3), op.Precedence(), op.Name())
		assert.Equal(t, uint(2), op.Arity(), op.Name())
	}
	//
	for _, op := range []Op{EQ, NEQ, GT, LT} {
		assert.Equal(t, uint(2), op.Precedence(), op.Name())
		assert.Equal(t, uint(2), op.Arity(), op.Name())
	}
	//
	assert.Equal(t, uint(0), LParen.Precedence())
	assert.Equal(t, uint(0), RParen.Precedence())
	assert.Equal(t, uint(1), Parity.Arity())
}

func Test_Operator_01(t *testing.T) {
	symbols := map[Op]string{
		And: "&", Or: "|", Xor: "^", Div: "/", Concat: ".", EQ: "==", NEQ: "!=",
		GT: ">", LT: "<", Parity: "p", LParen: "(", RParen: ")",
	}
	//
	assert.Len(t, Operators, len(symbols))
	//
	for _, op := range Operators {
		assert.Equal(t, symbols[op], op.Symbol())
		assert.Equal(t, symbols[op], op.String())
		assert.NotEmpty(t, op.Name())
	}
	//
	assert.Panics(t, func() { _ = Op(100).Symbol() })
}

func Test_Format_00(t *testing.T) {
	var span = source.NewSpan(0, 0)
	//
	assert.Equal(t, "111 7", Format(NewBinary(binary.MustParse("111"), span)))
	assert.Equal(t, "0 0", Format(NewBinary(binary.Zero(), span)))
	assert.Equal(t, "10 R1 2 R1", Format(NewBinaryPair(binary.FromUint64(2), binary.One(), span)))
	assert.Equal(t, "3", Format(NewNumber(3, span)))
	assert.Equal(t, "-3", Format(NewNumber(-3, span)))
	assert.Equal(t, "true", Format(NewBoolean(true, span)))
	assert.Equal(t, "false", Format(NewBoolean(false, span)))
	assert.Equal(t, "==", Format(NewOperator(EQ, span)))
	assert.Equal(t, "", Format(nil))
}

func Test_Format_01(t *testing.T) {
	// Decimal values beyond a machine word are exact
	wide := binary.MustParse("10000000000000000000000000000000000000000000000000000000000000000")
	assert.Equal(t, wide.String()+" 18446744073709551616", Format(NewBinary(wide, source.NewSpan(0, 0))))
}

func Test_TypeName_00(t *testing.T) {
	var span = source.NewSpan(0, 0)
	//
	assert.Equal(t, "Operator", NewOperator(And, span).TypeName())
	assert.Equal(t, "Binary", NewBinary(binary.One(), span).TypeName())
	assert.Equal(t, "BinaryPair", NewBinaryPair(binary.One(), binary.One(), span).TypeName())
	assert.Equal(t, "Number", NewNumber(1, span).TypeName())
	assert.Equal(t, "Bool", NewBoolean(true, span).TypeName())
	assert.Equal(t, "true", NewBoolean(true, span).String())
}
