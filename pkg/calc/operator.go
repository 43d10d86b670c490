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

import "fmt"

// Op identifies one of the supported operators, or a parenthesis.
type Op uint8

const (
	// And is bitwise conjunction "&".
	And Op = iota
	// Or is bitwise disjunction "|".
	Or
	// Xor is bitwise exclusive-or "^".
	Xor
	// Div is long division "/", producing a quotient and remainder.
	Div
	// Concat is bit concatenation ".".
	Concat
	// EQ is equality "==".
	EQ
	// NEQ is non-equality "!=".
	NEQ
	// GT is (strict) greater-than ">".
	GT
	// LT is (strict) less-than "<".
	LT
	// Parity is the (prefix) population count "p".
	Parity
	// LParen is a left parenthesis "(".
	LParen
	// RParen is a right parenthesis ")".
	RParen
)

// Operators lists every operator in declaration order.
var Operators = []Op{And, Or, Xor, Div, Concat, EQ, NEQ, GT, LT, Parity, LParen, RParen}

type opInfo struct {
	name       string
	symbol     string
	precedence uint
	arity      uint
}

// Operator table, indexed by Op.  Parenthesis are never compared by precedence,
// only matched.
var operators = [...]opInfo{
	And:    {"and", "&", 3, 2},
	Or:     {"or", "|", 3, 2},
	Xor:    {"xor", "^", 3, 2},
	Div:    {"div", "/", 3, 2},
	Concat: {"concat", ".", 3, 2},
	EQ:     {"eq", "==", 2, 2},
	NEQ:    {"neq", "!=", 2, 2},
	GT:     {"gt", ">", 2, 2},
	LT:     {"lt", "<", 2, 2},
	Parity: {"parity", "p", 4, 1},
	LParen: {"lparen", "(", 0, 0},
	RParen: {"rparen", ")", 0, 0},
}

// Precedence returns the binding strength of this operator, where higher binds
// more tightly.
func (op Op) Precedence() uint {
	return op.info().precedence
}

// Arity returns the number of operands consumed by this operator.
func (op Op) Arity() uint {
	return op.info().arity
}

// Symbol returns the textual symbol of this operator, as written in
// expressions.
func (op Op) Symbol() string {
	return op.info().symbol
}

// Name returns a short (lower case) name for this operator.
func (op Op) Name() string {
	return op.info().name
}

func (op Op) String() string {
	return op.Symbol()
}

func (op Op) info() opInfo {
	if int(op) >= len(operators) {
		panic(fmt.Sprintf("unknown operator (%d)", op))
	}
	//
	return operators[op]
}
