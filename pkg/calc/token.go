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
	"github.com/consensys/go-bincalc/pkg/binary"
	"github.com/consensys/go-bincalc/pkg/util/source"
)

// Token is either an operator produced by the lexer, or a value.  Values are
// produced by the lexer (binary literals) or by evaluation.  The set of tokens
// is closed: it consists of Operator, Binary, BinaryPair, Number and Boolean.
type Token interface {
	// Span returns the range of input characters from which this token was
	// derived.  For the results of evaluation, this covers the operator and
	// all of its operands.
	Span() source.Span
	// TypeName returns a human readable name for the kind of this token.
	TypeName() string
	// Prevent implementations outside this package.
	token()
}

// Operator is a token representing an operator or parenthesis.
type Operator struct {
	Op   Op
	span source.Span
}

// Binary is a token holding a single binary number.
type Binary struct {
	Value binary.Number
	span  source.Span
}

// BinaryPair is a token holding the quotient and remainder of a division.
type BinaryPair struct {
	Quotient  binary.Number
	Remainder binary.Number
	span      source.Span
}

// Number is a token holding a (signed) integer, as produced by parity.
type Number struct {
	Value int64
	span  source.Span
}

// Boolean is a token holding a truth value, as produced by comparisons.
type Boolean struct {
	Value bool
	span  source.Span
}

// NewOperator constructs a new operator token.
func NewOperator(op Op, span source.Span) Operator {
	return Operator{op, span}
}

// NewBinary constructs a new binary value token.
func NewBinary(value binary.Number, span source.Span) Binary {
	return Binary{value, span}
}

// NewBinaryPair constructs a new quotient / remainder token.
func NewBinaryPair(quotient, remainder binary.Number, span source.Span) BinaryPair {
	return BinaryPair{quotient, remainder, span}
}

// NewNumber constructs a new integer value token.
func NewNumber(value int64, span source.Span) Number {
	return Number{value, span}
}

// NewBoolean constructs a new boolean value token.
func NewBoolean(value bool, span source.Span) Boolean {
	return Boolean{value, span}
}

// Span implementation for Token interface.
func (p Operator) Span() source.Span { return p.span }

// Span implementation for Token interface.
func (p Binary) Span() source.Span { return p.span }

// Span implementation for Token interface.
func (p BinaryPair) Span() source.Span { return p.span }

// Span implementation for Token interface.
func (p Number) Span() source.Span { return p.span }

// Span implementation for Token interface.
func (p Boolean) Span() source.Span { return p.span }

// TypeName implementation for Token interface.
func (p Operator) TypeName() string { return "Operator" }

// TypeName implementation for Token interface.
func (p Binary) TypeName() string { return "Binary" }

// TypeName implementation for Token interface.
func (p BinaryPair) TypeName() string { return "BinaryPair" }

// TypeName implementation for Token interface.
func (p Number) TypeName() string { return "Number" }

// TypeName implementation for Token interface.
func (p Boolean) TypeName() string { return "Bool" }

func (p Operator) token()   {}
func (p Binary) token()     {}
func (p BinaryPair) token() {}
func (p Number) token()     {}
func (p Boolean) token()    {}

func (p Operator) String() string   { return p.Op.Symbol() }
func (p Binary) String() string     { return Format(p) }
func (p BinaryPair) String() string { return Format(p) }
func (p Number) String() string     { return Format(p) }
func (p Boolean) String() string    { return Format(p) }
