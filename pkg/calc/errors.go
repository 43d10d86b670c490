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
	"fmt"

	"github.com/consensys/go-bincalc/pkg/util/source"
)

// ErrorKind classifies the failures which can arise from evaluating an
// expression.
type ErrorKind uint8

const (
	// InvalidLiteral indicates a literal containing non-binary characters.
	InvalidLiteral ErrorKind = iota
	// InvalidCharacter indicates an unknown character, or a malformed
	// multi-character operator.
	InvalidCharacter
	// UnbalancedParens indicates a ")" without a matching "(", or vice versa.
	UnbalancedParens
	// TooFewOperands indicates an operator applied with insufficient operands.
	TooFewOperands
	// TypeMismatch indicates operands of the wrong type for an operator.
	TypeMismatch
	// DivisionByZero indicates a divisor whose value is zero.
	DivisionByZero
	// MalformedExpression indicates an expression which does not reduce to a
	// single value.
	MalformedExpression
	// InternalError indicates a token which cannot arise from a well-formed
	// parse.
	InternalError
)

var errorKindNames = [...]string{
	InvalidLiteral:      "invalid literal",
	InvalidCharacter:    "invalid character",
	UnbalancedParens:    "unbalanced parentheses",
	TooFewOperands:      "too few operands",
	TypeMismatch:        "type mismatch",
	DivisionByZero:      "division by zero",
	MalformedExpression: "malformed expression",
	InternalError:       "internal error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	//
	return fmt.Sprintf("error kind (%d)", k)
}

// Sentinel errors for each kind, for use with errors.Is.
var (
	ErrInvalidLiteral      = &Error{Kind: InvalidLiteral}
	ErrInvalidCharacter    = &Error{Kind: InvalidCharacter}
	ErrUnbalancedParens    = &Error{Kind: UnbalancedParens}
	ErrTooFewOperands      = &Error{Kind: TooFewOperands}
	ErrTypeMismatch        = &Error{Kind: TypeMismatch}
	ErrDivisionByZero      = &Error{Kind: DivisionByZero}
	ErrMalformedExpression = &Error{Kind: MalformedExpression}
	ErrInternal            = &Error{Kind: InternalError}
)

// Error is a structured error which retains the kind of failure, along with
// the range of input characters where it arose.
type Error struct {
	Kind ErrorKind
	// Span of the input responsible for this error.
	Span source.Span
	// Message being reported
	Msg string
	// Underlying cause (if any)
	cause error
}

func newError(kind ErrorKind, span source.Span, format string, args ...any) *Error {
	return &Error{kind, span, fmt.Sprintf(format, args...), nil}
}

// Error implements the error interface.
func (p *Error) Error() string {
	if p.Msg == "" {
		return p.Kind.String()
	}
	//
	return p.Msg
}

// Unwrap returns the underlying cause of this error, if any.
func (p *Error) Unwrap() error {
	return p.cause
}

// Is matches any error of the same kind.
func (p *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.Kind == p.Kind
	}
	//
	return false
}
