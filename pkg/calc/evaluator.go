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
	"cmp"
	"errors"

	"github.com/consensys/go-bincalc/pkg/binary"
	"github.com/consensys/go-bincalc/pkg/util/collection/stack"
	"github.com/consensys/go-bincalc/pkg/util/source"
)

// EvaluatePostfix evaluates a sequence of tokens in postfix (Reverse Polish)
// order, producing a single value.  Values are pushed onto a stack, whilst
// operators pop their operands from the stack and push their result.
// Evaluation aborts at the first error.
func EvaluatePostfix(tokens []Token) (Token, error) {
	var values = stack.NewStack[Token]()
	//
	for _, t := range tokens {
		switch t := t.(type) {
		case Binary, Boolean:
			values.Push(t)
		case Operator:
			if err := apply(t, values); err != nil {
				return nil, err
			}
		default:
			return nil, newError(InternalError, t.Span(), "unexpected token of type %s", t.TypeName())
		}
	}
	// after successful evaluation the stack must contain a single value
	if values.Len() != 1 {
		return nil, newError(MalformedExpression, spanOf(values.Items()),
			"expression cannot be reduced to a single value")
	}
	//
	return values.Pop(), nil
}

// Apply a given operator to the topmost values on the stack.
func apply(op Operator, values *stack.Stack[Token]) error {
	var arity = op.Op.Arity()
	//
	if arity == 0 {
		return newError(InternalError, op.Span(), "unexpected '%s' in postfix expression", op.Op)
	} else if values.Len() < arity {
		return newError(TooFewOperands, op.Span(), "operator '%s' is applied to too few operands", op.Op)
	}
	//
	var (
		args   = values.PopN(arity)
		span   = spanOf(append(args, op))
		result Token
		err    error
	)
	//
	switch op.Op {
	case And, Or, Xor, Concat:
		result, err = bitwise(op, span, args[0], args[1])
	case Div:
		result, err = divide(op, span, args[0], args[1])
	case EQ, NEQ:
		result, err = equality(op, span, args[0], args[1])
	case GT, LT:
		result, err = ordering(op, span, args[0], args[1])
	case Parity:
		result, err = parity(op, span, args[0])
	default:
		return newError(InternalError, op.Span(), "unknown operator '%s'", op.Op)
	}
	//
	if err == nil {
		values.Push(result)
	}
	//
	return err
}

func bitwise(op Operator, span source.Span, lhs, rhs Token) (Token, error) {
	l, lok := lhs.(Binary)
	r, rok := rhs.(Binary)
	//
	if !lok || !rok {
		return nil, mismatch(op, lhs, rhs)
	}
	//
	var value binary.Number
	//
	switch op.Op {
	case And:
		value = l.Value.And(r.Value)
	case Or:
		value = l.Value.Or(r.Value)
	case Xor:
		value = l.Value.Xor(r.Value)
	default:
		value = l.Value.Concat(r.Value)
	}
	//
	return NewBinary(value, span), nil
}

func divide(op Operator, span source.Span, lhs, rhs Token) (Token, error) {
	dividend, lok := lhs.(Binary)
	divisor, rok := rhs.(Binary)
	//
	if !lok || !rok {
		return nil, mismatch(op, lhs, rhs)
	}
	//
	q, r, err := dividend.Value.Divide(divisor.Value)
	//
	if errors.Is(err, binary.ErrDivisionByZero) {
		return nil, &Error{DivisionByZero, rhs.Span(), "division by zero", err}
	} else if err != nil {
		return nil, err
	}
	//
	return NewBinaryPair(q, r, span), nil
}

func equality(op Operator, span source.Span, lhs, rhs Token) (Token, error) {
	var equal bool
	//
	switch l := lhs.(type) {
	case Binary:
		r, ok := rhs.(Binary)
		if !ok {
			return nil, mismatch(op, lhs, rhs)
		}
		//
		equal = l.Value.Equal(r.Value)
	case Number:
		r, ok := rhs.(Number)
		if !ok {
			return nil, mismatch(op, lhs, rhs)
		}
		//
		equal = l.Value == r.Value
	case Boolean:
		r, ok := rhs.(Boolean)
		if !ok {
			return nil, mismatch(op, lhs, rhs)
		}
		//
		equal = l.Value == r.Value
	default:
		return nil, mismatch(op, lhs, rhs)
	}
	//
	return NewBoolean(equal == (op.Op == EQ), span), nil
}

func ordering(op Operator, span source.Span, lhs, rhs Token) (Token, error) {
	var c int
	//
	switch l := lhs.(type) {
	case Binary:
		r, ok := rhs.(Binary)
		if !ok {
			return nil, mismatch(op, lhs, rhs)
		}
		//
		c = l.Value.Cmp(r.Value)
	case Number:
		r, ok := rhs.(Number)
		if !ok {
			return nil, mismatch(op, lhs, rhs)
		}
		//
		c = cmp.Compare(l.Value, r.Value)
	default:
		return nil, mismatch(op, lhs, rhs)
	}
	//
	if op.Op == GT {
		return NewBoolean(c > 0, span), nil
	}
	//
	return NewBoolean(c < 0, span), nil
}

func parity(op Operator, span source.Span, arg Token) (Token, error) {
	if b, ok := arg.(Binary); ok {
		return NewNumber(int64(b.Value.Parity()), span), nil
	}
	//
	return nil, newError(TypeMismatch, arg.Span(), "cannot perform '%s' on operand of type %s",
		op.Op, arg.TypeName())
}

func mismatch(op Operator, lhs, rhs Token) *Error {
	return newError(TypeMismatch, lhs.Span().Join(rhs.Span()), "cannot perform '%s' on operands of type %s and %s",
		op.Op, lhs.TypeName(), rhs.TypeName())
}

// Determine the smallest span enclosing all the given tokens.
func spanOf(tokens []Token) source.Span {
	if len(tokens) == 0 {
		return source.NewSpan(0, 0)
	}
	//
	span := tokens[0].Span()
	//
	for _, t := range tokens[1:] {
		span = span.Join(t.Span())
	}
	//
	return span
}
