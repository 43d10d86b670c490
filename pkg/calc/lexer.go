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
	"errors"
	"unicode"

	"github.com/consensys/go-bincalc/pkg/binary"
	"github.com/consensys/go-bincalc/pkg/util/source"
	"github.com/consensys/go-bincalc/pkg/util/source/lex"
)

// Operator tokens use their Op as their kind, hence the remaining kinds start
// after the last operator.
const (
	endOfKind uint = uint(RParen) + 1 + iota
	whitespaceKind
	literalKind
)

// lexing rules
var rules = []lex.LexRule[rune]{
	lex.Rule(lex.Many(lex.Is(unicode.IsSpace)), whitespaceKind),
	lex.Rule(lex.Many(lex.Within('0', '1')), literalKind),
	lex.Rule(lex.Unit('&'), uint(And)),
	lex.Rule(lex.Unit('|'), uint(Or)),
	lex.Rule(lex.Unit('^'), uint(Xor)),
	lex.Rule(lex.Unit('/'), uint(Div)),
	lex.Rule(lex.Unit('.'), uint(Concat)),
	lex.Rule(lex.Unit('=', '='), uint(EQ)),
	lex.Rule(lex.Unit('!', '='), uint(NEQ)),
	lex.Rule(lex.Unit('>'), uint(GT)),
	lex.Rule(lex.Unit('<'), uint(LT)),
	lex.Rule(lex.Unit('p'), uint(Parity)),
	lex.Rule(lex.Unit('('), uint(LParen)),
	lex.Rule(lex.Unit(')'), uint(RParen)),
	lex.Rule(lex.Eof[rune](), endOfKind),
}

// Lex splits an expression into a sequence of operator and binary literal
// tokens.  Whitespace separates tokens but does not end a literal, hence "10 1"
// is the single literal 101.  A literal is only terminated by an operator, a
// parenthesis or the end of input.
func Lex(expr string) ([]Token, error) {
	var (
		items   = []rune(expr)
		lexer   = lex.NewLexer(items, rules...).Skip(whitespaceKind)
		tokens  []Token
		pending literalBuffer
	)
	//
	for next, ok := lexer.Next(); ok; next, ok = lexer.Next() {
		if next.Kind == literalKind {
			pending.add(lexer.Items(next), next.Span)
			continue
		}
		// Anything else terminates the pending literal (if any)
		if tok, err := pending.flush(); err != nil {
			return nil, err
		} else if tok != nil {
			tokens = append(tokens, tok)
		}
		//
		if next.Kind != endOfKind {
			tokens = append(tokens, NewOperator(Op(next.Kind), next.Span))
		}
	}
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		return nil, unknownCharacter(items, int(lexer.Index()))
	}
	//
	return tokens, nil
}

// Report the character at a given index which could not be lexed.  Partial
// operators are reported against the character which should have completed
// them.
func unknownCharacter(items []rune, index int) *Error {
	var (
		c    = items[index]
		span = source.NewSpan(index, index+1)
	)
	//
	if c != '=' && c != '!' {
		return newError(InvalidCharacter, span, "invalid input character '%c'", c)
	} else if index+1 == len(items) {
		return newError(InvalidCharacter, source.NewSpan(index+1, index+1),
			"unexpected end of input after '%c', expected '='", c)
	}
	//
	return newError(InvalidCharacter, source.NewSpan(index+1, index+2),
		"invalid input character '%c' after '%c', expected '='", items[index+1], c)
}

// literalBuffer accumulates the digits of a binary literal, which may be split
// by whitespace.
type literalBuffer struct {
	digits []rune
	span   source.Span
}

func (p *literalBuffer) add(digits []rune, span source.Span) {
	if len(p.digits) == 0 {
		p.span = span
	} else {
		p.span = p.span.Join(span)
	}
	//
	p.digits = append(p.digits, digits...)
}

// Flush the buffer, producing a binary token if it was non-empty.
func (p *literalBuffer) flush() (Token, error) {
	if len(p.digits) == 0 {
		return nil, nil
	}
	//
	value, err := binary.Parse(string(p.digits))
	p.digits = p.digits[:0]
	//
	if errors.Is(err, binary.ErrInvalidLiteral) {
		return nil, &Error{InvalidLiteral, p.span, err.Error(), err}
	} else if err != nil {
		return nil, err
	}
	//
	return NewBinary(value, p.span), nil
}
