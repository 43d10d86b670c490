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
package lex

import (
	"slices"

	"github.com/consensys/go-bincalc/pkg/util/source"
)

// Token associates a kind with a given range of items in the sequence being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule is simply a rule for associating groups of items with a given
// kind.
//
// nolint
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching items to a given
// kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer provides a top-level construct for tokenising a given input sequence.
// Rules are tried in order, and the first matching rule determines the next
// token.  Lexing stops at the first position where no rule matches.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
	// Kinds of token which are matched, but never returned.
	skip []uint
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules, nil}
}

// Skip instructs the lexer to silently drop tokens of the given kinds (e.g.
// whitespace).
func (p *Lexer[T]) Skip(kinds ...uint) *Lexer[T] {
	p.skip = append(p.skip, kinds...)
	return p
}

// Index returns the current index within the items array.
func (p *Lexer[T]) Index() uint {
	return uint(min(p.index, len(p.items)))
}

// Remaining determines how many items from the original sequence were left.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next scans the next (non-skipped) token, returning false when no rule
// matches or the input is exhausted.
func (p *Lexer[T]) Next() (Token, bool) {
	for p.index <= len(p.items) {
		token, ok := p.scan()
		if !ok {
			break
		} else if !slices.Contains(p.skip, token.Kind) {
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect is a convenience function which scans all remaining tokens in one
// go, producing an array of tokens.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for token, ok := p.Next(); ok; token, ok = p.Next() {
		tokens = append(tokens, token)
	}
	//
	return tokens
}

// Items returns the items covered by a given token.
func (p *Lexer[T]) Items(token Token) []T {
	return p.items[token.Span.Start():token.Span.End()]
}

func (p *Lexer[T]) scan() (Token, bool) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.kind, source.NewSpan(p.index, end)}
			// The end of input matches with an empty span, so step past it.
			p.index = max(end, p.index+1)
			//
			return token, true
		}
	}
	//
	return Token{}, false
}
