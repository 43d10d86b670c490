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
package source

import (
	"fmt"
	"strings"
)

// Span represents a contiguous range of characters within an expression.
// Rather than holding the text itself, it retains the physical indices so that
// errors can be reported against the original input.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start < 0 || start > end {
		panic(fmt.Sprintf("invalid span %d:%d", start, end))
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// Join returns the smallest span enclosing both this span and the given span.
func (p Span) Join(other Span) Span {
	return Span{min(p.start, other.start), max(p.end, other.end)}
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}

// Highlight renders the given (single line) text followed by a line of carets
// underneath the characters covered by span.  Empty spans (e.g. end of input)
// are highlighted with a single caret.  Spans extending beyond the text are
// clipped.
func Highlight(text []rune, span Span) string {
	var (
		builder strings.Builder
		offset  = min(span.start, len(text))
		length  = max(1, min(span.end, len(text))-offset)
	)
	//
	builder.WriteString(string(text))
	builder.WriteString("\n")
	// Print indent, preserving tabs so the carets line up.
	for _, r := range text[:offset] {
		if r == '\t' {
			builder.WriteRune('\t')
		} else {
			builder.WriteRune(' ')
		}
	}
	//
	builder.WriteString(strings.Repeat("^", length))
	//
	return builder.String()
}
