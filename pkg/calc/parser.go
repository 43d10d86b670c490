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
	"github.com/consensys/go-bincalc/pkg/util/collection/stack"
)

// ToPostfix reorders a sequence of infix tokens into postfix (Reverse Polish)
// order using the shunting-yard algorithm.  Parentheses are matched and
// removed.  Operators of equal precedence associate to the left.
func ToPostfix(tokens []Token) ([]Token, error) {
	var (
		output    = make([]Token, 0, len(tokens))
		operators = stack.NewStack[Operator]()
	)
	//
	for _, t := range tokens {
		op, ok := t.(Operator)
		// values go straight through
		if !ok {
			output = append(output, t)
			continue
		}
		//
		switch {
		case op.Op == LParen:
			operators.Push(op)
		case op.Op == RParen:
			// pop until matching '('
			operators.Drain(func(top Operator) bool {
				if top.Op == LParen {
					return false
				}
				//
				output = append(output, top)
				//
				return true
			})
			//
			if operators.IsEmpty() {
				return nil, newError(UnbalancedParens, op.Span(), "found ')' without matching '('")
			}
			// discard '('
			operators.Pop()
		case operators.IsEmpty() || op.Op.Precedence() > operators.Peek(0).Op.Precedence():
			operators.Push(op)
		default:
			for !operators.IsEmpty() && operators.Peek(0).Op.Precedence() >= op.Op.Precedence() {
				output = append(output, operators.Pop())
			}
			//
			operators.Push(op)
		}
	}
	// Flush remaining operators
	for !operators.IsEmpty() {
		top := operators.Pop()
		//
		if top.Op == LParen {
			return nil, newError(UnbalancedParens, top.Span(), "found '(' without matching ')'")
		}
		//
		output = append(output, top)
	}
	//
	return output, nil
}
