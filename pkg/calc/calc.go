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

// Package calc evaluates textual expressions over unsigned binary numbers.  An
// expression is lexed into tokens, reordered into postfix form and then folded
// over a value stack:
//
//	"101 | 010"   => 111 7
//	"101 / 010"   => 10 R1 2 R1
//	"p (101.010)" => 3
//
// Evaluation is pure and holds no state between calls.  Every failure is
// reported as an *Error, identifying its kind and the offending characters.
package calc

// Evaluate an expression to a single value.
func Evaluate(expr string) (Token, error) {
	tokens, err := Lex(expr)
	if err != nil {
		return nil, err
	}
	//
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	//
	return EvaluatePostfix(postfix)
}

// EvaluateString evaluates an expression and formats the result for display.
func EvaluateString(expr string) (string, error) {
	result, err := Evaluate(expr)
	if err != nil {
		return "", err
	}
	//
	return Format(result), nil
}
