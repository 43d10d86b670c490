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
	"strconv"
)

// Format renders the result of an evaluation for display.  Binary values are
// shown as their bits followed by their decimal value (e.g. "111 7"), whilst
// division results show quotient and remainder (e.g. "10 R1 2 R1").  Numbers
// are shown in decimal and booleans as "true" or "false".
func Format(token Token) string {
	switch t := token.(type) {
	case Binary:
		return fmt.Sprintf("%s %s", t.Value, t.Value.Text(10))
	case BinaryPair:
		return fmt.Sprintf("%s R%s %s R%s", t.Quotient, t.Remainder, t.Quotient.Text(10), t.Remainder.Text(10))
	case Number:
		return strconv.FormatInt(t.Value, 10)
	case Boolean:
		return strconv.FormatBool(t.Value)
	case Operator:
		return t.Op.Symbol()
	case nil:
		return ""
	}
	//
	panic(fmt.Sprintf("unknown token %T", token))
}
