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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-bincalc/pkg/calc"
	"github.com/consensys/go-bincalc/pkg/util/termio"
	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List supported operators.",
	Long:  `List supported operators along with their precedence and arity.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := printOperators(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Print a table of all operators, highest precedence first.
func printOperators(w io.Writer) error {
	tp := termio.NewTablePrinter(4)
	tp.AddRow("symbol", "name", "precedence", "arity")
	//
	for prec := uint(4); ; prec-- {
		for _, op := range calc.Operators {
			if op.Precedence() == prec {
				tp.AddRow(op.Symbol(), op.Name(), fmt.Sprintf("%d", prec), fmt.Sprintf("%d", op.Arity()))
			}
		}
		//
		if prec == 0 {
			break
		}
	}
	//
	return tp.Print(w)
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(opsCmd)
}
