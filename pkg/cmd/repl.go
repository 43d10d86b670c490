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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bincalc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively.",
	Long: `Start an interactive session, evaluating each line entered as an
expression.  Type "exit" or "quit" (or ctrl-d) to finish.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		//
		if !termio.IsTerminal(os.Stdin) {
			fmt.Println("repl requires an interactive terminal (try \"batch\")")
			os.Exit(2)
		}
		//
		eval := newEvaluator(cmd)
		//
		terminal, err := termio.NewTerminal("> ")
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		err = repl(eval, terminal)
		// Restore terminal state before reporting anything
		if rerr := terminal.Restore(); rerr != nil {
			log.Warn(rerr)
		}
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// console captures what the repl needs from a terminal.
type console interface {
	io.Writer
	ReadLine() (string, error)
}

// Read expressions from a console until the user exits, evaluating each one
// and writing its result back.
func repl(eval *evaluator, c console) error {
	for {
		line, err := c.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		//
		eval.run(c, line)
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(replCmd)
}
