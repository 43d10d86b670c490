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

	"github.com/consensys/go-bincalc/pkg/calc"
	"github.com/consensys/go-bincalc/pkg/util/source"
	"github.com/consensys/go-bincalc/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evaluator evaluates expressions on behalf of a command, reporting results
// and errors.
type evaluator struct {
	cache *resultCache
	// Whether or not to use ANSI escapes when reporting errors.
	colour bool
}

// Construct an evaluator configured from the flags of a given command.
func newEvaluator(cmd *cobra.Command) *evaluator {
	cache, err := newResultCache(GetUint(cmd, "cache"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	colour := GetFlag(cmd, "colour") && termio.IsTerminal(os.Stdout)
	//
	return &evaluator{cache, colour}
}

// Evaluate an expression and write its result to a given writer, or report
// the error.  This returns true if evaluation succeeded.
func (p *evaluator) run(w io.Writer, expr string) bool {
	output, err := p.cache.Evaluate(expr)
	//
	if err != nil {
		p.report(w, expr, err)
		return false
	}
	//
	fmt.Fprintln(w, output)
	//
	return true
}

// Report an evaluation error with the offending part of the expression
// highlighted.
func (p *evaluator) report(w io.Writer, expr string, err error) {
	var (
		e      *calc.Error
		escape = termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	)
	//
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "%s %s\n", escape.Wrap("error:", p.colour), err)
		return
	}
	//
	log.Debug(fmt.Sprintf("%s at %s in %q", e.Kind, e.Span, expr))
	//
	fmt.Fprintf(w, "%s %s\n", escape.Wrap("error:", p.colour), e.Error())
	fmt.Fprintln(w, source.Highlight([]rune(expr), e.Span))
}
