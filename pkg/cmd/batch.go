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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-bincalc/pkg/mmap"
	"github.com/consensys/go-bincalc/pkg/util/termio"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] [file(s)]",
	Short: "Evaluate expressions line-by-line.",
	Long: `Evaluate one expression per line, reading from the given files or from
standard input when no files are given.  Blank lines are ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			stats batchStats
			cfg   = batchConfig{
				keepGoing: GetFlag(cmd, "keep-going"),
				echo:      GetFlag(cmd, "echo"),
			}
		)
		//
		configureLogging(cmd)
		//
		eval := newEvaluator(cmd)
		//
		if len(args) == 0 {
			if termio.IsTerminal(os.Stdin) {
				log.Info("reading expressions from standard input (use ctrl-d to finish)")
			}
			//
			s, err := runBatch(eval, os.Stdin, os.Stdout, cfg)
			stats.add(s)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
		//
		for _, filename := range args {
			s, err := batchFile(eval, filename, cfg)
			stats.add(s)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			} else if !cfg.keepGoing && s.failed > 0 {
				break
			}
		}
		//
		log.Debugf("evaluated %s expression(s), %s failed (%s cache hits)",
			humanize.Comma(int64(stats.total)), humanize.Comma(int64(stats.failed)),
			humanize.Comma(int64(eval.cache.Hits())))
		//
		if stats.failed > 0 {
			os.Exit(4)
		}
	},
}

// batchConfig determines how a batch of expressions is processed.
type batchConfig struct {
	// Continue past the first failing expression.
	keepGoing bool
	// Print each expression before its result.
	echo bool
}

// batchStats records how many expressions were evaluated and how many failed.
type batchStats struct {
	total  uint
	failed uint
}

func (p *batchStats) add(other batchStats) {
	p.total += other.total
	p.failed += other.failed
}

// Evaluate all expressions in a given file, which is memory mapped for
// reading.
func batchFile(eval *evaluator, filename string, cfg batchConfig) (batchStats, error) {
	file, err := mmap.Open(filename)
	if err != nil {
		return batchStats{}, err
	}
	//
	defer file.Close()
	//
	log.Debugf("mapped %s (%s)", file.Path(), humanize.Bytes(uint64(file.Size())))
	//
	return runBatch(eval, file.Reader(), os.Stdout, cfg)
}

// Evaluate each non-blank line read from r as an expression, writing results
// (or errors) to w.  Evaluation stops at the first failure unless keepGoing is
// set.  An error is returned only when reading fails.
func runBatch(eval *evaluator, r io.Reader, w io.Writer, cfg batchConfig) (batchStats, error) {
	var (
		stats   batchStats
		scanner = bufio.NewScanner(r)
		lineno  uint
	)
	//
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lineno++
		//
		if strings.TrimSpace(line) == "" {
			continue
		} else if cfg.echo {
			fmt.Fprintf(w, "%s = ", line)
		}
		//
		stats.total++
		//
		if !eval.run(w, line) {
			log.Debugf("evaluation failed on line %d", lineno)
			stats.failed++
			//
			if !cfg.keepGoing {
				break
			}
		}
	}
	//
	return stats, scanner.Err()
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolP("keep-going", "k", false, "continue after an expression fails")
	batchCmd.Flags().Bool("echo", false, "print each expression before its result")
}
