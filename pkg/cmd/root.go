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
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bincalc [flags] expression...",
	Short: "A calculator for unsigned binary numbers.",
	Long: `A calculator for expressions over unsigned binary numbers of any length.
Arguments are joined (without spaces) into a single expression, for example:

  bincalc "101 | 010"       prints 111 7
  bincalc "101 / 010"       prints 10 R1 2 R1
  bincalc "p (101 . 010)"   prints 3`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("bincalc ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			//
			return
		} else if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		//
		configureLogging(cmd)
		//
		eval := newEvaluator(cmd)
		// Arguments are concatenated without separators.
		if !eval.run(os.Stdout, strings.Join(args, "")) {
			os.Exit(4)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Uint("cache", 256, "number of results to cache (0 disables caching)")
	rootCmd.PersistentFlags().Bool("colour", true, "highlight errors using ANSI escapes (when writing to a terminal)")
}
