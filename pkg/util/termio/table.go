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
package termio

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// TablePrinter is useful for printing tables to the terminal.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new table with a given number of columns.  Rows
// are added as they are needed.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil}
}

// AddRow appends a row to this table.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) != len(p.widths) {
		panic("incorrect number of columns")
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(utf8.RuneCountInString(val)))
	}
	//
	p.rows = append(p.rows, vals)
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// Print the table to a given writer, with each column left-aligned and
// padded to its widest entry.
func (p *TablePrinter) Print(w io.Writer) error {
	for _, row := range p.rows {
		var line strings.Builder
		//
		for j, col := range row {
			if j != 0 {
				line.WriteString(" | ")
			}
			//
			line.WriteString(col)
			// Pad all but the final column
			if j+1 < len(row) {
				line.WriteString(strings.Repeat(" ", int(p.widths[j])-utf8.RuneCountInString(col)))
			}
		}
		//
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	//
	return nil
}
