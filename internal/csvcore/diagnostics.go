// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package csvcore

import (
	"fmt"
	"io"
)

// Diagnostics accumulates the four independent warning counters the parser
// can raise, in the fixed stdout order spec.md §4.1 pins: rows skipped,
// columns skipped, values truncated, then quote repairs.
type Diagnostics struct {
	rowLimit    int
	columnLimit int
	byteLimit   int

	rowsSkipped    int
	columnsSkipped int

	truncatedCount int
	truncatedRow   int
	truncatedCol   int

	misplacedCount int
	misplacedRow   int
	misplacedCol   int

	missingEndQuote bool
}

func newDiagnostics(caps Caps) *Diagnostics {
	return &Diagnostics{
		rowLimit:    caps.MaxRows,
		columnLimit: caps.MaxColumns,
		byteLimit:   caps.MaxBytesPerValue,
	}
}

func (d *Diagnostics) recordTruncated(row, col int) {
	if d.truncatedCount == 0 {
		d.truncatedRow, d.truncatedCol = row, col
	}
	d.truncatedCount++
}

func (d *Diagnostics) recordMisplaced(row, col int) {
	if d.misplacedCount == 0 {
		d.misplacedRow, d.misplacedCol = row, col
	}
	d.misplacedCount++
}

func (d *Diagnostics) recordMissingEndQuote() {
	d.missingEndQuote = true
}

// HasWarnings reports whether any diagnostic line would be emitted.
func (d *Diagnostics) HasWarnings() bool {
	return d.rowsSkipped > 0 || d.columnsSkipped > 0 || d.truncatedCount > 0 ||
		d.misplacedCount > 0 || d.missingEndQuote
}

// Lines renders the diagnostics as the fixed-order stdout lines (spec.md
// §4.1): rows, then columns, then truncation, then quote repair. Both quote
// repair kinds are independent conditions (a file can have misplaced-quote
// repairs elsewhere and also end with an unterminated quoted value), so both
// lines are emitted when both apply.
func (d *Diagnostics) Lines() []string {
	var lines []string
	if d.rowsSkipped > 0 {
		lines = append(lines, fmt.Sprintf("skipped %d rows (after row limit of %d)\n", d.rowsSkipped, d.rowLimit))
	}
	if d.columnsSkipped > 0 {
		lines = append(lines, fmt.Sprintf("skipped %d columns (after column limit of %d)\n", d.columnsSkipped, d.columnLimit))
	}
	if d.truncatedCount > 0 {
		lines = append(lines, fmt.Sprintf("truncated %d values (value byte limit is %d; see row %d column %d)\n",
			d.truncatedCount, d.byteLimit, d.truncatedRow, d.truncatedCol))
	}
	if d.misplacedCount > 0 {
		lines = append(lines, fmt.Sprintf("repaired %d values (misplaced quotation marks; see row %d column %d)\n",
			d.misplacedCount, d.misplacedRow, d.misplacedCol))
	}
	if d.missingEndQuote {
		lines = append(lines, "repaired last value (missing quotation mark)\n")
	}
	return lines
}

// WriteTo writes every diagnostic line to w, in order.
func (d *Diagnostics) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range d.Lines() {
		m, err := io.WriteString(w, line)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
