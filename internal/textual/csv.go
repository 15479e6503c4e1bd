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

package textual

import (
	"bufio"
	"io"
	"strings"

	"github.com/arrowarc/arrowarc/internal/column"
)

// QuoteCSVField quotes s iff it contains a quote, the delimiter, or a line
// terminator, doubling any interior quotes (spec.md §4.2). Passing the
// actual delimiter in use, not just ',', matters for --delimiter values
// other than comma.
func QuoteCSVField(s string, delimiter byte) string {
	if strings.ContainsAny(s, "\"\n\r") || strings.IndexByte(s, delimiter) >= 0 {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// WriteCSV writes table as delimited text: a header row of column names,
// then one row per record, LF-terminated, with no trailing newline after
// the final row (spec.md §4.2).
func WriteCSV(w io.Writer, table *column.Table, delimiter byte) error {
	bw := bufio.NewWriter(w)

	for i, col := range table.Columns {
		if i > 0 {
			if err := bw.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(QuoteCSVField(col.Name, delimiter)); err != nil {
			return err
		}
	}

	textualizers := make([]Textualizer, table.NumColumns())
	for i, col := range table.Columns {
		textualizers[i] = New(col)
	}

	rows := table.NumRows()
	for r := 0; r < rows; r++ {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		for c, tx := range textualizers {
			if c > 0 {
				if err := bw.WriteByte(delimiter); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(QuoteCSVField(tx.CSV(r), delimiter)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
