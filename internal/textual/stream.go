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

	"github.com/arrowarc/arrowarc/internal/column"
)

// CSVStreamWriter and JSONStreamWriter render a table one batch at a time,
// so a caller projecting a Parquet file never has to hold more than one
// row-group's worth of rows in memory to produce CSV/JSON output
// (parquet-to-text-stream, spec.md §5).

// CSVStreamWriter writes the header on the first WriteBatch call and then
// rows as they arrive; the result is byte-identical to calling WriteCSV
// once on a table holding every batch's rows.
type CSVStreamWriter struct {
	bw          *bufio.Writer
	delimiter   byte
	wroteHeader bool
}

// NewCSVStreamWriter creates a CSVStreamWriter writing to w.
func NewCSVStreamWriter(w io.Writer, delimiter byte) *CSVStreamWriter {
	return &CSVStreamWriter{bw: bufio.NewWriter(w), delimiter: delimiter}
}

// WriteBatch renders every row of table, writing the header first if this
// is the first batch seen that has at least one column (even when it has
// zero rows).
func (s *CSVStreamWriter) WriteBatch(table *column.Table) error {
	if !s.wroteHeader && table.NumColumns() > 0 {
		for i, col := range table.Columns {
			if i > 0 {
				if err := s.bw.WriteByte(s.delimiter); err != nil {
					return err
				}
			}
			if _, err := s.bw.WriteString(QuoteCSVField(col.Name, s.delimiter)); err != nil {
				return err
			}
		}
		s.wroteHeader = true
	}

	textualizers := make([]Textualizer, table.NumColumns())
	for i, col := range table.Columns {
		textualizers[i] = New(col)
	}

	rows := table.NumRows()
	for r := 0; r < rows; r++ {
		if err := s.bw.WriteByte('\n'); err != nil {
			return err
		}
		for c, tx := range textualizers {
			if c > 0 {
				if err := s.bw.WriteByte(s.delimiter); err != nil {
					return err
				}
			}
			if _, err := s.bw.WriteString(QuoteCSVField(tx.CSV(r), s.delimiter)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes any buffered output.
func (s *CSVStreamWriter) Close() error {
	return s.bw.Flush()
}

// JSONStreamWriter writes a single top-level JSON array of row objects
// across however many batches WriteBatch is called with; the result is
// byte-identical to calling WriteJSONLines once on a table holding every
// batch's rows.
type JSONStreamWriter struct {
	bw        *bufio.Writer
	keys      []string
	openedArr bool
	wroteRow  bool
}

// NewJSONStreamWriter creates a JSONStreamWriter writing to w.
func NewJSONStreamWriter(w io.Writer) *JSONStreamWriter {
	return &JSONStreamWriter{bw: bufio.NewWriter(w)}
}

func (s *JSONStreamWriter) ensureOpen(table *column.Table) error {
	if s.openedArr {
		return nil
	}
	if err := s.bw.WriteByte('['); err != nil {
		return err
	}
	s.openedArr = true

	keys := make([]string, table.NumColumns())
	for i, col := range table.Columns {
		key, err := marshalJSONString(col.Name)
		if err != nil {
			return err
		}
		keys[i] = key
	}
	s.keys = keys
	return nil
}

// WriteBatch renders every row of table as a JSON object keyed by column
// name, opening the top-level array on the first call.
func (s *JSONStreamWriter) WriteBatch(table *column.Table) error {
	if err := s.ensureOpen(table); err != nil {
		return err
	}

	textualizers := make([]Textualizer, table.NumColumns())
	for i, col := range table.Columns {
		textualizers[i] = New(col)
	}

	rows := table.NumRows()
	for r := 0; r < rows; r++ {
		if s.wroteRow {
			if err := s.bw.WriteByte(','); err != nil {
				return err
			}
		}
		s.wroteRow = true

		if err := s.bw.WriteByte('{'); err != nil {
			return err
		}
		for c, tx := range textualizers {
			if c > 0 {
				if err := s.bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := s.bw.WriteString(s.keys[c]); err != nil {
				return err
			}
			if err := s.bw.WriteByte(':'); err != nil {
				return err
			}
			if _, err := s.bw.WriteString(tx.JSON(r)); err != nil {
				return err
			}
		}
		if err := s.bw.WriteByte('}'); err != nil {
			return err
		}
	}
	return nil
}

// Close writes the closing "]" (opening it first if WriteBatch was never
// called, so a zero-row-group input still renders "[]") and flushes.
func (s *JSONStreamWriter) Close() error {
	if !s.openedArr {
		if err := s.bw.WriteByte('['); err != nil {
			return err
		}
	}
	if err := s.bw.WriteByte(']'); err != nil {
		return err
	}
	return s.bw.Flush()
}
