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
	arrjson "github.com/arrowarc/arrowarc/internal/json"
)

// marshalJSONString delegates string-token escaping to goccy/go-json (via
// internal/json), with HTML escaping disabled; non-ASCII text passes
// through as UTF-8. Object/array structure and number
// formatting stay hand-rolled; see DESIGN.md.
func marshalJSONString(s string) (string, error) {
	return arrjson.MarshalString(s)
}

// WriteJSONLines writes the table as a single JSON array of row objects,
// each object keyed by column name in column order; an empty table renders
// as "[]".
func WriteJSONLines(w io.Writer, table *column.Table) error {
	bw := bufio.NewWriter(w)
	textualizers := make([]Textualizer, table.NumColumns())
	keys := make([]string, table.NumColumns())
	for i, col := range table.Columns {
		textualizers[i] = New(col)
		key, err := marshalJSONString(col.Name)
		if err != nil {
			return err
		}
		keys[i] = key
	}

	if err := bw.WriteByte('['); err != nil {
		return err
	}
	rows := table.NumRows()
	for r := 0; r < rows; r++ {
		if r > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('{'); err != nil {
			return err
		}
		for c, tx := range textualizers {
			if c > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(keys[c]); err != nil {
				return err
			}
			if err := bw.WriteByte(':'); err != nil {
				return err
			}
			if _, err := bw.WriteString(tx.JSON(r)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('}'); err != nil {
			return err
		}
	}
	if err := bw.WriteByte(']'); err != nil {
		return err
	}
	return bw.Flush()
}
