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

// Package pdiff implements the structural-then-value walk behind
// parquet-diff: row-group count, column count, column names, physical
// types, logical types, row-group row counts, and finally every value, in
// that order, stopping at the first disagreement. The comparison style
// (favoring direct, typed equality checks over a generic deep-equal) is
// grounded in internal/testutil/cmp.go's per-kind comparers, generalized
// from "are these two Go values equal" to "are these two Parquet files
// equal" and narrated as a unified-diff-style report instead of a bool.
package pdiff

import (
	"context"
	"fmt"
	"io"

	"github.com/arrowarc/arrowarc/internal/arrowio"
	"github.com/arrowarc/arrowarc/internal/column"
	"github.com/arrowarc/arrowarc/internal/parquetio"
	"github.com/arrowarc/arrowarc/internal/textual"
)

// Compare opens path1 and path2 and returns the first structural or value
// disagreement as a unified-diff-style report (empty string means the
// files are considered equal). The only errors returned are open/read
// failures, including errs.ErrInvalidParquet; a structural or value
// mismatch is reported in the return string, not as an error.
func Compare(ctx context.Context, path1, path2 string) (string, error) {
	r1, err := parquetio.Open(path1, parquetio.Options{})
	if err != nil {
		return "", fmt.Errorf("pdiff: %s: %w", path1, err)
	}
	defer r1.Close()

	r2, err := parquetio.Open(path2, parquetio.Options{})
	if err != nil {
		return "", fmt.Errorf("pdiff: %s: %w", path2, err)
	}
	defer r2.Close()

	if diff := compareInt("Number of row groups", r1.NumRowGroups(), r2.NumRowGroups()); diff != "" {
		return diff, nil
	}
	if diff := compareInt("Number of columns", r1.NumColumns(), r2.NumColumns()); diff != "" {
		return diff, nil
	}

	numColumns := r1.NumColumns()
	for c := 0; c < numColumns; c++ {
		if diff := compareStr(fmt.Sprintf("Column %d name", c), r1.ColumnName(c), r2.ColumnName(c)); diff != "" {
			return diff, nil
		}
	}
	for c := 0; c < numColumns; c++ {
		label := fmt.Sprintf("Column %d (%s) physical type", c, r1.ColumnName(c))
		if diff := compareStr(label, r1.ColumnPhysicalType(c), r2.ColumnPhysicalType(c)); diff != "" {
			return diff, nil
		}
	}
	for c := 0; c < numColumns; c++ {
		label := fmt.Sprintf("Column %d (%s) logical type", c, r1.ColumnName(c))
		if diff := compareStr(label, r1.ColumnLogicalType(c), r2.ColumnLogicalType(c)); diff != "" {
			return diff, nil
		}
	}

	numRowGroups := r1.NumRowGroups()
	for g := 0; g < numRowGroups; g++ {
		label := fmt.Sprintf("RowGroup %d number of rows", g)
		if diff := compareInt64(label, r1.RowGroupNumRows(g), r2.RowGroupNumRows(g)); diff != "" {
			return diff, nil
		}
	}

	for g := 0; g < numRowGroups; g++ {
		table1, err := readRowGroup(ctx, r1, g)
		if err != nil {
			return "", fmt.Errorf("pdiff: %s: row group %d: %w", path1, g, err)
		}
		table2, err := readRowGroup(ctx, r2, g)
		if err != nil {
			return "", fmt.Errorf("pdiff: %s: row group %d: %w", path2, g, err)
		}

		rows := int(r1.RowGroupNumRows(g))
		for c := 0; c < numColumns; c++ {
			col1, col2 := table1.Columns[c], table2.Columns[c]
			for row := 0; row < rows; row++ {
				if diff := compareValue(g, c, row, col1, col2); diff != "" {
					return diff, nil
				}
			}
		}
	}

	return "", nil
}

func readRowGroup(ctx context.Context, r *parquetio.Reader, g int) (*column.Table, error) {
	stream, err := r.StreamRowGroup(ctx, g)
	if err != nil {
		return nil, err
	}
	table := &column.Table{}
	for {
		rec, err := stream.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		err = arrowio.AppendRecord(table, rec)
		rec.Release()
		if err != nil {
			return nil, err
		}
	}
	return table, nil
}

func compareInt(label string, a, b int) string {
	if a == b {
		return ""
	}
	return fmt.Sprintf("%s:\n-%d\n+%d\n", label, a, b)
}

func compareInt64(label string, a, b int64) string {
	if a == b {
		return ""
	}
	return fmt.Sprintf("%s:\n-%d\n+%d\n", label, a, b)
}

func compareStr(label string, a, b string) string {
	if a == b {
		return ""
	}
	return fmt.Sprintf("%s:\n-%s\n+%s\n", label, a, b)
}

// compareValue implements spec §4.5 item 7: integers and floats decimal
// (floats via shortest round-trip), utf8/dictionary byte-exact, date and
// timestamp as the raw stored integer rather than their rendered form, and
// a null-vs-value mismatch rendered as an empty side.
func compareValue(rowGroup, col, row int, a, b *column.Column) string {
	aNull, bNull := a.IsNull(row), b.IsNull(row)
	if aNull && bNull {
		return ""
	}

	equal := !aNull && !bNull && rawEqual(a, b, row)
	if equal {
		return ""
	}

	label := fmt.Sprintf("RowGroup %d, Column %d, Row %d", rowGroup, col, row)
	return fmt.Sprintf("%s:\n-%s\n+%s\n", label, rawRender(a, row), rawRender(b, row))
}

func rawEqual(a, b *column.Column, row int) bool {
	switch a.Type {
	case column.Int8, column.Int16, column.Int32, column.Int64, column.Date32, column.Timestamp:
		return a.Int(row) == b.Int(row)
	case column.Uint8, column.Uint16, column.Uint32, column.Uint64:
		return a.Uint(row) == b.Uint(row)
	case column.Float32:
		return a.Float32(row) == b.Float32(row)
	case column.Float64:
		return a.Float64(row) == b.Float64(row)
	case column.Utf8:
		return a.String(row) == b.String(row)
	case column.Dictionary:
		return a.DictString(row) == b.DictString(row)
	default:
		return false
	}
}

// rawRender renders col's value at row the way spec §4.5 wants it: dates
// and timestamps as their raw stored integer, not the ISO form
// internal/textual would produce for conversion output.
func rawRender(col *column.Column, row int) string {
	if col.IsNull(row) {
		return ""
	}
	switch col.Type {
	case column.Int8, column.Int16, column.Int32, column.Int64, column.Date32, column.Timestamp:
		return fmt.Sprintf("%d", col.Int(row))
	case column.Uint8, column.Uint16, column.Uint32, column.Uint64:
		return fmt.Sprintf("%d", col.Uint(row))
	case column.Float32:
		return textual.FormatFloat(float64(col.Float32(row)), 32)
	case column.Float64:
		return textual.FormatFloat(col.Float64(row), 64)
	case column.Utf8:
		return col.String(row)
	case column.Dictionary:
		return col.DictString(row)
	default:
		return ""
	}
}
