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

// Package arrowio adapts a column.Table to Apache Arrow: building an
// arrow.Schema and arrow.Record from it, and writing that record to an
// Arrow IPC file, optionally LZ4- or Zstd-compressed.
package arrowio

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/arrowarc/arrowarc/internal/column"
)

// arrowType returns the arrow.DataType a column.Column should be built as.
func arrowType(col *column.Column) (arrow.DataType, error) {
	switch col.Type {
	case column.Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case column.Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case column.Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case column.Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case column.Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case column.Uint16:
		return arrow.PrimitiveTypes.Uint16, nil
	case column.Uint32:
		return arrow.PrimitiveTypes.Uint32, nil
	case column.Uint64:
		return arrow.PrimitiveTypes.Uint64, nil
	case column.Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case column.Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case column.Utf8:
		return arrow.BinaryTypes.String, nil
	case column.Date32:
		return arrow.FixedWidthTypes.Date32, nil
	case column.Timestamp:
		return timestampType(col), nil
	case column.Dictionary:
		return &arrow.DictionaryType{
			IndexType: arrow.PrimitiveTypes.Int32,
			ValueType: arrow.BinaryTypes.String,
			Ordered:   false,
		}, nil
	default:
		return nil, fmt.Errorf("arrowio: unsupported column type %s", col.Type)
	}
}

func timestampType(col *column.Column) *arrow.TimestampType {
	unit := arrow.Millisecond
	switch col.Unit {
	case column.Microsecond:
		unit = arrow.Microsecond
	case column.Nanosecond:
		unit = arrow.Nanosecond
	}
	tz := "UTC"
	if col.Naive {
		tz = ""
	}
	return &arrow.TimestampType{Unit: unit, TimeZone: tz}
}

// Schema builds the arrow.Schema describing table's columns, in order.
func Schema(table *column.Table) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(table.Columns))
	for i, col := range table.Columns {
		dt, err := arrowType(col)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: col.Name, Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}
