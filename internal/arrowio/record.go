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

package arrowio

import (
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/arrowarc/arrowarc/internal/column"
)

// BuildRecord materializes table as a single arrow.Record under schema. The
// caller must Release the returned record.
func BuildRecord(mem memory.Allocator, schema *arrow.Schema, table *column.Table) (arrow.Record, error) {
	cols := make([]arrow.Array, len(table.Columns))
	for i, col := range table.Columns {
		arr, err := buildArray(mem, col)
		if err != nil {
			for _, built := range cols[:i] {
				if built != nil {
					built.Release()
				}
			}
			return nil, err
		}
		cols[i] = arr
	}
	defer func() {
		for _, arr := range cols {
			arr.Release()
		}
	}()
	return array.NewRecord(schema, cols, int64(table.NumRows())), nil
}

func buildArray(mem memory.Allocator, col *column.Column) (arrow.Array, error) {
	n := col.Len()
	switch col.Type {
	case column.Int8:
		b := array.NewInt8Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(int8(col.Int(i))) })
		}
		return b.NewArray(), nil
	case column.Int16:
		b := array.NewInt16Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(int16(col.Int(i))) })
		}
		return b.NewArray(), nil
	case column.Int32:
		b := array.NewInt32Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(int32(col.Int(i))) })
		}
		return b.NewArray(), nil
	case column.Int64:
		b := array.NewInt64Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(col.Int(i)) })
		}
		return b.NewArray(), nil
	case column.Uint8:
		b := array.NewUint8Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(uint8(col.Uint(i))) })
		}
		return b.NewArray(), nil
	case column.Uint16:
		b := array.NewUint16Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(uint16(col.Uint(i))) })
		}
		return b.NewArray(), nil
	case column.Uint32:
		b := array.NewUint32Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(uint32(col.Uint(i))) })
		}
		return b.NewArray(), nil
	case column.Uint64:
		b := array.NewUint64Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(col.Uint(i)) })
		}
		return b.NewArray(), nil
	case column.Float32:
		b := array.NewFloat32Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(col.Float32(i)) })
		}
		return b.NewArray(), nil
	case column.Float64:
		b := array.NewFloat64Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(col.Float64(i)) })
		}
		return b.NewArray(), nil
	case column.Utf8:
		b := array.NewStringBuilder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(col.String(i)) })
		}
		return b.NewArray(), nil
	case column.Date32:
		b := array.NewDate32Builder(mem)
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(arrow.Date32(col.Int(i))) })
		}
		return b.NewArray(), nil
	case column.Timestamp:
		b := array.NewTimestampBuilder(mem, timestampType(col))
		defer b.Release()
		for i := 0; i < n; i++ {
			appendOrNull(b, col, i, func() { b.Append(arrow.Timestamp(col.Int(i))) })
		}
		return b.NewArray(), nil
	case column.Dictionary:
		return buildDictionaryArray(mem, col)
	default:
		return nil, fmt.Errorf("arrowio: unsupported column type %s", col.Type)
	}
}

// appendBuilder is the subset of array.Builder every typed builder above
// satisfies.
type appendBuilder interface {
	AppendNull()
}

func appendOrNull(b appendBuilder, col *column.Column, i int, appendValue func()) {
	if col.IsNull(i) {
		b.AppendNull()
		return
	}
	appendValue()
}

func buildDictionaryArray(mem memory.Allocator, col *column.Column) (arrow.Array, error) {
	dictType := &arrow.DictionaryType{
		IndexType: arrow.PrimitiveTypes.Int32,
		ValueType: arrow.BinaryTypes.String,
		Ordered:   false,
	}
	builder := array.NewDictionaryBuilder(mem, dictType, nil)
	defer builder.Release()

	strBuilder, ok := builder.(*array.BinaryDictionaryBuilder)
	if !ok {
		return nil, fmt.Errorf("arrowio: unexpected dictionary builder type %T", builder)
	}

	n := col.Len()
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			strBuilder.AppendNull()
			continue
		}
		if err := strBuilder.AppendString(col.DictString(i)); err != nil {
			return nil, fmt.Errorf("arrowio: dictionary append: %w", err)
		}
	}
	return strBuilder.NewArray(), nil
}
