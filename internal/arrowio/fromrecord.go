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

	"github.com/arrowarc/arrowarc/internal/column"
)

// AppendRecord appends every row of rec onto table, creating columns from
// rec's schema on the first call. Used by parquet-to-text-stream, which
// renders each batch through internal/textual, and by internal/pdiff, which
// compares row groups value by value, rather than a raw arrow.Record
// passthrough.
func AppendRecord(table *column.Table, rec arrow.Record) error {
	if len(table.Columns) == 0 {
		for _, field := range rec.Schema().Fields() {
			col, err := columnFromField(field)
			if err != nil {
				return err
			}
			table.Columns = append(table.Columns, col)
		}
	}
	if len(table.Columns) != int(rec.NumCols()) {
		return fmt.Errorf("arrowio: record has %d columns, table has %d", rec.NumCols(), len(table.Columns))
	}

	for i, col := range table.Columns {
		if err := appendArray(col, rec.Column(i)); err != nil {
			return fmt.Errorf("arrowio: column %q: %w", col.Name, err)
		}
	}
	return nil
}

func columnFromField(field arrow.Field) (*column.Column, error) {
	switch t := field.Type.(type) {
	case *arrow.Int8Type:
		return column.New(field.Name, column.Int8), nil
	case *arrow.Int16Type:
		return column.New(field.Name, column.Int16), nil
	case *arrow.Int32Type:
		return column.New(field.Name, column.Int32), nil
	case *arrow.Int64Type:
		return column.New(field.Name, column.Int64), nil
	case *arrow.Uint8Type:
		return column.New(field.Name, column.Uint8), nil
	case *arrow.Uint16Type:
		return column.New(field.Name, column.Uint16), nil
	case *arrow.Uint32Type:
		return column.New(field.Name, column.Uint32), nil
	case *arrow.Uint64Type:
		return column.New(field.Name, column.Uint64), nil
	case *arrow.Float32Type:
		return column.New(field.Name, column.Float32), nil
	case *arrow.Float64Type:
		return column.New(field.Name, column.Float64), nil
	case *arrow.StringType:
		return column.New(field.Name, column.Utf8), nil
	case *arrow.Date32Type:
		return column.New(field.Name, column.Date32), nil
	case *arrow.TimestampType:
		unit, err := fromArrowTimeUnit(t.Unit)
		if err != nil {
			return nil, err
		}
		return column.NewTimestamp(field.Name, unit, t.TimeZone == ""), nil
	case *arrow.DictionaryType:
		if _, ok := t.ValueType.(*arrow.StringType); !ok {
			return nil, fmt.Errorf("unsupported dictionary value type %s for column %q", t.ValueType, field.Name)
		}
		return column.New(field.Name, column.Dictionary), nil
	default:
		return nil, fmt.Errorf("unsupported arrow type %s for column %q", field.Type, field.Name)
	}
}

func fromArrowTimeUnit(u arrow.TimeUnit) (column.TimeUnit, error) {
	switch u {
	case arrow.Millisecond:
		return column.Millisecond, nil
	case arrow.Microsecond:
		return column.Microsecond, nil
	case arrow.Nanosecond:
		return column.Nanosecond, nil
	default:
		return 0, fmt.Errorf("unsupported arrow time unit %s", u)
	}
}

func appendArray(col *column.Column, arr arrow.Array) error {
	n := arr.Len()
	switch a := arr.(type) {
	case *array.Int8:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), int64(a.Value(i)))
		}
	case *array.Int16:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), int64(a.Value(i)))
		}
	case *array.Int32:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), int64(a.Value(i)))
		}
	case *array.Int64:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), a.Value(i))
		}
	case *array.Uint8:
		for i := 0; i < n; i++ {
			appendUintOrNull(col, a.IsNull(i), uint64(a.Value(i)))
		}
	case *array.Uint16:
		for i := 0; i < n; i++ {
			appendUintOrNull(col, a.IsNull(i), uint64(a.Value(i)))
		}
	case *array.Uint32:
		for i := 0; i < n; i++ {
			appendUintOrNull(col, a.IsNull(i), uint64(a.Value(i)))
		}
	case *array.Uint64:
		for i := 0; i < n; i++ {
			appendUintOrNull(col, a.IsNull(i), a.Value(i))
		}
	case *array.Float32:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				col.AppendNull()
				continue
			}
			col.AppendFloat32(a.Value(i))
		}
	case *array.Float64:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				col.AppendNull()
				continue
			}
			col.AppendFloat64(a.Value(i))
		}
	case *array.String:
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				col.AppendNull()
				continue
			}
			col.AppendString(a.Value(i))
		}
	case *array.Date32:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), int64(a.Value(i)))
		}
	case *array.Timestamp:
		for i := 0; i < n; i++ {
			appendIntOrNull(col, a.IsNull(i), int64(a.Value(i)))
		}
	case *array.Dictionary:
		values, ok := a.Dictionary().(*array.String)
		if !ok {
			return fmt.Errorf("unsupported dictionary value array type %T", a.Dictionary())
		}
		for i := 0; i < n; i++ {
			if a.IsNull(i) {
				col.AppendNull()
				continue
			}
			idx := col.Values.Len()
			col.Values.AppendString(values.Value(a.GetValueIndex(i)))
			col.AppendDictIndex(int32(idx))
		}
	default:
		return fmt.Errorf("unsupported array type %T", arr)
	}
	return nil
}

func appendIntOrNull(col *column.Column, isNull bool, v int64) {
	if isNull {
		col.AppendNull()
		return
	}
	col.AppendInt(v)
}

func appendUintOrNull(col *column.Column, isNull bool, v uint64) {
	if isNull {
		col.AppendNull()
		return
	}
	col.AppendUint(v)
}
