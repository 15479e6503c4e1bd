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

// Package column implements the growable, nullable columnar buffer shared by
// every binary in this repository: the CSV parser grows it field by field
// before a schema is known, internal/arrowio.AppendRecord fills it from the
// Parquet reader adapter's record batches, and the Arrow IPC writer and
// value textualizer both
// consume it read-only.
package column

import (
	"fmt"
)

// Type is the logical type of a Column. It is distinct from the physical
// storage used for any given Type (e.g. Int8 and Int64 both store their
// values in Column.i64).
type Type int

const (
	Int8 Type = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Utf8
	Date32
	Timestamp
	Dictionary
)

func (t Type) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Utf8:
		return "utf8"
	case Date32:
		return "date32"
	case Timestamp:
		return "timestamp"
	case Dictionary:
		return "dictionary"
	default:
		return "unknown"
	}
}

// TimeUnit is the sub-second resolution of a Timestamp column.
type TimeUnit int

const (
	Millisecond TimeUnit = iota
	Microsecond
	Nanosecond
)

// Column is a typed, nullable, growable buffer (spec.md §3). Only the
// storage slice matching Type is populated; the others stay nil.
type Column struct {
	Name string
	Type Type

	// Unit and Naive only apply when Type == Timestamp. Naive means the
	// value carries no timezone information; spec.md treats naive and UTC
	// identically for rendering purposes.
	Unit  TimeUnit
	Naive bool

	nulls []bool // nulls[i] == true iff row i is null; length always == Len()

	i64 []int64   // Int8/16/32/64, Date32 (days since epoch), Timestamp (raw ticks)
	u64 []uint64  // Uint8/16/32/64
	f32 []float32 // Float32
	f64 []float64 // Float64

	// Utf8 storage: offsets has length Len()+1; bytes [offsets[i],
	// offsets[i+1]) is the i-th value's bytes when non-null.
	offsets []int32
	data    []byte

	// Dictionary storage: indices[i] indexes into Values when non-null.
	indices []int32
	Values  *Column // nil unless Type == Dictionary; always Type == Utf8
}

// New creates an empty column of the given logical type.
func New(name string, typ Type) *Column {
	c := &Column{Name: name, Type: typ}
	if typ == Utf8 || typ == Dictionary {
		c.offsets = []int32{0}
	}
	if typ == Dictionary {
		c.Values = New(name+".dictionary", Utf8)
	}
	return c
}

// NewTimestamp creates an empty timestamp column with the given resolution.
func NewTimestamp(name string, unit TimeUnit, naive bool) *Column {
	c := New(name, Timestamp)
	c.Unit = unit
	c.Naive = naive
	return c
}

// Len reports the number of logical rows (including nulls) in the column.
func (c *Column) Len() int { return len(c.nulls) }

// IsNull reports whether row i is null. A null value slot is never
// observed by the bytes it may still hold in the typed storage slices.
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// AppendNull appends a single null row.
func (c *Column) AppendNull() {
	c.nulls = append(c.nulls, true)
	switch c.Type {
	case Int8, Int16, Int32, Int64, Date32, Timestamp:
		c.i64 = append(c.i64, 0)
	case Uint8, Uint16, Uint32, Uint64:
		c.u64 = append(c.u64, 0)
	case Float32:
		c.f32 = append(c.f32, 0)
	case Float64:
		c.f64 = append(c.f64, 0)
	case Utf8:
		c.offsets = append(c.offsets, c.offsets[len(c.offsets)-1])
	case Dictionary:
		c.indices = append(c.indices, -1)
	}
}

// AppendNulls appends n null rows; used to backfill a column that didn't
// exist when earlier rows were emitted (spec.md §4.1, "backfill").
func (c *Column) AppendNulls(n int) {
	for i := 0; i < n; i++ {
		c.AppendNull()
	}
}

// AppendInt appends a signed integer value. Valid for Int8/16/32/64 and
// Date32 (days since epoch) and Timestamp (raw ticks at the column's Unit).
func (c *Column) AppendInt(v int64) {
	c.mustBeOneOf(Int8, Int16, Int32, Int64, Date32, Timestamp)
	c.nulls = append(c.nulls, false)
	c.i64 = append(c.i64, v)
}

// AppendUint appends an unsigned integer value. Valid for Uint8/16/32/64.
func (c *Column) AppendUint(v uint64) {
	c.mustBeOneOf(Uint8, Uint16, Uint32, Uint64)
	c.nulls = append(c.nulls, false)
	c.u64 = append(c.u64, v)
}

// AppendFloat32 appends a float32 value.
func (c *Column) AppendFloat32(v float32) {
	c.mustBeOneOf(Float32)
	c.nulls = append(c.nulls, false)
	c.f32 = append(c.f32, v)
}

// AppendFloat64 appends a float64 value.
func (c *Column) AppendFloat64(v float64) {
	c.mustBeOneOf(Float64)
	c.nulls = append(c.nulls, false)
	c.f64 = append(c.f64, v)
}

// AppendString appends a utf8 value.
func (c *Column) AppendString(s string) {
	c.mustBeOneOf(Utf8)
	c.nulls = append(c.nulls, false)
	c.data = append(c.data, s...)
	c.offsets = append(c.offsets, int32(len(c.data)))
}

// AppendDictIndex appends a dictionary index; idx must already be a valid
// index into c.Values (or c.Values will be grown by the caller first via
// c.Values.AppendString).
func (c *Column) AppendDictIndex(idx int32) {
	c.mustBeOneOf(Dictionary)
	c.nulls = append(c.nulls, false)
	c.indices = append(c.indices, idx)
}

func (c *Column) mustBeOneOf(types ...Type) {
	for _, t := range types {
		if c.Type == t {
			return
		}
	}
	panic(fmt.Sprintf("column %q: operation not valid for type %s", c.Name, c.Type))
}

// Int returns the raw signed integer stored at row i (Int8/16/32/64,
// Date32, Timestamp). The result is undefined if IsNull(i).
func (c *Column) Int(i int) int64 { return c.i64[i] }

// Uint returns the raw unsigned integer stored at row i.
func (c *Column) Uint(i int) uint64 { return c.u64[i] }

// Float32 returns the float32 value at row i.
func (c *Column) Float32(i int) float32 { return c.f32[i] }

// Float64 returns the float64 value at row i.
func (c *Column) Float64(i int) float64 { return c.f64[i] }

// String returns the utf8 value at row i.
func (c *Column) String(i int) string {
	return string(c.data[c.offsets[i]:c.offsets[i+1]])
}

// DictIndex returns the dictionary index at row i.
func (c *Column) DictIndex(i int) int32 { return c.indices[i] }

// DictString returns the dictionary-decoded string at row i. It is a
// convenience over Values.String(int(DictIndex(i))).
func (c *Column) DictString(i int) string { return c.Values.String(int(c.indices[i])) }

// Table is an ordered sequence of columns with equal length (spec.md §3).
type Table struct {
	Columns []*Column
}

// NumRows returns the table's row count, or 0 for a table with no columns.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.Columns) }

// AddColumn appends a new column, backfilling it with nulls so it has the
// same length as the rest of the table (spec.md's "backfill").
func (t *Table) AddColumn(c *Column) {
	c.AppendNulls(t.NumRows() - c.Len())
	t.Columns = append(t.Columns, c)
}
