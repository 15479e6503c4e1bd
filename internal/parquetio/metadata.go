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

package parquetio

// Raw Parquet-level schema accessors, as opposed to the Arrow-level Schema()
// in reader.go: internal/pdiff compares physical and logical types the way the
// Parquet footer actually stores them, not the Arrow types pqarrow maps
// them to, so a column's physical/logical type survives independently of
// how the Arrow reader happened to decode it.

// NumColumns returns the number of leaf columns in the Parquet schema.
func (r *Reader) NumColumns() int {
	return r.parquetRdr.MetaData().Schema.NumColumns()
}

// ColumnName returns the Parquet-level name of leaf column i.
func (r *Reader) ColumnName(i int) string {
	return r.parquetRdr.MetaData().Schema.Column(i).Name()
}

// ColumnPhysicalType returns the on-disk physical type of leaf column i,
// e.g. "INT32", "BYTE_ARRAY" (spec §4.5).
func (r *Reader) ColumnPhysicalType(i int) string {
	return r.parquetRdr.MetaData().Schema.Column(i).PhysicalType().String()
}

// ColumnLogicalType returns the canonical textual form of leaf column i's
// logical type, e.g. "Int(bitWidth=8, isSigned=true)". The underlying
// schema.Column.LogicalType() already normalizes Parquet 1.0 ConvertedType
// annotations and Parquet 2.0 LogicalType annotations to the same
// representation, so a file re-written at a different format version
// compares equal (spec §4.5).
func (r *Reader) ColumnLogicalType(i int) string {
	return r.parquetRdr.MetaData().Schema.Column(i).LogicalType().String()
}
