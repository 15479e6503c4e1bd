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

// Package textual renders column values to CSV fields and JSON tokens
// (spec.md §4.2): one Textualizer per logical type, sharing the rules for
// null handling, float formatting, and timestamp/date rendering.
package textual

import (
	"math"
	"strconv"

	"github.com/arrowarc/arrowarc/internal/column"
)

// Textualizer renders the value at a row as CSV field text (unescaped; the
// caller applies CSV quoting) and as a JSON token (already escaped/quoted
// as needed, ready to embed in a JSON array or object).
type Textualizer interface {
	CSV(row int) string
	JSON(row int) string
}

// New returns the Textualizer for col's logical type.
func New(col *column.Column) Textualizer {
	switch col.Type {
	case column.Int8, column.Int16, column.Int32, column.Int64:
		return intTextualizer{col}
	case column.Uint8, column.Uint16, column.Uint32, column.Uint64:
		return uintTextualizer{col}
	case column.Float32:
		return float32Textualizer{col}
	case column.Float64:
		return float64Textualizer{col}
	case column.Utf8:
		return stringTextualizer{col}
	case column.Date32:
		return date32Textualizer{col}
	case column.Timestamp:
		return timestampTextualizer{col}
	case column.Dictionary:
		return dictTextualizer{col}
	default:
		panic("textual: unsupported column type " + col.Type.String())
	}
}

type intTextualizer struct{ col *column.Column }

func (t intTextualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return strconv.FormatInt(t.col.Int(row), 10)
}
func (t intTextualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	return strconv.FormatInt(t.col.Int(row), 10)
}

type uintTextualizer struct{ col *column.Column }

func (t uintTextualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return strconv.FormatUint(t.col.Uint(row), 10)
}
func (t uintTextualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	return strconv.FormatUint(t.col.Uint(row), 10)
}

// FormatFloat renders v using the shortest round-trip representation
// (spec.md's pinned example: 1e+52), the same rule used for both CSV and
// JSON numeric rendering. internal/pdiff reuses it so a float mismatch
// report renders the same text a converted file's CSV/JSON output would.
func FormatFloat(v float64, bitSize int) string {
	return strconv.FormatFloat(v, 'g', -1, bitSize)
}

func formatFloat(v float64, bitSize int) string { return FormatFloat(v, bitSize) }

type float32Textualizer struct{ col *column.Column }

func (t float32Textualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	v := t.col.Float32(row)
	if math.IsInf(float64(v), 1) {
		return "inf"
	}
	if math.IsInf(float64(v), -1) {
		return "-inf"
	}
	if math.IsNaN(float64(v)) {
		return "nan"
	}
	return formatFloat(float64(v), 32)
}
func (t float32Textualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	v := t.col.Float32(row)
	if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
		return "null"
	}
	return formatFloat(float64(v), 32)
}

type float64Textualizer struct{ col *column.Column }

func (t float64Textualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	v := t.col.Float64(row)
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return "nan"
	}
	return formatFloat(v, 64)
}
func (t float64Textualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	v := t.col.Float64(row)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "null"
	}
	return formatFloat(v, 64)
}

type stringTextualizer struct{ col *column.Column }

func (t stringTextualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return t.col.String(row)
}
func (t stringTextualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	s, err := marshalJSONString(t.col.String(row))
	if err != nil {
		panic(err)
	}
	return s
}

type dictTextualizer struct{ col *column.Column }

func (t dictTextualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return t.col.DictString(row)
}
func (t dictTextualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	s, err := marshalJSONString(t.col.DictString(row))
	if err != nil {
		panic(err)
	}
	return s
}

type date32Textualizer struct{ col *column.Column }

func (t date32Textualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return RenderDate32(t.col.Int(row))
}
func (t date32Textualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	s, err := marshalJSONString(RenderDate32(t.col.Int(row)))
	if err != nil {
		panic(err)
	}
	return s
}

type timestampTextualizer struct{ col *column.Column }

func (t timestampTextualizer) CSV(row int) string {
	if t.col.IsNull(row) {
		return ""
	}
	return RenderTimestamp(t.col.Int(row), t.col.Unit)
}
func (t timestampTextualizer) JSON(row int) string {
	if t.col.IsNull(row) {
		return "null"
	}
	s, err := marshalJSONString(RenderTimestamp(t.col.Int(row), t.col.Unit))
	if err != nil {
		panic(err)
	}
	return s
}
