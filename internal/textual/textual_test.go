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
	"bytes"
	"math"
	"testing"

	"github.com/arrowarc/arrowarc/internal/column"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDate32(t *testing.T) {
	assert.Equal(t, "1970-01-01", RenderDate32(0))
	assert.Equal(t, "1970-01-02", RenderDate32(1))
}

func TestRenderTimestamp_MidnightIsDateOnly(t *testing.T) {
	// 2021-01-01T00:00:00 in milliseconds since epoch.
	ticks := int64(1609459200000)
	assert.Equal(t, "2021-01-01", RenderTimestamp(ticks, column.Millisecond))
}

func TestRenderTimestamp_SubSecondTruncatesNotRounds(t *testing.T) {
	ticks := int64(1609459200999) // 2021-01-01T00:00:00.999 ms
	assert.Equal(t, "2021-01-01T00:00:00.999Z", RenderTimestamp(ticks, column.Millisecond))
}

func TestRenderTimestamp_Nanoseconds(t *testing.T) {
	ticks := int64(1609459200000000123) // .000000123 s
	assert.Equal(t, "2021-01-01T00:00:00.000000123Z", RenderTimestamp(ticks, column.Nanosecond))
}

func TestFloatRendering(t *testing.T) {
	col := column.New("f", column.Float64)
	col.AppendFloat64(1e52)
	tx := New(col)
	assert.Equal(t, "1e+52", tx.CSV(0))
	assert.Equal(t, "1e+52", tx.JSON(0))
}

func TestFloatNonFinite(t *testing.T) {
	col := column.New("f", column.Float64)
	col.AppendFloat64(math.Inf(1))
	col.AppendFloat64(math.Inf(-1))
	col.AppendFloat64(math.NaN())
	tx := New(col)

	assert.Equal(t, "inf", tx.CSV(0))
	assert.Equal(t, "null", tx.JSON(0))
	assert.Equal(t, "-inf", tx.CSV(1))
	assert.Equal(t, "null", tx.JSON(1))
	assert.Equal(t, "nan", tx.CSV(2))
	assert.Equal(t, "null", tx.JSON(2))
}

func TestQuoteCSVField(t *testing.T) {
	assert.Equal(t, "plain", QuoteCSVField("plain", ','))
	assert.Equal(t, `"a,b"`, QuoteCSVField("a,b", ','))
	assert.Equal(t, `"a""b"`, QuoteCSVField(`a"b`, ','))
	assert.Equal(t, "\"a\nb\"", QuoteCSVField("a\nb", ','))
}

func TestWriteCSV_NoTrailingNewline(t *testing.T) {
	table := &column.Table{}
	col := column.New("0", column.Utf8)
	col.AppendString("a")
	col.AppendString("b")
	table.AddColumn(col)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table, ','))
	assert.Equal(t, "0\na\nb", buf.String())
}

func TestWriteJSONLines(t *testing.T) {
	table := &column.Table{}
	col := column.New("0", column.Int64)
	col.AppendInt(1)
	col.AppendNull()
	table.AddColumn(col)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONLines(&buf, table))
	assert.Equal(t, `[{"0":1},{"0":null}]`, buf.String())
}

func TestWriteJSONLines_EmptyTableIsEmptyArray(t *testing.T) {
	table := &column.Table{}
	col := column.New("0", column.Int64)
	table.AddColumn(col)

	var buf bytes.Buffer
	require.NoError(t, WriteJSONLines(&buf, table))
	assert.Equal(t, "[]", buf.String())
}

func batchOf(vals []int64, nulls []bool) *column.Table {
	table := &column.Table{}
	col := column.New("0", column.Int64)
	for i, v := range vals {
		if nulls[i] {
			col.AppendNull()
		} else {
			col.AppendInt(v)
		}
	}
	table.AddColumn(col)
	return table
}

func TestCSVStreamWriter_MatchesWriteCSVAcrossBatches(t *testing.T) {
	var buf bytes.Buffer
	sw := NewCSVStreamWriter(&buf, ',')
	require.NoError(t, sw.WriteBatch(batchOf([]int64{1, 2}, []bool{false, false})))
	require.NoError(t, sw.WriteBatch(batchOf([]int64{3}, []bool{false})))
	require.NoError(t, sw.Close())
	assert.Equal(t, "0\n1\n2\n3", buf.String())
}

func TestCSVStreamWriter_NoBatchesWriteNoHeader(t *testing.T) {
	var buf bytes.Buffer
	sw := NewCSVStreamWriter(&buf, ',')
	require.NoError(t, sw.Close())
	assert.Equal(t, "", buf.String())
}

func TestJSONStreamWriter_MatchesWriteJSONLinesAcrossBatches(t *testing.T) {
	var buf bytes.Buffer
	sw := NewJSONStreamWriter(&buf)
	require.NoError(t, sw.WriteBatch(batchOf([]int64{1, 0}, []bool{false, true})))
	require.NoError(t, sw.WriteBatch(batchOf([]int64{3}, []bool{false})))
	require.NoError(t, sw.Close())
	assert.Equal(t, `[{"0":1},{"0":null},{"0":3}]`, buf.String())
}

func TestJSONStreamWriter_NoBatchesIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	sw := NewJSONStreamWriter(&buf)
	require.NoError(t, sw.Close())
	assert.Equal(t, "[]", buf.String())
}
