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

package csvcore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCaps() Caps {
	return Caps{MaxRows: 1_000_000, MaxColumns: 1_000, MaxBytesPerValue: 1_000_000}
}

func TestParse_Basic(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("a,b,c\nd,e,f\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.False(t, diag.HasWarnings())
	require.Equal(t, 3, table.NumColumns())
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "a", table.Columns[0].String(0))
	assert.Equal(t, "d", table.Columns[0].String(1))
	assert.Equal(t, "f", table.Columns[2].String(1))
}

func TestParse_NoTrailingNewline(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a,b\nc,d"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "d", table.Columns[1].String(1))
}

func TestParse_BackfillRetroactive(t *testing.T) {
	// Row 0 has one column, row 1 introduces a second and third column.
	// Earlier rows must be retroactively null-filled in the new columns.
	table, _, err := Parse(strings.NewReader("a\nb,c,d\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 3, table.NumColumns())
	require.Equal(t, 2, table.NumRows())
	assert.False(t, table.Columns[0].IsNull(0))
	assert.True(t, table.Columns[1].IsNull(0))
	assert.True(t, table.Columns[2].IsNull(0))
	assert.Equal(t, "b", table.Columns[0].String(1))
	assert.Equal(t, "c", table.Columns[1].String(1))
	assert.Equal(t, "d", table.Columns[2].String(1))
}

func TestParse_ShortRowNullFillsMissingColumns(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a,b,c\nd\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 3, table.NumColumns())
	assert.False(t, table.Columns[0].IsNull(1))
	assert.True(t, table.Columns[1].IsNull(1))
	assert.True(t, table.Columns[2].IsNull(1))
}

func TestParse_EmptyValuesRetained(t *testing.T) {
	// A lone comma is one real byte on the line: two empty-string fields,
	// not a dropped empty line.
	table, _, err := Parse(strings.NewReader(",\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 1, table.NumRows())
	require.Equal(t, 2, table.NumColumns())
	assert.False(t, table.Columns[0].IsNull(0))
	assert.Equal(t, "", table.Columns[0].String(0))
}

func TestParse_CompletelyEmptyLineDropped(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a,b\n\nc,d\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "a", table.Columns[0].String(0))
	assert.Equal(t, "c", table.Columns[0].String(1))
}

func TestParse_QuotedEmbeddedCommaAndNewline(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("\"a,b\",\"c\nd\"\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.False(t, diag.HasWarnings())
	require.Equal(t, 2, table.NumColumns())
	assert.Equal(t, "a,b", table.Columns[0].String(0))
	assert.Equal(t, "c\nd", table.Columns[1].String(0))
}

func TestParse_DoubledQuoteUnescapes(t *testing.T) {
	table, diag, err := Parse(strings.NewReader(`"say ""hi"""`+"\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.False(t, diag.HasWarnings())
	assert.Equal(t, `say "hi"`, table.Columns[0].String(0))
}

func TestParse_UnquotedQuotesAreLiteral(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("a,b\"not quoted\"\n"+`c""do not unescape,d`+"\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.False(t, diag.HasWarnings())
	assert.Equal(t, "a", table.Columns[0].String(0))
	assert.Equal(t, `b"not quoted"`, table.Columns[1].String(0))
	assert.Equal(t, `c""do not unescape`, table.Columns[0].String(1))
	assert.Equal(t, "d", table.Columns[1].String(1))
}

func TestParse_RepairTextAfterQuotes(t *testing.T) {
	input := "a,\"quoted\"cru\"ft\n\"\"x,d\n"
	table, diag, err := Parse(strings.NewReader(input), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 2, diag.misplacedCount)
	assert.Equal(t, 0, diag.misplacedRow)
	assert.Equal(t, 1, diag.misplacedCol)
	assert.Equal(t, "a", table.Columns[0].String(0))
	assert.Equal(t, `quotedcru"ft`, table.Columns[1].String(0))
	assert.Equal(t, "x", table.Columns[0].String(1))
	assert.Equal(t, "d", table.Columns[1].String(1))
}

func TestParse_MissingEndQuote(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("a,\"b\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.True(t, diag.missingEndQuote)
	assert.Equal(t, "a", table.Columns[0].String(0))
	assert.Equal(t, "b\n", table.Columns[1].String(0))
}

func TestParse_RowCap(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("a\nb\nc\nd\n"), ',', Caps{MaxRows: 2, MaxColumns: 10, MaxBytesPerValue: 100})
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, 2, diag.rowsSkipped)
	assert.Contains(t, diag.Lines()[0], "skipped 2 rows (after row limit of 2)")
}

func TestParse_ColumnCap(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("a,b,c,d\n"), ',', Caps{MaxRows: 10, MaxColumns: 2, MaxBytesPerValue: 100})
	require.NoError(t, err)
	require.Equal(t, 2, table.NumColumns())
	assert.Equal(t, 2, diag.columnsSkipped)
	assert.Contains(t, diag.Lines()[0], "skipped 2 columns (after column limit of 2)")
}

func TestParse_ByteCapTruncates(t *testing.T) {
	table, diag, err := Parse(strings.NewReader("abcdef\n"), ',', Caps{MaxRows: 10, MaxColumns: 10, MaxBytesPerValue: 3})
	require.NoError(t, err)
	assert.Equal(t, "abc", table.Columns[0].String(0))
	require.Equal(t, 1, diag.truncatedCount)
	assert.Equal(t, 0, diag.truncatedRow)
	assert.Equal(t, 0, diag.truncatedCol)
}

func TestParse_CRLFTerminators(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a,b\r\nc,d\r\n"), ',', defaultCaps())
	require.NoError(t, err)
	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, "d", table.Columns[1].String(1))
}

func TestParse_SemicolonDelimiter(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a;b\nc;d\n"), ';', defaultCaps())
	require.NoError(t, err)
	assert.Equal(t, "b", table.Columns[1].String(0))
}

func TestParse_TabDelimiter(t *testing.T) {
	table, _, err := Parse(strings.NewReader("a\tb\nc\td\n"), '\t', defaultCaps())
	require.NoError(t, err)
	assert.Equal(t, "d", table.Columns[1].String(1))
}
