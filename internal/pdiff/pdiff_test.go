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

package pdiff

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/stretchr/testify/require"
)

type col struct {
	name string
	typ  arrow.DataType
	ints []int64 // used for int32/int64 columns; -1 marks null
}

func writeInts(t *testing.T, name string, typ arrow.DataType, values []int64, useDict bool) string {
	t.Helper()
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: name, Type: typ, Nullable: true}}, nil)

	path := filepath.Join(t.TempDir(), "t.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithAllocator(mem), parquet.WithDictionaryDefault(useDict))
	w, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	require.NoError(t, err)
	defer w.Close()

	var arr arrow.Array
	switch typ.(type) {
	case *arrow.Int32Type:
		b := array.NewInt32Builder(mem)
		for _, v := range values {
			if v == -1 {
				b.AppendNull()
				continue
			}
			b.Append(int32(v))
		}
		arr = b.NewArray()
		defer b.Release()
	case *arrow.Int64Type:
		b := array.NewInt64Builder(mem)
		for _, v := range values {
			if v == -1 {
				b.AppendNull()
				continue
			}
			b.Append(v)
		}
		arr = b.NewArray()
		defer b.Release()
	}
	defer arr.Release()

	rec := array.NewRecord(schema, []arrow.Array{arr}, int64(len(values)))
	defer rec.Release()
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	return path
}

func writeStrings(t *testing.T, name string, values []string, nulls []bool, useDict bool) string {
	t.Helper()
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}}, nil)

	path := filepath.Join(t.TempDir(), "t.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithAllocator(mem), parquet.WithDictionaryDefault(useDict))
	w, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	require.NoError(t, err)
	defer w.Close()

	b := array.NewStringBuilder(mem)
	defer b.Release()
	for i, v := range values {
		if nulls != nil && nulls[i] {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	arr := b.NewArray()
	defer arr.Release()

	rec := array.NewRecord(schema, []arrow.Array{arr}, int64(len(values)))
	defer rec.Release()
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	return path
}

func TestCompare_IdenticalFilesAreEqual(t *testing.T) {
	path := writeInts(t, "A", arrow.PrimitiveTypes.Int32, []int64{1, 2, -1, 3}, true)
	diff, err := Compare(context.Background(), path, path)
	require.NoError(t, err)
	require.Empty(t, diff)
}

func TestCompare_DifferentPhysicalType(t *testing.T) {
	path1 := writeInts(t, "A", arrow.PrimitiveTypes.Int32, []int64{1}, true)
	path2 := writeInts(t, "A", arrow.PrimitiveTypes.Int64, []int64{1}, true)
	diff, err := Compare(context.Background(), path1, path2)
	require.NoError(t, err)
	require.Equal(t, "Column 0 (A) physical type:\n-INT32\n+INT64\n", diff)
}

func TestCompare_ValueMismatch(t *testing.T) {
	path1 := writeInts(t, "A", arrow.PrimitiveTypes.Int64, []int64{1, 2, -1, 3, 1}, true)
	path2 := writeInts(t, "A", arrow.PrimitiveTypes.Int64, []int64{1, 2, -1, 3, -2}, true)
	diff, err := Compare(context.Background(), path1, path2)
	require.NoError(t, err)
	require.Equal(t, "RowGroup 0, Column 0, Row 4:\n-1\n+-2\n", diff)
}

func TestCompare_StringByteExact(t *testing.T) {
	path1 := writeStrings(t, "A", []string{"a", "", "bc", "d"}, []bool{false, true, false, false}, true)
	path2 := writeStrings(t, "A", []string{"a", "", "b", "cd"}, []bool{false, true, false, false}, true)
	diff, err := Compare(context.Background(), path1, path2)
	require.NoError(t, err)
	require.Equal(t, "RowGroup 0, Column 0, Row 2:\n-bc\n+b\n", diff)
}

func TestCompare_DictionaryEqualsPlain(t *testing.T) {
	values := []string{"a", "", "b", "a"}
	nulls := []bool{false, true, false, false}
	plain := writeStrings(t, "A", values, nulls, false)
	dict := writeStrings(t, "A", values, nulls, true)
	diff, err := Compare(context.Background(), plain, dict)
	require.NoError(t, err)
	require.Empty(t, diff)
}

func TestCompare_DifferentColumnCount(t *testing.T) {
	path1 := writeInts(t, "A", arrow.PrimitiveTypes.Int32, []int64{1}, true)

	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "A", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "B", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
	}, nil)
	path2 := filepath.Join(t.TempDir(), "two.parquet")
	f, err := os.Create(path2)
	require.NoError(t, err)
	props := parquet.NewWriterProperties(parquet.WithAllocator(mem))
	w, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	require.NoError(t, err)
	ab := array.NewInt32Builder(mem)
	ab.Append(1)
	aArr := ab.NewArray()
	bb := array.NewInt32Builder(mem)
	bb.Append(2)
	bArr := bb.NewArray()
	rec := array.NewRecord(schema, []arrow.Array{aArr, bArr}, 1)
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	rec.Release()
	aArr.Release()
	bArr.Release()
	ab.Release()
	bb.Release()
	f.Close()

	diff, err := Compare(context.Background(), path1, path2)
	require.NoError(t, err)
	require.Equal(t, "Number of columns:\n-1\n+2\n", diff)
}
