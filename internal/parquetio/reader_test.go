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

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"
	"github.com/stretchr/testify/require"

	"github.com/arrowarc/arrowarc/internal/errs"
)

func writeSampleParquet(t *testing.T, rowGroups [][]int64) string {
	t.Helper()
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	path := filepath.Join(t.TempDir(), "sample.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	props := parquet.NewWriterProperties(parquet.WithAllocator(mem))
	w, err := pqarrow.NewFileWriter(schema, f, props, pqarrow.DefaultWriterProps())
	require.NoError(t, err)
	defer w.Close()

	for _, rows := range rowGroups {
		b := array.NewInt64Builder(mem)
		for _, v := range rows {
			b.Append(v)
		}
		arr := b.NewArray()
		rec := array.NewRecord(schema, []arrow.Array{arr}, int64(len(rows)))
		require.NoError(t, w.Write(rec))
		rec.Release()
		arr.Release()
		b.Release()
	}
	require.NoError(t, w.Close())
	return path
}

func TestOpenAndSchema(t *testing.T) {
	path := writeSampleParquet(t, [][]int64{{1, 2, 3}})
	r, err := Open(path, Options{})
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, 1, r.Schema().NumFields())
	require.Equal(t, "id", r.Schema().Field(0).Name)
	require.Equal(t, 1, r.NumRowGroups())
	require.EqualValues(t, 3, r.RowGroupNumRows(0))
}

func TestOpenRejectsNonParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-parquet.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0o644))

	_, err := Open(path, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidParquet)
}

func TestStreamReadsAllRows(t *testing.T) {
	path := writeSampleParquet(t, [][]int64{{1, 2}, {3, 4, 5}})
	r, err := Open(path, Options{})
	require.NoError(t, err)
	defer r.Close()

	stream, err := r.Stream(context.Background())
	require.NoError(t, err)

	var total int64
	for {
		rec, err := stream.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		total += rec.NumRows()
		rec.Release()
	}
	require.EqualValues(t, 5, total)
}

func TestStreamRowGroupScopesToOneGroup(t *testing.T) {
	path := writeSampleParquet(t, [][]int64{{1, 2}, {3, 4, 5}})
	r, err := Open(path, Options{})
	require.NoError(t, err)
	defer r.Close()

	stream, err := r.StreamRowGroup(context.Background(), 1)
	require.NoError(t, err)

	var total int64
	for {
		rec, err := stream.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		total += rec.NumRows()
		rec.Release()
	}
	require.EqualValues(t, 3, total)
}
