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

// Package parquetio adapts the apache/arrow/go Parquet reader to this
// repository's column.Table model: opening a file, exposing its row-group
// structure for internal/pdiff, and streaming arrow.Record batches (in
// 100-row dictionary sub-batches, spec §4.3) for the conversion binaries.
package parquetio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"github.com/arrowarc/arrowarc/internal/arrio"
	"github.com/arrowarc/arrowarc/internal/errs"
)

// dictionaryBatchSize caps each Arrow record batch at 100 rows so dictionary
// columns never hit "Concat with dictionary unification NYI" when row
// groups are merged (spec §4.3).
const dictionaryBatchSize = 100

// Options configures how a Reader surfaces Parquet columns.
type Options struct {
	// MemoryMap opens the file with mmap instead of buffered reads.
	MemoryMap bool
	// DecodeDictionaries, when true, surfaces dictionary-encoded columns as
	// plain utf8 instead of index+dictionary pairs. parquet-to-arrow-slice
	// sets this; parquet-to-arrow and parquet-diff leave it false to
	// preserve dictionary encoding.
	DecodeDictionaries bool
	// Allocator is used for all Arrow allocations; defaults to
	// memory.DefaultAllocator when nil.
	Allocator memory.Allocator
}

// Reader wraps an open Parquet file, exposing both whole-file and
// per-row-group record streams.
type Reader struct {
	parquetRdr *file.Reader
	arrowRdr   *pqarrow.FileReader
	schema     *arrow.Schema
}

// Open opens path as a Parquet file. A file that fails basic Parquet
// footer validation is reported as errs.ErrInvalidParquet so callers can
// map it to the pinned diagnostic text and exit code.
func Open(path string, opts Options) (*Reader, error) {
	mem := opts.Allocator
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	parquetRdr, err := file.OpenParquetFile(path, opts.MemoryMap)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidParquet, err)
	}

	arrowReadProps := pqarrow.ArrowReadProperties{
		BatchSize: dictionaryBatchSize,
		Parallel:  false,
	}
	if !opts.DecodeDictionaries {
		for i := 0; i < parquetRdr.MetaData().Schema.NumColumns(); i++ {
			arrowReadProps.SetReadDict(i, true)
		}
	}

	arrowRdr, err := pqarrow.NewFileReader(parquetRdr, arrowReadProps, mem)
	if err != nil {
		parquetRdr.Close()
		return nil, fmt.Errorf("parquetio: failed to create arrow reader: %w", err)
	}

	schema, err := arrowRdr.Schema()
	if err != nil {
		parquetRdr.Close()
		return nil, fmt.Errorf("parquetio: failed to read schema: %w", err)
	}

	return &Reader{parquetRdr: parquetRdr, arrowRdr: arrowRdr, schema: schema}, nil
}

// Close releases the underlying Parquet file.
func (r *Reader) Close() error { return r.parquetRdr.Close() }

// Schema returns the file's Arrow schema.
func (r *Reader) Schema() *arrow.Schema { return r.schema }

// NumRowGroups returns the file's row-group count (zero for a Parquet file
// with no data, spec §4.3's "zero row groups" case).
func (r *Reader) NumRowGroups() int { return r.parquetRdr.NumRowGroups() }

// RowGroupNumRows returns the number of rows in row group g.
func (r *Reader) RowGroupNumRows(g int) int64 {
	return r.parquetRdr.MetaData().RowGroup(g).NumRows()
}

// recordStream adapts a pqarrow.RecordReader to arrio.Reader.
type recordStream struct {
	rr pqarrow.RecordReader
}

func (s *recordStream) Read() (arrow.Record, error) {
	if !s.rr.Next() {
		if err := s.rr.Err(); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		return nil, io.EOF
	}
	return s.rr.Record(), nil
}

// Stream returns an arrio.Reader over every row in the file, across all row
// groups, in batches of at most 100 rows.
func (r *Reader) Stream(ctx context.Context) (arrio.Reader, error) {
	rr, err := r.arrowRdr.GetRecordReader(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("parquetio: failed to get record reader: %w", err)
	}
	return &recordStream{rr: rr}, nil
}

// StreamRowGroup returns an arrio.Reader scoped to a single row group,
// still batched at 100 rows, so internal/pdiff can walk one row group's
// values without buffering the whole file.
func (r *Reader) StreamRowGroup(ctx context.Context, g int) (arrio.Reader, error) {
	rr, err := r.arrowRdr.GetRecordReader(ctx, nil, []int{g})
	if err != nil {
		return nil, fmt.Errorf("parquetio: failed to get row group %d record reader: %w", g, err)
	}
	return &recordStream{rr: rr}, nil
}
