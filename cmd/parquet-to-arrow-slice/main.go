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

// Command parquet-to-arrow-slice projects a column range and a row range
// out of a Parquet file into an Arrow IPC file. Dictionary columns are
// decoded to plain utf8 on the way out.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/docopt/docopt-go"

	"github.com/arrowarc/arrowarc/internal/arrowio"
	"github.com/arrowarc/arrowarc/internal/errs"
	arrowmem "github.com/arrowarc/arrowarc/internal/memory"
	"github.com/arrowarc/arrowarc/internal/parquetio"
	"github.com/arrowarc/arrowarc/internal/rangespec"
)

const usage = `parquet-to-arrow-slice.

Usage:
  parquet-to-arrow-slice [--compression=<codec>] <input.parquet> <col-range> <row-range> <output.arrow>
  parquet-to-arrow-slice -h | --help

Options:
  -h --help                Show this screen.
  --compression=<codec>    Arrow IPC body compression: none, lz4, or zstd [default: none].
`

func main() {
	args, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(args); err != nil {
		if errors.Is(err, errs.ErrInvalidParquet) {
			fmt.Fprint(os.Stderr, "Invalid: Parquet magic bytes not found in footer. Either the file is corrupted or this is not a parquet file.\n")
			os.Exit(1)
		}
		if errors.Is(err, errs.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args docopt.Opts) error {
	compressionFlag, _ := args.String("--compression")
	compression, err := arrowio.ParseCompression(compressionFlag)
	if err != nil {
		return err
	}

	colRangeStr, _ := args.String("<col-range>")
	rowRangeStr, _ := args.String("<row-range>")
	colRange, err := rangespec.Parse(colRangeStr)
	if err != nil {
		return err
	}
	rowRange, err := rangespec.Parse(rowRangeStr)
	if err != nil {
		return err
	}

	inputPath, _ := args.String("<input.parquet>")
	outputPath, _ := args.String("<output.arrow>")

	reader, err := parquetio.Open(inputPath, parquetio.Options{DecodeDictionaries: true})
	if err != nil {
		return err
	}
	defer reader.Close()

	fullSchema := reader.Schema()
	colRange = colRange.Clamp(fullSchema.NumFields())

	fields := make([]arrow.Field, 0, colRange.Len())
	for i := colRange.Start; i < colRange.End; i++ {
		fields = append(fields, fullSchema.Field(i))
	}
	subSchema := arrow.NewSchema(fields, nil)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", outputPath, err)
	}
	defer out.Close()

	mem := arrowmem.GetAllocator()
	defer arrowmem.PutAllocator(mem)

	opts := []ipc.Option{ipc.WithAllocator(mem), ipc.WithSchema(subSchema)}
	switch compression {
	case arrowio.LZ4:
		opts = append(opts, ipc.WithLZ4())
	case arrowio.Zstd:
		opts = append(opts, ipc.WithZstd())
	}
	writer := ipc.NewWriter(out, opts...)

	ctx := context.Background()
	stream, err := reader.Stream(ctx)
	if err != nil {
		return fmt.Errorf("streaming %q: %w", inputPath, err)
	}

	var rowOffset int64
	rowEnd := int64(rowRange.End)
	for rowOffset < rowEnd {
		rec, err := stream.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %q: %w", inputPath, err)
		}

		n := rec.NumRows()
		start := max64(int64(rowRange.Start), rowOffset) - rowOffset
		end := min64(rowEnd, rowOffset+n) - rowOffset
		rowOffset += n

		if end <= start {
			rec.Release()
			continue
		}

		sliced := rec.NewSlice(start, end)
		rec.Release()

		cols := make([]arrow.Array, colRange.Len())
		for i := colRange.Start; i < colRange.End; i++ {
			cols[i-colRange.Start] = sliced.Column(i)
		}
		projected := array.NewRecord(subSchema, cols, sliced.NumRows())
		sliced.Release()

		writeErr := writer.Write(projected)
		projected.Release()
		if writeErr != nil {
			return fmt.Errorf("writing %q: %w", outputPath, writeErr)
		}
	}

	return writer.Close()
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
