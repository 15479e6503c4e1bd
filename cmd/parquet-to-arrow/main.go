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

// Command parquet-to-arrow streams a Parquet file straight into an Arrow
// IPC file, preserving dictionary encoding where present.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/docopt/docopt-go"

	"github.com/arrowarc/arrowarc/internal/arrio"
	"github.com/arrowarc/arrowarc/internal/arrowio"
	"github.com/arrowarc/arrowarc/internal/errs"
	arrowmem "github.com/arrowarc/arrowarc/internal/memory"
	"github.com/arrowarc/arrowarc/internal/parquetio"
)

// releasingWriter adapts an *ipc.Writer to arrio.Writer, releasing each
// record after it's written so arrio.Copy can drive the whole stream
// without the caller managing record lifetimes by hand.
type releasingWriter struct {
	w *ipc.Writer
}

func (rw releasingWriter) Write(rec arrow.Record) error {
	err := rw.w.Write(rec)
	rec.Release()
	return err
}

const usage = `parquet-to-arrow.

Usage:
  parquet-to-arrow [--compression=<codec>] <input.parquet> <output.arrow>
  parquet-to-arrow -h | --help

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

	inputPath, _ := args.String("<input.parquet>")
	outputPath, _ := args.String("<output.arrow>")

	reader, err := parquetio.Open(inputPath, parquetio.Options{})
	if err != nil {
		return err
	}
	defer reader.Close()

	ctx := context.Background()
	stream, err := reader.Stream(ctx)
	if err != nil {
		return fmt.Errorf("streaming %q: %w", inputPath, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", outputPath, err)
	}
	defer out.Close()

	mem := arrowmem.GetAllocator()
	defer arrowmem.PutAllocator(mem)

	opts := []ipc.Option{ipc.WithAllocator(mem), ipc.WithSchema(reader.Schema())}
	switch compression {
	case arrowio.LZ4:
		opts = append(opts, ipc.WithLZ4())
	case arrowio.Zstd:
		opts = append(opts, ipc.WithZstd())
	}
	writer := ipc.NewWriter(out, opts...)

	if _, err := arrio.Copy(releasingWriter{writer}, stream); err != nil {
		return fmt.Errorf("copying %q to %q: %w", inputPath, outputPath, err)
	}

	return writer.Close()
}
