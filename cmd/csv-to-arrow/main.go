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

// Command csv-to-arrow parses a delimited text file into the column model
// (internal/csvcore) and writes it out as an Arrow IPC file
// (internal/arrowio). Parsing diagnostics go to stdout; stderr stays empty
// on success.
package main

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/arrowarc/arrowarc/internal/arrowio"
	"github.com/arrowarc/arrowarc/internal/csvcore"
)

const usage = `csv-to-arrow.

Usage:
  csv-to-arrow --delimiter=<D> --max-rows=<N> --max-columns=<N> --max-bytes-per-value=<N> [--compression=<codec>] <input.csv> <output.arrow>
  csv-to-arrow -h | --help

Options:
  -h --help                        Show this screen.
  --delimiter=<D>                  Field delimiter; exactly one byte.
  --max-rows=<N>                   Maximum number of rows to retain.
  --max-columns=<N>                Maximum number of columns to retain.
  --max-bytes-per-value=<N>        Maximum number of bytes retained per value.
  --compression=<codec>            Arrow IPC body compression: none, lz4, or zstd [default: none].
`

func main() {
	args, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args docopt.Opts) error {
	delimiter, _ := args.String("--delimiter")
	if len(delimiter) != 1 {
		return fmt.Errorf("--delimiter must be exactly one byte, got %q", delimiter)
	}

	maxRows, err := args.Int("--max-rows")
	if err != nil {
		return fmt.Errorf("--max-rows: %w", err)
	}
	maxColumns, err := args.Int("--max-columns")
	if err != nil {
		return fmt.Errorf("--max-columns: %w", err)
	}
	maxBytesPerValue, err := args.Int("--max-bytes-per-value")
	if err != nil {
		return fmt.Errorf("--max-bytes-per-value: %w", err)
	}
	compressionFlag, _ := args.String("--compression")
	compression, err := arrowio.ParseCompression(compressionFlag)
	if err != nil {
		return err
	}

	inputPath, _ := args.String("<input.csv>")
	outputPath, _ := args.String("<output.arrow>")

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", inputPath, err)
	}
	defer in.Close()

	caps := csvcore.Caps{
		MaxRows:          maxRows,
		MaxColumns:       maxColumns,
		MaxBytesPerValue: maxBytesPerValue,
	}
	table, diagnostics, err := csvcore.Parse(in, delimiter[0], caps)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", inputPath, err)
	}

	writer := arrowio.Writer{Compression: compression}
	if err := writer.Write(outputPath, table); err != nil {
		return fmt.Errorf("writing %q: %w", outputPath, err)
	}

	if _, err := diagnostics.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("writing diagnostics: %w", err)
	}
	return nil
}
