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

package arrowio

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow/ipc"

	"github.com/arrowarc/arrowarc/internal/column"
	arrowmem "github.com/arrowarc/arrowarc/internal/memory"
)

// Compression selects the optional Arrow IPC body compression codec
// (spec.md's "Arrow IPC writer adapter", --compression flag).
type Compression int

const (
	NoCompression Compression = iota
	LZ4
	Zstd
)

// ParseCompression maps a --compression flag value to a Compression.
func ParseCompression(flag string) (Compression, error) {
	switch flag {
	case "", "none":
		return NoCompression, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return NoCompression, fmt.Errorf("arrowio: unknown compression %q (want lz4, zstd, or none)", flag)
	}
}

// Writer adapts a column.Table to an Arrow IPC file.
type Writer struct {
	Compression Compression
}

// Write builds an arrow.Schema and arrow.Record from table and writes them
// to path as a single-batch Arrow IPC file.
func (w Writer) Write(path string, table *column.Table) (err error) {
	mem := arrowmem.GetAllocator()
	defer arrowmem.PutAllocator(mem)

	schema, err := Schema(table)
	if err != nil {
		return fmt.Errorf("arrowio: %w", err)
	}

	rec, err := BuildRecord(mem, schema, table)
	if err != nil {
		return fmt.Errorf("arrowio: %w", err)
	}
	defer rec.Release()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("arrowio: could not create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("arrowio: could not close %q: %w", path, cerr)
		}
	}()

	opts := []ipc.Option{ipc.WithAllocator(mem), ipc.WithSchema(schema)}
	switch w.Compression {
	case LZ4:
		opts = append(opts, ipc.WithLZ4())
	case Zstd:
		opts = append(opts, ipc.WithZstd())
	}

	ww := ipc.NewWriter(f, opts...)
	if werr := ww.Write(rec); werr != nil {
		return fmt.Errorf("arrowio: could not write record: %w", werr)
	}
	if cerr := ww.Close(); cerr != nil {
		return fmt.Errorf("arrowio: could not close writer: %w", cerr)
	}
	return nil
}
