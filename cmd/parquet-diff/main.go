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

// Command parquet-diff reports the first structural or value disagreement
// between two Parquet files (internal/pdiff).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/docopt/docopt-go"

	"github.com/arrowarc/arrowarc/internal/errs"
	"github.com/arrowarc/arrowarc/internal/pdiff"
)

const usage = `parquet-diff.

Usage:
  parquet-diff <a.parquet> <b.parquet>
  parquet-diff -h | --help
`

func main() {
	args, err := docopt.ParseDoc(usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	pathA, _ := args.String("<a.parquet>")
	pathB, _ := args.String("<b.parquet>")

	diff, err := pdiff.Compare(context.Background(), pathA, pathB)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidParquet) {
			fmt.Fprint(os.Stderr, "Invalid: Parquet magic bytes not found in footer. Either the file is corrupted or this is not a parquet file.\n")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if diff == "" {
		os.Exit(0)
	}

	fmt.Fprint(os.Stdout, diff)
	os.Exit(1)
}
