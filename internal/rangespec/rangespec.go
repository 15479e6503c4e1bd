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

// Package rangespec parses the "A-B" half-open range syntax shared by
// parquet-to-arrow-slice's <col-range>/<row-range> positionals and
// parquet-to-text-stream's --column-range/--row-range flags.
package rangespec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arrowarc/arrowarc/internal/errs"
)

// Range is a half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Parse parses "A-B" into a Range. It does not clamp to any extent; the
// caller clamps against the file's actual row/column count.
func Parse(s string) (Range, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: range %q must be of the form A-B", errs.ErrUsage, s)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: invalid start: %v", errs.ErrUsage, s, err)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return Range{}, fmt.Errorf("%w: range %q: invalid end: %v", errs.ErrUsage, s, err)
	}
	if start < 0 || end < start {
		return Range{}, fmt.Errorf("%w: range %q: start must be >= 0 and end >= start", errs.ErrUsage, s)
	}
	return Range{Start: start, End: end}, nil
}

// Clamp bounds r to [0, extent], the way spec.md's range handling clamps
// without erroring when the upper bound exceeds the file's extent.
func (r Range) Clamp(extent int) Range {
	start, end := r.Start, r.End
	if start > extent {
		start = extent
	}
	if end > extent {
		end = extent
	}
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// Len returns the number of indices the range covers.
func (r Range) Len() int { return r.End - r.Start }
