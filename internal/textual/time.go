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

package textual

import (
	"fmt"
	"strings"
	"time"

	"github.com/arrowarc/arrowarc/internal/column"
)

// RenderDate32 renders a days-since-epoch value as "YYYY-MM-DD".
func RenderDate32(days int64) string {
	t := time.Unix(days*86400, 0).UTC()
	return t.Format("2006-01-02")
}

// fracDigits is the number of fractional-second digits a timestamp unit can
// carry: 3 for milliseconds, 6 for microseconds, 9 for nanoseconds.
func fracDigits(unit column.TimeUnit) int {
	switch unit {
	case column.Millisecond:
		return 3
	case column.Microsecond:
		return 6
	default:
		return 9
	}
}

func nanosPerUnit(unit column.TimeUnit) int64 {
	switch unit {
	case column.Millisecond:
		return int64(time.Millisecond)
	case column.Microsecond:
		return int64(time.Microsecond)
	default:
		return 1
	}
}

// floorDiv is integer division that truncates toward negative infinity,
// needed to place pre-epoch ticks in the correct second.
func floorDiv(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}

// RenderTimestamp renders ticks (at the given unit, naive and UTC treated
// identically) as a date-only string when the time-of-day is exactly
// midnight, or as ISO-8601 "YYYY-MM-DDTHH:MM:SS[.fff...]Z" otherwise.
// Fractional seconds are truncated (never rounded) to the column's unit and
// trailing zero digits are trimmed, mirroring the shortest-round-trip
// spirit used for float rendering.
func RenderTimestamp(ticks int64, unit column.TimeUnit) string {
	totalNanos := ticks * nanosPerUnit(unit)
	sec, nanoRem := floorDiv(totalNanos, int64(time.Second))

	t := time.Unix(sec, 0).UTC()
	if nanoRem == 0 {
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01-02T15:04:05") + "Z"
	}

	digits := fracDigits(unit)
	frac := fmt.Sprintf("%09d", nanoRem)[:digits]
	frac = strings.TrimRight(frac, "0")
	return t.Format("2006-01-02T15:04:05") + "." + frac + "Z"
}
