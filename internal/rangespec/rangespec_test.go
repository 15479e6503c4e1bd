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

package rangespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowarc/arrowarc/internal/errs"
)

func TestParse(t *testing.T) {
	r, err := Parse("2-5")
	require.NoError(t, err)
	assert.Equal(t, Range{Start: 2, End: 5}, r)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("not-a-range")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUsage)
}

func TestParse_EndBeforeStart(t *testing.T) {
	_, err := Parse("5-2")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUsage)
}

func TestClamp(t *testing.T) {
	r := Range{Start: 2, End: 100}
	assert.Equal(t, Range{Start: 2, End: 10}, r.Clamp(10))
}

func TestClamp_StartBeyondExtent(t *testing.T) {
	r := Range{Start: 20, End: 30}
	assert.Equal(t, Range{Start: 10, End: 10}, r.Clamp(10))
}
