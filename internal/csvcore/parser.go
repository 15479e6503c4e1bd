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

// Package csvcore implements the streaming, quote-aware, repair-capable CSV
// parser: a single-byte state machine that grows a ragged column set on the
// fly and enforces row, column, and per-value byte caps, one logical value
// and one logical row at a time.
package csvcore

import (
	"bufio"
	"io"
	"strconv"

	"github.com/arrowarc/arrowarc/internal/column"
)

// Caps bounds the parser's resource usage (spec §4.1).
type Caps struct {
	MaxRows          int
	MaxColumns       int
	MaxBytesPerValue int
}

type fieldState int

const (
	stFieldStart fieldState = iota
	stUnquoted
	stQuoted
	stQuoteInQuoted
)

type termKind int

const (
	termDelimiter termKind = iota
	termNewline
	termEOF
)

type fieldMeta struct {
	bytes           []byte
	truncated       bool
	misplacedQuote  bool
	missingEndQuote bool
	immediateEnd    bool // field terminated with zero raw bytes consumed
}

type rowScan struct {
	fields []fieldMeta
	empty  bool
}

// Parse reads a delimited byte stream and produces a utf8 column-per-field
// table plus a diagnostics summary (spec §4.1). Columns are named "0", "1",
// ... by position.
func Parse(r io.Reader, delimiter byte, caps Caps) (*column.Table, *Diagnostics, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	table := &column.Table{}
	diag := newDiagnostics(caps)

	rowsCommitted := 0
	observedMaxColumns := 0

	for {
		more, err := hasMoreInput(br)
		if err != nil {
			return nil, nil, err
		}
		if !more {
			break
		}

		row, err := scanRow(br, delimiter, caps.MaxBytesPerValue)
		if err != nil {
			return nil, nil, err
		}
		if row.empty {
			continue
		}

		if rowsCommitted >= caps.MaxRows {
			diag.rowsSkipped++
			continue
		}

		observed := len(row.fields)
		if observed > observedMaxColumns {
			observedMaxColumns = observed
		}

		storeCount := observed
		if storeCount > caps.MaxColumns {
			storeCount = caps.MaxColumns
		}

		for idx := 0; idx < storeCount; idx++ {
			f := row.fields[idx]
			col := ensureColumn(table, idx, rowsCommitted)
			col.AppendString(string(f.bytes))

			if f.missingEndQuote {
				diag.recordMissingEndQuote()
			} else if f.misplacedQuote {
				diag.recordMisplaced(rowsCommitted, idx)
			}
			if f.truncated {
				diag.recordTruncated(rowsCommitted, idx)
			}
		}
		for idx := storeCount; idx < len(table.Columns); idx++ {
			table.Columns[idx].AppendNull()
		}

		rowsCommitted++
	}

	if observedMaxColumns > caps.MaxColumns {
		diag.columnsSkipped = observedMaxColumns - caps.MaxColumns
	}

	return table, diag, nil
}

func ensureColumn(table *column.Table, idx, rowsCommitted int) *column.Column {
	if idx < len(table.Columns) {
		return table.Columns[idx]
	}
	col := column.New(strconv.Itoa(idx), column.Utf8)
	col.AppendNulls(rowsCommitted)
	table.Columns = append(table.Columns, col)
	return col
}

// hasMoreInput reports whether at least one more byte is available without
// consuming it.
func hasMoreInput(br *bufio.Reader) (bool, error) {
	_, err := br.Peek(1)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanRow(br *bufio.Reader, delimiter byte, byteCap int) (rowScan, error) {
	var row rowScan
	for {
		meta, term, err := scanField(br, delimiter, byteCap)
		if err != nil {
			return row, err
		}
		row.fields = append(row.fields, meta)
		if term == termDelimiter {
			continue
		}
		break
	}
	if len(row.fields) == 1 && row.fields[0].immediateEnd {
		row.empty = true
	}
	return row, nil
}

// scanField runs the state machine for exactly one value, stopping once the
// field's terminator (delimiter, newline, or EOF) has been consumed.
func scanField(br *bufio.Reader, delimiter byte, byteCap int) (fieldMeta, termKind, error) {
	var meta fieldMeta
	written := 0
	appendByte := func(b byte) {
		if byteCap <= 0 || written < byteCap {
			meta.bytes = append(meta.bytes, b)
			written++
		} else {
			meta.truncated = true
		}
	}

	state := stFieldStart
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			if state == stQuoted {
				meta.missingEndQuote = true
			}
			return meta, termEOF, nil
		}
		if err != nil {
			return meta, termEOF, err
		}

		switch state {
		case stFieldStart:
			switch {
			case b == '"':
				state = stQuoted
			case b == delimiter:
				return meta, termDelimiter, nil
			case b == '\r' || b == '\n':
				if err := consumeRestOfTerminator(br, b); err != nil {
					return meta, termEOF, err
				}
				meta.immediateEnd = true
				return meta, termNewline, nil
			default:
				appendByte(b)
				state = stUnquoted
			}
		case stUnquoted:
			switch {
			case b == delimiter:
				return meta, termDelimiter, nil
			case b == '\r' || b == '\n':
				if err := consumeRestOfTerminator(br, b); err != nil {
					return meta, termEOF, err
				}
				return meta, termNewline, nil
			default:
				appendByte(b)
			}
		case stQuoted:
			if b == '"' {
				state = stQuoteInQuoted
			} else {
				appendByte(b)
			}
		case stQuoteInQuoted:
			switch {
			case b == '"':
				appendByte('"')
				state = stQuoted
			case b == delimiter:
				return meta, termDelimiter, nil
			case b == '\r' || b == '\n':
				if err := consumeRestOfTerminator(br, b); err != nil {
					return meta, termEOF, err
				}
				return meta, termNewline, nil
			default:
				// The parser has already committed to QUOTED for this
				// value, so a character straight after a would-be closing
				// quote means the quoting is malformed. Drop the pending
				// quote and read the rest of the value as UNQUOTED: later
				// quotes are kept verbatim, and the next delimiter or
				// newline ends the value.
				meta.misplacedQuote = true
				appendByte(b)
				state = stUnquoted
			}
		}
	}
}

// consumeRestOfTerminator, given the first byte of a row terminator already
// read, consumes the rest of a CRLF pair if present, treating CR, LF, and
// CRLF as a single terminator.
func consumeRestOfTerminator(br *bufio.Reader, first byte) error {
	if first != '\r' {
		return nil
	}
	b, err := br.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	if b != '\n' {
		return br.UnreadByte()
	}
	return nil
}
