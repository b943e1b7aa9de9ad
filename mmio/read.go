// SPDX-License-Identifier: MIT

// Package mmio - Matrix Market reader.
//
// Layout of a Matrix Market file:
//
//	%%MatrixMarket matrix <format> <field> <symmetry>   banner
//	% free-form comments                                 zero or more
//	<rows> <cols> [<entries>]                            size line
//	<data lines>                                         entries
//
// The reader is line-oriented and single-pass except for symmetric
// coordinate input, which buffers triplets so mirrored entries can be
// counted before the destination is sized.

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsix/sparse"
)

// Banner vocabulary. Matrix Market tokens are case-insensitive on disk;
// everything is lowered before comparison.
const (
	bannerTag = "%%matrixmarket"
	objMatrix = "matrix"

	formatCoordinate = "coordinate"
	formatArray      = "array"

	fieldReal    = "real"
	fieldInteger = "integer"
	fieldPattern = "pattern"

	symGeneral   = "general"
	symSymmetric = "symmetric"
)

// scanBufSize caps a single line; matrices with million-column array rows
// still fit comfortably since array data is one value per line.
const scanBufSize = 1 << 20

// header is the parsed banner.
type header struct {
	format   string
	field    string
	symmetry string
}

// lineReader walks a Matrix Market stream line by line, tracking the
// physical line number for error context and skipping comments and blanks
// where the grammar allows them.
type lineReader struct {
	sc   *bufio.Scanner
	line int // last physical line number handed out
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scanBufSize)

	return &lineReader{sc: sc}
}

// next returns the next raw line, or false at end of stream.
func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return lr.sc.Text(), true
}

// nextContent returns the next non-comment, non-blank line.
func (lr *lineReader) nextContent() (string, bool) {
	for {
		s, ok := lr.next()
		if !ok {
			return "", false
		}
		t := strings.TrimSpace(s)
		if t == "" || strings.HasPrefix(t, "%") {
			continue
		}

		return t, true
	}
}

// errLine wraps a sentinel with the current line number.
func (lr *lineReader) errLine(err error) error {
	return fmt.Errorf("line %d: %w", lr.line, err)
}

// parseBanner validates the first line of the stream and extracts the
// format/field/symmetry triple.
func parseBanner(lr *lineReader) (header, error) {
	raw, ok := lr.next()
	if !ok {
		return header{}, fmt.Errorf("empty stream: %w", ErrBadHeader)
	}
	tok := strings.Fields(strings.ToLower(raw))
	if len(tok) != 5 || tok[0] != bannerTag {
		return header{}, lr.errLine(ErrBadHeader)
	}
	if tok[1] != objMatrix {
		return header{}, lr.errLine(ErrUnsupportedFormat)
	}
	h := header{format: tok[2], field: tok[3], symmetry: tok[4]}

	switch h.format {
	case formatCoordinate:
		if h.field != fieldReal && h.field != fieldInteger && h.field != fieldPattern {
			return header{}, lr.errLine(ErrUnsupportedFormat)
		}
		if h.symmetry != symGeneral && h.symmetry != symSymmetric {
			return header{}, lr.errLine(ErrUnsupportedFormat)
		}
	case formatArray:
		// Pattern makes no sense for a fully materialized array, and the
		// packed symmetric layout is not implemented.
		if h.field != fieldReal && h.field != fieldInteger {
			return header{}, lr.errLine(ErrUnsupportedFormat)
		}
		if h.symmetry != symGeneral {
			return header{}, lr.errLine(ErrUnsupportedFormat)
		}
	default:
		return header{}, lr.errLine(ErrUnsupportedFormat)
	}

	return h, nil
}

// parseSize reads the size line: "rows cols entries" for coordinate,
// "rows cols" for array.
func parseSize(lr *lineReader, h header) (rows, cols, entries int, err error) {
	s, ok := lr.nextContent()
	if !ok {
		return 0, 0, 0, fmt.Errorf("missing size line: %w", ErrBadHeader)
	}
	tok := strings.Fields(s)

	wantTok := 2
	if h.format == formatCoordinate {
		wantTok = 3
	}
	if len(tok) != wantTok {
		return 0, 0, 0, lr.errLine(ErrBadHeader)
	}

	dims := make([]int, wantTok)
	for i, t := range tok {
		dims[i], err = strconv.Atoi(t)
		if err != nil || dims[i] < 0 {
			return 0, 0, 0, lr.errLine(ErrBadHeader)
		}
	}
	rows, cols = dims[0], dims[1]
	if h.format == formatCoordinate {
		entries = dims[2]
	}

	return rows, cols, entries, nil
}

// Read parses a complete Matrix Market stream into a coordinate matrix.
// Symmetric input is expanded (both halves materialized); pattern entries
// take the value 1; array input keeps only nonzero cells.
//
// Errors: ErrBadHeader, ErrUnsupportedFormat, ErrBadEntry, ErrTruncated,
// each wrapped with the offending line number.
func Read(r io.Reader) (*sparse.COO[int, float64], error) {
	lr := newLineReader(r)

	h, err := parseBanner(lr)
	if err != nil {
		return nil, err
	}
	rows, cols, entries, err := parseSize(lr, h)
	if err != nil {
		return nil, err
	}

	if h.format == formatArray {
		return readArray(lr, rows, cols)
	}

	return readCoordinate(lr, h, rows, cols, entries)
}

// readCoordinate parses the declared number of "row col [value]" lines.
// Triplets are buffered so symmetric mirroring can be resolved before the
// destination is sized in one Resize call.
func readCoordinate(lr *lineReader, h header, rows, cols, entries int) (*sparse.COO[int, float64], error) {
	ri := make([]int, 0, entries)
	ci := make([]int, 0, entries)
	vs := make([]float64, 0, entries)

	wantTok := 3
	if h.field == fieldPattern {
		wantTok = 2
	}

	for n := 0; n < entries; n++ {
		s, ok := lr.nextContent()
		if !ok {
			return nil, fmt.Errorf("entry %d of %d: %w", n, entries, ErrTruncated)
		}
		tok := strings.Fields(s)
		if len(tok) != wantTok {
			return nil, lr.errLine(ErrBadEntry)
		}

		row, err := strconv.Atoi(tok[0])
		if err != nil {
			return nil, lr.errLine(ErrBadEntry)
		}
		col, err := strconv.Atoi(tok[1])
		if err != nil {
			return nil, lr.errLine(ErrBadEntry)
		}
		// 1-based on disk.
		row, col = row-1, col-1
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, lr.errLine(ErrBadEntry)
		}

		v := 1.0
		if h.field != fieldPattern {
			v, err = strconv.ParseFloat(tok[2], 64)
			if err != nil {
				return nil, lr.errLine(ErrBadEntry)
			}
		}

		ri = append(ri, row)
		ci = append(ci, col)
		vs = append(vs, v)
		if h.symmetry == symSymmetric && row != col {
			ri = append(ri, col)
			ci = append(ci, row)
			vs = append(vs, v)
		}
	}

	m, err := sparse.NewCOO[int, float64](rows, cols, len(vs))
	if err != nil {
		return nil, fmt.Errorf("mmio: %w", err)
	}
	copy(m.RowIndices, ri)
	copy(m.ColIndices, ci)
	copy(m.Values, vs)

	return m, nil
}

// readArray parses rows*cols values in the format's column-major order,
// keeping only nonzero cells.
func readArray(lr *lineReader, rows, cols int) (*sparse.COO[int, float64], error) {
	ri := make([]int, 0)
	ci := make([]int, 0)
	vs := make([]float64, 0)

	// Column-major traversal mirrors the on-disk value order.
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			s, ok := lr.nextContent()
			if !ok {
				return nil, fmt.Errorf("cell (%d,%d): %w", i, j, ErrTruncated)
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, lr.errLine(ErrBadEntry)
			}
			if v != 0 {
				ri = append(ri, i)
				ci = append(ci, j)
				vs = append(vs, v)
			}
		}
	}

	m, err := sparse.NewCOO[int, float64](rows, cols, len(vs))
	if err != nil {
		return nil, fmt.Errorf("mmio: %w", err)
	}
	copy(m.RowIndices, ri)
	copy(m.ColIndices, ci)
	copy(m.Values, vs)

	return m, nil
}
