// SPDX-License-Identifier: MIT

// Package coocodec - text decoding & encoding.
//
// Decoding tokenizes by hand (prefix match, digit scan, delimiter checks)
// so every failure can name the exact line and content. Decoding is
// failure-transparent: the matrix under construction is discarded on the
// first bad line, never returned partially populated.

package coocodec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/coo"
)

const (
	rowsKey = "rows"
	colsKey = "cols"
)

// Decode parses the coordinate text format into a fresh matrix.
// Errors unwrap to ErrMalformedHeader or ErrMalformedEntry.
// Complexity: O(len(content)).
func Decode(content string) (*coo.Matrix, error) {
	return decode("", content)
}

// DecodeFrom reads r to the end and decodes it. The format has no framing,
// so the whole payload is consumed before parsing starts.
func DecodeFrom(r io.Reader) (*coo.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("coocodec: read: %w", err)
	}

	return decode("", string(data))
}

// decode does the actual work; source tags errors with an input identifier
// (file path) when decoding on behalf of LoadFile.
func decode(source, content string) (*coo.Matrix, error) {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil, &HeaderError{Source: source, Detail: "need rows= and cols= lines"}
	}

	rows, ok := parseDim(lines[0], rowsKey)
	if !ok {
		return nil, &HeaderError{
			Source: source,
			Detail: fmt.Sprintf("want %s=<n>, got %q", rowsKey, strings.TrimSpace(lines[0])),
		}
	}
	cols, ok := parseDim(lines[1], colsKey)
	if !ok {
		return nil, &HeaderError{
			Source: source,
			Detail: fmt.Sprintf("want %s=<n>, got %q", colsKey, strings.TrimSpace(lines[1])),
		}
	}

	m, err := coo.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("coocodec: %w", err)
	}

	for i := 2; i < len(lines); i++ {
		raw := strings.TrimSpace(lines[i])
		if raw == "" {
			continue // blank separator lines are tolerated
		}
		row, col, val, ok := parseTuple(raw)
		if !ok {
			return nil, &EntryError{Source: source, Line: i + 1, Raw: raw}
		}
		if err = m.Set(row, col, val); err != nil {
			return nil, fmt.Errorf("coocodec: line %d: %w", i+1, err)
		}
	}

	return m, nil
}

// parseDim matches a trimmed header line of the form key=<digits>.
func parseDim(line, key string) (int, bool) {
	s := strings.TrimSpace(line)
	rest, found := strings.CutPrefix(s, key+"=")
	if !found {
		return 0, false
	}
	tok, rest := scanDigits(rest)
	if tok == "" || rest != "" {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}

	return n, true
}

// parseTuple matches (<row>, <col>, <value>) anchored at the start of a
// trimmed line: nonnegative row and col, signed value, optional blanks after
// each comma. Content after the closing parenthesis is tolerated.
func parseTuple(s string) (row, col int, val int64, ok bool) {
	rest, found := strings.CutPrefix(s, "(")
	if !found {
		return 0, 0, 0, false
	}

	var tok string
	if tok, rest = scanDigits(rest); tok == "" {
		return 0, 0, 0, false
	}
	row, err := strconv.Atoi(tok)
	if err != nil {
		return 0, 0, 0, false
	}

	if rest, found = cutComma(rest); !found {
		return 0, 0, 0, false
	}
	if tok, rest = scanDigits(rest); tok == "" {
		return 0, 0, 0, false
	}
	if col, err = strconv.Atoi(tok); err != nil {
		return 0, 0, 0, false
	}

	if rest, found = cutComma(rest); !found {
		return 0, 0, 0, false
	}
	neg := false
	if rest, neg = strings.CutPrefix(rest, "-"); neg {
		tok = "-"
	} else {
		tok = ""
	}
	var digits string
	if digits, rest = scanDigits(rest); digits == "" {
		return 0, 0, 0, false
	}
	if val, err = strconv.ParseInt(tok+digits, 10, 64); err != nil {
		return 0, 0, 0, false
	}

	if !strings.HasPrefix(rest, ")") {
		return 0, 0, 0, false
	}

	return row, col, val, true
}

// cutComma consumes a comma plus any following blanks.
func cutComma(s string) (string, bool) {
	s, found := strings.CutPrefix(s, ",")
	if !found {
		return s, false
	}
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}

	return s, true
}

// scanDigits splits a maximal leading run of ASCII digits off s.
func scanDigits(s string) (tok, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return s[:i], s[i:]
}

// Encode renders m in canonical form: header, then one tuple line per
// stored cell in row-major order, each line newline-terminated, with no
// blank lines. m must be non-nil. Complexity: O(nnz·log nnz).
func Encode(m *coo.Matrix) string {
	var b strings.Builder
	_ = EncodeTo(&b, m) // strings.Builder never fails

	return b.String()
}

// EncodeTo writes the canonical form of m to w.
// Returns coo.ErrNilMatrix for a nil matrix, or the first write error.
func EncodeTo(w io.Writer, m *coo.Matrix) error {
	if m == nil {
		return coo.ErrNilMatrix
	}
	if _, err := fmt.Fprintf(w, "%s=%d\n%s=%d\n", rowsKey, m.Rows(), colsKey, m.Cols()); err != nil {
		return fmt.Errorf("coocodec: write: %w", err)
	}
	for _, e := range m.Cells() {
		if _, err := fmt.Fprintf(w, "(%d, %d, %d)\n", e.Row, e.Col, e.Val); err != nil {
			return fmt.Errorf("coocodec: write: %w", err)
		}
	}

	return nil
}
