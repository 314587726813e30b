// SPDX-License-Identifier: MIT

// Package coocodec: sentinel errors plus structured parse errors.
// HeaderError and EntryError unwrap to their sentinels, so callers can
// branch with errors.Is and still read the fields via errors.As.

package coocodec

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned by LoadFile when the named input does
	// not exist. It is raised by source resolution only, never by parsing.
	ErrSourceNotFound = errors.New("coocodec: source not found")

	// ErrMalformedHeader indicates fewer than two lines of input, or a
	// first/second line that does not match rows=<n> / cols=<n>.
	ErrMalformedHeader = errors.New("coocodec: malformed header")

	// ErrMalformedEntry indicates a non-blank data line that does not match
	// the (<row>, <col>, <value>) tuple pattern.
	ErrMalformedEntry = errors.New("coocodec: malformed entry")
)

// HeaderError describes a malformed dimension header. Source is the input
// identifier ("" when decoding raw text); Detail names the offending content.
type HeaderError struct {
	Source string
	Detail string
}

func (e *HeaderError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("coocodec: malformed header: %s", e.Detail)
	}

	return fmt.Sprintf("coocodec: %s: malformed header: %s", e.Source, e.Detail)
}

func (e *HeaderError) Unwrap() error { return ErrMalformedHeader }

// EntryError describes a data line that failed to parse. Line is 1-based;
// Raw holds the offending line with surrounding whitespace trimmed.
type EntryError struct {
	Source string
	Line   int
	Raw    string
}

func (e *EntryError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("coocodec: malformed entry at line %d: %q", e.Line, e.Raw)
	}

	return fmt.Sprintf("coocodec: %s: malformed entry at line %d: %q", e.Source, e.Line, e.Raw)
}

func (e *EntryError) Unwrap() error { return ErrMalformedEntry }
