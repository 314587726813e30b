// Package coocodec reads and writes the plain-text coordinate format for
// coo matrices.
//
// The wire format is line-oriented:
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	(<row>, <col>, <value>)
//	...
//
// One tuple line per stored cell, in any order on input; blank lines between
// tuples are skipped. Encode emits cells sorted row-major, so output is
// canonical, and round-trips are exact up to the original input order.
//
// Parsing is explicit tokenization, not regex: each failure carries the
// source identifier plus either the offending header content (HeaderError)
// or the 1-based line number and raw line (EntryError). A missing input
// file is a distinct ErrSourceNotFound, never conflated with parse errors.
package coocodec
