// Package cli implements the interactive driver around the coo core: it
// prompts for two matrix files, an operation code and a destination, then
// loads, computes and saves through coocodec.
//
// The loop is strictly sequential request/response over an io.Reader and
// io.Writer pair, so sessions are scriptable and testable without a
// terminal. All matrix logic lives in coo/coocodec; this package only
// sequences calls and reports errors. Every error is terminal for the
// session, and saving is atomic, so an aborted run never leaves a partial
// output file.
package cli
