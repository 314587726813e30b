package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/coo"
	"github.com/katalvlaran/sparsemat/coocodec"
)

var (
	// ErrUnknownOperation is returned when the chosen operation code does
	// not match any menu entry.
	ErrUnknownOperation = errors.New("cli: unknown operation choice")

	// ErrInputClosed is returned when the input stream ends mid-session.
	ErrInputClosed = errors.New("cli: input closed")
)

// Operation codes accepted by the menu and by Once.
const (
	opAdd       = "a"
	opSub       = "b"
	opMul       = "c"
	opTranspose = "t"
	opScale     = "s"
)

const menu = `Operations:
  a - addition
  b - subtraction
  c - multiplication
  t - transpose (first matrix only)
  s - scale (first matrix by an integer factor)
`

// Run drives one interactive session: two source paths, an operation
// choice, a destination path. Any failure ends the session with that error;
// the caller is expected to show err.Error() to the user.
func Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	leftPath, err := prompt(sc, out, "First matrix file: ")
	if err != nil {
		return err
	}
	a, err := coocodec.LoadFile(leftPath)
	if err != nil {
		return err
	}

	rightPath, err := prompt(sc, out, "Second matrix file: ")
	if err != nil {
		return err
	}
	b, err := coocodec.LoadFile(rightPath)
	if err != nil {
		return err
	}

	fmt.Fprint(out, menu)
	choice, err := prompt(sc, out, "Operation: ")
	if err != nil {
		return err
	}
	choice = strings.ToLower(choice)

	factor := int64(1)
	if choice == opScale {
		raw, perr := prompt(sc, out, "Integer factor: ")
		if perr != nil {
			return perr
		}
		if factor, perr = strconv.ParseInt(raw, 10, 64); perr != nil {
			return fmt.Errorf("cli: invalid factor %q", raw)
		}
	}

	res, err := apply(choice, a, b, factor)
	if err != nil {
		return err
	}

	destPath, err := prompt(sc, out, "Destination file: ")
	if err != nil {
		return err
	}
	if err = coocodec.SaveFile(destPath, res); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %dx%d result (%d stored cells) to %s\n",
		res.Rows(), res.Cols(), res.NNZ(), destPath)

	return nil
}

// Once runs a single non-interactive operation for flag-driven callers.
// right may be empty for the unary codes (t, s); factor is used by s only.
func Once(left, right, op, dest string, factor int64, out io.Writer) error {
	a, err := coocodec.LoadFile(left)
	if err != nil {
		return err
	}

	var b *coo.Matrix
	switch op {
	case opAdd, opSub, opMul:
		if right == "" {
			return fmt.Errorf("cli: operation %q needs a second matrix", op)
		}
		if b, err = coocodec.LoadFile(right); err != nil {
			return err
		}
	}

	res, err := apply(op, a, b, factor)
	if err != nil {
		return err
	}
	if err = coocodec.SaveFile(dest, res); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %dx%d result (%d stored cells) to %s\n",
		res.Rows(), res.Cols(), res.NNZ(), dest)

	return nil
}

// apply dispatches an operation code to the coo core.
func apply(op string, a, b *coo.Matrix, factor int64) (*coo.Matrix, error) {
	switch op {
	case opAdd:
		return coo.Add(a, b)
	case opSub:
		return coo.Sub(a, b)
	case opMul:
		return coo.Mul(a, b)
	case opTranspose:
		return a.Transpose(), nil
	case opScale:
		return a.Scale(factor), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

// prompt writes label and reads one trimmed line.
func prompt(sc *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("cli: read input: %w", err)
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(sc.Text()), nil
}
