// SPDX-License-Identifier: MIT

package fill

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/strassen/matrix"
)

var (
	// ErrShortInput reports that the stream ended before all values were read.
	ErrShortInput = errors.New("fill: unexpected end of input")

	// ErrBadToken reports a token that is not a number of the requested kind.
	ErrBadToken = errors.New("fill: malformed number")
)

// Reader tokenizes whitespace-separated numbers. Line breaks carry no
// meaning, so a matrix may be typed on one line or spread over many.
type Reader struct {
	sc    *bufio.Scanner
	count int // tokens consumed so far, for error messages
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

func (r *Reader) next() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("fill: token %d: %w", r.count+1, err)
		}
		return "", fmt.Errorf("fill: token %d: %w", r.count+1, ErrShortInput)
	}
	r.count++

	return r.sc.Text(), nil
}

// Int reads one base-10 integer.
func (r *Reader) Int() (int, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("fill: token %d %q: %w", r.count, tok, ErrBadToken)
	}

	return v, nil
}

// Float reads one floating-point number.
func (r *Reader) Float() (float64, error) {
	tok, err := r.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("fill: token %d %q: %w", r.count, tok, ErrBadToken)
	}

	return v, nil
}

// Matrix reads Rows()*Cols() numbers into m in row-major order. The matrix
// numeric policy applies, so "NaN" is rejected by a default *Dense.
func (r *Reader) Matrix(m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("fill.Matrix: %w", matrix.ErrNilMatrix)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = r.Float(); err != nil {
				return fmt.Errorf("fill.Matrix[%d,%d]: %w", i, j, err)
			}
			if err = m.Set(i, j, v); err != nil {
				return fmt.Errorf("fill.Matrix: %w", err)
			}
		}
	}

	return nil
}

// Read is NewReader(r).Matrix(m) for a single matrix.
func Read(r io.Reader, m *matrix.Dense) error {
	return NewReader(r).Matrix(m)
}
