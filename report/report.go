// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/strassen/bench"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

const cellFormat = "%8.6g "

// Printer writes localized reports to w. Write errors are sticky: after the
// first failure nothing more is written and Err returns it.
type Printer struct {
	w   io.Writer
	p   *message.Printer
	err error
}

// NewPrinter returns a Printer writing to w with labels in tag's language.
func NewPrinter(w io.Writer, tag language.Tag) *Printer {
	return &Printer{w: w, p: message.NewPrinter(tag)}
}

// Err returns the first write error, if any.
func (r *Printer) Err() error { return r.err }

// Printf writes a localized message; key is looked up in the catalog.
func (r *Printer) Printf(key string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, key, args...)
}

// Println is Printf followed by a newline.
func (r *Printer) Println(key string, args ...any) {
	r.Printf(key, args...)
	r.raw("\n")
}

func (r *Printer) raw(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// Matrix writes "name:", one line per row with "%8.6g " cells, and a blank
// line. name itself may be a catalog key.
func (r *Printer) Matrix(m matrix.Matrix, name string) {
	if m == nil {
		return
	}
	r.raw("%s:\n", r.p.Sprintf(name))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				r.err = err
				return
			}
			r.raw(cellFormat, v)
		}
		r.raw("\n")
	}
	r.raw("\n")
}

// Trace writes M1..M7 followed by C11..C22. A nil trace (n = 1) prints the
// "too small to split" notice instead.
func (r *Printer) Trace(tr *strassen.Trace) {
	if tr == nil {
		r.Println(MsgTooSmall)
		return
	}
	for k, m := range tr.M {
		r.Matrix(m, fmt.Sprintf("M%d", k+1))
	}
	r.Matrix(tr.C11, "C11")
	r.Matrix(tr.C12, "C12")
	r.Matrix(tr.C21, "C21")
	r.Matrix(tr.C22, "C22")
}

// Verdict writes MsgMatch or MsgMismatch.
func (r *Printer) Verdict(equal bool) {
	if equal {
		r.Println(MsgMatch)
		return
	}
	r.Println(MsgMismatch)
}

// Timings writes an aligned table. Numbers use the locale's separators.
func (r *Printer) Timings(timings []bench.Timing) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, "%6s %14s %14s %10s\n",
		r.p.Sprintf(MsgColN), r.p.Sprintf(MsgColStandard), r.p.Sprintf(MsgColStrassen), r.p.Sprintf(MsgColSpeedup))
	for _, t := range timings {
		if r.err != nil {
			return
		}
		_, r.err = r.p.Fprintf(r.w, "%6d %14.4f %14.4f %10.2f\n",
			t.N, millis(t.Standard), millis(t.Strassen), t.Speedup())
	}
}

func millis(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

// WriteMatrix renders m in English; see Printer.Matrix.
func WriteMatrix(w io.Writer, m matrix.Matrix, name string) error {
	r := NewPrinter(w, language.English)
	r.Matrix(m, name)

	return r.Err()
}

// WriteTrace renders tr in English; see Printer.Trace.
func WriteTrace(w io.Writer, tr *strassen.Trace) error {
	r := NewPrinter(w, language.English)
	r.Trace(tr)

	return r.Err()
}

// WriteVerdict renders the comparison outcome in English.
func WriteVerdict(w io.Writer, equal bool) error {
	r := NewPrinter(w, language.English)
	r.Verdict(equal)

	return r.Err()
}

// WriteTimings renders the timing table for tag.
func WriteTimings(w io.Writer, timings []bench.Timing, tag language.Tag) error {
	r := NewPrinter(w, tag)
	r.Timings(timings)

	return r.Err()
}
