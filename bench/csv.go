// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Header is the first CSV record.
var Header = []string{"n", "standard_ms", "strassen_ms"}

var (
	// ErrBadHeader reports a CSV whose first record is not Header.
	ErrBadHeader = errors.New("bench: unexpected csv header")

	// ErrBadRecord reports a data record that cannot be parsed.
	ErrBadRecord = errors.New("bench: malformed csv record")
)

// WriteCSV writes Header followed by one record per timing. Durations are
// written as fractional milliseconds.
func WriteCSV(w io.Writer, timings []Timing) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}
	for _, t := range timings {
		record := []string{
			strconv.Itoa(t.N),
			formatMillis(t.Standard),
			formatMillis(t.Strassen),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("bench: write n=%d: %w", t.N, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses what WriteCSV produced. Match is not stored in the file and
// is left false.
func ReadCSV(r io.Reader) ([]Timing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrBadHeader
		}
		return nil, fmt.Errorf("bench: read header: %w", err)
	}
	for i := range Header {
		if head[i] != Header[i] {
			return nil, fmt.Errorf("%w: %v", ErrBadHeader, head)
		}
	}

	var timings []Timing
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		t, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		timings = append(timings, t)
	}

	return timings, nil
}

func parseRecord(rec []string) (Timing, error) {
	n, err := strconv.Atoi(rec[0])
	if err != nil {
		return Timing{}, err
	}
	std, err := parseMillis(rec[1])
	if err != nil {
		return Timing{}, err
	}
	fast, err := parseMillis(rec[2])
	if err != nil {
		return Timing{}, err
	}

	return Timing{N: n, Standard: std, Strassen: fast}, nil
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64)
}

func parseMillis(s string) (time.Duration, error) {
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	return time.Duration(math.Round(ms * float64(time.Millisecond))), nil
}
