// Package edtf normalizes partial and uncertain date expressions into closed
// instant intervals.
//
// Expressions are read with github.com/sfomuseum/go-edtf, which covers the
// Extended Date/Time Format levels 0 to 2 (years, months, days, seasons,
// unspecified digits, qualifiers and intervals). Full xsd:dateTime values
// resolve to a single instant.
package edtf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	goedtf "github.com/sfomuseum/go-edtf"
	"github.com/sfomuseum/go-edtf/parser"
)

// ErrMalformed signals an expression that cannot be read as a date.
var ErrMalformed = errors.New("edtf: malformed date expression")

// Interval is the closure of a date expression: the earliest and latest
// instants it is compatible with. A nil bound is open.
type Interval struct {
	Lower *time.Time
	Upper *time.Time
}

// ClosureStart returns the earliest instant compatible with expr.
// The second result is false when expr is malformed or open at the start.
func ClosureStart(expr string) (time.Time, bool) {
	iv, err := Parse(expr)
	if err != nil || iv.Lower == nil {
		return time.Time{}, false
	}
	return *iv.Lower, true
}

// ClosureEnd returns the latest instant compatible with expr.
// The second result is false when expr is malformed or open at the end.
func ClosureEnd(expr string) (time.Time, bool) {
	iv, err := Parse(expr)
	if err != nil || iv.Upper == nil {
		return time.Time{}, false
	}
	return *iv.Upper, true
}

// Parse computes the closure of expr. Upper bounds land on the last
// millisecond of the day they fall on.
func Parse(expr string) (Interval, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Interval{}, ErrMalformed
	}

	if t, ok := parseInstant(expr); ok {
		return Interval{Lower: &t, Upper: &t}, nil
	}

	d, err := parser.ParseString(expr)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var iv Interval
	if d.Start != nil {
		iv.Lower = bound(d.Start.Lower, startOfDay)
	}
	if d.End != nil {
		iv.Upper = bound(d.End.Upper, endOfDay)
	}
	if iv.Lower == nil && iv.Upper == nil {
		return Interval{}, fmt.Errorf("%w: %q has no bounds", ErrMalformed, expr)
	}
	if iv.Lower != nil && iv.Upper != nil && iv.Upper.Before(*iv.Lower) {
		return Interval{}, fmt.Errorf("%w: interval ends before it starts", ErrMalformed)
	}
	return iv, nil
}

// bound maps one side of a parsed range to an instant. Open and unknown
// sides have none.
func bound(d *goedtf.Date, at func(y, m, d int) time.Time) *time.Time {
	if d == nil || d.Open || d.Unknown || d.YMD == nil {
		return nil
	}
	t := at(d.YMD.Year, d.YMD.Month, d.YMD.Day)
	return &t
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseInstant reads full date-times; those carry no uncertainty.
func parseInstant(s string) (time.Time, bool) {
	if !strings.Contains(s, "T") {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func startOfDay(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
