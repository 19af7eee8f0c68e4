package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the month/day/year layout used by the service date source.
// One or two digit month and day are accepted when parsing.
const DateLayout = "1/2/2006"

// ReportDateLayout is the zero padded month/day/year layout written to reports.
const ReportDateLayout = "01/02/2006"

// ToFloat parses decimal text into a finite float64.
func ToFloat(val string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", val)
	}
	return f, nil
}

// ToDate parses month/day/year text into a date in the local time zone.
func ToDate(val string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(val), time.Local)
}

// FormatFloat renders a float with the shortest exact representation and at
// least one fractional digit (100 -> "100.0", 12.5 -> "12.5"). Decimal
// exponents below -4 or from 16 up switch to scientific notation
// (1e16 -> "1e+16", 0.00001 -> "1e-05").
func FormatFloat(v float64) string {
	if v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
		sci := strconv.FormatFloat(v, 'e', -1, 64)
		exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
		if err == nil && (exp < -4 || exp >= 16) {
			return sci
		}
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// FormatDate renders a date with the report layout.
func FormatDate(t time.Time) string {
	return t.Format(ReportDateLayout)
}

// TrimAll returns a copy of fields with surrounding whitespace removed.
func TrimAll(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
