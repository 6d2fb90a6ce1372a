// Package dateutils normalizes the date spellings found in bank and fund SMS
// text into canonical ISO calendar dates. There is no timezone handling;
// these are calendar dates only.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// DateLayoutISO is the canonical output layout (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// monthNames resolves 3-letter month abbreviations. Lookup is done on the
// uppercased capture; an unrecognized name falls back to "01" rather than
// failing the whole capture.
var monthNames = map[string]string{
	"JAN": "01", "FEB": "02", "MAR": "03", "APR": "04",
	"MAY": "05", "JUN": "06", "JUL": "07", "AUG": "08",
	"SEP": "09", "OCT": "10", "NOV": "11", "DEC": "12",
}

var (
	// DD-MMM-YY or DD MMM YYYY, month as a 3-letter name
	monthNamePattern = regexp.MustCompile(`(\d{1,2})[-\s/]([A-Za-z]{3})[-\s/](\d{2,4})`)
	// DD/MM/YYYY or DD-MM-YYYY
	dayFirstPattern = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	// YYYY-MM-DD or YYYY/MM/DD
	yearFirstPattern = regexp.MustCompile(`(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	// YY-MM-DD, two-digit year first
	shortYearFirstPattern = regexp.MustCompile(`(\d{2})[-/](\d{1,2})[-/](\d{1,2})`)
)

// strictLayouts is the final fallback, tried in order after the pattern-based
// attempts. Mirrors the template chain the extraction rules were tuned on.
var strictLayouts = []string{
	"2-Jan-06",
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"06-1-2",
}

// NormalizeDate parses a short date-like substring into an ISO calendar date
// (YYYY-MM-DD). Formats are tried in a fixed order and the first match wins:
// month-name dates, day-first numeric dates with a 4-digit year, year-first
// dates, two-digit-year-first dates, then a list of strict layouts. Two-digit
// years expand to the 2000s. An unparseable input returns an error; callers
// log it as a warning and leave the field absent.
func NormalizeDate(dateStr string) (string, error) {
	if m := monthNamePattern.FindStringSubmatch(dateStr); m != nil {
		day, monthStr, year := m[1], m[2], m[3]
		month, ok := monthNames[strings.ToUpper(monthStr)]
		if !ok {
			month = "01"
		}
		if len(year) == 2 {
			year = "20" + year
		}
		return fmt.Sprintf("%s-%s-%s", year, month, pad2(day)), nil
	}

	if m := dayFirstPattern.FindStringSubmatch(dateStr); m != nil {
		day, month, year := m[1], m[2], m[3]
		return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)), nil
	}

	if m := yearFirstPattern.FindStringSubmatch(dateStr); m != nil {
		year, month, day := m[1], m[2], m[3]
		return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)), nil
	}

	if m := shortYearFirstPattern.FindStringSubmatch(dateStr); m != nil {
		year, month, day := "20"+m[1], m[2], m[3]
		return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)), nil
	}

	cleaned := strings.TrimSpace(dateStr)
	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(DateLayoutISO), nil
		}
	}

	log.Warnf("Could not parse date: %s", dateStr)
	return "", fmt.Errorf("unable to parse date: %s", dateStr)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
