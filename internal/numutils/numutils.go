// Package numutils cleans and parses numeric substrings captured from SMS
// text. Upstream captures are frequently malformed: grouping commas, a
// trailing sentence period glued to the number, or several decimal points
// when the capture ran past the value.
package numutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CleanNumericString normalizes a raw numeric capture into text that a
// decimal parser accepts. It strips grouping commas, drops a trailing period,
// and when several decimal points are present keeps only the first one,
// concatenating the remaining digits ("30.441." -> "30.441", "1.2.3" ->
// "1.23"). An empty or whitespace-only input yields "".
func CleanNumericString(value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	cleaned := strings.ReplaceAll(value, ",", "")

	if strings.HasSuffix(cleaned, ".") {
		cleaned = cleaned[:len(cleaned)-1]
	}

	if strings.Count(cleaned, ".") > 1 {
		firstDot := strings.Index(cleaned, ".")
		cleaned = cleaned[:firstDot+1] + strings.ReplaceAll(cleaned[firstDot+1:], ".", "")
	}

	return cleaned
}

// ParseNumber cleans a raw capture and parses it as a decimal. The error is
// a field-level extraction failure; callers record it and leave the field
// absent rather than aborting the message.
func ParseNumber(value string) (decimal.Decimal, error) {
	cleaned := CleanNumericString(value)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty numeric value")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse number '%s': %w", value, err)
	}
	return d, nil
}
