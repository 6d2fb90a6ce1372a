// Package sanitize reconciles the field maps produced by the remote and the
// local extraction paths into one typed shape. It is the reason downstream
// consumers cannot tell which path produced a result: both go through the
// same coercion rules before anything leaves the analyzer.
package sanitize

import (
	"fmt"
	"strings"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/dateutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"

	"github.com/shopspring/decimal"
)

// identifierFields are always kept as strings, even when the value looks
// numeric. A folio or account number is an identifier, not a quantity.
var identifierFields = map[string]bool{
	"account_number": true,
	"card_number":    true,
	"folio_number":   true,
	"policy_number":  true,
}

// dateFields carry calendar dates and are normalized to ISO form.
var dateFields = map[string]bool{
	"transaction_date": true,
}

// Sanitize converts a raw field map (from either extraction path) into a
// typed FieldMap. Per field: identifiers become trimmed strings; date fields
// become normalized calendar dates; other strings are trimmed and coerced to
// numbers when fully numeric; numeric values pass through; anything else
// falls back to its trimmed string representation. Nil values stay absent.
func Sanitize(raw map[string]any) models.FieldMap {
	fields := make(models.FieldMap, len(raw))

	for key, value := range raw {
		if value == nil {
			fields[key] = models.FieldValue{Kind: models.KindAbsent}
			continue
		}

		if identifierFields[key] {
			fields[key] = models.StringValue(strings.TrimSpace(stringify(value)))
			continue
		}

		if dateFields[key] {
			if iso, err := dateutils.NormalizeDate(strings.TrimSpace(stringify(value))); err == nil {
				fields[key] = models.DateValue(iso)
			} else {
				fields[key] = models.StringValue(strings.TrimSpace(stringify(value)))
			}
			continue
		}

		switch v := value.(type) {
		case string:
			trimmed := strings.TrimSpace(v)
			if isNumericString(trimmed) {
				if d, err := decimal.NewFromString(trimmed); err == nil {
					fields[key] = models.NumberValue(d)
					continue
				}
			}
			fields[key] = models.StringValue(trimmed)
		case decimal.Decimal:
			fields[key] = models.NumberValue(v)
		case float64:
			fields[key] = models.NumberValue(decimal.NewFromFloat(v))
		case int:
			fields[key] = models.NumberValue(decimal.NewFromInt(int64(v)))
		case int64:
			fields[key] = models.NumberValue(decimal.NewFromInt(v))
		default:
			fields[key] = models.StringValue(strings.TrimSpace(stringify(value)))
		}
	}

	return fields
}

// isNumericString reports whether s is all digits with at most one decimal
// point. Matches the coercion rule used on remote output: "1234" and
// "1234.56" are numbers, "1.2.3" and "XX1234" are not.
func isNumericString(s string) bool {
	stripped := strings.Replace(s, ".", "", 1)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if d, ok := value.(decimal.Decimal); ok {
		return d.String()
	}
	return fmt.Sprint(value)
}
