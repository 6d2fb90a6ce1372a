package analyzer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
)

// BuildHighlights derives the human-readable summary lines for a locally
// analyzed message. Order is fixed: the shared fields first, then the
// category-specific ones. Fields that were not extracted produce no line.
func BuildHighlights(category models.Category, fields models.FieldMap) []string {
	points := make([]string, 0, 6)

	if amount, ok := fields.Number("amount"); ok {
		points = append(points, fmt.Sprintf("Transaction amount: ₹%s", formatINR(amount)))
	}
	// The date is usually KindDate after sanitization but stays a plain
	// string when it could not be normalized; both get a line.
	if date, ok := fields["transaction_date"]; ok && !date.IsAbsent() {
		points = append(points, fmt.Sprintf("Date: %s", date.Display()))
	}
	if bank, ok := fields.String("bank_name"); ok {
		points = append(points, fmt.Sprintf("Bank: %s", bank))
	}
	if balance, ok := fields.Number("available_balance"); ok {
		points = append(points, fmt.Sprintf("Available balance: ₹%s", formatINR(balance)))
	}

	switch category {
	case models.CategorySalaryCredit:
		if employer, ok := fields.String("employer"); ok {
			points = append(points, fmt.Sprintf("Salary from: %s", employer))
		}
	case models.CategoryEMIPayment:
		if ref, ok := fields.String("loan_reference"); ok {
			points = append(points, fmt.Sprintf("Loan reference: %s", ref))
		}
		if loanType, ok := fields.String("loan_type"); ok {
			points = append(points, fmt.Sprintf("Loan type: %s", loanType))
		}
	case models.CategoryCreditCard:
		if merchant, ok := fields.String("merchant"); ok {
			points = append(points, fmt.Sprintf("Purchase at: %s", merchant))
		}
		if outstanding, ok := fields.Number("total_outstanding"); ok {
			points = append(points, fmt.Sprintf("Total outstanding: ₹%s", formatINR(outstanding)))
		}
	case models.CategorySIPInvestment:
		if fund, ok := fields.String("fund_name"); ok {
			points = append(points, fmt.Sprintf("Fund: %s", fund))
		}
		if folio, ok := fields.String("folio_number"); ok {
			points = append(points, fmt.Sprintf("Folio: %s", folio))
		}
		if nav, ok := fields.Number("nav_value"); ok {
			points = append(points, fmt.Sprintf("NAV: %s", nav.String()))
		}
	}

	return points
}

// formatINR renders a monetary amount with comma-grouped thousands and two
// decimal places, e.g. 12300.5 becomes "12,300.50".
func formatINR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
