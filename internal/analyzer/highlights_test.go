package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
)

func TestBuildHighlightsOrder(t *testing.T) {
	fields := models.FieldMap{
		"amount":            models.NumberValue(decimal.RequireFromString("1234567.8")),
		"transaction_date":  models.DateValue("2024-06-01"),
		"bank_name":         models.StringValue("HDFC Bank"),
		"available_balance": models.NumberValue(decimal.RequireFromString("500")),
		"merchant":          models.StringValue("Amazon India"),
		"total_outstanding": models.NumberValue(decimal.RequireFromString("18750.25")),
	}

	points := BuildHighlights(models.CategoryCreditCard, fields)

	assert.Equal(t, []string{
		"Transaction amount: ₹1,234,567.80",
		"Date: 2024-06-01",
		"Bank: HDFC Bank",
		"Available balance: ₹500.00",
		"Purchase at: Amazon India",
		"Total outstanding: ₹18,750.25",
	}, points)
}

func TestBuildHighlightsDateKinds(t *testing.T) {
	// A normalized date is KindDate, not KindString; it must still get its
	// line on the fallback path.
	points := BuildHighlights(models.CategoryDebitTxn, models.FieldMap{
		"transaction_date": models.DateValue("2024-05-05"),
	})
	assert.Equal(t, []string{"Date: 2024-05-05"}, points)

	// An unnormalizable date survives sanitization as a string and is
	// surfaced verbatim.
	points = BuildHighlights(models.CategoryDebitTxn, models.FieldMap{
		"transaction_date": models.StringValue("sometime in May"),
	})
	assert.Equal(t, []string{"Date: sometime in May"}, points)
}

func TestBuildHighlightsSkipsAbsentFields(t *testing.T) {
	points := BuildHighlights(models.CategoryDebitTxn, models.FieldMap{})
	assert.Empty(t, points)
}

func TestBuildHighlightsEMI(t *testing.T) {
	fields := models.FieldMap{
		"loan_reference": models.StringValue("PL12345678"),
		"loan_type":      models.StringValue("Personal Loan"),
	}

	points := BuildHighlights(models.CategoryEMIPayment, fields)

	assert.Equal(t, []string{
		"Loan reference: PL12345678",
		"Loan type: Personal Loan",
	}, points)
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"small", "5", "5.00"},
		{"hundreds", "500", "500.00"},
		{"thousands", "5000", "5,000.00"},
		{"lakhs scale", "12300.5", "12,300.50"},
		{"millions scale", "1234567.8", "1,234,567.80"},
		{"negative", "-5000", "-5,000.00"},
		{"zero", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatINR(decimal.RequireFromString(tt.input)))
		})
	}
}
