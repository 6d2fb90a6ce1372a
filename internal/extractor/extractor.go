// Package extractor pulls structured fields out of raw SMS text using
// category-aware regular expressions. Each field is matched independently; a
// pattern that finds nothing leaves its field absent, never a placeholder.
// Pattern ordering is significant throughout: patterns are deliberately
// narrow-then-broad so the first, most specific match wins.
package extractor

import (
	"regexp"
	"strings"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/dateutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/numutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Common patterns attempted for every category.
var (
	amountPattern  = regexp.MustCompile(`(?:INR|Rs\.?|₹)\s*([\d,]+\.?\d*)`)
	accountPattern = regexp.MustCompile(`(?i)(?:A/c(?:\s+no)?\.?|Ac(?:\s+no)?\.?|card ending|account)\s*[:\-]?\s*([A-Z0-9]+\d{4})`)
	datePattern    = regexp.MustCompile(`(\d{2}[-/]\d{2}[-/]\d{2,4}|\d{2}[-\s][A-Za-z]{3}[-\s]\d{2,4})`)
	balancePattern = regexp.MustCompile(`(?i)(?:Avl bal|available balance|net available balance)[^0-9]*(?:INR|Rs\.?|₹)\s*([\d,]+\.?\d*)`)
	bankPattern    = regexp.MustCompile(`(?:from|to|by)?\s*([A-Z][A-Za-z\s]+)\s+(?:Bank|BANK|bank)`)
)

// Category-specific patterns.
var (
	employerPattern    = regexp.MustCompile(`- ([A-Za-z\s]+) -`)
	loanRefPattern     = regexp.MustCompile(`([A-Z0-9]+\d{6,})`)
	loanTypePattern    = regexp.MustCompile(`(?i)Loan\s+([A-Za-z]+)`)
	merchantPattern    = regexp.MustCompile(`(?i)at\s+([A-Za-z\s]+)\s+on`)
	authCodePattern    = regexp.MustCompile(`Authorization code[-:]?\s*(\w+)`)
	outstandingPattern = regexp.MustCompile(`(?i)total outstanding is\s+(?:Rs\.?|INR|₹)\s*([\d,]+\.?\d*)`)
	policyPattern      = regexp.MustCompile(`(?i)policy(?:\s+no\.?| number)?[:\-]?\s*([A-Z0-9]+)`)
)

// Extractor runs the pattern set for a classified message. The insurance
// issuer list is injected so its priority order stays configurable.
type Extractor struct {
	issuers []string
}

// New creates an Extractor with the given insurance issuer priority list.
func New(issuers []string) *Extractor {
	return &Extractor{issuers: issuers}
}

// Extract returns the raw field values found in the message for the given
// category. Numeric captures are cleaned and parsed to decimals; the
// transaction date is normalized to ISO form. Values are untyped here; the
// sanitizer converts the map into the typed FieldMap.
func (e *Extractor) Extract(category models.Category, message string) map[string]any {
	data := make(map[string]any)

	if m := amountPattern.FindStringSubmatch(message); m != nil {
		if amount, err := numutils.ParseNumber(m[1]); err == nil {
			data["amount"] = amount
		} else {
			log.WithError(&parsererror.FieldParseError{Field: "amount", Value: m[1], Err: err}).
				Error("Failed to convert amount")
		}
	}

	if m := accountPattern.FindStringSubmatch(message); m != nil {
		data["account_number"] = m[1]
	}

	if m := datePattern.FindStringSubmatch(message); m != nil {
		if iso, err := dateutils.NormalizeDate(m[1]); err == nil {
			data["transaction_date"] = iso
		}
	}

	if m := balancePattern.FindStringSubmatch(message); m != nil {
		if balance, err := numutils.ParseNumber(m[1]); err == nil {
			data["available_balance"] = balance
		} else {
			log.WithError(&parsererror.FieldParseError{Field: "available_balance", Value: m[1], Err: err}).
				Error("Failed to convert balance")
		}
	}

	if m := bankPattern.FindStringSubmatch(message); m != nil {
		data["bank_name"] = strings.TrimSpace(m[1]) + " Bank"
	}

	switch category {
	case models.CategorySalaryCredit:
		if m := employerPattern.FindStringSubmatch(message); m != nil {
			data["employer"] = strings.TrimSpace(m[1])
		} else {
			// Signals a general transaction downstream, not a real employer.
			data["employer"] = "General Transaction"
		}

	case models.CategoryEMIPayment:
		if m := loanRefPattern.FindStringSubmatch(message); m != nil {
			data["loan_reference"] = m[1]
		}
		if m := loanTypePattern.FindStringSubmatch(message); m != nil {
			data["loan_type"] = m[1]
		} else {
			data["loan_type"] = "Personal Loan"
		}

	case models.CategoryCreditCard:
		if m := merchantPattern.FindStringSubmatch(message); m != nil {
			data["merchant"] = strings.TrimSpace(m[1])
		}
		if m := authCodePattern.FindStringSubmatch(message); m != nil {
			data["authorization_code"] = m[1]
		}
		if m := outstandingPattern.FindStringSubmatch(message); m != nil {
			if outstanding, err := numutils.ParseNumber(m[1]); err == nil {
				data["total_outstanding"] = outstanding
			} else {
				log.WithError(&parsererror.FieldParseError{Field: "total_outstanding", Value: m[1], Err: err}).
					Error("Failed to convert outstanding")
			}
		}

	case models.CategorySIPInvestment:
		for key, value := range e.ExtractSIP(message) {
			data[key] = value
		}

	case models.CategoryInsurance:
		if m := policyPattern.FindStringSubmatch(message); m != nil {
			data["policy_number"] = m[1]
		}
		lower := strings.ToLower(message)
		for _, issuer := range e.issuers {
			if strings.Contains(lower, strings.ToLower(issuer)) {
				data["insurance_company"] = issuer
				break
			}
		}
		// Only one insurance sub-type is ever produced today.
		data["insurance_type"] = "Life Insurance"
	}

	return data
}
