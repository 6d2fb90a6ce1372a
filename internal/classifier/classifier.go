// Package classifier assigns a message to one category of the closed
// taxonomy using an ordered keyword decision list. Rule order encodes
// priority: the first matching rule wins, so a salary-like message containing
// plain "debited" still classifies as SALARY_CREDIT, and the broad
// "credited"/"deposited" trigger of rule 1 deliberately shadows the generic
// credit rule further down. Reordering these rules changes output.
package classifier

import (
	"strings"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
)

// Classify maps raw SMS text to exactly one Category. It is a pure function;
// matching is case-insensitive and unmatched text falls through to
// OTHER_FINANCIAL.
func Classify(message string) models.Category {
	text := strings.ToLower(message)

	contains := func(substr string) bool {
		return strings.Contains(text, substr)
	}
	containsAny := func(substrs ...string) bool {
		for _, s := range substrs {
			if contains(s) {
				return true
			}
		}
		return false
	}

	// Salary and salary-like deposits
	if containsAny("salary", "credited", "deposited") {
		return models.CategorySalaryCredit
	}

	// Loan repayments
	if containsAny("loan", "emi") && containsAny("debited", "deducted", "due on") {
		return models.CategoryEMIPayment
	}

	// Credit card usage
	if containsAny("credit card", "creditcard", "card member") {
		return models.CategoryCreditCard
	}

	// Mutual fund SIP deductions
	if contains("sip") && containsAny("processed", "deducted", "under folio", "has been processed") {
		return models.CategorySIPInvestment
	}

	// Insurance premiums
	if containsAny("insurance", "premium", "policy") {
		return models.CategoryInsurance
	}

	// Generic movements
	if containsAny("credited", "deposited") {
		return models.CategoryCreditTxn
	}
	if containsAny("debited", "deducted") {
		return models.CategoryDebitTxn
	}

	return models.CategoryOtherFinancial
}
