package models

// Category is the closed taxonomy of financial message types.
// Classification always yields exactly one of these values.
type Category string

const (
	CategorySalaryCredit    Category = "SALARY_CREDIT"
	CategoryEMIPayment      Category = "EMI_PAYMENT"
	CategoryCreditCard      Category = "CREDIT_CARD_TRANSACTION"
	CategorySIPInvestment   Category = "SIP_INVESTMENT"
	CategoryCreditTxn       Category = "CREDIT_TRANSACTION"
	CategoryDebitTxn        Category = "DEBIT_TRANSACTION"
	CategoryInsurance       Category = "INSURANCE_PAYMENT"
	CategoryOtherFinancial  Category = "OTHER_FINANCIAL"
)

// AllCategories lists every valid category in prompt/display order.
var AllCategories = []Category{
	CategorySalaryCredit,
	CategoryEMIPayment,
	CategoryCreditCard,
	CategorySIPInvestment,
	CategoryCreditTxn,
	CategoryDebitTxn,
	CategoryInsurance,
	CategoryOtherFinancial,
}

// IsValid reports whether c is one of the eight enumerated categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
