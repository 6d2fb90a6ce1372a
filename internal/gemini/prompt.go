package gemini

import "fmt"

// promptTemplate enumerates the taxonomy and field vocabulary for the model.
// The three top-level keys of the response format are a wire contract; the
// parser rejects replies missing any of them.
const promptTemplate = `
Analyze the following financial SMS and return a clean JSON response only (no markdown or code block formatting):

Message: "%s"

Identify the transaction category from one of the following:
- SALARY_CREDIT (salary deposits)
- EMI_PAYMENT (loan repayments)
- CREDIT_CARD_TRANSACTION (credit card usage)
- SIP_INVESTMENT (mutual fund investments)
- CREDIT_TRANSACTION (other deposits)
- DEBIT_TRANSACTION (other withdrawals)
- INSURANCE_PAYMENT (insurance payments)
- OTHER_FINANCIAL (other financial messages)

Extract fields based on the category such as:
- amount, account_number, transaction_date (must be present), available_balance, bank_name
- employer (for salary), merchant (for card), authorization_code, total_outstanding
- loan_reference, loan_type (for EMI), fund_name, folio_number, nav_value (for SIP)
- policy_number, insurance_company, insurance_type (for insurance)

The transaction_date field is mandatory. Ensure it is extracted in YYYY-MM-DD format or explicitly set it as null.

Format strictly as:
{
  "message_type": "CATEGORY_NAME",
  "extracted_data": {
    "field1": "value1",
    "field2": "value2"
  },
  "important_points": ["point 1", "point 2", "point 3"]
}

Return only valid JSON. Do not return markdown, explanation, or formatting like ` + "```json." + `
`

// BuildPrompt renders the analysis prompt for one message.
func BuildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}
