package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "bare object",
			input:    `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "markdown fenced",
			input:    "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "surrounded by prose",
			input:    `Here is the analysis: {"a":1} hope that helps!`,
			expected: `{"a":1}`,
		},
		{
			name:    "no object",
			input:   "I could not analyze this message.",
			wantErr: true,
		},
		{
			name:    "braces in wrong order",
			input:   "} nothing here {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONBlock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseResponse(t *testing.T) {
	raw := `Sure! {"message_type": "SALARY_CREDIT", "extracted_data": {"amount": "5000.00", "account_number": "123456", "transaction_date": "05-MAY-24"}, "important_points": ["Transaction amount: ₹5,000.00"]}`

	result, err := ParseResponse(raw)
	require.NoError(t, err)

	assert.Equal(t, models.CategorySalaryCredit, result.Category)
	assert.Equal(t, []string{"Transaction amount: ₹5,000.00"}, result.Highlights)

	amount, ok := result.Fields.Number("amount")
	require.True(t, ok)
	assert.Equal(t, "5000", amount.String())

	// Identifier fields survive sanitization as strings.
	account, ok := result.Fields.String("account_number")
	require.True(t, ok)
	assert.Equal(t, "123456", account)

	// Remote dates are normalized too.
	date := result.Fields["transaction_date"]
	assert.Equal(t, models.KindDate, date.Kind)
	assert.Equal(t, "2024-05-05", date.Date)
}

func TestParseResponseMissingKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing message_type", `{"extracted_data": {}, "important_points": []}`},
		{"missing extracted_data", `{"message_type": "DEBIT_TRANSACTION", "important_points": []}`},
		{"missing important_points", `{"message_type": "DEBIT_TRANSACTION", "extracted_data": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.input)
			require.Error(t, err)
			var formatErr *parsererror.ResponseFormatError
			assert.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestParseResponseUnknownCategory(t *testing.T) {
	raw := `{"message_type": "PIZZA_ORDER", "extracted_data": {}, "important_points": []}`

	_, err := ParseResponse(raw)
	require.Error(t, err)
	var formatErr *parsererror.ResponseFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestParseResponseInvalidJSON(t *testing.T) {
	_, err := ParseResponse(`{"message_type": "DEBIT_TRANSACTION",`)
	assert.Error(t, err)
}

func TestBuildPromptContainsMessage(t *testing.T) {
	message := "A/c XX1234 credited with Rs.5,000.00"
	prompt := BuildPrompt(message)

	assert.Contains(t, prompt, message)
	assert.Contains(t, prompt, "message_type")
	assert.Contains(t, prompt, "SALARY_CREDIT")
	assert.Contains(t, prompt, "INSURANCE_PAYMENT")
}
