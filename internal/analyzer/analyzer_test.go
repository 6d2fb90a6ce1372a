package analyzer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/extractor"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/logging"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/store"
)

// stubAIClient returns a canned result or error for every call.
type stubAIClient struct {
	result *models.AnalysisResult
	err    error
	calls  int
}

func (s *stubAIClient) Analyze(ctx context.Context, message string) (*models.AnalysisResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestService(ai AIClient) *Service {
	return New(ai, extractor.New(store.DefaultIssuers), &logging.MockLogger{})
}

func TestAnalyzeEmptyMessage(t *testing.T) {
	svc := newTestService(nil)

	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		_, err := svc.Analyze(context.Background(), models.RawMessage{Text: text})
		require.Error(t, err)
		var emptyErr *parsererror.EmptyMessageError
		assert.ErrorAs(t, err, &emptyErr)
	}
}

func TestAnalyzeLocalCreditMessage(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text: "A/c XX1234 credited with Rs.5,000.00 on 05-MAY-24. Avl bal Rs.12,300.50",
	})
	require.NoError(t, err)

	// The broad credited/deposited rule fires before the generic credit one.
	assert.Equal(t, models.CategorySalaryCredit, result.Category)

	amount, ok := result.Fields.Number("amount")
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("5000.00")))

	date := result.Fields["transaction_date"]
	assert.Equal(t, models.KindDate, date.Kind)
	assert.Equal(t, "2024-05-05", date.Date)

	balance, ok := result.Fields.Number("available_balance")
	require.True(t, ok)
	assert.True(t, balance.Equal(decimal.RequireFromString("12300.50")))

	employer, ok := result.Fields.String("employer")
	require.True(t, ok)
	assert.Equal(t, "General Transaction", employer)

	assert.Contains(t, result.Highlights, "Transaction amount: ₹5,000.00")
	assert.Contains(t, result.Highlights, "Date: 2024-05-05")
	assert.Contains(t, result.Highlights, "Available balance: ₹12,300.50")
}

func TestAnalyzeLocalSIPMessage(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text: "Your SIP of Rs.5,000.00 in Mirae Asset Midcap Fund-Regular Plan under Folio XXXXXXX0016 has been processed at NAV of 30.441. Installment date 11/04/2025",
	})
	require.NoError(t, err)

	assert.Equal(t, models.CategorySIPInvestment, result.Category)

	folio, ok := result.Fields.String("folio_number")
	require.True(t, ok)
	assert.Equal(t, "XXXXXXX0016", folio)

	nav, ok := result.Fields.Number("nav_value")
	require.True(t, ok)
	assert.Equal(t, "30.441", nav.String())

	date := result.Fields["transaction_date"]
	assert.Equal(t, "2025-04-11", date.Date)

	assert.Contains(t, result.Highlights, "Folio: XXXXXXX0016")
	assert.Contains(t, result.Highlights, "NAV: 30.441")
}

func TestAnalyzeRemoteFailureFallsBack(t *testing.T) {
	ai := &stubAIClient{err: &parsererror.RemoteAnalysisError{Reason: "no response from Gemini API"}}
	svc := newTestService(ai)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text: "Rs.250 debited from A/c XX1234",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, models.CategoryDebitTxn, result.Category)
}

func TestAnalyzeRemoteSuccess(t *testing.T) {
	ai := &stubAIClient{result: &models.AnalysisResult{
		Category: models.CategoryCreditCard,
		Fields: models.FieldMap{
			"amount":           models.NumberValue(decimal.NewFromInt(1200)),
			"transaction_date": models.DateValue("2024-06-01"),
		},
		Highlights: []string{"Transaction amount: ₹1,200.00"},
	}}
	svc := newTestService(ai)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text: "Purchase of Rs.1,200 on your Credit Card",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryCreditCard, result.Category)
	assert.Equal(t, []string{"Transaction amount: ₹1,200.00"}, result.Highlights)
}

func TestAnalyzeRemoteSIPNavBackfill(t *testing.T) {
	ai := &stubAIClient{result: &models.AnalysisResult{
		Category: models.CategorySIPInvestment,
		Fields: models.FieldMap{
			"amount":           models.NumberValue(decimal.NewFromInt(5000)),
			"transaction_date": models.DateValue("2025-04-11"),
		},
	}}
	svc := newTestService(ai)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text: "Your SIP has been processed at NAV of 30.441.",
	})
	require.NoError(t, err)

	nav, ok := result.Fields.Number("nav_value")
	require.True(t, ok)
	assert.Equal(t, "30.441", nav.String())
}

func TestAnalyzeHintDateFill(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text:     "Rs.250 debited from A/c XX1234",
		HintDate: "05/11/2024",
	})
	require.NoError(t, err)

	date := result.Fields["transaction_date"]
	assert.Equal(t, models.KindDate, date.Kind)
	assert.Equal(t, "2024-11-05", date.Date)
}

func TestAnalyzeHintDateDoesNotOverride(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text:     "Rs.250 debited from A/c XX1234 on 15-06-2024",
		HintDate: "01/01/2020",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", result.Fields["transaction_date"].Date)
}

func TestAnalyzeUnparseableHintDateLeavesFieldAbsent(t *testing.T) {
	logger := &logging.MockLogger{}
	svc := New(nil, extractor.New(store.DefaultIssuers), logger)

	result, err := svc.Analyze(context.Background(), models.RawMessage{
		Text:     "Rs.250 debited from A/c XX1234",
		HintDate: "whenever",
	})
	require.NoError(t, err)

	assert.False(t, result.Fields.Has("transaction_date"))
	assert.True(t, logger.HasEntry("WARN", "No valid transaction date found or inferred"))
}
