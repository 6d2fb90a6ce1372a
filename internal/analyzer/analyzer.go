// Package analyzer orchestrates the analysis of one financial SMS: remote
// Gemini analysis first, the deterministic classifier/extractor pipeline as
// fallback, and the shared hint-date policy applied to whichever path ran.
package analyzer

import (
	"context"
	"strings"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/classifier"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/dateutils"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/extractor"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/logging"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/sanitize"
)

// AIClient is the single capability the analyzer consumes from the outside
// world: submit raw text, receive a category plus extraction and highlights,
// or a failure. Implementations own transport, timeout and retry policy.
type AIClient interface {
	Analyze(ctx context.Context, message string) (*models.AnalysisResult, error)
}

// Service analyzes messages. It is stateless apart from its collaborators
// and safe for concurrent use.
type Service struct {
	aiClient  AIClient
	extractor *extractor.Extractor
	logger    logging.Logger
}

// New creates a Service. aiClient may be nil, in which case every message
// takes the local fallback path.
func New(aiClient AIClient, ext *extractor.Extractor, logger logging.Logger) *Service {
	if ext == nil {
		ext = extractor.New(nil)
	}
	return &Service{
		aiClient:  aiClient,
		extractor: ext,
		logger:    logger,
	}
}

// Analyze classifies one message and extracts its fields. The remote path is
// attempted first; any remote failure degrades to the local rules without
// surfacing an error. The only fatal condition is an empty message body.
func (s *Service) Analyze(ctx context.Context, msg models.RawMessage) (*models.AnalysisResult, error) {
	if strings.TrimSpace(msg.Text) == "" {
		return nil, &parsererror.EmptyMessageError{}
	}

	if result := s.analyzeRemote(ctx, msg.Text); result != nil {
		s.applyHintDate(result, msg.HintDate)
		return result, nil
	}

	result := s.analyzeLocal(msg.Text)
	s.applyHintDate(result, msg.HintDate)
	return result, nil
}

// analyzeRemote runs the remote path and returns nil on any failure.
func (s *Service) analyzeRemote(ctx context.Context, message string) *models.AnalysisResult {
	if s.aiClient == nil {
		s.logger.Debug("No AI client configured, using local analysis")
		return nil
	}

	result, err := s.aiClient.Analyze(ctx, message)
	if err != nil {
		s.logger.WithError(err).Error("Remote analysis failed, falling back to local rules")
		return nil
	}

	// The model regularly drops the NAV on SIP confirmations; the local SIP
	// patterns recover it.
	if result.Category == models.CategorySIPInvestment && !result.Fields.Has("nav_value") {
		sipData := s.extractor.ExtractSIP(message)
		if nav, ok := sipData["nav_value"]; ok {
			merged := sanitize.Sanitize(map[string]any{"nav_value": nav})
			result.Fields["nav_value"] = merged["nav_value"]
			s.logger.Debug("Backfilled SIP NAV value from local extraction")
		}
	}

	return result
}

// analyzeLocal runs the deterministic fallback: classify, extract, sanitize,
// then derive highlights from the extracted fields.
func (s *Service) analyzeLocal(message string) *models.AnalysisResult {
	category := classifier.Classify(message)
	fields := sanitize.Sanitize(s.extractor.Extract(category, message))

	s.logger.WithFields(
		logging.Field{Key: logging.FieldMessageType, Value: category.String()},
		logging.Field{Key: logging.FieldCount, Value: len(fields)},
	).Debug("Message analyzed locally")

	return &models.AnalysisResult{
		Category:   category,
		Fields:     fields,
		Highlights: BuildHighlights(category, fields),
	}
}

// applyHintDate fills transaction_date from the caller-supplied hint when
// neither path extracted one. An unparseable hint leaves the field absent;
// the call still succeeds.
func (s *Service) applyHintDate(result *models.AnalysisResult, hintDate string) {
	if result.Fields.Has("transaction_date") {
		return
	}

	if hintDate != "" {
		if iso, err := dateutils.NormalizeDate(hintDate); err == nil {
			result.Fields["transaction_date"] = models.DateValue(iso)
			return
		}
	}

	s.logger.Warn("No valid transaction date found or inferred")
}
