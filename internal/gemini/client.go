// Package gemini implements the remote-analysis adapter backed by the Google
// Gemini API. It formats the instructional prompt, submits the message, and
// parses the model's free-form reply into an AnalysisResult. Any failure in
// this chain is reported to the caller, which falls back to local analysis.
package gemini

import (
	"context"
	"fmt"
	"time"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Client calls the Gemini API to analyze a single message.
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
	log     *logrus.Logger
}

// NewClient creates a Gemini-backed analysis client. The API key is
// required; the model name falls back to DefaultModel when empty. A zero
// timeout means requests run under the caller's context alone.
func NewClient(ctx context.Context, apiKey, modelName string, timeout time.Duration, logger *logrus.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	if logger == nil {
		logger = logrus.New()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   client.GenerativeModel(modelName),
		timeout: timeout,
		log:     logger,
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Analyze submits the message to Gemini and parses the reply into an
// AnalysisResult. The reply must contain a JSON object with message_type,
// extracted_data and important_points; anything else is an error.
func (c *Client) Analyze(ctx context.Context, message string) (*models.AnalysisResult, error) {
	prompt := BuildPrompt(message)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &parsererror.RemoteAnalysisError{Reason: "Gemini API call failed", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &parsererror.RemoteAnalysisError{Reason: "no response from Gemini API"}
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])

	result, err := ParseResponse(responseText)
	if err != nil {
		c.log.WithField("response", snippet(responseText)).Error("Failed to parse Gemini response")
		return nil, err
	}

	return result, nil
}

func snippet(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
