package gemini

import (
	"encoding/json"
	"strings"

	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/models"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/parsererror"
	"github.com/atharva-bokare43/ABCL-sms-parsing/internal/sanitize"
)

// remoteResponse is the wire shape the model is instructed to return.
type remoteResponse struct {
	MessageType     string         `json:"message_type"`
	ExtractedData   map[string]any `json:"extracted_data"`
	ImportantPoints []string       `json:"important_points"`
}

// ExtractJSONBlock locates the JSON object inside a free-form model reply by
// taking the span from the first '{' to the last '}'. This tolerates prose or
// markdown fencing around the object. It fails when no such span exists.
func ExtractJSONBlock(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", &parsererror.ResponseFormatError{
			Reason:  "no JSON object found in response",
			Snippet: snippet(text),
		}
	}
	return text[start : end+1], nil
}

// ParseResponse parses a raw model reply into an AnalysisResult. The reply
// must contain a JSON object with all three of message_type, extracted_data
// and important_points; the category must be from the known taxonomy; the
// extracted data is sanitized before being returned. Any violation is a hard
// failure for the remote path.
func ParseResponse(text string) (*models.AnalysisResult, error) {
	block, err := ExtractJSONBlock(text)
	if err != nil {
		return nil, err
	}

	// Presence check first: a missing key and a null key are both rejected,
	// and absence must be distinguishable from Go zero values.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(block), &keys); err != nil {
		return nil, &parsererror.ResponseFormatError{
			Reason:  "response is not valid JSON",
			Snippet: snippet(block),
			Err:     err,
		}
	}
	for _, required := range []string{"message_type", "extracted_data", "important_points"} {
		if _, ok := keys[required]; !ok {
			return nil, &parsererror.ResponseFormatError{
				Reason: "missing required field " + required,
			}
		}
	}

	var resp remoteResponse
	if err := json.Unmarshal([]byte(block), &resp); err != nil {
		return nil, &parsererror.ResponseFormatError{
			Reason:  "unexpected response shape",
			Snippet: snippet(block),
			Err:     err,
		}
	}

	category := models.Category(resp.MessageType)
	if !category.IsValid() {
		return nil, &parsererror.ResponseFormatError{
			Reason: "unknown message_type " + resp.MessageType,
		}
	}

	return &models.AnalysisResult{
		Category:   category,
		Fields:     sanitize.Sanitize(resp.ExtractedData),
		Highlights: resp.ImportantPoints,
	}, nil
}
