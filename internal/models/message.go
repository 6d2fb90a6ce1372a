// Package models defines the value objects shared by the analysis pipeline:
// the message taxonomy, the typed field map, and the analysis result shape
// produced by both the remote and the fallback extraction paths.
package models

// CustomerInfo is opaque caller context carried alongside a message. The
// analysis core never inspects it; batch processing threads it through for
// downstream consumers.
type CustomerInfo struct {
	ID    int    `json:"customer_id"`
	Name  string `json:"customer_name"`
	Phone string `json:"phone_number"`
}

// RawMessage is the immutable input to a single analysis call.
type RawMessage struct {
	Text     string        // the SMS body, required
	HintDate string        // optional date string used when no date is extracted
	Customer *CustomerInfo // optional, opaque to the core
}

// AnalysisResult is the output of one analysis call. Both the remote path and
// the local fallback produce this same shape; callers cannot tell which path
// ran from the result alone.
type AnalysisResult struct {
	Category   Category `json:"message_type"`
	Fields     FieldMap `json:"extracted_data"`
	Highlights []string `json:"important_points"`
}
