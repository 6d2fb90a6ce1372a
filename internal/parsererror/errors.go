// Package parsererror defines the typed errors of the analysis pipeline.
// Only EmptyMessageError ever surfaces to callers; the remote and field
// errors are recovered internally via the fallback path or field absence.
package parsererror

import "fmt"

// EmptyMessageError reports an empty or whitespace-only message body. It is
// the sole fatal input error: nothing is retried, nothing is returned.
type EmptyMessageError struct{}

func (e *EmptyMessageError) Error() string {
	return "message is empty or blank"
}

// RemoteAnalysisError wraps any failure of the remote analysis call itself:
// client unavailable, transport failure, or an empty reply.
type RemoteAnalysisError struct {
	Reason string
	Err    error
}

func (e *RemoteAnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("remote analysis failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("remote analysis failed: %s", e.Reason)
}

func (e *RemoteAnalysisError) Unwrap() error {
	return e.Err
}

// ResponseFormatError reports a remote reply that could not be parsed as the
// expected JSON object or was missing one of its required top-level keys.
// For the remote path this is a hard failure, not a partial result.
type ResponseFormatError struct {
	Reason  string
	Snippet string
	Err     error
}

func (e *ResponseFormatError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("malformed remote response: %s (snippet: %q)", e.Reason, e.Snippet)
	}
	return fmt.Sprintf("malformed remote response: %s", e.Reason)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

// FieldParseError records a field-level conversion failure (bad number, bad
// date). The field is left absent; the rest of the result is unaffected.
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
