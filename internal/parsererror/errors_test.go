package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "message is empty or blank", (&EmptyMessageError{}).Error())

	remoteErr := &RemoteAnalysisError{Reason: "no response from Gemini API"}
	assert.Contains(t, remoteErr.Error(), "remote analysis failed")

	formatErr := &ResponseFormatError{Reason: "missing required field message_type"}
	assert.Contains(t, formatErr.Error(), "malformed remote response")

	withSnippet := &ResponseFormatError{Reason: "no JSON object found in response", Snippet: "hello"}
	assert.Contains(t, withSnippet.Error(), `"hello"`)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")

	remoteErr := &RemoteAnalysisError{Reason: "Gemini API call failed", Err: cause}
	assert.ErrorIs(t, remoteErr, cause)

	fieldErr := &FieldParseError{Field: "amount", Value: "abc", Err: cause}
	assert.ErrorIs(t, fieldErr, cause)

	var target *RemoteAnalysisError
	assert.True(t, errors.As(error(remoteErr), &target))
}
