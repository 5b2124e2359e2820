package ai

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Upstream failure kinds. The classification drives the user-visible message;
// none of these are retried automatically.
const (
	KindQuota      = "quota"
	KindOverloaded = "overloaded"
	KindEmpty      = "empty"
	KindNetwork    = "network"
)

type UpstreamError struct {
	Kind string
	Msg  string // actionable, user facing
	Err  error  // underlying cause, may be nil
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai upstream (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("ai upstream (%s): %s", e.Kind, e.Msg)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UserMessage is what controllers surface instead of the raw error.
func (e *UpstreamError) UserMessage() string { return e.Msg }

var ErrEmptyResponse = &UpstreamError{
	Kind: KindEmpty,
	Msg:  "The AI service returned an empty response. Please try again.",
}

// ClassifyUpstream maps a provider error onto the taxonomy. Works off the
// genai status code when present and falls back to matching the message,
// since wrapped transport errors often carry only text like "429".
func ClassifyUpstream(err error) *UpstreamError {
	code := 0
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Code
	}
	s := err.Error()
	switch {
	case code == 429 || strings.Contains(s, "429") ||
		strings.Contains(s, "RESOURCE_EXHAUSTED") || strings.Contains(strings.ToLower(s), "quota"):
		return &UpstreamError{Kind: KindQuota, Msg: "API quota exceeded. Please try again later.", Err: err}
	case code == 503 || strings.Contains(s, "503") ||
		strings.Contains(s, "UNAVAILABLE") || strings.Contains(strings.ToLower(s), "overloaded"):
		return &UpstreamError{Kind: KindOverloaded, Msg: "The AI model is overloaded. Please try again in a moment.", Err: err}
	default:
		return &UpstreamError{Kind: KindNetwork, Msg: "Failed to reach the AI service. Please try again.", Err: err}
	}
}

// UserMessage extracts the actionable message from any error in the chain,
// with a generic fallback.
func UserMessage(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Msg
	}
	return "Failed to generate roadmap. Please try again."
}
