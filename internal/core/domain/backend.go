package domain

import "strings"

// LLMBackend selects which language model serves a generation call.
// Invalid names fail at parse time, never as a runtime string-match
// fallthrough.
type LLMBackend string

const (
	BackendGemini LLMBackend = "gemini"
	BackendGroq   LLMBackend = "groq"
)

func ParseLLMBackend(raw string) (LLMBackend, bool) {
	switch LLMBackend(strings.ToLower(strings.TrimSpace(raw))) {
	case BackendGemini:
		return BackendGemini, true
	case BackendGroq:
		return BackendGroq, true
	default:
		return "", false
	}
}
