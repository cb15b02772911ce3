package fault

import (
	"errors"
	"strings"

	"github.com/empatlab/cnvcoach/internal/llm"
)

// Classify maps a raw provider error to a Kind. Typed errors from the llm
// package are matched first; message-substring heuristics are a best-effort
// second layer for providers that only report free-text errors. The result
// is advisory: it changes the user-facing notice, never the fallback path.
func Classify(err error) Kind {
	if err == nil {
		return Unknown
	}

	if errors.Is(err, llm.ErrNotConfigured) {
		return Uninitialized
	}

	var authErr *llm.ErrAuth
	if errors.As(err, &authErr) {
		return InvalidCredential
	}
	var rateErr *llm.ErrRateLimit
	if errors.As(err, &rateErr) {
		return QuotaExceeded
	}
	var blockedErr *llm.ErrContentBlocked
	if errors.As(err, &blockedErr) {
		return ContentBlocked
	}
	var invalidErr *llm.ErrInvalidResponse
	if errors.As(err, &invalidErr) {
		return MalformedResponse
	}

	return classifyMessage(err.Error())
}

// classifyMessage applies keyword heuristics to an error message.
func classifyMessage(msg string) Kind {
	m := strings.ToLower(msg)

	switch {
	case containsAny(m, "api key", "api_key", "unauthorized", "unauthenticated", "invalid authentication", "permission denied", "forbidden"):
		return InvalidCredential
	case containsAny(m, "quota", "rate limit", "rate-limit", "resource exhausted", "too many requests", "billing"):
		return QuotaExceeded
	case containsAny(m, "safety", "content policy", "content blocked", "prohibited content", "refused"):
		return ContentBlocked
	default:
		return Unknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
