package session

import (
	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/fault"
)

// Presenter receives session events. Implementations must not call back
// into the Machine from inside a callback; callbacks fire while the
// machine holds its own lock.
type Presenter interface {
	// ScenariosLoaded fires when the session has its scenario set.
	// usedFallback tells the UI which path produced them.
	ScenariosLoaded(scenarios []content.Scenario, usedFallback bool)

	// FeedbackReady fires once per answered question. usedFallback is
	// true when the feedback text was synthesized locally.
	FeedbackReady(feedback content.FeedbackResult, usedFallback bool)

	// SessionCompleted hands off the final immutable state and the
	// closing summary text.
	SessionCompleted(final SessionState, summary string)

	// FaultNotice reports a classified provider fault in plain language.
	// Purely informational: fallback has already been arranged.
	FaultNotice(kind fault.Kind)

	// LoadFailed fires when even the fallback store yielded nothing.
	// The session waits for a user-initiated retry.
	LoadFailed(kind fault.Kind)
}
