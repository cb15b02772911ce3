package session

import "github.com/empatlab/cnvcoach/internal/content"

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseLoading means scenario generation is in flight.
	PhaseLoading Phase = iota
	// PhasePresenting means a question is displayed, awaiting an answer.
	PhasePresenting
	// PhaseAwaitingFeedback means an answer was taken and the feedback
	// request is in flight. The machine is busy: further answer events
	// are ignored.
	PhaseAwaitingFeedback
	// PhaseShowingFeedback means feedback is displayed, awaiting continue.
	PhaseShowingFeedback
	// PhaseCompleted is terminal; the final state has been handed off.
	PhaseCompleted
	// PhaseFailed means even the fallback store yielded nothing. Only a
	// user-initiated retry leaves this state.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaitingFeedback:
		return "awaiting-feedback"
	case PhaseShowingFeedback:
		return "showing-feedback"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AnsweredRecord captures one answered question. Append-only, immutable
// after creation.
type AnsweredRecord struct {
	Scenario string
	Chosen   string
	Feedback string
	Points   int
}

// SessionState is the single source of truth for a running session. It is
// owned exclusively by the Machine; everyone else sees copies.
type SessionState struct {
	// ID identifies this session (UUID).
	ID string

	// Profile is the trainee profile, immutable once the session starts.
	Profile content.UserProfile

	// Scenarios is fixed once loaded. Its length is authoritative for the
	// session length, whether generated (10) or fallback (3).
	Scenarios []content.Scenario

	// Index is the current question index, 0-based.
	Index int

	// Score is the accumulated score, monotonically non-decreasing.
	Score int

	// Answers holds one record per answered question, in order.
	Answers []AnsweredRecord

	// Distribution counts answers by option kind, for the final summary.
	Distribution map[content.OptionKind]int

	// Phase is the current lifecycle phase.
	Phase Phase

	// UsedFallback records whether the scenario set came from the
	// fallback store rather than generation.
	UsedFallback bool
}

// snapshot returns a copy safe to hand outside the machine.
func (s SessionState) snapshot() SessionState {
	out := s

	out.Scenarios = make([]content.Scenario, len(s.Scenarios))
	copy(out.Scenarios, s.Scenarios)

	out.Answers = make([]AnsweredRecord, len(s.Answers))
	copy(out.Answers, s.Answers)

	out.Distribution = make(map[content.OptionKind]int, len(s.Distribution))
	for k, v := range s.Distribution {
		out.Distribution[k] = v
	}

	return out
}
