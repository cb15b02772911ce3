package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/empatlab/cnvcoach/internal/content"
	"github.com/empatlab/cnvcoach/internal/fault"
)

// Machine drives one training session: load scenarios, present question,
// take answer, fetch or synthesize feedback, accumulate score, advance,
// complete. It owns SessionState exclusively and enforces one in-flight
// provider call at a time through its busy phases. A provider fault never
// aborts the session; fallback content always lets it finish.
type Machine struct {
	mu        sync.Mutex
	client    *content.Client
	presenter Presenter
	logger    *zap.Logger
	state     SessionState
}

// New creates a Machine for the given profile. The profile name is
// required; everything else about the profile is advisory prompt context.
func New(client *content.Client, presenter Presenter, profile content.UserProfile, logger *zap.Logger) (*Machine, error) {
	if profile.Name == "" {
		return nil, fmt.Errorf("profile name is required to start a session")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Machine{
		client:    client,
		presenter: presenter,
		logger:    logger,
		state: SessionState{
			ID:           uuid.NewString(),
			Profile:      profile,
			Distribution: make(map[content.OptionKind]int),
			Phase:        PhaseLoading,
		},
	}, nil
}

// State returns a copy of the current session state.
func (m *Machine) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.snapshot()
}

// CurrentScenario returns the scenario at the current index, or false
// when none is active.
func (m *Machine) CurrentScenario() (content.Scenario, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Index < 0 || m.state.Index >= len(m.state.Scenarios) {
		return content.Scenario{}, false
	}
	return m.state.Scenarios[m.state.Index], true
}

// Load requests scenario generation and transitions to Presenting. On any
// classified fault it substitutes the fallback store, so the session
// never stalls on generation failure. Only valid from Loading or Failed.
func (m *Machine) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase != PhaseLoading && m.state.Phase != PhaseFailed {
		return
	}
	m.state.Phase = PhaseLoading

	scenarios, err := m.client.RequestScenarios(ctx, m.state.Profile)
	usedFallback := false
	if err != nil {
		kind := fault.KindOf(err)
		m.logger.Warn("scenario generation failed, using fallback",
			zap.String("session_id", m.state.ID),
			zap.String("fault", string(kind)),
			zap.Error(err))
		m.presenter.FaultNotice(kind)
		scenarios = content.FallbackScenarios()
		usedFallback = true

		// The fallback store is fixed and non-empty; an empty set here
		// means the store itself is exhausted. Hard failure, manual retry.
		if len(scenarios) == 0 {
			m.state.Phase = PhaseFailed
			m.presenter.LoadFailed(kind)
			return
		}
	}

	if len(scenarios) == 0 {
		m.state.Phase = PhaseFailed
		m.presenter.LoadFailed(fault.Unknown)
		return
	}

	m.state.Scenarios = scenarios
	m.state.Index = 0
	m.state.UsedFallback = usedFallback
	m.state.Phase = PhasePresenting

	m.logger.Info("session loaded",
		zap.String("session_id", m.state.ID),
		zap.Int("scenarios", len(scenarios)),
		zap.Bool("fallback", usedFallback))

	m.presenter.ScenariosLoaded(m.state.snapshot().Scenarios, usedFallback)
}

// SelectAnswer handles an answer-selection event carrying a canonical
// option index (0-3). Events arriving outside Presenting are ignored, so
// duplicate selections while feedback is in flight produce exactly one
// AnsweredRecord. An out-of-range index is a caller contract violation
// and returns an error.
func (m *Machine) SelectAnswer(ctx context.Context, index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(content.AllKinds) {
		return fmt.Errorf("answer index %d out of range [0,%d]", index, len(content.AllKinds)-1)
	}
	if m.state.Phase != PhasePresenting {
		return nil
	}

	m.state.Phase = PhaseAwaitingFeedback

	scenario := m.state.Scenarios[m.state.Index]
	kind, chosen := scenario.OptionAt(index)

	feedback, err := m.client.RequestFeedback(ctx, scenario.Situation, chosen, kind, m.state.Profile.Name)
	usedFallback := false
	if err != nil {
		faultKind := fault.KindOf(err)
		m.logger.Warn("feedback generation failed, synthesizing locally",
			zap.String("session_id", m.state.ID),
			zap.String("fault", string(faultKind)),
			zap.Error(err))
		m.presenter.FaultNotice(faultKind)
		feedback = content.FallbackFeedback(m.state.Profile.Name, kind)
		usedFallback = true
	}

	// Points come from the fixed table on both paths; the session score
	// is never blocked by a provider fault.
	m.state.Answers = append(m.state.Answers, AnsweredRecord{
		Scenario: scenario.Situation,
		Chosen:   chosen,
		Feedback: feedback.Immediate,
		Points:   feedback.Points,
	})
	m.state.Score += feedback.Points
	m.state.Distribution[kind]++
	m.state.Phase = PhaseShowingFeedback

	m.presenter.FeedbackReady(feedback, usedFallback)
	return nil
}

// Continue advances past the displayed feedback. It either presents the
// next question or, when every scenario is answered, completes the
// session and hands off the final state with a closing summary.
func (m *Machine) Continue(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase != PhaseShowingFeedback {
		return
	}

	m.state.Index++
	if m.state.Index < len(m.state.Scenarios) {
		m.state.Phase = PhasePresenting
		return
	}

	m.state.Phase = PhaseCompleted
	final := m.state.snapshot()

	summary, err := m.client.RequestFinalSummary(ctx,
		final.Profile.Name, final.Score, len(final.Answers), final.Distribution)
	if err != nil {
		kind := fault.KindOf(err)
		m.logger.Warn("summary generation failed, using template",
			zap.String("session_id", m.state.ID),
			zap.String("fault", string(kind)),
			zap.Error(err))
		summary = content.FallbackSummary(final.Profile.Name, final.Score, len(final.Answers))
	}

	m.logger.Info("session completed",
		zap.String("session_id", m.state.ID),
		zap.Int("score", final.Score),
		zap.Int("answered", len(final.Answers)))

	m.presenter.SessionCompleted(final, summary)
}

// RetryLoad re-enters Loading from the Failed state. A no-op anywhere
// else: loaded-but-empty never retries automatically.
func (m *Machine) RetryLoad(ctx context.Context) {
	m.mu.Lock()
	failed := m.state.Phase == PhaseFailed
	m.mu.Unlock()

	if failed {
		m.Load(ctx)
	}
}
