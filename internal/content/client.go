package content

import (
	"context"
	"fmt"

	"github.com/empatlab/cnvcoach/internal/fault"
	"github.com/empatlab/cnvcoach/internal/llm"
)

// Config bounds the generation requests the Client issues.
type Config struct {
	// ScenarioCount is how many scenarios a session requests.
	ScenarioCount int

	// Per-purpose response budgets.
	ScenarioMaxTokens int
	FeedbackMaxTokens int
	SummaryMaxTokens  int

	// Temperature for all generation calls.
	Temperature float64
}

// DefaultConfig returns the standard generation bounds.
func DefaultConfig() Config {
	return Config{
		ScenarioCount:     10,
		ScenarioMaxTokens: 8192,
		FeedbackMaxTokens: 700,
		SummaryMaxTokens:  450,
		Temperature:       0.8,
	}
}

// ProbeResult reports the outcome of a connectivity probe.
type ProbeResult struct {
	OK      bool
	Message string
	Kind    fault.Kind
}

// Client turns provider output into validated session content. It issues
// one-shot requests and classifies every failure; it never retries on its
// own. A nil provider is a valid construction: every call then fails with
// an uninitialized fault and callers fall back to fixed content.
type Client struct {
	provider llm.Provider
	cfg      Config
}

// NewClient creates a content client around a provider. provider may be
// nil when no credential is configured.
func NewClient(provider llm.Provider, cfg Config) *Client {
	if cfg.ScenarioCount <= 0 {
		cfg = DefaultConfig()
	}
	return &Client{provider: provider, cfg: cfg}
}

// Configured reports whether a provider is attached.
func (c *Client) Configured() bool {
	return c.provider != nil
}

// TestConnection issues a minimal generation request and reports whether
// any response came back. Expected provider errors never escape as Go
// errors; the result value carries the classified kind instead.
func (c *Client) TestConnection(ctx context.Context) ProbeResult {
	if c.provider == nil {
		return ProbeResult{
			OK:      false,
			Message: fault.Uninitialized.Message(),
			Kind:    fault.Uninitialized,
		}
	}

	ctx = llm.WithPurpose(ctx, "probe")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Reply with the single word OK."},
		},
		MaxTokens: 8,
	})
	if err != nil {
		kind := fault.KindOf(err)
		return ProbeResult{OK: false, Message: kind.Message(), Kind: kind}
	}

	return ProbeResult{
		OK:      true,
		Message: fmt.Sprintf("Connected to %s.", resp.Model),
	}
}

// RequestScenarios generates scenarios shaped to the profile. The profile
// is embedded as free-text prompt context only. Failures come back as
// fault-tagged errors; callers decide the fallback.
func (c *Client) RequestScenarios(ctx context.Context, profile UserProfile) ([]Scenario, error) {
	if c.provider == nil {
		return nil, fault.New(fault.Uninitialized, llm.ErrNotConfigured)
	}

	ctx = llm.WithPurpose(ctx, "scenario-gen")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: scenarioSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildScenariosMessage(profile, c.cfg.ScenarioCount)},
		},
		Schema:      ScenariosSchema,
		MaxTokens:   c.cfg.ScenarioMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fault.New(fault.Classify(err), err)
	}

	obj, err := ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, err
	}

	if err := llm.ValidateAgainst(ScenariosSchema, obj); err != nil {
		return nil, fault.New(fault.MalformedResponse, err)
	}

	scenarios, err := ValidateScenarios(obj)
	if err != nil {
		return nil, err
	}

	for i := range scenarios {
		scenarios[i].Situation = CleanText(scenarios[i].Situation)
		for kind, text := range scenarios[i].Options {
			scenarios[i].Options[kind] = CleanText(text)
		}
	}

	return scenarios, nil
}

// RequestFeedback generates two-part feedback for a chosen option. The
// returned points always come from the fixed table for kind, regardless
// of what the provider echoed.
func (c *Client) RequestFeedback(ctx context.Context, situation, chosenOption string, kind OptionKind, userName string) (FeedbackResult, error) {
	if c.provider == nil {
		return FeedbackResult{}, fault.New(fault.Uninitialized, llm.ErrNotConfigured)
	}

	ctx = llm.WithPurpose(ctx, "feedback")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackMessage(situation, chosenOption, kind, userName)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   c.cfg.FeedbackMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return FeedbackResult{}, fault.New(fault.Classify(err), err)
	}

	obj, err := ExtractJSON(string(resp.Content))
	if err != nil {
		return FeedbackResult{}, err
	}

	if err := llm.ValidateAgainst(FeedbackSchema, obj); err != nil {
		return FeedbackResult{}, fault.New(fault.MalformedResponse, err)
	}

	immediate, detailed, err := ValidateFeedback(obj)
	if err != nil {
		return FeedbackResult{}, err
	}

	return FeedbackResult{
		Immediate: CleanText(immediate),
		Detailed:  CleanText(detailed),
		Points:    PointsFor(kind),
	}, nil
}

// RequestFinalSummary generates the closing narrative for a completed
// session. Returns sanitized raw text; callers substitute the templated
// fallback on error.
func (c *Client) RequestFinalSummary(ctx context.Context, userName string, totalScore, totalQuestions int, distribution map[OptionKind]int) (string, error) {
	if c.provider == nil {
		return "", fault.New(fault.Uninitialized, llm.ErrNotConfigured)
	}

	ctx = llm.WithPurpose(ctx, "summary")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryMessage(userName, totalScore, totalQuestions, distribution)},
		},
		MaxTokens:   c.cfg.SummaryMaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fault.New(fault.Classify(err), err)
	}

	summary := CleanText(string(resp.Content))
	if summary == "" {
		return "", fault.New(fault.MalformedResponse, fmt.Errorf("empty summary text"))
	}

	return summary, nil
}
