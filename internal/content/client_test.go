package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/empatlab/cnvcoach/internal/fault"
	"github.com/empatlab/cnvcoach/internal/llm"
)

func scenarioPayload(count int) json.RawMessage {
	type options struct {
		Passive     string `json:"passive"`
		CNV         string `json:"cnv"`
		Neutral     string `json:"neutral"`
		Problematic string `json:"problematic"`
	}
	type scenario struct {
		Situation string  `json:"situation"`
		Options   options `json:"options"`
	}

	var scenarios []scenario
	for i := 0; i < count; i++ {
		scenarios = append(scenarios, scenario{
			Situation: "A colleague takes credit for your work in a meeting.",
			Options: options{
				Passive:     "Say nothing and hope someone noticed.",
				CNV:         "Tell them privately how it felt and ask for joint credit next time.",
				Neutral:     "Mention later that you contributed too.",
				Problematic: "Call them out as a liar in front of everyone.",
			},
		})
	}

	raw, _ := json.Marshal(map[string]any{"scenarios": scenarios})
	return raw
}

func TestRequestScenarios(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: scenarioPayload(2)})
	client := NewClient(mock, DefaultConfig())

	scenarios, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	require.Equal(t, 1, mock.CallCount())
	require.NotNil(t, mock.Calls[0].Request.Schema, "scenario request carried no schema")
	require.Contains(t, mock.Calls[0].Request.Messages[0].Content, "Ana", "prompt does not mention the trainee name")
	require.Equal(t, []string{"scenario-gen"}, mock.Purposes())
}

func TestRequestScenarios_NilProvider(t *testing.T) {
	client := NewClient(nil, DefaultConfig())

	_, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := fault.KindOf(err); kind != fault.Uninitialized {
		t.Errorf("fault kind = %s, want %s", kind, fault.Uninitialized)
	}
}

func TestRequestScenarios_ProviderFault(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want fault.Kind
	}{
		{"auth", &llm.ErrAuth{Err: errors.New("401")}, fault.InvalidCredential},
		{"rate limit", &llm.ErrRateLimit{Err: errors.New("429")}, fault.QuotaExceeded},
		{"blocked", &llm.ErrContentBlocked{}, fault.ContentBlocked},
		{"unavailable", &llm.ErrProviderUnavailable{Err: errors.New("502")}, fault.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Err: tt.err})
			client := NewClient(mock, DefaultConfig())

			_, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
			if err == nil {
				t.Fatal("expected error")
			}
			if kind := fault.KindOf(err); kind != tt.want {
				t.Errorf("fault kind = %s, want %s", kind, tt.want)
			}
		})
	}
}

func TestRequestScenarios_MalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I would rather chat about the weather.`),
	})
	client := NewClient(mock, DefaultConfig())

	_, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := fault.KindOf(err); kind != fault.MalformedResponse {
		t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
	}
}

func TestRequestScenarios_SchemaEnforced(t *testing.T) {
	// Well-formed JSON that drifts from the declared schema: the payload
	// carries an undeclared top-level field. Struct unmarshaling alone
	// would silently ignore it.
	obj := `{"scenarios":[{"situation":"s","options":{"passive":"a","cnv":"b","neutral":"c","problematic":"d"}}],"note":"extra"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(obj)})
	client := NewClient(mock, DefaultConfig())

	_, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
	if err == nil {
		t.Fatal("expected schema violation to fail")
	}
	if kind := fault.KindOf(err); kind != fault.MalformedResponse {
		t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
	}
}

func TestRequestFeedback_SchemaEnforced(t *testing.T) {
	obj := `{"immediate":"Nice","detailed":"Why","points":10,"bonus":"extra"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(obj)})
	client := NewClient(mock, DefaultConfig())

	_, err := client.RequestFeedback(context.Background(), "s", "c", KindCNV, "Ana")
	if err == nil {
		t.Fatal("expected schema violation to fail")
	}
	if kind := fault.KindOf(err); kind != fault.MalformedResponse {
		t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
	}
}

func TestRequestScenarios_Sanitized(t *testing.T) {
	raw := json.RawMessage(`{"scenarios":[{
		"situation":"Your manager says *\"this is wrong\"* in chat.",
		"options":{
			"passive":"Say nothing.",
			"cnv":"Ask what exactly concerns them.",
			"neutral":"Reply with a thumbs up.",
			"problematic":"Reply that *they* are wrong."
		}
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	client := NewClient(mock, DefaultConfig())

	scenarios, err := client.RequestScenarios(context.Background(), UserProfile{Name: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := scenarios[0].Situation; strings.ContainsAny(got, `"*`) {
		t.Errorf("situation not sanitized: %q", got)
	}
	if got := scenarios[0].Options[KindProblematic]; strings.Contains(got, "*") {
		t.Errorf("option not sanitized: %q", got)
	}
}

func TestRequestFeedback_PointsFromTable(t *testing.T) {
	// Provider echoes absurd points; the fixed table wins.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"immediate":"Great pick, Ana!","detailed":"You named the need clearly.","points":999}`),
	})
	client := NewClient(mock, DefaultConfig())

	fb, err := client.RequestFeedback(context.Background(), "situation", "chosen", KindCNV, "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.Points != PointsFor(KindCNV) {
		t.Errorf("points = %d, want %d", fb.Points, PointsFor(KindCNV))
	}
	if fb.Immediate != "Great pick, Ana!" {
		t.Errorf("immediate = %q", fb.Immediate)
	}
}

func TestRequestFeedback_Fault(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	client := NewClient(mock, DefaultConfig())

	_, err := client.RequestFeedback(context.Background(), "s", "c", KindCNV, "Ana")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := fault.KindOf(err); kind != fault.QuotaExceeded {
		t.Errorf("fault kind = %s, want %s", kind, fault.QuotaExceeded)
	}
}

func TestRequestFinalSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`  Well done today, Ana. Keep naming your needs.  `),
	})
	client := NewClient(mock, DefaultConfig())

	got, err := client.RequestFinalSummary(context.Background(), "Ana", 25, 3, map[OptionKind]int{KindCNV: 2, KindNeutral: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "Well done today, Ana. Keep naming your needs."; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestRequestFinalSummary_Empty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`   `)})
	client := NewClient(mock, DefaultConfig())

	_, err := client.RequestFinalSummary(context.Background(), "Ana", 0, 0, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := fault.KindOf(err); kind != fault.MalformedResponse {
		t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
	}
}

func TestTestConnection(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`OK`)})
		client := NewClient(mock, DefaultConfig())

		result := client.TestConnection(context.Background())
		if !result.OK {
			t.Fatalf("probe failed: %s", result.Message)
		}
	})

	t.Run("nil provider", func(t *testing.T) {
		client := NewClient(nil, DefaultConfig())

		result := client.TestConnection(context.Background())
		if result.OK {
			t.Fatal("probe succeeded without a provider")
		}
		if result.Kind != fault.Uninitialized {
			t.Errorf("kind = %s, want %s", result.Kind, fault.Uninitialized)
		}
	})

	t.Run("auth failure", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrAuth{Err: errors.New("401")}})
		client := NewClient(mock, DefaultConfig())

		result := client.TestConnection(context.Background())
		if result.OK {
			t.Fatal("probe succeeded on auth failure")
		}
		if result.Kind != fault.InvalidCredential {
			t.Errorf("kind = %s, want %s", result.Kind, fault.InvalidCredential)
		}
	})
}
