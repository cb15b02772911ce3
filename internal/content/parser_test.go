package content

import (
	"encoding/json"
	"testing"

	"github.com/empatlab/cnvcoach/internal/fault"
)

const validScenariosJSON = `{
	"scenarios": [
		{
			"situation": "A colleague interrupts you in every meeting.",
			"options": {
				"passive": "Let it go and speak less.",
				"cnv": "Name the interruptions and ask for space to finish.",
				"neutral": "Mention it casually after the meeting.",
				"problematic": "Interrupt them back, louder."
			}
		}
	]
}`

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "prose before and after",
			raw:  "Here is your content:\n{\"a\":1}\nHope this helps!",
			want: `{"a":1}`,
		},
		{
			name: "nested braces",
			raw:  `Sure! {"outer":{"inner":{"deep":2}}} done`,
			want: `{"outer":{"inner":{"deep":2}}}`,
		},
		{
			name: "braces inside strings",
			raw:  `{"text":"use { and } freely"}`,
			want: `{"text":"use { and } freely"}`,
		},
		{
			name: "escaped quote inside string",
			raw:  `{"text":"she said \" hi {"}`,
			want: `{"text":"she said \" hi {"}`,
		},
		{
			name:    "no object at all",
			raw:     "I'm sorry, I can't produce JSON right now.",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			raw:     `{"a":1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				if kind := fault.KindOf(err); kind != fault.MalformedResponse {
					t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateScenarios_Valid(t *testing.T) {
	scenarios, err := ValidateScenarios(json.RawMessage(validScenariosJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 1 {
		t.Fatalf("expected 1 scenario, got %d", len(scenarios))
	}

	s := scenarios[0]
	if s.Situation == "" {
		t.Error("empty situation")
	}
	for _, kind := range AllKinds {
		if s.Options[kind] == "" {
			t.Errorf("missing option %s", kind)
		}
	}
}

func TestValidateScenarios_Malformed(t *testing.T) {
	tests := []struct {
		name string
		obj  string
	}{
		{"missing scenarios field", `{"items":[]}`},
		{"empty scenarios array", `{"scenarios":[]}`},
		{"empty situation", `{"scenarios":[{"situation":"","options":{"passive":"a","cnv":"b","neutral":"c","problematic":"d"}}]}`},
		{"missing option kind", `{"scenarios":[{"situation":"s","options":{"passive":"a","cnv":"b","neutral":"c"}}]}`},
		{"extra option kind", `{"scenarios":[{"situation":"s","options":{"passive":"a","cnv":"b","neutral":"c","problematic":"d","bonus":"e"}}]}`},
		{"empty option value", `{"scenarios":[{"situation":"s","options":{"passive":"","cnv":"b","neutral":"c","problematic":"d"}}]}`},
		{"wrong options type", `{"scenarios":[{"situation":"s","options":["a","b","c","d"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := ValidateScenarios(json.RawMessage(tt.obj))
			if err == nil {
				t.Fatal("expected error")
			}
			if scenarios != nil {
				t.Errorf("expected nil scenarios on failure, got %d", len(scenarios))
			}
			if kind := fault.KindOf(err); kind != fault.MalformedResponse {
				t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
			}
		})
	}
}

func TestValidateFeedback(t *testing.T) {
	tests := []struct {
		name          string
		obj           string
		wantImmediate string
		wantDetailed  string
		wantErr       bool
	}{
		{
			name:          "valid",
			obj:           `{"immediate":"Nice!","detailed":"Here is why.","points":10}`,
			wantImmediate: "Nice!",
			wantDetailed:  "Here is why.",
		},
		{
			name:          "empty strings allowed",
			obj:           `{"immediate":"","detailed":""}`,
			wantImmediate: "",
			wantDetailed:  "",
		},
		{
			name:    "missing immediate",
			obj:     `{"detailed":"x"}`,
			wantErr: true,
		},
		{
			name:    "missing detailed",
			obj:     `{"immediate":"x"}`,
			wantErr: true,
		},
		{
			name:    "wrong type",
			obj:     `{"immediate":1,"detailed":"x"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			immediate, detailed, err := ValidateFeedback(json.RawMessage(tt.obj))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if kind := fault.KindOf(err); kind != fault.MalformedResponse {
					t.Errorf("fault kind = %s, want %s", kind, fault.MalformedResponse)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if immediate != tt.wantImmediate || detailed != tt.wantDetailed {
				t.Errorf("got (%q, %q), want (%q, %q)", immediate, detailed, tt.wantImmediate, tt.wantDetailed)
			}
		})
	}
}
