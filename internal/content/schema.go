package content

import "github.com/empatlab/cnvcoach/internal/llm"

// optionsSchema requires exactly the four canonical kinds.
var optionsSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"passive": map[string]any{
			"type":        "string",
			"description": "A response that avoids the conflict",
		},
		"cnv": map[string]any{
			"type":        "string",
			"description": "A response following NVC: observation, feeling, need, request",
		},
		"neutral": map[string]any{
			"type":        "string",
			"description": "A polite but surface-level response",
		},
		"problematic": map[string]any{
			"type":        "string",
			"description": "An aggressive, blaming, or passive-aggressive response",
		},
	},
	"required":             []any{"passive", "cnv", "neutral", "problematic"},
	"additionalProperties": false,
}

// ScenariosSchema defines the scenario-list generation response.
var ScenariosSchema = &llm.Schema{
	Name:        "scenario-list",
	Description: "A list of workplace role-play scenarios with four response options each",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenarios": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"situation": map[string]any{
							"type":        "string",
							"description": "The workplace situation, second person, self-contained",
						},
						"options": optionsSchema,
					},
					"required":             []any{"situation", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"scenarios"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the per-answer feedback response. The points
// field is requested for symmetry but its value is discarded in favor of
// the fixed table.
var FeedbackSchema = &llm.Schema{
	Name:        "answer-feedback",
	Description: "Two-part coaching feedback for a chosen scenario response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"immediate": map[string]any{
				"type":        "string",
				"description": "One or two encouraging sentences reacting to the choice",
			},
			"detailed": map[string]any{
				"type":        "string",
				"description": "A short paragraph on how the chosen style lands and what NVC suggests",
			},
			"points": map[string]any{
				"type":        "integer",
				"description": "Echo of the points for the chosen style",
			},
		},
		"required":             []any{"immediate", "detailed", "points"},
		"additionalProperties": false,
	},
}
