package content

import (
	"encoding/json"
	"fmt"

	"github.com/empatlab/cnvcoach/internal/fault"
)

// ExtractJSON locates the first balanced JSON object substring within
// free-form provider text and returns it. Providers may wrap the payload
// in prose; this is the single chokepoint where that fuzziness is handled.
// Fails with a malformed-response fault when no parseable object is found.
func ExtractJSON(raw string) (json.RawMessage, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := raw[start : i+1]
				if json.Valid([]byte(candidate)) {
					return json.RawMessage(candidate), nil
				}
				// Keep scanning: a later object may parse.
				start = -1
			}
		}
	}

	return nil, fault.New(fault.MalformedResponse,
		fmt.Errorf("no JSON object found in response text"))
}

// scenarioListWire mirrors the scenario-list payload.
type scenarioListWire struct {
	Scenarios []scenarioWire `json:"scenarios"`
}

type scenarioWire struct {
	Situation string            `json:"situation"`
	Options   map[string]string `json:"options"`
}

// ValidateScenarios parses an extracted JSON object into scenarios.
// Validation is all-or-nothing: a non-empty scenarios array where every
// element carries a situation and exactly the four option kinds as
// non-empty strings. Anything else is a malformed-response fault.
func ValidateScenarios(obj json.RawMessage) ([]Scenario, error) {
	var wire scenarioListWire
	if err := json.Unmarshal(obj, &wire); err != nil {
		return nil, fault.New(fault.MalformedResponse,
			fmt.Errorf("parse scenarios payload: %w", err))
	}

	if len(wire.Scenarios) == 0 {
		return nil, fault.New(fault.MalformedResponse,
			fmt.Errorf("scenarios array missing or empty"))
	}

	out := make([]Scenario, 0, len(wire.Scenarios))
	for i, w := range wire.Scenarios {
		if w.Situation == "" {
			return nil, fault.New(fault.MalformedResponse,
				fmt.Errorf("scenario %d: empty situation", i))
		}
		if len(w.Options) != len(AllKinds) {
			return nil, fault.New(fault.MalformedResponse,
				fmt.Errorf("scenario %d: expected %d options, got %d", i, len(AllKinds), len(w.Options)))
		}

		options := make(map[OptionKind]string, len(AllKinds))
		for _, kind := range AllKinds {
			text, ok := w.Options[string(kind)]
			if !ok {
				return nil, fault.New(fault.MalformedResponse,
					fmt.Errorf("scenario %d: missing option %q", i, kind))
			}
			if text == "" {
				return nil, fault.New(fault.MalformedResponse,
					fmt.Errorf("scenario %d: empty option %q", i, kind))
			}
			options[kind] = text
		}

		out = append(out, Scenario{
			Situation: w.Situation,
			Options:   options,
		})
	}

	return out, nil
}

// feedbackWire mirrors the feedback payload. Pointers distinguish absent
// fields from empty strings; a provider-supplied points value is parsed
// but deliberately discarded by the caller.
type feedbackWire struct {
	Immediate *string `json:"immediate"`
	Detailed  *string `json:"detailed"`
	Points    int     `json:"points"`
}

// ValidateFeedback parses an extracted JSON object into the two feedback
// text fields. Both must be present as strings; they may be empty.
func ValidateFeedback(obj json.RawMessage) (immediate, detailed string, err error) {
	var wire feedbackWire
	if jsonErr := json.Unmarshal(obj, &wire); jsonErr != nil {
		return "", "", fault.New(fault.MalformedResponse,
			fmt.Errorf("parse feedback payload: %w", jsonErr))
	}

	if wire.Immediate == nil || wire.Detailed == nil {
		return "", "", fault.New(fault.MalformedResponse,
			fmt.Errorf("feedback payload missing immediate or detailed field"))
	}

	return *wire.Immediate, *wire.Detailed, nil
}
