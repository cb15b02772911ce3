package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var personSchema = &Schema{
	Name:        "person-test",
	Description: "test fixture",
	Definition: map[string]any{
		"type":                 "object",
		"required":             []string{"name", "age"},
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"age":  map[string]any{"type": "integer", "minimum": 0},
		},
	},
}

func TestValidateAgainst(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"name":"Ana","age":30}`, false},
		{"missing required", `{"name":"Ana"}`, true},
		{"wrong type", `{"name":"Ana","age":"thirty"}`, true},
		{"extra property", `{"name":"Ana","age":30,"city":"Lyon"}`, true},
		{"not JSON", `not even close`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAgainst(personSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invResp *ErrInvalidResponse
				if !errors.As(err, &invResp) {
					t.Errorf("error type = %T, want *ErrInvalidResponse", err)
				}
			}
		})
	}
}

func TestValidateAgainst_NilSchema(t *testing.T) {
	if err := ValidateAgainst(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Errorf("nil schema should not validate: %v", err)
	}
}
