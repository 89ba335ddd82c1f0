package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-summary",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"score": map[string]any{"type": "number"},
			},
			"required": []any{"title"},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title": "hello", "score": 42}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score": 42}`)
	err := validateResponse(testSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title": 7}`)
	err := validateResponse(testSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := validateResponse(testSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if invResp.Content == nil {
		t.Error("expected failing content attached to error")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}
