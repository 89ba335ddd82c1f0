package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// definitionSchema is the JSON Schema a catalog artifact must satisfy
// before structural validation runs. Schema errors produce better
// messages than unmarshal surprises for hand-edited catalogs.
var definitionSchema = map[string]any{
	"type":     "object",
	"required": []any{"version", "questions", "sections", "question_flow", "section_flow"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"text", "type", "section"},
				"properties": map[string]any{
					"id":      map[string]any{"type": "string"},
					"text":    map[string]any{"type": "string"},
					"type":    map[string]any{"enum": []any{"slider", "yes-no", "multiple-choice"}},
					"section": map[string]any{"type": "string"},
					"scoring": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"points":        map[string]any{"type": "number"},
							"target_answer": map[string]any{"type": "string"},
							"choices": map[string]any{
								"type":                 "object",
								"additionalProperties": map[string]any{"type": "number"},
							},
						},
					},
					"choice_order": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
		},
		"sections": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"questions", "total_points"},
				"properties": map[string]any{
					"id":           map[string]any{"type": "string"},
					"title":        map[string]any{"type": "string"},
					"questions":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"total_points": map[string]any{"type": "number"},
					"adaptive_trigger_questions": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"adaptive_max_score": map[string]any{"type": "number"},
				},
			},
		},
		"question_flow": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"section_flow":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
}

// LoadFile reads a catalog artifact from a JSON file, validates it
// against the catalog schema, and builds the Catalog.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Load(raw)
}

// Load parses and validates a raw JSON catalog artifact.
func Load(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("catalog is not valid JSON: %w", err)
	}

	compiled, err := compiledDefinitionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(def)
}

func compiledDefinitionSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	b, err := json.Marshal(definitionSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://catalog.json"
	if err := c.AddResource(url, parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}
