package summary

import "github.com/infinitelife/pulse/internal/llm"

// summarySchema describes the JSON structure the LLM must return.
func summarySchema() *llm.Schema {
	insight := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
		"required":             []any{"title", "description"},
		"additionalProperties": false,
	}
	step := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"pillar": map[string]any{
				"type": "string",
				"enum": []any{"Career", "Finances", "Health", "Connections"},
			},
			"recommendation": map[string]any{"type": "string"},
			"firstStep":      map[string]any{"type": "string"},
		},
		"required":             []any{"pillar", "recommendation", "firstStep"},
		"additionalProperties": false,
	}

	return &llm.Schema{
		Name:        "self-discovery-summary",
		Description: "A personalised self-discovery summary with key insights and per-pillar actionable steps",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":          map[string]any{"type": "string"},
				"overallSummary": map[string]any{"type": "string"},
				"keyInsights": map[string]any{
					"type":     "array",
					"items":    insight,
					"minItems": 1,
				},
				"actionableSteps": map[string]any{
					"type":     "array",
					"items":    step,
					"minItems": 1,
				},
			},
			"required":             []any{"title", "overallSummary", "keyInsights", "actionableSteps"},
			"additionalProperties": false,
		},
	}
}
