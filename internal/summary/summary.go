// Package summary generates the AI self-discovery summary from a
// completed (or partially completed) questionnaire.
package summary

import (
	"encoding/json"
	"fmt"
)

// Insight is one analyzed theme in the summary.
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Step is one per-pillar recommendation.
type Step struct {
	Pillar         string `json:"pillar"`
	Recommendation string `json:"recommendation"`
	FirstStep      string `json:"firstStep"`
}

// Summary is the structured self-discovery summary. Field names match
// the JSON shape consumed by front-ends.
type Summary struct {
	Title           string    `json:"title"`
	OverallSummary  string    `json:"overallSummary"`
	KeyInsights     []Insight `json:"keyInsights"`
	ActionableSteps []Step    `json:"actionableSteps"`
}

// ToMap converts the summary to a generic map for JSON storage.
func (s *Summary) ToMap() (map[string]any, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap parses a stored summary map back into a Summary.
func FromMap(m map[string]any) (*Summary, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var s Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse stored summary: %w", err)
	}
	return &s, nil
}
