package catalog

import "fmt"

// Builtin returns the catalog shipped with the binary. External
// artifacts loaded with LoadFile take precedence when configured.
func Builtin() *Catalog {
	c, err := New(builtinDefinition())
	if err != nil {
		// The built-in definition is fixed at compile time; failing to
		// build it is a programmer error.
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// builtinDefinition is the onboarding questionnaire: one section per
// life pillar. The finances sections keep their legacy "financials"
// prefix, which PillarOf normalizes.
func builtinDefinition() Definition {
	return Definition{
		Version: "v1.4.0",
		Questions: map[string]Question{
			"q_career_fulfilment": {
				Text:    "How fulfilled do you feel by your work right now?",
				Type:    TypeSlider,
				Section: "career-path",
				Scoring: Scoring{Points: 20},
			},
			"q_career_growth": {
				Text:    "Have you learned a new work-related skill in the last six months?",
				Type:    TypeYesNo,
				Section: "career-path",
				Scoring: Scoring{Points: 10, TargetAnswer: "yes"},
			},
			"q_career_hours": {
				Text:    "How many hours do you typically work per week?",
				Type:    TypeMultipleChoice,
				Section: "career-path",
				Scoring: Scoring{Choices: map[string]float64{
					"under-35": 10,
					"35-45":    10,
					"45-55":    5,
					"over-55":  0,
				}},
				ChoiceOrder: []string{"under-35", "35-45", "45-55", "over-55"},
			},
			"q_career_goals": {
				Text:    "How clear are you on where you want your career to be in three years?",
				Type:    TypeSlider,
				Section: "career-path",
				Scoring: Scoring{Points: 20},
			},
			"q_fin_savings": {
				Text:    "Do you save a fixed part of your income every month?",
				Type:    TypeYesNo,
				Section: "financials-foundations",
				Scoring: Scoring{Points: 15, TargetAnswer: "yes"},
			},
			"q_fin_confidence": {
				Text:    "How confident do you feel about your financial situation?",
				Type:    TypeSlider,
				Section: "financials-foundations",
				Scoring: Scoring{Points: 20},
			},
			"q_fin_budget": {
				Text:    "How do you track your spending?",
				Type:    TypeMultipleChoice,
				Section: "financials-foundations",
				Scoring: Scoring{Choices: map[string]float64{
					"detailed-budget": 15,
					"rough-idea":      8,
					"not-at-all":      0,
				}},
				ChoiceOrder: []string{"detailed-budget", "rough-idea", "not-at-all"},
			},
			"q_fin_goals": {
				Text:    "How clear are your financial goals for the next year?",
				Type:    TypeSlider,
				Section: "financials-foundations",
				Scoring: Scoring{Points: 10},
			},
			"q_health_activity": {
				Text:    "How often do you exercise in a typical week?",
				Type:    TypeMultipleChoice,
				Section: "health-habits",
				Scoring: Scoring{Choices: map[string]float64{
					"4-plus":  20,
					"2-3":     14,
					"once":    6,
					"rarely":  0,
				}},
				ChoiceOrder: []string{"4-plus", "2-3", "once", "rarely"},
			},
			"q_health_sleep": {
				Text:    "How well do you sleep on an average night?",
				Type:    TypeSlider,
				Section: "health-habits",
				Scoring: Scoring{Points: 20},
			},
			"q_health_energy": {
				Text:    "How would you rate your energy levels through the day?",
				Type:    TypeSlider,
				Section: "health-habits",
				Scoring: Scoring{Points: 10},
			},
			"q_conn_belonging": {
				Text:    "How strong is your sense of belonging with the people around you?",
				Type:    TypeSlider,
				Section: "connections-belonging",
				Scoring: Scoring{Points: 25},
			},
			"q_conn_time": {
				Text:    "How much quality time do you spend with friends or family each week?",
				Type:    TypeMultipleChoice,
				Section: "connections-belonging",
				Scoring: Scoring{Choices: map[string]float64{
					"most-days":    15,
					"a-few-times":  10,
					"occasionally": 4,
					"rarely":       0,
				}},
				ChoiceOrder: []string{"most-days", "a-few-times", "occasionally", "rarely"},
			},
			"q_conn_support": {
				Text:    "Is there someone you could call tonight if you needed help?",
				Type:    TypeYesNo,
				Section: "connections-belonging",
				Scoring: Scoring{Points: 10, TargetAnswer: "yes"},
			},
		},
		Sections: map[string]Section{
			"career-path": {
				Title:            "Career Path",
				Questions:        []string{"q_career_fulfilment", "q_career_growth", "q_career_hours", "q_career_goals"},
				TotalPoints:      60,
				AdaptiveTriggers: []string{"q_career_growth"},
				AdaptiveMaxScore: 30,
			},
			"financials-foundations": {
				Title:            "Financial Foundations",
				Questions:        []string{"q_fin_savings", "q_fin_confidence", "q_fin_budget", "q_fin_goals"},
				TotalPoints:      60,
				AdaptiveTriggers: []string{"q_fin_confidence"},
				AdaptiveMaxScore: 35,
			},
			"health-habits": {
				Title:            "Health Habits",
				Questions:        []string{"q_health_activity", "q_health_sleep", "q_health_energy"},
				TotalPoints:      50,
				AdaptiveTriggers: []string{"q_health_sleep"},
				AdaptiveMaxScore: 40,
			},
			"connections-belonging": {
				Title:       "Belonging",
				Questions:   []string{"q_conn_belonging", "q_conn_time", "q_conn_support"},
				TotalPoints: 50,
			},
		},
		QuestionFlow: []string{
			"q_career_fulfilment", "q_career_growth", "q_career_hours", "q_career_goals",
			"q_fin_savings", "q_fin_confidence", "q_fin_budget", "q_fin_goals",
			"q_health_activity", "q_health_sleep", "q_health_energy",
			"q_conn_belonging", "q_conn_time", "q_conn_support",
		},
		SectionFlow: []string{
			"career-path", "financials-foundations", "health-habits", "connections-belonging",
		},
	}
}
