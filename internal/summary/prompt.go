package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/scoring"
)

const systemPrompt = `You are a highly perceptive and empathetic AI life coach, specialising in coaching users early in their career.

The user has completed a detailed self-reflection questionnaire. Your task is to analyse their answers with deep insight and generate a personalised "Self-Discovery Summary".

Your primary goal is to identify the tensions and contradictions between the user's actions and their stated feelings. Do not simply repeat their answers; synthesise them to uncover the 'why' behind the 'what'.

Key principles:
1. Identify contradictions: look for areas where the user is doing all the "right" things but doesn't feel the expected positive emotion. These gaps are the most important areas to focus on.
2. Infer deeper motivations: what is the underlying drive behind their habits?
3. Maintain age-relevance: all advice must be tailored for a young professional 1-2 years into their career.
4. Be realistic and practical: actionable steps must be small, achievable within 3-6 months, and designed to build momentum.

Use Australian English spelling and a positive, encouraging tone that avoids jargon or clichés. Provide one actionable step for each of the four pillars: Career, Finances, Health, Connections.`

// Transcript renders the answered questions as a Q/A conversation, in
// catalog flow order so the same answers always produce the same
// prompt. Answers to questions the catalog no longer defines fall back
// to the question ID.
func Transcript(cat *catalog.Catalog, answers scoring.AnswerSet) string {
	var parts []string
	seen := make(map[string]bool, len(answers))

	for _, qid := range flowOrder(cat, answers) {
		ans, ok := answers[qid]
		if !ok {
			continue
		}
		seen[qid] = true
		text := qid
		if q := cat.Question(qid); q != nil {
			text = q.Text
		}
		parts = append(parts, fmt.Sprintf("Q: %s\nA: %s", text, ans.String()))
	}

	// Unknown question IDs still carry signal; append them last.
	var rest []string
	for qid := range answers {
		if !seen[qid] {
			rest = append(rest, qid)
		}
	}
	sort.Strings(rest)
	for _, qid := range rest {
		parts = append(parts, fmt.Sprintf("Q: %s\nA: %s", qid, answers[qid].String()))
	}

	return strings.Join(parts, "\n\n")
}

// buildPrompt assembles the user-turn content.
func buildPrompt(transcript string) string {
	return "Here are their questionnaire responses:\n\n" + transcript
}

func flowOrder(cat *catalog.Catalog, answers scoring.AnswerSet) []string {
	type pos struct {
		qid string
		i   int
	}
	ordered := make([]pos, 0, len(answers))
	for qid := range answers {
		if i, ok := cat.FlowPosition(qid); ok {
			ordered = append(ordered, pos{qid, i})
		}
	}
	sort.Slice(ordered, func(a, b int) bool { return ordered[a].i < ordered[b].i })

	out := make([]string, len(ordered))
	for i, p := range ordered {
		out[i] = p.qid
	}
	return out
}
