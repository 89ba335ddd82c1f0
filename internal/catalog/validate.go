package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// validate performs all structural checks on a catalog definition.
// Returns a combined error describing all problems found, or nil.
// Missing scoring sub-rules are deliberately not flagged: the scorer
// resolves those to zero instead of rejecting the catalog.
func validate(def Definition) error {
	var errs []string

	if def.Version == "" {
		errs = append(errs, "catalog version is required")
	} else if !semver.IsValid(def.Version) {
		errs = append(errs, fmt.Sprintf("catalog version %q is not valid semver", def.Version))
	}

	if len(def.QuestionFlow) == 0 {
		errs = append(errs, "question_flow is empty")
	}

	// Flow entries must reference existing questions, exactly once.
	seen := make(map[string]bool, len(def.QuestionFlow))
	for _, id := range def.QuestionFlow {
		if _, ok := def.Questions[id]; !ok {
			errs = append(errs, fmt.Sprintf("question_flow references nonexistent question %q", id))
		}
		if seen[id] {
			errs = append(errs, fmt.Sprintf("question %q appears twice in question_flow", id))
		}
		seen[id] = true
	}

	// Every question must belong to an existing section and appear in
	// that section's question list.
	for id, q := range def.Questions {
		sec, ok := def.Sections[q.Section]
		if !ok {
			errs = append(errs, fmt.Sprintf("question %q references nonexistent section %q", id, q.Section))
			continue
		}
		member := false
		for _, qid := range sec.Questions {
			if qid == id {
				member = true
				break
			}
		}
		if !member {
			errs = append(errs, fmt.Sprintf("question %q is not listed in section %q", id, q.Section))
		}
		switch q.Type {
		case TypeSlider, TypeYesNo, TypeMultipleChoice:
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown type %q", id, q.Type))
		}
	}

	for id, sec := range def.Sections {
		if len(sec.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", id))
		}
		if sec.TotalPoints <= 0 {
			errs = append(errs, fmt.Sprintf("section %q: total_points must be > 0, got %v", id, sec.TotalPoints))
		}
		for _, qid := range sec.Questions {
			if _, ok := def.Questions[qid]; !ok {
				errs = append(errs, fmt.Sprintf("section %q references nonexistent question %q", id, qid))
			}
		}
		for _, qid := range sec.AdaptiveTriggers {
			q, ok := def.Questions[qid]
			if !ok {
				errs = append(errs, fmt.Sprintf("section %q declares nonexistent trigger %q", id, qid))
				continue
			}
			if q.Section != id {
				errs = append(errs, fmt.Sprintf("section %q trigger %q belongs to section %q", id, qid, q.Section))
			}
		}
		if len(sec.AdaptiveTriggers) > 0 && sec.AdaptiveMaxScore <= 0 {
			errs = append(errs, fmt.Sprintf("section %q has triggers but no adaptive_max_score", id))
		}
	}

	// The section flow must cover every section so adaptive skips always
	// have a well-defined landing point.
	inFlow := make(map[string]bool, len(def.SectionFlow))
	for _, id := range def.SectionFlow {
		if _, ok := def.Sections[id]; !ok {
			errs = append(errs, fmt.Sprintf("section_flow references nonexistent section %q", id))
		}
		inFlow[id] = true
	}
	for id := range def.Sections {
		if !inFlow[id] {
			errs = append(errs, fmt.Sprintf("section %q is missing from section_flow", id))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
