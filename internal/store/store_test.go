package store

import (
	"context"
	"testing"

	"github.com/infinitelife/pulse/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStateGetMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()

	rec, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exists")
	}
}

func TestStatePutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	in := &SessionRecord{
		UserID: "user-1",
		Answers: scoring.AnswerSet{
			"q_career_growth": scoring.Number(7),
			"q_fin_budget":    scoring.Text("yes"),
		},
		SectionScores:  map[string]float64{"career-path": 17},
		LastQuestionID: "q_career_autonomy",
		CatalogVersion: "v1.4.0",
	}
	if err := repo.Put(ctx, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out == nil {
		t.Fatal("expected record after put")
	}
	if out.LastQuestionID != "q_career_autonomy" {
		t.Errorf("last question = %q, want q_career_autonomy", out.LastQuestionID)
	}
	if out.CatalogVersion != "v1.4.0" {
		t.Errorf("catalog version = %q, want v1.4.0", out.CatalogVersion)
	}
	if got := out.SectionScores["career-path"]; got != 17 {
		t.Errorf("career-path score = %g, want 17", got)
	}
	if v, ok := out.Answers["q_career_growth"].Number(); !ok || v != 7 {
		t.Errorf("q_career_growth = %v, want number 7", out.Answers["q_career_growth"])
	}
	if out.Answers["q_fin_budget"].String() != "yes" {
		t.Errorf("q_fin_budget = %q, want yes", out.Answers["q_fin_budget"].String())
	}
	if out.CreatedAt.IsZero() || out.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStatePutUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	rec := &SessionRecord{
		UserID:         "user-1",
		Answers:        scoring.AnswerSet{"q1": scoring.Number(3)},
		SectionScores:  map[string]float64{"career-path": 6},
		LastQuestionID: "q2",
		CatalogVersion: "v1.0.0",
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("first put: %v", err)
	}

	rec.Answers["q2"] = scoring.Text("no")
	rec.LastQuestionID = "completed"
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("second put: %v", err)
	}

	count, err := s.Client().SessionState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}

	out, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out.LastQuestionID != "completed" {
		t.Errorf("last question = %q, want completed", out.LastQuestionID)
	}
	if len(out.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(out.Answers))
	}
}

func TestStateDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	rec := &SessionRecord{
		UserID:         "user-1",
		Answers:        scoring.AnswerSet{},
		SectionScores:  map[string]float64{},
		LastQuestionID: "q1",
		CatalogVersion: "v1.0.0",
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	out, err := repo.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != nil {
		t.Fatal("expected nil record after delete")
	}
}

func TestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendResponse(ctx, ResponseEventData{
		UserID:     "user-1",
		QuestionID: "q1",
		SectionID:  "career-path",
		Answer:     "7",
		Score:      14,
	})
	if err != nil {
		t.Fatalf("append response: %v", err)
	}

	err = repo.AppendSummaryRequest(ctx, SummaryRequestEventData{
		UserID:   "user-1",
		Provider: "anthropic",
		Model:    "test-model",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append summary request: %v", err)
	}

	responses, err := s.Client().ResponseEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query responses: %v", err)
	}
	if len(responses) != 1 {
		t.Fatalf("responses = %d, want 1", len(responses))
	}
	if responses[0].Sequence == 0 {
		t.Error("expected non-zero sequence")
	}

	summaries, err := s.Client().SummaryRequestEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	if summaries[0].Sequence <= responses[0].Sequence {
		t.Error("expected summary event to sequence after response event")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='session_states'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "session_states" {
		t.Errorf("table name = %q, want 'session_states'", name)
	}
}
