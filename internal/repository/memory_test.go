package repository

import (
	"context"
	"testing"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

func seed(t *testing.T, store *MemorySubmissionStore, institution, cohort string, at time.Time) int64 {
	t.Helper()
	id, err := store.Insert(context.Background(), &model.Submission{
		CompletedAt: at,
		Institution: institution,
		Cohort:      cohort,
		Profile:     "R–I",
		Scores:      model.InterestScore{"R": 7, "I": 5, "A": 0, "S": 0, "E": 0, "C": 0},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	return id
}

func TestMemoryStoreScanMostRecentFirst(t *testing.T) {
	store := NewMemorySubmissionStore()
	base := time.Now().UTC()

	first := seed(t, store, "Liceo Norte", "4A", base)
	second := seed(t, store, "Liceo Norte", "4A", base.Add(time.Minute))

	rows, err := store.Scan(context.Background(), model.SubmissionFilter{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ID != second || rows[1].ID != first {
		t.Fatalf("order = [%d, %d], want [%d, %d]", rows[0].ID, rows[1].ID, second, first)
	}
}

func TestMemoryStoreFilterCaseInsensitive(t *testing.T) {
	store := NewMemorySubmissionStore()
	now := time.Now().UTC()
	seed(t, store, "Liceo Norte", "4A", now)
	seed(t, store, "Liceo Sur", "4B", now)

	cases := []struct {
		name   string
		filter model.SubmissionFilter
		want   int
	}{
		{"no filter", model.SubmissionFilter{}, 2},
		{"institution exact", model.SubmissionFilter{Institution: "Liceo Norte"}, 1},
		{"institution case-insensitive", model.SubmissionFilter{Institution: "liceo norte"}, 1},
		{"cohort", model.SubmissionFilter{Cohort: "4b"}, 1},
		{"both, no match", model.SubmissionFilter{Institution: "Liceo Norte", Cohort: "4B"}, 0},
		{"unknown institution", model.SubmissionFilter{Institution: "Otro"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := store.Scan(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("scan: %v", err)
			}
			if len(rows) != tc.want {
				t.Fatalf("got %d rows, want %d", len(rows), tc.want)
			}
		})
	}
}

func TestMemoryStoreInsertAssignsSequentialIDs(t *testing.T) {
	store := NewMemorySubmissionStore()
	now := time.Now().UTC()

	a := seed(t, store, "X", "1", now)
	b := seed(t, store, "X", "1", now)
	if a == b {
		t.Fatalf("ids collided: %d", a)
	}
}

func TestMemoryStoreCopiesScores(t *testing.T) {
	store := NewMemorySubmissionStore()
	sub := &model.Submission{
		CompletedAt: time.Now().UTC(),
		Scores:      model.InterestScore{"R": 7, "I": 5, "A": 0, "S": 0, "E": 0, "C": 0},
	}
	if _, err := store.Insert(context.Background(), sub); err != nil {
		t.Fatalf("insert: %v", err)
	}

	sub.Scores["R"] = 99

	rows, _ := store.Scan(context.Background(), model.SubmissionFilter{})
	if rows[0].Scores["R"] != 7 {
		t.Fatalf("stored score mutated: %d", rows[0].Scores["R"])
	}
}
