package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

// MemorySubmissionStore is the ephemeral backend: a process-lifetime
// append-only list. Useful for development and for deployments that only
// need the on-screen report, not durable records.
type MemorySubmissionStore struct {
	mu     sync.RWMutex
	rows   []model.Submission
	nextID int64
}

// NewMemorySubmissionStore creates an empty MemorySubmissionStore.
func NewMemorySubmissionStore() *MemorySubmissionStore {
	return &MemorySubmissionStore{nextID: 1}
}

func (r *MemorySubmissionStore) Insert(_ context.Context, sub *model.Submission) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *sub
	stored.ID = r.nextID
	r.nextID++

	// Copy the score map so later caller mutations cannot reach the store.
	stored.Scores = model.ZeroInterestScore()
	for code, total := range sub.Scores {
		stored.Scores[code] = total
	}

	r.rows = append(r.rows, stored)
	return stored.ID, nil
}

func (r *MemorySubmissionStore) Scan(_ context.Context, filter model.SubmissionFilter) ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Insertion order is completion order, so walking backwards yields
	// most recent first.
	out := make([]model.Submission, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		if matches(r.rows[i], filter) {
			out = append(out, r.rows[i])
		}
	}
	return out, nil
}

func matches(sub model.Submission, filter model.SubmissionFilter) bool {
	if filter.Institution != "" && !strings.EqualFold(sub.Institution, filter.Institution) {
		return false
	}
	if filter.Cohort != "" && !strings.EqualFold(sub.Cohort, filter.Cohort) {
		return false
	}
	return true
}
