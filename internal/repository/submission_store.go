package repository

import (
	"context"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
)

// SubmissionStore is the append-only record of completed assessments. The
// backend (Postgres or in-memory) is chosen once at startup; the flow and
// the panel only ever see this contract.
//
// Insert never rejects a submission on content — it fails only when the
// underlying storage is unreachable, which callers surface as a retryable
// infrastructure error. Insert is atomic: a failed call leaves nothing
// behind, so retrying the terminal step yields exactly one record.
type SubmissionStore interface {
	// Insert appends one record and returns the store-assigned id.
	Insert(ctx context.Context, sub *model.Submission) (int64, error)
	// Scan returns submissions most recent first, narrowed by the filter's
	// case-insensitive exact matches.
	Scan(ctx context.Context, filter model.SubmissionFilter) ([]model.Submission, error)
}
