package repository

import (
	"context"
	"fmt"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSubmissionStore persists submissions in the submissions table.
type PostgresSubmissionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSubmissionStore creates a new PostgresSubmissionStore.
func NewPostgresSubmissionStore(pool *pgxpool.Pool) *PostgresSubmissionStore {
	return &PostgresSubmissionStore{pool: pool}
}

func (r *PostgresSubmissionStore) Insert(ctx context.Context, sub *model.Submission) (int64, error) {
	scores := sub.Scores
	if scores == nil {
		scores = model.ZeroInterestScore()
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO submissions
		   (completed_at, name, surname, contact, institution, cohort,
		    profile, efficacy_band, efficacy_total,
		    score_r, score_i, score_a, score_s, score_e, score_c)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id`,
		sub.CompletedAt, sub.Name, sub.Surname, sub.Contact, sub.Institution, sub.Cohort,
		sub.Profile, sub.EfficacyBand, sub.EfficacyTotal,
		scores["R"], scores["I"], scores["A"], scores["S"], scores["E"], scores["C"],
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

func (r *PostgresSubmissionStore) Scan(ctx context.Context, filter model.SubmissionFilter) ([]model.Submission, error) {
	query := `
		SELECT id, completed_at, name, surname, contact, institution, cohort,
		       profile, efficacy_band, efficacy_total,
		       score_r, score_i, score_a, score_s, score_e, score_c
		FROM submissions
		WHERE 1=1
	`
	args := []any{}

	if filter.Institution != "" {
		args = append(args, filter.Institution)
		query += fmt.Sprintf(" AND LOWER(institution) = LOWER($%d)", len(args))
	}
	if filter.Cohort != "" {
		args = append(args, filter.Cohort)
		query += fmt.Sprintf(" AND LOWER(cohort) = LOWER($%d)", len(args))
	}

	query += " ORDER BY completed_at DESC, id DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("scan submissions: %w", err)
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		var s model.Submission
		var scR, scI, scA, scS, scE, scC int
		if err := rows.Scan(
			&s.ID, &s.CompletedAt, &s.Name, &s.Surname, &s.Contact, &s.Institution, &s.Cohort,
			&s.Profile, &s.EfficacyBand, &s.EfficacyTotal,
			&scR, &scI, &scA, &scS, &scE, &scC,
		); err != nil {
			return nil, fmt.Errorf("scan submission row: %w", err)
		}
		s.Scores = model.InterestScore{"R": scR, "I": scI, "A": scA, "S": scS, "E": scE, "C": scC}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
