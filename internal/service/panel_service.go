package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/repository"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/scoring"
	"github.com/rs/zerolog"
)

// ExportFilename is the fixed name of the panel CSV download.
const ExportFilename = "resultados_vocacionales.csv"

// exportHeader is the persisted record layout. Column order is part of the
// contract: every storage backend reconstructs exactly this row shape.
var exportHeader = []string{
	"completion_time", "name", "surname", "contact", "institution", "cohort",
	"profile", "efficacy_band", "efficacy_total", "R", "I", "A", "S", "E", "C",
}

// PanelView is the review panel's listing payload: the aggregate summary
// plus the filtered rows, most recent first.
type PanelView struct {
	Aggregate model.PanelAggregate `json:"aggregate"`
	Rows      []model.Submission   `json:"rows"`
}

// PanelService is the read-only institutional review path over completed
// submissions.
type PanelService struct {
	store repository.SubmissionStore
	log   zerolog.Logger
}

// NewPanelService creates a new PanelService.
func NewPanelService(store repository.SubmissionStore, log zerolog.Logger) *PanelService {
	return &PanelService{
		store: store,
		log:   log.With().Str("component", "panel_service").Logger(),
	}
}

// List scans submissions under the filter and folds them into the panel view.
func (s *PanelService) List(ctx context.Context, filter model.SubmissionFilter) (*PanelView, error) {
	rows, err := s.store.Scan(ctx, filter)
	if err != nil {
		s.log.Error().Err(err).Msg("submission scan failed")
		return nil, fmt.Errorf("scan submissions: %w", err)
	}
	if rows == nil {
		rows = []model.Submission{}
	}

	return &PanelView{
		Aggregate: scoring.AggregateSubmissions(rows),
		Rows:      rows,
	}, nil
}

// ExportCSV renders the filtered submissions as a delimited-text artifact
// with the fixed column header.
func (s *PanelService) ExportCSV(ctx context.Context, filter model.SubmissionFilter) ([]byte, error) {
	rows, err := s.store.Scan(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("scan submissions: %w", err)
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		scores := row.Scores
		if scores == nil {
			scores = model.ZeroInterestScore()
		}
		rec := []string{
			row.CompletedAt.UTC().Format(time.RFC3339),
			row.Name,
			row.Surname,
			row.Contact,
			row.Institution,
			row.Cohort,
			row.Profile,
			row.EfficacyBand,
			strconv.Itoa(row.EfficacyTotal),
			strconv.Itoa(scores["R"]),
			strconv.Itoa(scores["I"]),
			strconv.Itoa(scores["A"]),
			strconv.Itoa(scores["S"]),
			strconv.Itoa(scores["E"]),
			strconv.Itoa(scores["C"]),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
