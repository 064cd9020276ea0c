// Package flow drives the assessment step state machine: the required step
// order, its transition guards, and the single persistence call at the
// terminal step.
package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/repository"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/scoring"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/session"
	ws "github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/websocket"
	"github.com/rs/zerolog"
)

// Flow-level sentinel errors. Handlers map these to validation responses
// that redirect the client; none of them is a system failure.
var (
	ErrConsentRequired = errors.New("consent required")
	ErrAnswersRequired = errors.New("answer batch required")
	ErrOutOfOrder      = errors.New("step out of order")
	ErrSessionClosed   = errors.New("session closed")
	ErrSessionNotFound = errors.New("session not found")

	// ErrStoreUnavailable marks a transient persistence failure. The
	// session is left untouched so the terminal step can be retried.
	ErrStoreUnavailable = errors.New("submission store unavailable")
)

// stateRank orders flow states so transitions can advance without ever
// regressing, which keeps backward navigation idempotent.
var stateRank = map[model.FlowState]int{
	model.StateRegistered:         0,
	model.StateInterestsScored:    1,
	model.StateEfficacyScored:     2,
	model.StateInterpreted:        3,
	model.StateReflectionCaptured: 4,
	model.StateClosed:             5,
}

// FeedPublisher receives a summary event after each successful persistence.
// Publishing is best-effort: a feed failure never fails the flow.
type FeedPublisher interface {
	Publish(ctx context.Context, ev ws.SubmissionEvent) error
}

// Flow owns the assessment state machine. All step handlers go through it;
// it is the only writer of session state and the only caller of
// SubmissionStore.Insert.
type Flow struct {
	sessions session.Store
	store    repository.SubmissionStore
	feed     FeedPublisher
	log      zerolog.Logger
	now      func() time.Time
}

// New creates a Flow. feed may be nil when no live panel feed is wired.
func New(sessions session.Store, store repository.SubmissionStore, feed FeedPublisher, log zerolog.Logger) *Flow {
	return &Flow{
		sessions: sessions,
		store:    store,
		feed:     feed,
		log:      log.With().Str("component", "flow").Logger(),
		now:      time.Now,
	}
}

// Register starts a new session from the registration submission. The only
// hard requirement is explicit consent; identity fields are free text.
func (f *Flow) Register(ctx context.Context, req model.RegistrationRequest) (*model.SessionState, error) {
	if !req.Consented() {
		return nil, ErrConsentRequired
	}

	s := &model.SessionState{
		State:     model.StateRegistered,
		Identity:  req.Identity(),
		StartedAt: f.now().UTC(),
	}
	if err := f.sessions.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	f.log.Info().Str("institution", s.Identity.Institution).Msg("session registered")
	return s, nil
}

// SubmitInterests scores the interest inventory batch and merges the result.
// Resubmitting simply overwrites the previous totals; the state never moves
// backwards.
func (f *Flow) SubmitInterests(ctx context.Context, token string, answers model.AnswerBatch) (*model.SessionState, error) {
	s, err := f.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(answers) == 0 {
		return nil, ErrAnswersRequired
	}

	s.Interests, s.Profile = scoring.ScoreInterests(answers)
	advance(s, model.StateInterestsScored)

	if err := f.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// SubmitSelfEfficacy scores the self-efficacy batch. Requires the interest
// step to have run first.
func (f *Flow) SubmitSelfEfficacy(ctx context.Context, token string, answers model.AnswerBatch) (*model.SessionState, error) {
	s, err := f.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if stateRank[s.State] < stateRank[model.StateInterestsScored] {
		return nil, ErrOutOfOrder
	}
	if len(answers) == 0 {
		return nil, ErrAnswersRequired
	}

	s.Efficacy = scoring.ScoreSelfEfficacy(answers)
	advance(s, model.StateEfficacyScored)

	if err := f.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Interpret is the read-only transition to the interpretation step. It
// requires both derived results to be present already — a client arriving
// here via a stale or guessed address is sent back to the entry step instead
// of being shown undefined values.
func (f *Flow) Interpret(ctx context.Context, token string) (*model.SessionState, error) {
	s, err := f.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.Profile == "" || s.Efficacy.Band == "" {
		return nil, ErrOutOfOrder
	}

	advance(s, model.StateInterpreted)
	if err := f.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// SubmitReflection is the terminal transition: it captures the three open
// answers, stamps completion, and persists the Submission. On a storage
// failure the session is returned to the caller unchanged so the respondent
// can retry without redoing the assessment; nothing partial is ever stored.
func (f *Flow) SubmitReflection(ctx context.Context, token string, req model.ReflectionRequest) (*model.SessionState, error) {
	s, err := f.load(ctx, token)
	if err != nil {
		return nil, err
	}
	if stateRank[s.State] < stateRank[model.StateInterpreted] {
		return nil, ErrOutOfOrder
	}

	s.Reflection = model.ReflectionAnswers{
		Motivation: req.Motivation,
		KeySkill:   req.KeySkill,
		Projection: req.Projection,
	}
	completed := f.now().UTC()
	sub := buildSubmission(s, completed)

	id, err := f.store.Insert(ctx, sub)
	if err != nil {
		f.log.Error().Err(err).Msg("submission insert failed")
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.CompletedAt = &completed
	s.SubmissionID = id
	advance(s, model.StateClosed)

	if err := f.sessions.Save(ctx, s); err != nil {
		// The record is already durable; losing the session close marker is
		// recoverable noise, not a reason to report failure.
		f.log.Error().Err(err).Int64("submission_id", id).Msg("session close save failed")
	}

	f.publish(ctx, sub, id)

	f.log.Info().Int64("submission_id", id).Str("profile", sub.Profile).Msg("assessment completed")
	return s, nil
}

// Session returns the current state for report rendering and the closing
// step. Closed sessions remain readable.
func (f *Flow) Session(ctx context.Context, token string) (*model.SessionState, error) {
	s, err := f.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return s, nil
}

// load fetches a session for mutation, rejecting terminal sessions.
func (f *Flow) load(ctx context.Context, token string) (*model.SessionState, error) {
	s, err := f.Session(ctx, token)
	if err != nil {
		return nil, err
	}
	if s.Closed() {
		return nil, ErrSessionClosed
	}
	return s, nil
}

func (f *Flow) publish(ctx context.Context, sub *model.Submission, id int64) {
	if f.feed == nil {
		return
	}
	ev := ws.SubmissionEvent{
		Event:         ws.EventSubmission,
		SubmissionID:  id,
		Institution:   sub.Institution,
		Cohort:        sub.Cohort,
		Profile:       sub.Profile,
		EfficacyBand:  sub.EfficacyBand,
		EfficacyTotal: sub.EfficacyTotal,
		CompletedAt:   sub.CompletedAt.Format(time.RFC3339),
	}
	if err := f.feed.Publish(ctx, ev); err != nil {
		f.log.Warn().Err(err).Msg("feed publish failed")
	}
}

// advance moves the session to the target state unless it is already past
// it. Backward resubmissions therefore rewrite fields without rewinding.
func advance(s *model.SessionState, target model.FlowState) {
	if stateRank[target] > stateRank[s.State] {
		s.State = target
	}
}

// buildSubmission flattens a session into the durable record shape.
func buildSubmission(s *model.SessionState, completed time.Time) *model.Submission {
	return &model.Submission{
		CompletedAt:   completed,
		Name:          s.Identity.Name,
		Surname:       s.Identity.Surname,
		Contact:       s.Identity.Contact,
		Institution:   s.Identity.Institution,
		Cohort:        s.Identity.Cohort,
		Profile:       string(s.Profile),
		EfficacyBand:  s.Efficacy.Band,
		EfficacyTotal: s.Efficacy.Total,
		Scores:        s.ScoresOrZero(),
	}
}
