package model

import "time"

// FlowState enumerates how far a session has advanced through the flow.
type FlowState string

const (
	StateRegistered         FlowState = "REGISTERED"
	StateInterestsScored    FlowState = "INTERESTS_SCORED"
	StateEfficacyScored     FlowState = "EFFICACY_SCORED"
	StateInterpreted        FlowState = "INTERPRETED"
	StateReflectionCaptured FlowState = "REFLECTION_CAPTURED"
	StateClosed             FlowState = "CLOSED"
)

// Step names address the flow's client-facing steps. They are stable: the
// routing layer and validation redirects both use them.
const (
	StepRegistration   = "registration"
	StepInterests      = "interests"
	StepSelfEfficacy   = "self-efficacy"
	StepInterpretation = "interpretation"
	StepReflection     = "reflection"
	StepClose          = "close"
)

// Unavailable is the sentinel rendered wherever a derived field is read
// before the step that computes it has run.
const Unavailable = "No disponible"

// ReflectionAnswers holds the three open reflective responses.
type ReflectionAnswers struct {
	Motivation string `json:"motivation"`
	KeySkill   string `json:"key_skill"`
	Projection string `json:"projection"`
}

// SessionState is the accumulating record of one respondent's pass through
// the assessment. It is owned by exactly one respondent, lives behind a
// keyed session store for the duration of the flow, and is discarded once
// the terminal step persists a Submission.
//
// Reads of not-yet-computed fields go through the *Or* accessors, which
// return defined defaults so report rendering never fails on a skipped or
// out-of-order step.
type SessionState struct {
	Token        string             `json:"token"`
	State        FlowState          `json:"state"`
	Identity     RespondentIdentity `json:"identity"`
	Interests    InterestScore      `json:"interests,omitempty"`
	Profile      InterestProfile    `json:"profile,omitempty"`
	Efficacy     SelfEfficacyScore  `json:"efficacy"`
	Reflection   ReflectionAnswers  `json:"reflection"`
	StartedAt    time.Time          `json:"started_at"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	SubmissionID int64              `json:"submission_id,omitempty"`
}

// Closed reports whether the session reached its terminal state. Closed
// sessions accept no further mutation; assessing again requires a new flow.
func (s *SessionState) Closed() bool {
	return s.State == StateClosed
}

// ScoresOrZero returns the interest totals, zero-filled when the interest
// step has not run yet.
func (s *SessionState) ScoresOrZero() InterestScore {
	if s.Interests == nil {
		return ZeroInterestScore()
	}
	return s.Interests
}

// ProfileOrDefault returns the interest profile or the unavailable sentinel.
func (s *SessionState) ProfileOrDefault() string {
	if s.Profile == "" {
		return Unavailable
	}
	return string(s.Profile)
}

// BandOrDefault returns the self-efficacy band or the unavailable sentinel.
func (s *SessionState) BandOrDefault() string {
	if s.Efficacy.Band == "" {
		return Unavailable
	}
	return s.Efficacy.Band
}
