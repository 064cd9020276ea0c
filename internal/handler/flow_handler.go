package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/flow"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/middleware"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/validator"
)

// FlowHandler exposes the assessment steps over HTTP. Every step but
// registration resolves the caller's session through the flow; answer
// payloads are accepted as JSON or classic form posts.
type FlowHandler struct {
	flow       *flow.Flow
	sessionTTL int // cookie max age, seconds
	log        zerolog.Logger
}

// NewFlowHandler creates a new FlowHandler. ttlSeconds bounds the session
// cookie lifetime and should match the session store's TTL.
func NewFlowHandler(f *flow.Flow, ttlSeconds int, log zerolog.Logger) *FlowHandler {
	return &FlowHandler{
		flow:       f,
		sessionTTL: ttlSeconds,
		log:        log.With().Str("component", "flow_handler").Logger(),
	}
}

// stepPayload is the envelope returned by every step endpoint: where the
// respondent stands plus whatever the step computed.
func stepPayload(s *model.SessionState, next string) gin.H {
	return gin.H{
		"state": s.State,
		"next":  next,
	}
}

// Register godoc
// POST /api/v1/assessment/registration
// Opens a new session. Requires explicit consent; identity fields are
// otherwise free-form and may be blank.
func (h *FlowHandler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	s, err := h.flow.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, flow.ErrConsentRequired) {
			response.FailWithNext(c, http.StatusBadRequest, response.ErrConsentRequired, model.StepRegistration)
			return
		}
		h.log.Error().Err(err).Msg("registration failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, s.Token, h.sessionTTL, "/", "", false, true)

	payload := stepPayload(s, model.StepInterests)
	payload["token"] = s.Token
	response.Success(c, http.StatusCreated, payload)
}

// SubmitInterests godoc
// POST /api/v1/assessment/interests
// Scores the interest inventory and derives the two-letter profile.
func (h *FlowHandler) SubmitInterests(c *gin.Context) {
	answers, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	s, err := h.flow.SubmitInterests(c.Request.Context(), middleware.GetSessionToken(c), answers)
	if err != nil {
		h.failFlow(c, err)
		return
	}

	payload := stepPayload(s, model.StepSelfEfficacy)
	payload["scores"] = s.Interests
	payload["profile"] = s.Profile
	response.Success(c, http.StatusOK, payload)
}

// SubmitSelfEfficacy godoc
// POST /api/v1/assessment/self-efficacy
// Totals the self-efficacy items and assigns the qualitative band.
func (h *FlowHandler) SubmitSelfEfficacy(c *gin.Context) {
	answers, ok := h.bindAnswers(c)
	if !ok {
		return
	}

	s, err := h.flow.SubmitSelfEfficacy(c.Request.Context(), middleware.GetSessionToken(c), answers)
	if err != nil {
		h.failFlow(c, err)
		return
	}

	payload := stepPayload(s, model.StepInterpretation)
	payload["total"] = s.Efficacy.Total
	payload["band"] = s.Efficacy.Band
	response.Success(c, http.StatusOK, payload)
}

// Interpretation godoc
// GET /api/v1/assessment/interpretation
// Marks the interpretation step as seen and returns the computed results
// with their interpretive reading.
func (h *FlowHandler) Interpretation(c *gin.Context) {
	s, err := h.flow.Interpret(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		h.failFlow(c, err)
		return
	}

	payload := stepPayload(s, model.StepReflection)
	payload["scores"] = s.ScoresOrZero()
	payload["profile"] = s.ProfileOrDefault()
	payload["efficacy"] = s.Efficacy
	response.Success(c, http.StatusOK, payload)
}

// SubmitReflection godoc
// POST /api/v1/assessment/reflection
// Captures the three reflective answers, persists the submission, and
// closes the session. The step is retryable: a storage outage leaves the
// session intact.
func (h *FlowHandler) SubmitReflection(c *gin.Context) {
	var req model.ReflectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	s, err := h.flow.SubmitReflection(c.Request.Context(), middleware.GetSessionToken(c), req)
	if err != nil {
		h.failFlow(c, err)
		return
	}

	payload := stepPayload(s, model.StepClose)
	payload["submission_id"] = s.SubmissionID
	payload["completed_at"] = s.CompletedAt
	response.Success(c, http.StatusOK, payload)
}

// Close godoc
// GET /api/v1/assessment/close
// Returns the closing summary once the flow has been completed. Arriving
// here before the reflection step redirects back to the entry step.
func (h *FlowHandler) Close(c *gin.Context) {
	s, err := h.flow.Session(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		h.failFlow(c, err)
		return
	}
	if !s.Closed() {
		response.FailWithNext(c, http.StatusConflict, response.ErrStepOrder, model.StepRegistration)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"state":         s.State,
		"profile":       s.ProfileOrDefault(),
		"band":          s.BandOrDefault(),
		"submission_id": s.SubmissionID,
		"completed_at":  s.CompletedAt,
	})
}

// Session godoc
// GET /api/v1/assessment/session
// Returns the caller's current session snapshot. Closed sessions remain
// readable here even though they reject further step submissions.
func (h *FlowHandler) Session(c *gin.Context) {
	s, err := h.flow.Session(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		h.failFlow(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": s})
}

// bindAnswers accepts either the JSON envelope {"answers": {...}} or a raw
// form post where every field is an item answer.
func (h *FlowHandler) bindAnswers(c *gin.Context) (model.AnswerBatch, bool) {
	if c.ContentType() == gin.MIMEJSON {
		var req model.AnswerBatchRequest
		if fields := validator.Bind(c, &req); fields != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
			return nil, false
		}
		return req.Answers, true
	}

	if err := c.Request.ParseForm(); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return nil, false
	}
	answers := make(model.AnswerBatch, len(c.Request.PostForm))
	for key, vals := range c.Request.PostForm {
		if len(vals) > 0 {
			answers[key] = vals[0]
		}
	}
	return answers, true
}

// failFlow maps flow sentinel errors onto response codes. Out-of-order
// submissions redirect the client back to the registration step rather
// than failing hard.
func (h *FlowHandler) failFlow(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrSessionNotFound):
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionNotFound)
	case errors.Is(err, flow.ErrSessionClosed):
		response.Fail(c, http.StatusConflict, response.ErrSessionClosed)
	case errors.Is(err, flow.ErrAnswersRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrAnswersRequired)
	case errors.Is(err, flow.ErrOutOfOrder):
		response.FailWithNext(c, http.StatusConflict, response.ErrStepOrder, model.StepRegistration)
	case errors.Is(err, flow.ErrConsentRequired):
		response.FailWithNext(c, http.StatusBadRequest, response.ErrConsentRequired, model.StepRegistration)
	case errors.Is(err, flow.ErrStoreUnavailable):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrStoreUnavailable)
	default:
		h.log.Error().Err(err).Msg("flow step failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
