package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/flow"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/middleware"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/report"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
)

// ReportHandler renders the respondent's personal result report, both as a
// JSON view for on-screen display and as a downloadable PDF document.
type ReportHandler struct {
	flow *flow.Flow
	log  zerolog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(f *flow.Flow, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		flow: f,
		log:  log.With().Str("component", "report_handler").Logger(),
	}
}

// GetView godoc
// GET /api/v1/report
// Returns the on-screen report payload. Renders at any point in the flow;
// not-yet-computed sections come through as their defined defaults.
func (h *ReportHandler) GetView(c *gin.Context) {
	s, err := h.flow.Session(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		h.failReport(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"report": report.BuildView(s)})
}

// Download godoc
// GET /api/v1/report/document
// Renders the report as a PDF attachment.
func (h *ReportHandler) Download(c *gin.Context) {
	s, err := h.flow.Session(c.Request.Context(), middleware.GetSessionToken(c))
	if err != nil {
		h.failReport(c, err)
		return
	}

	doc := report.BuildDocument(s, time.Now().UTC())
	raw, err := report.EncodePDF(doc)
	if err != nil {
		h.log.Error().Err(err).Msg("PDF encoding failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.DocumentFilename))
	c.Data(http.StatusOK, "application/pdf", raw)
}

func (h *ReportHandler) failReport(c *gin.Context, err error) {
	if errors.Is(err, flow.ErrSessionNotFound) {
		response.Fail(c, http.StatusUnauthorized, response.ErrSessionNotFound)
		return
	}
	h.log.Error().Err(err).Msg("report lookup failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
