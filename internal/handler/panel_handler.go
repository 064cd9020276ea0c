package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/model"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/response"
	"github.com/christiansotofajardo-cpu/test-vocacional-metasistema/internal/service"
)

// PanelHandler serves the institutional review panel: the submission
// listing with aggregates and the CSV export.
type PanelHandler struct {
	panelService *service.PanelService
	log          zerolog.Logger
}

// NewPanelHandler creates a new PanelHandler.
func NewPanelHandler(panelService *service.PanelService, log zerolog.Logger) *PanelHandler {
	return &PanelHandler{
		panelService: panelService,
		log:          log.With().Str("component", "panel_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/panel/submissions?institution=&cohort=
// Returns filtered submissions, most recent first, with aggregates.
func (h *PanelHandler) List(c *gin.Context) {
	var filter model.SubmissionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	view, err := h.panelService.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("panel scan failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Export godoc
// GET /api/v1/panel/export?institution=&cohort=
// Streams the filtered submissions as a CSV attachment.
func (h *PanelHandler) Export(c *gin.Context) {
	var filter model.SubmissionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	raw, err := h.panelService.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("CSV export failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", raw)
}
