package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/pitchcraft-api/internal/api/dto"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/service"
	"github.com/kingrain94/pitchcraft-api/pkg/utils"
)

type PitchGenerator interface {
	Generate(ctx context.Context, req service.GenerateRequest) (*service.GenerationResult, error)
}

//go:generate mockery --name PitchHistoryService --output ../mocks
type PitchHistoryService interface {
	List(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error)
	All(ctx context.Context, filter domain.PitchFilter) ([]domain.Pitch, error)
	Latest(ctx context.Context, ownerID string) (*domain.Pitch, error)
	Count(ctx context.Context, ownerID string) (int64, error)
	GetByID(ctx context.Context, ownerID string, id int64) (*domain.Pitch, error)
	Search(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error)
	ScheduleExport(ctx context.Context, ownerID, format string) (string, error)
}

type PitchHandler struct {
	*BaseHandler
	generator PitchGenerator
	history   PitchHistoryService
}

func NewPitchHandler(generator PitchGenerator, history PitchHistoryService) *PitchHandler {
	return &PitchHandler{generator: generator, history: history}
}

// GeneratePitch Generate a cold outreach pitch
// @Summary Generate pitch
// @Description Generates a cold email for a prospect. Free accounts are limited to a fixed number of pitches; pro accounts may supply a custom template.
// @Tags    pitches
// @Accept  json
// @Produce json
// @Param   body body dto.GeneratePitchRequest true "Prospect fields"
// @Success 201 {object} dto.GeneratePitchResponse
// @Failure 400 {object} dto.ValidationError
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.QuotaDeniedResponse
// @Failure 500 {object} dto.Error
// @Failure 502 {object} dto.GenerationFailedResponse
// @Security ApiKeyAuth
// @Router  /pitches [post]
func (h *PitchHandler) GeneratePitch(c *gin.Context) {
	var req dto.GeneratePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid request body"})
		return
	}

	result, err := h.generator.Generate(h.RequestCtx(c), service.GenerateRequest{
		OwnerID:        h.OwnerID(c),
		Fields:         req.ToFields(),
		CustomTemplate: req.CustomTemplate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Something went wrong, please try again"})
		return
	}

	switch result.Status {
	case service.GenerationSuccess:
		c.JSON(http.StatusCreated, dto.GeneratePitchResponse{
			RequestID:  result.RequestID,
			Pitch:      dto.FromPitch(result.Pitch),
			IsPro:      result.IsPro,
			UsageCount: result.UsageCount,
			Limit:      result.Limit,
		})
	case service.GenerationDenied:
		c.JSON(http.StatusForbidden, dto.QuotaDeniedResponse{
			Error:      result.Message,
			UsageCount: result.UsageCount,
			Limit:      result.Limit,
		})
	case service.GenerationValidationFailed:
		c.JSON(http.StatusBadRequest, dto.ValidationError{
			Error:   "invalid request",
			Details: result.Violations,
		})
	default:
		if errors.Is(result.Err, service.ErrAuthenticationRequired) {
			c.JSON(http.StatusUnauthorized, dto.Error{Error: result.Message})
			return
		}
		c.JSON(http.StatusBadGateway, dto.GenerationFailedResponse{
			Error:     service.ErrGenerationFailed.Error(),
			RequestID: result.RequestID,
			Unsaved:   dto.FromPitch(result.Pitch),
		})
	}
}

// ListPitches Get the caller's pitch history
// @Summary List pitches
// @Description Newest first, paginated
// @Tags    pitches
// @Produce json
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size (max 100)"
// @Param   start_time query string false "Created at or after (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Created at or before (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.PitchListResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches [get]
func (h *PitchHandler) ListPitches(c *gin.Context) {
	filter, err := h.filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	pitches, err := h.history.List(h.RequestCtx(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PitchListResponse{
		Pitches:  dto.FromPitches(pitches),
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// LatestPitch Get the caller's most recent pitch
// @Summary Latest pitch
// @Tags    pitches
// @Produce json
// @Success 200 {object} dto.PitchResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/latest [get]
func (h *PitchHandler) LatestPitch(c *gin.Context) {
	pitch, err := h.history.Latest(h.RequestCtx(c), h.OwnerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if pitch == nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "No pitches yet"})
		return
	}

	c.JSON(http.StatusOK, dto.FromPitch(pitch))
}

// CountPitches Count the caller's pitches
// @Summary Pitch count
// @Tags    pitches
// @Produce json
// @Success 200 {object} dto.PitchCountResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/count [get]
func (h *PitchHandler) CountPitches(c *gin.Context) {
	count, err := h.history.Count(h.RequestCtx(c), h.OwnerID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PitchCountResponse{Count: count})
}

// GetPitch Get one of the caller's pitches
// @Summary Get pitch
// @Tags    pitches
// @Produce json
// @Param   id path int true "Pitch ID"
// @Success 200 {object} dto.PitchResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/{id} [get]
func (h *PitchHandler) GetPitch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid pitch id"})
		return
	}

	pitch, err := h.history.GetByID(h.RequestCtx(c), h.OwnerID(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromPitch(pitch))
}

// SearchPitches Full text search over the caller's history
// @Summary Search pitches
// @Tags    pitches
// @Produce json
// @Param   q query string false "Search text"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size (max 100)"
// @Success 200 {object} dto.PitchListResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/search [get]
func (h *PitchHandler) SearchPitches(c *gin.Context) {
	filter, err := h.filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	filter.Query = c.Query("q")

	pitches, err := h.history.Search(h.RequestCtx(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PitchListResponse{
		Pitches:  dto.FromPitches(pitches),
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// ExportPitches Download the caller's history
// @Summary Export pitches
// @Tags    pitches
// @Produce json,text/csv
// @Param   format query string false "Export format (json or csv)" default(json)
// @Param   start_time query string false "Created at or after (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Created at or before (RFC3339 or YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/export [get]
func (h *PitchHandler) ExportPitches(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	filter, err := h.filterFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	pitches, err := h.history.All(h.RequestCtx(c), *filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=pitches."+format)
	c.Header("Content-Type", service.ExportContentType(format))
	c.Status(http.StatusOK)
	if err := service.WriteExport(c.Writer, format, pitches); err != nil {
		_ = c.Error(err)
	}
}

// ArchivePitches Schedule an export of the caller's history to object storage
// @Summary Schedule export
// @Tags    pitches
// @Accept  json
// @Produce json
// @Param   body body dto.ArchiveRequest false "Export format"
// @Success 202 {object} dto.ArchiveResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router  /pitches/archive [post]
func (h *PitchHandler) ArchivePitches(c *gin.Context) {
	var req dto.ArchiveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid request body"})
			return
		}
	}

	format, err := service.ParseExportFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	jobID, err := h.history.ScheduleExport(h.RequestCtx(c), h.OwnerID(c), format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ArchiveResponse{
		Message: "Export scheduled",
		JobID:   jobID,
		Format:  format,
	})
}

func (h *PitchHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrPitchNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "Pitch not found"})
	case errors.Is(err, service.ErrInvalidExportFormat):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Something went wrong, please try again"})
	}
}

func (h *PitchHandler) filterFromQuery(c *gin.Context) (*domain.PitchFilter, error) {
	filter := &domain.PitchFilter{
		OwnerID: h.OwnerID(c),
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filter.PageSize = pageSize
	}

	start, end, err := utils.ParseTimeRange(c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		return nil, err
	}
	filter.StartTime = start
	filter.EndTime = end

	return filter, nil
}
