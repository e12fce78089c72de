// Package http provides HTTP handlers for reading stored benchmark runs.
package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/aeadbench/internal/httputil"
	"github.com/allisson/aeadbench/internal/report"
	resultsDomain "github.com/allisson/aeadbench/internal/results/domain"
	"github.com/allisson/aeadbench/internal/results/http/dto"
	resultsUseCase "github.com/allisson/aeadbench/internal/results/usecase"
)

// LatestRunID selects the most recently stored run in place of an ID.
const LatestRunID = "latest"

// RunHandler serves stored runs from the results database.
type RunHandler struct {
	resultUseCase resultsUseCase.ResultUseCase
	logger        *slog.Logger
}

// NewRunHandler creates a new run handler.
func NewRunHandler(resultUseCase resultsUseCase.ResultUseCase, logger *slog.Logger) *RunHandler {
	return &RunHandler{
		resultUseCase: resultUseCase,
		logger:        logger,
	}
}

// RegisterRoutes mounts the handler under /runs.
func (h *RunHandler) RegisterRoutes(router gin.IRouter) {
	runs := router.Group("/runs")
	runs.GET("", h.ListHandler)
	runs.GET("/:id", h.GetHandler)
}

// ListHandler returns run headers newest first.
// GET /runs?offset=0&limit=20
func (h *RunHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	runs, err := h.resultUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRunsToListResponse(runs))
}

// GetHandler returns a run with its records as JSON, or as the CSV report with
// ?format=csv. The ID "latest" selects the most recent run.
// GET /runs/:id?format=json|csv
func (h *RunHandler) GetHandler(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", report.FormatJSON))
	if format != report.FormatJSON && format != report.FormatCSV {
		httputil.HandleErrorGin(c, report.ErrUnsupportedFormat, h.logger)
		return
	}

	var stored *resultsDomain.RunWithRecords
	var err error

	id := c.Param("id")
	if strings.EqualFold(id, LatestRunID) {
		stored, err = h.resultUseCase.Latest(c.Request.Context())
	} else {
		runID, parseErr := uuid.Parse(id)
		if parseErr != nil {
			httputil.HandleBadRequestGin(c, fmt.Errorf("invalid run id %q", id), h.logger)
			return
		}
		stored, err = h.resultUseCase.Get(c.Request.Context(), runID)
	}

	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if format == report.FormatJSON {
		c.JSON(http.StatusOK, dto.MapRunWithRecordsToResponse(stored))
		return
	}

	var buf bytes.Buffer
	if err := report.WriteRows(&buf, dto.MapRecordsToRows(stored.Records)); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
