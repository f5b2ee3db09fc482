package handler

import (
	"strconv"

	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles collection report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetSummary returns the total collection and per-month totals
// @Summary Collection Summary
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param months query int false "Number of months" default(6)
// @Success 200 {object} response.APIResponse
// @Router /reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	summary, err := h.reportService.GetSummary(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved successfully", summary)
}
