package handler

import (
	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/request"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/aakb/rasid-api/pkg/export"
	"github.com/gin-gonic/gin"
)

// Response headers describing an export
const (
	HeaderExportJob    = "X-Export-Job"
	HeaderExportNotice = "X-Export-Notice"
)

// ExportHandler handles receipt image, PDF, share and print requests
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// sendArtifact writes an export as a file. Attachments carry the download
// filename; inline artifacts are shown by the client.
func sendArtifact(c *gin.Context, art *export.Artifact, attachment bool) {
	if art.JobID != "" {
		c.Header(HeaderExportJob, art.JobID)
	}
	response.File(c, art.Filename, art.MIMEType, art.Data, attachment)
}

// Export handles downloading a receipt
// @Summary Export Receipt
// @Description Render a receipt as PNG, JPEG or PDF
// @Tags export
// @Security BearerAuth
// @Produce png,jpeg,pdf
// @Param no path int true "Receipt number"
// @Param format query string false "png, jpg or pdf" default(png)
// @Success 200 {file} file
// @Failure 409 {object} response.APIResponse
// @Router /receipts/{no}/export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	art, err := h.exportService.Export(c.Request.Context(), no, c.DefaultQuery("format", "png"))
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, art, true)
}

// PreviewDraft handles rendering an unsaved receipt
// @Summary Preview Draft Receipt
// @Description Render a receipt that has not been saved, numbered as the next receipt
// @Tags export
// @Security BearerAuth
// @Accept json
// @Produce png,jpeg,pdf
// @Param format query string false "png, jpg or pdf" default(png)
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 200 {file} file
// @Router /receipts/preview [post]
func (h *ExportHandler) PreviewDraft(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, ok := createInput(c, &req)
	if !ok {
		return
	}

	art, err := h.exportService.Preview(c.Request.Context(), input, c.DefaultQuery("format", "png"))
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, art, false)
}

// Share handles sending a receipt image. When the channel is unavailable or
// fails the image is returned as a download with X-Export-Notice set.
// @Summary Share Receipt
// @Tags export
// @Security BearerAuth
// @Accept json
// @Produce json,png
// @Param no path int true "Receipt number"
// @Param request body request.ShareReceiptRequest true "Channel and recipient"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{no}/share [post]
func (h *ExportHandler) Share(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	var req request.ShareReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	res, err := h.exportService.Share(c.Request.Context(), &service.ShareInput{
		ReceiptNo: no,
		Channel:   req.Channel,
		To:        req.To,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if !res.Shared {
		c.Header(HeaderExportNotice, res.Notice)
		sendArtifact(c, res.Artifact, true)
		return
	}

	response.OK(c, "Receipt shared successfully", gin.H{
		"job_id":   res.Artifact.JobID,
		"title":    res.Title,
		"text":     res.Text,
		"filename": res.Artifact.Filename,
	})
}

// Print handles returning the print page for a receipt
// @Summary Print Receipt
// @Description Self-contained HTML page that opens the print dialog
// @Tags export
// @Security BearerAuth
// @Produce html
// @Param no path int true "Receipt number"
// @Success 200 {string} string
// @Router /receipts/{no}/print [get]
func (h *ExportHandler) Print(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	art, err := h.exportService.Print(c.Request.Context(), no)
	if err != nil {
		response.Error(c, err)
		return
	}

	sendArtifact(c, art, false)
}

// PrintThermal handles sending a receipt to the receipt printer
// @Summary Print Receipt on Thermal Printer
// @Tags export
// @Security BearerAuth
// @Produce json
// @Param no path int true "Receipt number"
// @Success 200 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /receipts/{no}/print/thermal [post]
func (h *ExportHandler) PrintThermal(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	jobID, err := h.exportService.PrintThermal(c.Request.Context(), no)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header(HeaderExportJob, jobID)
	response.OK(c, "Receipt sent to printer", gin.H{"job_id": jobID})
}
