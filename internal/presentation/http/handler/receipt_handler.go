package handler

import (
	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/request"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	exportService  *service.ExportService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, exportService *service.ExportService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		exportService:  exportService,
	}
}

// createInput converts a create request, stamping the caller as issuer
func createInput(c *gin.Context, req *request.CreateReceiptRequest) (*service.CreateReceiptInput, bool) {
	sadhakID, err := uuid.Parse(req.SadhakID)
	if err != nil {
		response.BadRequest(c, "Invalid sadhak ID")
		return nil, false
	}
	return &service.CreateReceiptInput{
		SadhakID:    sadhakID,
		Amount:      req.Amount,
		Date:        req.Date,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
		CreatedBy:   GetUserEmail(c),
	}, true
}

// Create handles issuing a receipt
// @Summary Create Receipt
// @Description Issue a donation receipt. Requires an Idempotency-Key header.
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Client request key"
// @Param request body request.CreateReceiptRequest true "Receipt data"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req request.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	input, ok := createInput(c, &req)
	if !ok {
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt created successfully", receipt)
}

// NextNumber handles reporting the number the next receipt will get
// @Summary Next Receipt Number
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /receipts/next-number [get]
func (h *ReceiptHandler) NextNumber(c *gin.Context) {
	next, err := h.receiptService.NextNumber(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next receipt number retrieved", gin.H{"receipt_no": next})
}

// List handles listing receipts newest first
// @Summary List Receipts
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param name query string false "Sadhak name contains"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Success 200 {object} response.APIResponse
// @Router /receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var req request.ReceiptFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.receiptService.ListReceipts(c.Request.Context(), &service.ListReceiptsInput{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		From:       req.From,
		To:         req.To,
		Name:       req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles getting a receipt by number
// @Summary Get Receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param no path int true "Receipt number"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /receipts/{no} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), no)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Preview handles returning the formatted text printed on a receipt
// @Summary Preview Receipt Fields
// @Description Gujarati number, date, amount and words, payment label and transliterated name
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param no path int true "Receipt number"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{no}/preview [get]
func (h *ReceiptHandler) Preview(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	fields, err := h.exportService.Fields(c.Request.Context(), no)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt preview retrieved", fields)
}

// Update handles an admin correcting a receipt
// @Summary Update Receipt
// @Tags receipts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param no path int true "Receipt number"
// @Param request body request.UpdateReceiptRequest true "Receipt changes"
// @Success 200 {object} response.APIResponse
// @Router /receipts/{no} [put]
func (h *ReceiptHandler) Update(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	var req request.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), &service.UpdateReceiptInput{
		ReceiptNo:   no,
		Amount:      req.Amount,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles an admin removing a receipt
// @Summary Delete Receipt
// @Tags receipts
// @Security BearerAuth
// @Param no path int true "Receipt number"
// @Success 204
// @Router /receipts/{no} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	no, ok := parseReceiptNo(c)
	if !ok {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), no); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
