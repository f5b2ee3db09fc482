package handler

import (
	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/request"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// SadhakHandler handles donor HTTP requests
type SadhakHandler struct {
	sadhakService *service.SadhakService
}

// NewSadhakHandler creates a new sadhak handler
func NewSadhakHandler(sadhakService *service.SadhakService) *SadhakHandler {
	return &SadhakHandler{sadhakService: sadhakService}
}

// List handles searching donors by name
// @Summary List Sadhaks
// @Tags sadhaks
// @Security BearerAuth
// @Produce json
// @Param search query string false "Name contains"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Success 200 {object} response.APIResponse
// @Router /sadhaks [get]
func (h *SadhakHandler) List(c *gin.Context) {
	params := pagination.ParseParams(c.Query("page"), c.Query("per_page"))

	result, err := h.sadhakService.SearchSadhaks(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sadhaks retrieved successfully", result)
}

// Get handles getting a donor by ID
// @Summary Get Sadhak
// @Tags sadhaks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sadhak ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sadhaks/{id} [get]
func (h *SadhakHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "sadhak")
	if !ok {
		return
	}

	sadhak, err := h.sadhakService.GetSadhak(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sadhak retrieved successfully", sadhak)
}

// Create handles adding a donor
// @Summary Create Sadhak
// @Tags sadhaks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SadhakRequest true "Sadhak data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /sadhaks [post]
func (h *SadhakHandler) Create(c *gin.Context) {
	var req request.SadhakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sadhak, err := h.sadhakService.CreateSadhak(c.Request.Context(), sadhakInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sadhak created successfully", sadhak)
}

// Update handles replacing a donor's details
// @Summary Update Sadhak
// @Tags sadhaks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Sadhak ID"
// @Param request body request.SadhakRequest true "Sadhak data"
// @Success 200 {object} response.APIResponse
// @Router /sadhaks/{id} [put]
func (h *SadhakHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "sadhak")
	if !ok {
		return
	}

	var req request.SadhakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sadhak, err := h.sadhakService.UpdateSadhak(c.Request.Context(), id, sadhakInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sadhak updated successfully", sadhak)
}

// Delete handles removing a donor without receipts
// @Summary Delete Sadhak
// @Tags sadhaks
// @Security BearerAuth
// @Param id path string true "Sadhak ID"
// @Success 204
// @Failure 409 {object} response.APIResponse
// @Router /sadhaks/{id} [delete]
func (h *SadhakHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "sadhak")
	if !ok {
		return
	}

	if err := h.sadhakService.DeleteSadhak(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func sadhakInput(req *request.SadhakRequest) *service.SadhakInput {
	return &service.SadhakInput{
		Name:          req.Name,
		Phone:         req.Phone,
		DefaultAmount: req.DefaultAmount,
	}
}
