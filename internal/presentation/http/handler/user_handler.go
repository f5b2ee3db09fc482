package handler

import (
	"strconv"

	"github.com/aakb/rasid-api/internal/application/service"
	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/request"
	"github.com/aakb/rasid-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// UserHandler handles staff account management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing users with pagination
// @Summary List Users
// @Description Get a paginated list of staff accounts
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search by name or email"
// @Success 200 {object} response.APIResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	result, err := h.userService.ListUsers(c.Request.Context(), &service.ListUsersInput{
		Page:    page,
		PerPage: perPage,
		Search:  c.Query("search"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// Get handles getting a single user by ID
// @Summary Get User
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", gin.H{"user": userBody(user)})
}

// Create handles adding a staff account
// @Summary Create User
// @Description Add a staff account on the organization's email domain
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateUserRequest true "User data"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     enum.UserRole(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", gin.H{"user": userBody(user)})
}

// Update handles changing a user's name, role or active flag
// @Summary Update User
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request.UpdateUserRequest true "User changes"
// @Success 200 {object} response.APIResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}
	actorID := GetUserID(c)
	if actorID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateUserInput{
		UserID:   userID,
		ActorID:  *actorID,
		Name:     req.Name,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := enum.UserRole(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", gin.H{"user": userBody(user)})
}

// ResetPassword handles an admin setting a user's password
// @Summary Reset User Password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request.ResetUserPasswordRequest true "New password"
// @Success 200 {object} response.APIResponse
// @Router /users/{id}/password [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "id", "user")
	if !ok {
		return
	}

	var req request.ResetUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), userID, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Password reset successfully", nil)
}
