package service

import (
	"context"
	"strings"

	"github.com/aakb/rasid-api/internal/domain/entity"
	"github.com/aakb/rasid-api/internal/domain/enum"
	"github.com/aakb/rasid-api/internal/domain/repository"
	"github.com/aakb/rasid-api/pkg/apperror"
	"github.com/aakb/rasid-api/pkg/pagination"
	"github.com/aakb/rasid-api/pkg/utils"
	"github.com/google/uuid"
)

// MinPasswordLength is the shortest password accepted for an account
const MinPasswordLength = 4

// UserService handles staff account management
type UserService struct {
	userRepo    repository.UserRepository
	emailDomain string
}

// NewUserService creates a new user service. When emailDomain is not empty
// new accounts must use an address under it.
func NewUserService(userRepo repository.UserRepository, emailDomain string) *UserService {
	return &UserService{
		userRepo:    userRepo,
		emailDomain: strings.ToLower(strings.TrimPrefix(emailDomain, "@")),
	}
}

// ListUsersInput represents the input for listing users
type ListUsersInput struct {
	Page    int
	PerPage int
	Search  string
}

// ListUsers returns a paginated list of users
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) (*pagination.PaginatedResult[entity.User], error) {
	params := &pagination.PaginationParams{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params, strings.TrimSpace(input.Search))
	if err != nil {
		return nil, err
	}
	return pagination.Page(users, params, total), nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents the input for creating a user
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     enum.UserRole
}

// CreateUser adds a staff account. Role defaults to bill maker.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	var fieldErrors []apperror.FieldError
	if s.emailDomain != "" && !strings.HasSuffix(email, "@"+s.emailDomain) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "must end with @" + s.emailDomain})
	}
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if len(input.Password) < MinPasswordLength {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "must be at least 4 characters"})
	}
	role := input.Role
	if role == "" {
		role = enum.UserRoleBillMaker
	}
	if !role.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "role", Message: "must be admin or bill_maker"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A user with this email already exists")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Role:     role,
		IsActive: true,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserInput represents the input for updating a user.
// Nil fields are left unchanged.
type UpdateUserInput struct {
	UserID   uuid.UUID
	ActorID  uuid.UUID
	Name     *string
	Role     *enum.UserRole
	IsActive *bool
}

// UpdateUser changes a user's name, role or active flag. Admins cannot
// deactivate or demote themselves.
func (s *UserService) UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	self := input.UserID == input.ActorID
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "name", Message: "is required"}})
		}
		user.Name = name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "role", Message: "must be admin or bill_maker"}})
		}
		if self && *input.Role != enum.UserRoleAdmin {
			return nil, apperror.NewBadRequestError("You cannot remove your own admin role")
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		if self && !*input.IsActive {
			return nil, apperror.NewBadRequestError("You cannot deactivate your own account")
		}
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword sets a new password for a user
func (s *UserService) ResetPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if len(password) < MinPasswordLength {
		return errPasswordTooShort
	}
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
