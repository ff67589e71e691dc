package service

import (
	"context"
	"strings"

	"github.com/workhive/api/internal/model"
)

// ProtectedEmail is the bootstrap admin account. It can never be deleted.
const ProtectedEmail = "admin@gmail.com"

// Pagination defaults shared by all list operations.
const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// UserService handles user management operations
type UserService struct {
	userRepo UserRepository
	roleRepo RoleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, roleRepo RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

// CreateUserRequest represents an admin-created user
type CreateUserRequest struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
	Address  string
	RoleID   string
	Company  *model.CompanyRef
}

// Create creates a user with an explicit role and company assignment.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest, actor *model.Actor) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if req.RoleID != "" {
		role, err := s.roleRepo.GetByID(ctx, req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Hash:    hash,
		Age:     req.Age,
		Gender:  req.Gender,
		Address: req.Address,
		RoleID:  req.RoleID,
		Company: req.Company,
	}
	user.CreatedBy = actor

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users with pagination metadata.
func (s *UserService) List(ctx context.Context, page, pageSize int) ([]*model.User, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return users, newPageMeta(page, pageSize, total), nil
}

// UpdateUserRequest represents a user profile update
type UpdateUserRequest struct {
	Name    string
	Age     int
	Gender  string
	Address string
	RoleID  string
	Company *model.CompanyRef
}

// Update updates a user's profile fields. Email and password are not
// updatable through this path.
func (s *UserService) Update(ctx context.Context, id string, req UpdateUserRequest, actor *model.Actor) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.RoleID != "" {
		role, err := s.roleRepo.GetByID(ctx, req.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = req.RoleID
	}
	if req.Company != nil {
		user.Company = req.Company
	}
	user.UpdatedBy = actor

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete soft-deletes a user. The bootstrap admin account is protected.
func (s *UserService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Email == ProtectedEmail {
		return ErrUserProtected
	}
	return s.userRepo.SoftDelete(ctx, id, actor)
}

// normalizePage clamps pagination inputs to sane values.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// newPageMeta builds pagination metadata for a result page.
func newPageMeta(page, pageSize, total int) model.PageMeta {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return model.PageMeta{
		Current:  page,
		PageSize: pageSize,
		Pages:    pages,
		Total:    total,
	}
}
