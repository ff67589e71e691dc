package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the create user request body
type CreateUserRequest struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Password string            `json:"password"`
	Age      int               `json:"age,omitempty"`
	Gender   string            `json:"gender,omitempty"`
	Address  string            `json:"address,omitempty"`
	RoleID   string            `json:"role"`
	Company  *model.CompanyRef `json:"company,omitempty"`
}

// UpdateUserRequest represents the update user request body
type UpdateUserRequest struct {
	Name    string            `json:"name"`
	Age     int               `json:"age,omitempty"`
	Gender  string            `json:"gender,omitempty"`
	Address string            `json:"address,omitempty"`
	RoleID  string            `json:"role"`
	Company *model.CompanyRef `json:"company,omitempty"`
}

// Create handles POST /api/v1/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Address:  req.Address,
		RoleID:   req.RoleID,
		Company:  req.Company,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create user"))
		return
	}

	WriteData(w, http.StatusCreated, "User created", user)
}

// List handles GET /api/v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	users, meta, err := h.userService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list users"))
		return
	}

	WritePage(w, "Users fetched", meta, users)
}

// Get handles GET /api/v1/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get user"))
		return
	}

	WriteData(w, http.StatusOK, "User fetched", user)
}

// Update handles PATCH /api/v1/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.userService.Update(r.Context(), r.PathValue("id"), service.UpdateUserRequest{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		Address: req.Address,
		RoleID:  req.RoleID,
		Company: req.Company,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update user"))
		return
	}

	WriteData(w, http.StatusOK, "User updated", user)
}

// Delete handles DELETE /api/v1/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete user"))
		return
	}

	WriteNoContent(w)
}
