package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// RoleHandler handles role management endpoints
type RoleHandler struct {
	roleService *service.RoleService
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// RoleRequest represents the create/update role request body
type RoleRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	IsActive      *bool    `json:"isActive,omitempty"`
	PermissionIDs []string `json:"permissions"`
}

// RoleDetail is the get-role response, with permissions expanded
type RoleDetail struct {
	Role        *model.Role        `json:"role"`
	Permissions []model.Permission `json:"permissions"`
}

// Create handles POST /api/v1/roles
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	role, err := h.roleService.Create(r.Context(), service.CreateRoleRequest{
		Name:          req.Name,
		Description:   req.Description,
		IsActive:      active,
		PermissionIDs: req.PermissionIDs,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create role"))
		return
	}

	WriteData(w, http.StatusCreated, "Role created", role)
}

// List handles GET /api/v1/roles
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	roles, meta, err := h.roleService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list roles"))
		return
	}

	WritePage(w, "Roles fetched", meta, roles)
}

// Get handles GET /api/v1/roles/{id}
func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	role, perms, err := h.roleService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get role"))
		return
	}

	WriteData(w, http.StatusOK, "Role fetched", RoleDetail{Role: role, Permissions: perms})
}

// Update handles PATCH /api/v1/roles/{id}
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req RoleRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	role, err := h.roleService.Update(r.Context(), r.PathValue("id"), service.UpdateRoleRequest{
		Name:          req.Name,
		Description:   req.Description,
		IsActive:      req.IsActive,
		PermissionIDs: req.PermissionIDs,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update role"))
		return
	}

	WriteData(w, http.StatusOK, "Role updated", role)
}

// Delete handles DELETE /api/v1/roles/{id}
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete role"))
		return
	}

	WriteNoContent(w)
}
