package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// PermissionHandler handles permission catalog endpoints
type PermissionHandler struct {
	permService *service.PermissionService
}

// NewPermissionHandler creates a new permission handler
func NewPermissionHandler(permService *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permService: permService}
}

// PermissionRequest represents the create/update permission request body
type PermissionRequest struct {
	Name    string `json:"name"`
	APIPath string `json:"apiPath"`
	Method  string `json:"method"`
	Module  string `json:"module"`
}

// Create handles POST /api/v1/permissions
func (h *PermissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PermissionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	perm, err := h.permService.Create(r.Context(), service.CreatePermissionRequest{
		Name:    req.Name,
		APIPath: req.APIPath,
		Method:  req.Method,
		Module:  req.Module,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create permission"))
		return
	}

	WriteData(w, http.StatusCreated, "Permission created", perm)
}

// List handles GET /api/v1/permissions
func (h *PermissionHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	perms, meta, err := h.permService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list permissions"))
		return
	}

	WritePage(w, "Permissions fetched", meta, perms)
}

// Get handles GET /api/v1/permissions/{id}
func (h *PermissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	perm, err := h.permService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get permission"))
		return
	}

	WriteData(w, http.StatusOK, "Permission fetched", perm)
}

// Update handles PATCH /api/v1/permissions/{id}
func (h *PermissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req PermissionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	perm, err := h.permService.Update(r.Context(), r.PathValue("id"), service.UpdatePermissionRequest{
		Name:    req.Name,
		APIPath: req.APIPath,
		Method:  req.Method,
		Module:  req.Module,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update permission"))
		return
	}

	WriteData(w, http.StatusOK, "Permission updated", perm)
}

// Delete handles DELETE /api/v1/permissions/{id}
func (h *PermissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.permService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete permission"))
		return
	}

	WriteNoContent(w)
}
