package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// CompanyHandler handles company management endpoints
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents the create/update company request body
type CompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// Create handles POST /api/v1/companies
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	company, err := h.companyService.Create(r.Context(), service.CompanyRequest{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Logo:        req.Logo,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create company"))
		return
	}

	WriteData(w, http.StatusCreated, "Company created", company)
}

// List handles GET /api/v1/companies
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	companies, meta, err := h.companyService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list companies"))
		return
	}

	WritePage(w, "Companies fetched", meta, companies)
}

// Get handles GET /api/v1/companies/{id}
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get company"))
		return
	}

	WriteData(w, http.StatusOK, "Company fetched", company)
}

// Update handles PATCH /api/v1/companies/{id}
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CompanyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	company, err := h.companyService.Update(r.Context(), r.PathValue("id"), service.CompanyRequest{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Logo:        req.Logo,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update company"))
		return
	}

	WriteData(w, http.StatusOK, "Company updated", company)
}

// Delete handles DELETE /api/v1/companies/{id}
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete company"))
		return
	}

	WriteNoContent(w)
}
