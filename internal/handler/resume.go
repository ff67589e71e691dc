package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// ResumeHandler handles resume submission endpoints
type ResumeHandler struct {
	resumeService *service.ResumeService
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// SubmitResumeRequest represents the submit resume request body
type SubmitResumeRequest struct {
	URL   string `json:"url"`
	JobID string `json:"job"`
}

// UpdateResumeRequest represents the status update request body
type UpdateResumeRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/v1/resumes
func (h *ResumeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SubmitResumeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resume, err := h.resumeService.Submit(r.Context(), service.SubmitResumeRequest{
		URL:   req.URL,
		JobID: req.JobID,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "submit resume"))
		return
	}

	WriteData(w, http.StatusCreated, "Resume submitted", resume)
}

// List handles GET /api/v1/resumes
func (h *ResumeHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	resumes, meta, err := h.resumeService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list resumes"))
		return
	}

	WritePage(w, "Resumes fetched", meta, resumes)
}

// Get handles GET /api/v1/resumes/{id}
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resume, err := h.resumeService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get resume"))
		return
	}

	WriteData(w, http.StatusOK, "Resume fetched", resume)
}

// ByUser handles POST /api/v1/resumes/by-user, returning the
// authenticated user's own submissions.
func (h *ResumeHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	resumes, err := h.resumeService.ListByUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list own resumes"))
		return
	}

	WriteData(w, http.StatusOK, "Resumes fetched", resumes)
}

// Update handles PATCH /api/v1/resumes/{id}. Only the status can
// change; every change is appended to the resume history.
func (h *ResumeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateResumeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	resume, err := h.resumeService.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update resume"))
		return
	}

	WriteData(w, http.StatusOK, "Resume status updated", resume)
}

// Delete handles DELETE /api/v1/resumes/{id}
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.resumeService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete resume"))
		return
	}

	WriteNoContent(w)
}
