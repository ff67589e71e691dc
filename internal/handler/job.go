package handler

import (
	"net/http"
	"time"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents the create/update job request body
type JobRequest struct {
	Name        string    `json:"name"`
	Skills      []string  `json:"skills"`
	CompanyID   string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Salary      float64   `json:"salary,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	Level       string    `json:"level,omitempty"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
}

func (req JobRequest) toService() service.JobRequest {
	return service.JobRequest{
		Name:        req.Name,
		Skills:      req.Skills,
		CompanyID:   req.CompanyID,
		Location:    req.Location,
		Salary:      req.Salary,
		Quantity:    req.Quantity,
		Level:       req.Level,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	}
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	job, err := h.jobService.Create(r.Context(), req.toService(), middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create job"))
		return
	}

	WriteData(w, http.StatusCreated, "Job created", job)
}

// List handles GET /api/v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	jobs, meta, err := h.jobService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list jobs"))
		return
	}

	WritePage(w, "Jobs fetched", meta, jobs)
}

// Get handles GET /api/v1/jobs/{id}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get job"))
		return
	}

	WriteData(w, http.StatusOK, "Job fetched", job)
}

// Update handles PATCH /api/v1/jobs/{id}
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req JobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	job, err := h.jobService.Update(r.Context(), r.PathValue("id"), req.toService(), middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update job"))
		return
	}

	WriteData(w, http.StatusOK, "Job updated", job)
}

// Delete handles DELETE /api/v1/jobs/{id}
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.jobService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete job"))
		return
	}

	WriteNoContent(w)
}
