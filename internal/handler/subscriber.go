package handler

import (
	"net/http"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// SubscriberHandler handles job alert subscription endpoints
type SubscriberHandler struct {
	subService *service.SubscriberService
}

// NewSubscriberHandler creates a new subscriber handler
func NewSubscriberHandler(subService *service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subService: subService}
}

// SubscriberRequest represents the create/update subscriber request body
type SubscriberRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// Create handles POST /api/v1/subscribers
func (h *SubscriberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SubscriberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	sub, err := h.subService.Create(r.Context(), service.SubscriberRequest{
		Name:   req.Name,
		Email:  req.Email,
		Skills: req.Skills,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "create subscriber"))
		return
	}

	WriteData(w, http.StatusCreated, "Subscriber created", sub)
}

// List handles GET /api/v1/subscribers
func (h *SubscriberHandler) List(w http.ResponseWriter, r *http.Request) {
	current, pageSize := parsePage(r)

	subs, meta, err := h.subService.List(r.Context(), current, pageSize)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list subscribers"))
		return
	}

	WritePage(w, "Subscribers fetched", meta, subs)
}

// Get handles GET /api/v1/subscribers/{id}
func (h *SubscriberHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get subscriber"))
		return
	}

	WriteData(w, http.StatusOK, "Subscriber fetched", sub)
}

// Skills handles POST /api/v1/subscribers/skills, returning the
// authenticated user's subscribed skills.
func (h *SubscriberHandler) Skills(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if email == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	skills, err := h.subService.Skills(r.Context(), email)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "get subscriber skills"))
		return
	}

	WriteData(w, http.StatusOK, "Subscriber skills fetched", skills)
}

// Update handles PATCH /api/v1/subscribers/{id}
func (h *SubscriberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req SubscriberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	sub, err := h.subService.Update(r.Context(), r.PathValue("id"), service.SubscriberRequest{
		Name:   req.Name,
		Email:  req.Email,
		Skills: req.Skills,
	}, middleware.GetActor(r.Context()))
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "update subscriber"))
		return
	}

	WriteData(w, http.StatusOK, "Subscriber updated", sub)
}

// Delete handles DELETE /api/v1/subscribers/{id}
func (h *SubscriberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.subService.Delete(r.Context(), r.PathValue("id"), middleware.GetActor(r.Context())); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "delete subscriber"))
		return
	}

	WriteNoContent(w)
}
