package handler

import (
	"context"
	"net/http"

	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// DigestService runs one digest pass on demand.
type DigestService interface {
	Run(ctx context.Context) (*service.DigestResult, error)
}

// MailHandler exposes a manual trigger for the weekly job digest
type MailHandler struct {
	digest DigestService
}

// NewMailHandler creates a new mail handler
func NewMailHandler(digest DigestService) *MailHandler {
	return &MailHandler{digest: digest}
}

// Send handles GET /api/v1/mail, running a digest pass immediately.
func (h *MailHandler) Send(w http.ResponseWriter, r *http.Request) {
	result, err := h.digest.Run(r.Context())
	if err != nil {
		WriteError(w, model.NewInternalError("digest run failed"))
		return
	}

	WriteData(w, http.StatusOK, "Digest sent", result)
}
