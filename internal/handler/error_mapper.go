package handler

import (
	"errors"

	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRefreshToken):
		return model.NewUnauthorizedError(err.Error())

	// ===== Protected Records → 403 =====
	case errors.Is(err, service.ErrUserProtected),
		errors.Is(err, service.ErrRoleProtected):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrRoleNotFound):
		return model.NewNotFoundError("role")
	case errors.Is(err, service.ErrPermissionNotFound):
		return model.NewNotFoundError("permission")
	case errors.Is(err, service.ErrCompanyNotFound):
		return model.NewNotFoundError("company")
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")
	case errors.Is(err, service.ErrResumeNotFound):
		return model.NewNotFoundError("resume")
	case errors.Is(err, service.ErrSubscriberNotFound):
		return model.NewNotFoundError("subscriber")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrRoleNameExists),
		errors.Is(err, service.ErrPermissionExists),
		errors.Is(err, service.ErrAlreadySubscribed):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrInvalidEmail):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})

	case errors.Is(err, service.ErrRoleNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "role", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidMethod):
		return model.NewValidationError([]model.FieldError{{Field: "permission", Message: err.Error()}})

	case errors.Is(err, service.ErrCompanyNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "company", Message: err.Error()}})

	case errors.Is(err, service.ErrJobNameRequired),
		errors.Is(err, service.ErrInvalidJobDates):
		return model.NewValidationError([]model.FieldError{{Field: "job", Message: err.Error()}})

	case errors.Is(err, service.ErrResumeURLRequired),
		errors.Is(err, service.ErrInvalidResumeStatus):
		return model.NewValidationError([]model.FieldError{{Field: "resume", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
