package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameRequired       = errors.New("name is required")
)

// ===== Token Errors =====
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// ===== Role Errors =====
var (
	ErrRoleNotFound     = errors.New("role not found")
	ErrRoleNameRequired = errors.New("role name is required")
	ErrRoleNameExists   = errors.New("a role with this name already exists")
	ErrRoleProtected    = errors.New("this role cannot be deleted")
)

// ===== Permission Errors =====
var (
	ErrPermissionNotFound = errors.New("permission not found")
	ErrPermissionExists   = errors.New("a permission with this apiPath and method already exists")
	ErrInvalidMethod      = errors.New("invalid HTTP method")
)

// ===== User Errors =====
var (
	ErrUserProtected = errors.New("this account cannot be deleted")
)

// ===== Company Errors =====
var (
	ErrCompanyNotFound     = errors.New("company not found")
	ErrCompanyNameRequired = errors.New("company name is required")
)

// ===== Job Errors =====
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrJobNameRequired = errors.New("job name is required")
	ErrInvalidJobDates = errors.New("start date must be before end date")
)

// ===== Resume Errors =====
var (
	ErrResumeNotFound      = errors.New("resume not found")
	ErrResumeURLRequired   = errors.New("resume url is required")
	ErrInvalidResumeStatus = errors.New("invalid resume status")
)

// ===== Subscriber Errors =====
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
)
