package handler

import (
	"net/http"
	"time"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
)

// refreshCookieName is the httpOnly cookie carrying the refresh token.
const refreshCookieName = "refresh_token"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
	refreshTTL  time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		refreshTTL:  refreshTTL,
	}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Address  string `json:"address,omitempty"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email    string `json:"username"`
	Password string `json:"password"`
}

// SessionUser is the redacted user view returned by login and refresh
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse carries a fresh access token and the session user
type SessionResponse struct {
	AccessToken string      `json:"access_token"`
	User        SessionUser `json:"user"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Address:  req.Address,
	})
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "register"))
		return
	}

	response := struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
	}{
		ID:        user.ID,
		CreatedAt: user.CreatedAt,
	}

	WriteData(w, http.StatusCreated, "User registered", response)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "login"))
		return
	}

	h.setRefreshCookie(w, result.TokenPair.RefreshToken)
	WriteData(w, http.StatusOK, "User logged in", toSessionResponse(result))
}

// Refresh handles GET /api/v1/auth/refresh. The refresh token comes
// from the httpOnly cookie, never from the request body.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		WriteError(w, model.NewUnauthorizedError("refresh token cookie missing"))
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		h.clearRefreshCookie(w)
		WriteError(w, MapServiceErrorWithContext(err, "refresh"))
		return
	}

	h.setRefreshCookie(w, result.TokenPair.RefreshToken)
	WriteData(w, http.StatusOK, "Session refreshed", toSessionResponse(result))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.authService.Logout(r.Context(), userID); err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "logout"))
		return
	}

	h.clearRefreshCookie(w)
	WriteData(w, http.StatusOK, "User logged out", nil)
}

// Account handles GET /api/v1/auth/account
func (h *AuthHandler) Account(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	principal, err := h.authService.Account(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "account"))
		return
	}

	WriteData(w, http.StatusOK, "Account fetched", principal)
}

func toSessionResponse(result *service.LoginResult) SessionResponse {
	return SessionResponse{
		AccessToken: result.TokenPair.AccessToken,
		User: SessionUser{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.RoleName,
		},
	}
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
