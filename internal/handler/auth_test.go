package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/workhive/api/internal/middleware"
	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/internal/service"
	"github.com/workhive/api/pkg/token"
)

// ============================================================================
// In-memory repositories
// ============================================================================

type memUserRepo struct {
	users map[string]*model.User
	next  int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.next++
	user.ID = fmt.Sprintf("user:%d", r.next)
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok || u.IsDeleted {
		return nil, nil
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email && !u.IsDeleted {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	if refreshToken == "" {
		return nil, nil
	}
	for _, u := range r.users {
		if u.RefreshToken == refreshToken && !u.IsDeleted {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context, page, pageSize int) ([]*model.User, int, error) {
	return nil, 0, nil
}

func (r *memUserRepo) Update(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	u, ok := r.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.RefreshToken = refreshToken
	return nil
}

func (r *memUserRepo) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("user not found")
	}
	u.IsDeleted = true
	return nil
}

func (r *memUserRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.users), nil
}

type memRoleRepo struct {
	roles map[string]*model.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[string]*model.Role{
		"role:user": {ID: "role:user", Name: "USER", IsActive: true},
	}}
}

func (r *memRoleRepo) Create(ctx context.Context, role *model.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *memRoleRepo) GetByID(ctx context.Context, id string) (*model.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, nil
	}
	return role, nil
}

func (r *memRoleRepo) GetByName(ctx context.Context, name string) (*model.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *memRoleRepo) List(ctx context.Context, page, pageSize int) ([]*model.Role, int, error) {
	return nil, 0, nil
}

func (r *memRoleRepo) Update(ctx context.Context, role *model.Role) error { return nil }

func (r *memRoleRepo) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
	return nil
}

func (r *memRoleRepo) CountAll(ctx context.Context) (int, error) { return len(r.roles), nil }

type memPermRepo struct{}

func (r *memPermRepo) Create(ctx context.Context, perm *model.Permission) error { return nil }
func (r *memPermRepo) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	return nil, nil
}
func (r *memPermRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	return nil, nil
}
func (r *memPermRepo) FindByPathMethod(ctx context.Context, apiPath, method string) (*model.Permission, error) {
	return nil, nil
}
func (r *memPermRepo) List(ctx context.Context, page, pageSize int) ([]*model.Permission, int, error) {
	return nil, 0, nil
}
func (r *memPermRepo) Update(ctx context.Context, perm *model.Permission) error { return nil }
func (r *memPermRepo) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
	return nil
}
func (r *memPermRepo) CountAll(ctx context.Context) (int, error) { return 0, nil }

// ============================================================================
// Test Helpers
// ============================================================================

const testRefreshTTL = time.Hour

func newTestAuthHandler(t *testing.T) (*AuthHandler, *service.AuthService) {
	t.Helper()

	issuer, err := token.NewIssuer(token.Config{
		AccessSecret:  "access-secret-for-tests",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "refresh-secret-for-tests",
		RefreshTTL:    testRefreshTTL,
	})
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: newMemUserRepo(),
		RoleRepo: newMemRoleRepo(),
		PermRepo: &memPermRepo{},
		Issuer:   issuer,
	})

	return NewAuthHandler(authService, testRefreshTTL), authService
}

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func registerUser(t *testing.T, h *AuthHandler, email, password string) {
	t.Helper()

	req := makeJSONRequest(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: status %d, body %s", rr.Code, rr.Body.String())
	}
}

func refreshCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == refreshCookieName {
			return c
		}
	}
	return nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_ValidInput_ReturnsCreated(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	req := makeJSONRequest(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "securepassword",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	env := decodeEnvelope(t, rr)
	if env.StatusCode != http.StatusCreated {
		t.Errorf("expected envelope statusCode %d, got %d", http.StatusCreated, env.StatusCode)
	}

	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatal("expected data to be an object")
	}
	if data["id"] == "" {
		t.Error("expected a non-empty id")
	}
	if refreshCookie(rr) != nil {
		t.Error("register must not set a session cookie")
	}
}

func TestRegister_DuplicateEmail_ReturnsConflict(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	registerUser(t, h, "dup@example.com", "securepassword")

	req := makeJSONRequest(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Name:     "Other",
		Email:    "dup@example.com",
		Password: "securepassword",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}

func TestRegister_InvalidBody_ReturnsBadRequest(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_ValidCredentials_SetsRefreshCookie(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	registerUser(t, h, "login@example.com", "securepassword")

	req := makeJSONRequest(http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email:    "login@example.com",
		Password: "securepassword",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	cookie := refreshCookie(rr)
	if cookie == nil {
		t.Fatal("expected a refresh_token cookie")
	}
	if !cookie.HttpOnly {
		t.Error("refresh cookie must be httpOnly")
	}
	if cookie.MaxAge != int(testRefreshTTL.Seconds()) {
		t.Errorf("expected cookie MaxAge %d, got %d", int(testRefreshTTL.Seconds()), cookie.MaxAge)
	}

	env := decodeEnvelope(t, rr)
	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatal("expected data to be an object")
	}
	if data["access_token"] == "" {
		t.Error("expected a non-empty access_token")
	}
}

func TestLogin_WrongPassword_ReturnsUnauthorized(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	registerUser(t, h, "login@example.com", "securepassword")

	req := makeJSONRequest(http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email:    "login@example.com",
		Password: "wrongpassword",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if refreshCookie(rr) != nil {
		t.Error("failed login must not set a session cookie")
	}
}

// ============================================================================
// Refresh Tests
// ============================================================================

func TestRefresh_ValidCookie_RotatesToken(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	registerUser(t, h, "refresh@example.com", "securepassword")

	loginReq := makeJSONRequest(http.MethodPost, "/api/v1/auth/login", LoginRequest{
		Email:    "refresh@example.com",
		Password: "securepassword",
	})
	loginRR := httptest.NewRecorder()
	h.Login(loginRR, loginReq)

	first := refreshCookie(loginRR)
	if first == nil {
		t.Fatal("login did not set a refresh cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh", nil)
	req.AddCookie(first)
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	second := refreshCookie(rr)
	if second == nil {
		t.Fatal("refresh did not set a new cookie")
	}
	if second.Value == first.Value {
		t.Error("refresh must rotate the refresh token")
	}

	// The rotated-out token is dead.
	replay := httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh", nil)
	replay.AddCookie(first)
	replayRR := httptest.NewRecorder()
	h.Refresh(replayRR, replay)

	if replayRR.Code != http.StatusUnauthorized {
		t.Errorf("expected replayed token to get %d, got %d", http.StatusUnauthorized, replayRR.Code)
	}
}

func TestRefresh_MissingCookie_ReturnsUnauthorized(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh", nil)
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

// ============================================================================
// Logout Tests
// ============================================================================

func TestLogout_ClearsRefreshCookie(t *testing.T) {
	h, authService := newTestAuthHandler(t)
	registerUser(t, h, "logout@example.com", "securepassword")

	result, err := authService.Login(context.Background(), "logout@example.com", "securepassword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, result.User.ID)
	rr := httptest.NewRecorder()
	h.Logout(rr, req.WithContext(ctx))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	cookie := refreshCookie(rr)
	if cookie == nil {
		t.Fatal("logout must overwrite the refresh cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Error("logout must clear the refresh cookie")
	}

	// The stored token is gone, so a refresh with the old value fails.
	refreshReq := httptest.NewRequest(http.MethodGet, "/api/v1/auth/refresh", nil)
	refreshReq.AddCookie(&http.Cookie{Name: refreshCookieName, Value: result.TokenPair.RefreshToken})
	refreshRR := httptest.NewRecorder()
	h.Refresh(refreshRR, refreshReq)

	if refreshRR.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d after logout, got %d", http.StatusUnauthorized, refreshRR.Code)
	}
}

func TestLogout_NoUser_ReturnsUnauthorized(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
