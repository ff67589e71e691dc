package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/pkg/token"
)

func newTestIssuer(t *testing.T) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer(token.Config{
		AccessSecret:  "test-access-secret",
		AccessTTL:     15 * time.Minute,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    time.Hour,
	})
	require.NoError(t, err)
	return issuer
}

type stubResolver struct {
	perms map[string][]model.Permission
	calls int
}

func (s *stubResolver) ResolvePermissions(_ context.Context, roleName string) ([]model.Permission, error) {
	s.calls++
	return s.perms[roleName], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken_PassesAndSetsContext(t *testing.T) {
	issuer := newTestIssuer(t)
	guard := NewGuard(issuer, &stubResolver{}, 15*time.Minute)

	var gotUserID string
	var gotActor *model.Actor
	handler := guard.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		gotActor = GetActor(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/account", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user:1", gotUserID)
	require.NotNil(t, gotActor)
	assert.Equal(t, "ada@example.com", gotActor.Email)
}

func TestAuth_MissingHeader_Returns401(t *testing.T) {
	guard := NewGuard(newTestIssuer(t), &stubResolver{}, 15*time.Minute)
	handler := guard.Auth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/account", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestAuth_MalformedHeader_Returns401(t *testing.T) {
	guard := NewGuard(newTestIssuer(t), &stubResolver{}, 15*time.Minute)
	handler := guard.Auth(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/account", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RefreshTokenPresented_Returns401(t *testing.T) {
	issuer := newTestIssuer(t)
	guard := NewGuard(issuer, &stubResolver{}, 15*time.Minute)
	handler := guard.Auth(okHandler())

	refresh, err := issuer.SignRefresh("user:1", "Ada", "ada@example.com", "USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/account", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorize_PermissionGranted_Passes(t *testing.T) {
	issuer := newTestIssuer(t)
	resolver := &stubResolver{perms: map[string][]model.Permission{
		"HR": {{APIPath: "/api/v1/jobs", Method: "POST"}},
	}}
	guard := NewGuard(issuer, resolver, 15*time.Minute)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "HR")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_ParamSegment_Matches(t *testing.T) {
	issuer := newTestIssuer(t)
	resolver := &stubResolver{perms: map[string][]model.Permission{
		"HR": {{APIPath: "/api/v1/jobs/{id}", Method: "DELETE"}},
	}}
	guard := NewGuard(issuer, resolver, 15*time.Minute)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "HR")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/job:xyz", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthorize_NoMatchingPermission_Returns403(t *testing.T) {
	issuer := newTestIssuer(t)
	resolver := &stubResolver{perms: map[string][]model.Permission{
		"USER": {{APIPath: "/api/v1/jobs", Method: "GET"}},
	}}
	guard := NewGuard(issuer, resolver, 15*time.Minute)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "USER")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/job:xyz", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorize_RoleWithNoPermissions_Returns403(t *testing.T) {
	issuer := newTestIssuer(t)
	guard := NewGuard(issuer, &stubResolver{}, 15*time.Minute)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "UNKNOWN")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorize_PermissionCache_AvoidsRepeatedResolution(t *testing.T) {
	issuer := newTestIssuer(t)
	resolver := &stubResolver{perms: map[string][]model.Permission{
		"HR": {{APIPath: "/api/v1/jobs", Method: "GET"}},
	}}
	guard := NewGuard(issuer, resolver, 15*time.Minute)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "HR")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, resolver.calls, "expected permissions to be resolved once and cached")
}

func TestAuthorize_ExpiredCache_ResolvesAgain(t *testing.T) {
	issuer := newTestIssuer(t)
	resolver := &stubResolver{perms: map[string][]model.Permission{
		"HR": {{APIPath: "/api/v1/jobs", Method: "GET"}},
	}}
	guard := NewGuard(issuer, resolver, time.Nanosecond)
	handler := guard.Authorize(okHandler())

	access, err := issuer.SignAccess("user:1", "Ada", "ada@example.com", "HR")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		time.Sleep(time.Millisecond)
	}

	assert.Equal(t, 2, resolver.calls, "expected expired cache entries to be refreshed")
}
