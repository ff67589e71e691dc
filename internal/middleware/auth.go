package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/pkg/token"
)

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	VerifyAccess(raw string) (*token.Claims, error)
}

// PermissionResolver resolves a role name to its granted permissions.
type PermissionResolver interface {
	ResolvePermissions(ctx context.Context, roleName string) ([]model.Permission, error)
}

// Guard authenticates requests and enforces role permissions.
//
// Permission sets are cached per role name with a TTL matching the
// access token lifetime, so a role edit takes effect no later than the
// next token refresh rather than on the next request.
type Guard struct {
	verifier TokenVerifier
	resolver PermissionResolver
	cacheTTL time.Duration

	mu    sync.RWMutex
	cache map[string]cachedPermissions
}

type cachedPermissions struct {
	perms   []model.Permission
	expires time.Time
}

// NewGuard creates a guard with the given permission cache TTL.
func NewGuard(verifier TokenVerifier, resolver PermissionResolver, cacheTTL time.Duration) *Guard {
	return &Guard{
		verifier: verifier,
		resolver: resolver,
		cacheTTL: cacheTTL,
		cache:    make(map[string]cachedPermissions),
	}
}

// Auth returns a middleware that requires a valid access token. No
// permission check is applied; any authenticated user passes.
func (g *Guard) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// Authorize returns a middleware that requires a valid access token AND
// a permission matching the request's method and path. Roles granting
// nothing fail closed.
func (g *Guard) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.authenticate(w, r)
		if !ok {
			return
		}

		perms, err := g.permissions(r.Context(), claims.Role)
		if err != nil {
			model.NewInternalError("").WriteJSON(w)
			return
		}

		principal := &model.Principal{
			ID:          claims.UserID,
			Name:        claims.Name,
			Email:       claims.Email,
			Role:        claims.Role,
			Permissions: perms,
		}
		if !principal.Allowed(r.Method, r.URL.Path) {
			model.NewForbiddenError("you do not have permission to access this endpoint").WriteJSON(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// authenticate extracts and verifies the bearer token, writing a 401
// on failure.
func (g *Guard) authenticate(w http.ResponseWriter, r *http.Request) (*token.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		model.NewUnauthorizedError("missing authorization header").WriteJSON(w)
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		model.NewUnauthorizedError("invalid authorization header format").WriteJSON(w)
		return nil, false
	}

	claims, err := g.verifier.VerifyAccess(parts[1])
	if err != nil {
		model.NewUnauthorizedError("invalid or expired token").WriteJSON(w)
		return nil, false
	}
	return claims, true
}

// permissions returns the permission set for a role, from cache when fresh.
func (g *Guard) permissions(ctx context.Context, roleName string) ([]model.Permission, error) {
	g.mu.RLock()
	entry, ok := g.cache[roleName]
	g.mu.RUnlock()
	if ok && time.Now().Before(entry.expires) {
		return entry.perms, nil
	}

	perms, err := g.resolver.ResolvePermissions(ctx, roleName)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.cache[roleName] = cachedPermissions{perms: perms, expires: time.Now().Add(g.cacheTTL)}
	g.mu.Unlock()
	return perms, nil
}

// ClaimsKey is the context key for access token claims
const ClaimsKey contextKey = "claims"

// UserEmailKey is the context key for user email
const UserEmailKey contextKey = "userEmail"

func withClaims(ctx context.Context, claims *token.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetUserID extracts the user ID from context
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserEmail extracts the user email from context
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetClaims extracts the access token claims from context
func GetClaims(ctx context.Context) *token.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*token.Claims); ok {
		return claims
	}
	return nil
}

// GetActor builds the audit actor for the authenticated request, or nil
// for unauthenticated requests.
func GetActor(ctx context.Context) *model.Actor {
	claims := GetClaims(ctx)
	if claims == nil {
		return nil
	}
	return &model.Actor{ID: claims.UserID, Email: claims.Email}
}
