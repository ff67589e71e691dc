package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "workhive"

// Subjects distinguish the two token kinds so one can never be
// presented in place of the other.
const (
	subjectAccess  = "token login"
	subjectRefresh = "token refresh"
)

// ErrInvalidToken indicates the token failed signature or claims validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity baked into both access and refresh tokens.
type Claims struct {
	UserID string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds the signing material for both token kinds. Access and
// refresh tokens use distinct secrets.
type Config struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// Issuer signs and verifies access and refresh tokens using HS256.
type Issuer struct {
	config Config
}

// NewIssuer creates a token issuer from the given config.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token: access and refresh secrets are required")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("token: access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token: TTLs must be greater than zero")
	}
	return &Issuer{config: cfg}, nil
}

// AccessTTL returns the configured access token lifetime.
func (i *Issuer) AccessTTL() time.Duration { return i.config.AccessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (i *Issuer) RefreshTTL() time.Duration { return i.config.RefreshTTL }

// SignAccess issues a short-lived access token for the given identity.
func (i *Issuer) SignAccess(userID, name, email, role string) (string, error) {
	return i.sign(userID, name, email, role, subjectAccess, i.config.AccessSecret, i.config.AccessTTL)
}

// SignRefresh issues a refresh token for the given identity.
func (i *Issuer) SignRefresh(userID, name, email, role string) (string, error) {
	return i.sign(userID, name, email, role, subjectRefresh, i.config.RefreshSecret, i.config.RefreshTTL)
}

func (i *Issuer) sign(userID, name, email, role, subject, secret string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("token: userID is required")
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns its claims.
// Refresh tokens are rejected even though they share the claim shape.
func (i *Issuer) VerifyAccess(raw string) (*Claims, error) {
	return i.verify(raw, subjectAccess, i.config.AccessSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (i *Issuer) VerifyRefresh(raw string) (*Claims, error) {
	return i.verify(raw, subjectRefresh, i.config.RefreshSecret)
}

func (i *Issuer) verify(raw, subject, secret string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != issuer || claims.Subject != subject {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
