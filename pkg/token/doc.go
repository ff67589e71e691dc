// Package token provides JSON Web Token utilities for the WorkHive API.
//
// The token package handles signing and verification of the two token
// kinds the API issues: short-lived access tokens and long-lived
// refresh tokens. Each kind has its own secret, so a refresh token can
// never be presented where an access token is expected.
//
// # Signing
//
// Create an issuer and sign tokens for an authenticated user:
//
//	issuer, err := token.NewIssuer(token.Config{
//	    AccessSecret:  "access-secret",
//	    AccessTTL:     15 * time.Minute,
//	    RefreshSecret: "refresh-secret",
//	    RefreshTTL:    7 * 24 * time.Hour,
//	})
//
//	access, err := issuer.SignAccess(userID, name, email, role)
//	refresh, err := issuer.SignRefresh(userID, name, email, role)
//
// # Verification
//
// Verify and extract claims:
//
//	claims, err := issuer.VerifyAccess(raw)
//	if err != nil {
//	    // Invalid, expired, or wrong-kind token
//	}
//	userID := claims.UserID
//
// All verification failures surface as ErrInvalidToken; callers are
// not told why a token was rejected.
package token
