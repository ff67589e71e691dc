// Package middleware provides HTTP middleware for the WorkHive API.
//
// The middleware package contains reusable middleware components for
// authentication, authorization, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Guard.Auth: access token validation and user extraction
//   - Guard.Authorize: token validation plus role permission enforcement
//   - RequestID: unique request ID generation and propagation
//   - Logger: structured request logging
//   - Recovery: panic recovery with a 500 response
//   - CORS: cross-origin request handling
//   - Compress: gzip response compression
//
// # Authentication and Authorization
//
// The guard wraps individual routes rather than the whole mux, so
// public routes stay unwrapped:
//
//	mux.Handle("GET /api/v1/auth/account", guard.Auth(accountHandler))
//	mux.Handle("POST /api/v1/jobs", guard.Authorize(createJobHandler))
//
// Authorize checks the request's (method, path) against the permission
// set of the caller's role. Permission sets are cached per role with a
// TTL equal to the access token lifetime.
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetUserID(ctx): Returns authenticated user ID
//   - GetUserEmail(ctx): Returns authenticated user email
//   - GetClaims(ctx): Returns the full token claims
//   - GetActor(ctx): Returns the audit actor for mutations
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
