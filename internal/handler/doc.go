// Package handler provides HTTP request handlers for the WorkHive API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it needs to serve
// requests for a specific feature area (auth, users, jobs, resumes, etc.).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependencies
//   - Methods handle specific HTTP endpoints registered on the ServeMux
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Successful responses are wrapped in an envelope:
//
//	{"statusCode": 200, "message": "...", "data": {...}}
//
// Collections carry pagination metadata inside data:
//
//	{"meta": {"current": 1, "pageSize": 10, "pages": 3, "total": 25}, "result": [...]}
//
// # Authentication
//
// Protected handlers run behind the middleware guard, which attaches the
// authenticated principal to the request context. Handlers read it via
// middleware.GetUserID, GetUserEmail, and GetActor.
package handler
