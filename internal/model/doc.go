// Package model defines domain entities and data structures for the Workhive API.
//
// The model package contains all struct definitions for domain objects and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with credentials and a role reference
//   - Role: Named permission set assigned to users
//   - Permission: A single (method, apiPath) grant
//   - Company: Hiring company profile
//   - Job: Job posting with required skills
//   - Resume: Candidate application with a status history
//   - Subscriber: Email digest subscription with skill interests
//
// # Audit Fields
//
// Every entity embeds Audit, which carries actor stamps and soft-delete
// state. Soft-deleted records stay in the store but are invisible to reads.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
