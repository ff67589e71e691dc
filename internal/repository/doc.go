// Package repository implements the data access layer for the WorkHive API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, GetByID, Update, SoftDelete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Soft Deletes
//
// Nothing is ever removed from the database. SoftDelete sets is_deleted,
// deleted_at, and deleted_by on the record, and every read query filters
// on is_deleted != true so deleted records vanish from the API without
// losing history.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - LIMIT/START with a companion count() query for offset pagination
//
// # Example Usage
//
//	repo := NewJobRepository(db)
//	job, err := repo.GetByID(ctx, "job:abc123")
//	if err != nil {
//	    return err
//	}
//	if job == nil {
//	    // Not found
//	}
package repository
