package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// RoleRepository handles role data access
type RoleRepository struct {
	db database.Database
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db database.Database) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create creates a new role
func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	query := `
		CREATE role CONTENT {
			name: $name,
			description: $description,
			isActive: $isActive,
			permissions: $permissions,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":        role.Name,
		"description": role.Description,
		"isActive":    role.IsActive,
		"permissions": role.PermissionIDs,
		"created_by":  role.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: role name already exists", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	role.ID = convertSurrealID(records[0]["id"])
	role.CreatedAt = parseTime(records[0]["created_at"])
	role.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a role by ID, excluding soft-deleted records.
func (r *RoleRepository) GetByID(ctx context.Context, id string) (*model.Role, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted != true`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseRole(result)
}

// GetByName retrieves a role by its unique name.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*model.Role, error) {
	query := `SELECT * FROM role WHERE name = $name AND is_deleted != true LIMIT 1`
	vars := map[string]interface{}{"name": name}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseRole(result)
}

// List returns a page of roles and the total count of live records.
func (r *RoleRepository) List(ctx context.Context, page, pageSize int) ([]*model.Role, int, error) {
	query := `SELECT * FROM role WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	roles := make([]*model.Role, 0)
	for _, record := range unwrapRecords(result) {
		role, err := decodeRecord[model.Role](record)
		if err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM role WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return roles, extractCount(countResult), nil
}

// Update updates a role
func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			description = $description,
			isActive = $isActive,
			permissions = $permissions,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":          role.ID,
		"name":        role.Name,
		"description": role.Description,
		"isActive":    role.IsActive,
		"permissions": role.PermissionIDs,
		"updated_by":  role.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a role as deleted without removing the record.
func (r *RoleRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
	query := `
		UPDATE type::record($id) SET
			is_deleted = true,
			deleted_at = time::now(),
			deleted_by = $deleted_by
	`
	vars := map[string]interface{}{
		"id":         id,
		"deleted_by": deletedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// CountAll returns the number of live role records.
func (r *RoleRepository) CountAll(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM role WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseRole(result interface{}) (*model.Role, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Role](data)
}
