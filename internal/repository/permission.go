package repository

import (
	"context"
	"errors"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// PermissionRepository handles permission data access
type PermissionRepository struct {
	db database.Database
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db database.Database) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// Create creates a new permission
func (r *PermissionRepository) Create(ctx context.Context, perm *model.Permission) error {
	query := `
		CREATE permission CONTENT {
			name: $name,
			apiPath: $apiPath,
			method: $method,
			module: $module,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":       perm.Name,
		"apiPath":    perm.APIPath,
		"method":     perm.Method,
		"module":     perm.Module,
		"created_by": perm.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	perm.ID = convertSurrealID(records[0]["id"])
	perm.CreatedAt = parseTime(records[0]["created_at"])
	perm.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a permission by ID, excluding soft-deleted records.
func (r *PermissionRepository) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted != true`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parsePermission(result)
}

// GetByIDs retrieves the live permissions for the given ID set.
func (r *PermissionRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT * FROM permission WHERE <string> id IN $ids AND is_deleted != true`
	vars := map[string]interface{}{"ids": ids}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	perms := make([]model.Permission, 0, len(ids))
	for _, record := range unwrapRecords(result) {
		perm, err := decodeRecord[model.Permission](record)
		if err != nil {
			return nil, err
		}
		perms = append(perms, *perm)
	}
	return perms, nil
}

// FindByPathMethod retrieves the permission with the exact apiPath and method.
func (r *PermissionRepository) FindByPathMethod(ctx context.Context, apiPath, method string) (*model.Permission, error) {
	query := `SELECT * FROM permission WHERE apiPath = $apiPath AND method = $method AND is_deleted != true LIMIT 1`
	vars := map[string]interface{}{
		"apiPath": apiPath,
		"method":  method,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parsePermission(result)
}

// List returns a page of permissions and the total count of live records.
func (r *PermissionRepository) List(ctx context.Context, page, pageSize int) ([]*model.Permission, int, error) {
	query := `SELECT * FROM permission WHERE is_deleted != true ORDER BY module, apiPath LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	perms := make([]*model.Permission, 0)
	for _, record := range unwrapRecords(result) {
		perm, err := decodeRecord[model.Permission](record)
		if err != nil {
			return nil, 0, err
		}
		perms = append(perms, perm)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM permission WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return perms, extractCount(countResult), nil
}

// Update updates a permission
func (r *PermissionRepository) Update(ctx context.Context, perm *model.Permission) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			apiPath = $apiPath,
			method = $method,
			module = $module,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":         perm.ID,
		"name":       perm.Name,
		"apiPath":    perm.APIPath,
		"method":     perm.Method,
		"module":     perm.Module,
		"updated_by": perm.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a permission as deleted without removing the record.
func (r *PermissionRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
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

// CountAll returns the number of live permission records.
func (r *PermissionRepository) CountAll(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM permission WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parsePermission(result interface{}) (*model.Permission, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Permission](data)
}
