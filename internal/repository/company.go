package repository

import (
	"context"
	"errors"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// CompanyRepository handles company data access
type CompanyRepository struct {
	db database.Database
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db database.Database) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	query := `
		CREATE company CONTENT {
			name: $name,
			address: $address,
			description: $description,
			logo: $logo,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":        company.Name,
		"address":     company.Address,
		"description": company.Description,
		"logo":        company.Logo,
		"created_by":  company.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	company.ID = convertSurrealID(records[0]["id"])
	company.CreatedAt = parseTime(records[0]["created_at"])
	company.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a company by ID, excluding soft-deleted records.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted != true`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Company](data)
}

// List returns a page of companies and the total count of live records.
func (r *CompanyRepository) List(ctx context.Context, page, pageSize int) ([]*model.Company, int, error) {
	query := `SELECT * FROM company WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	companies := make([]*model.Company, 0)
	for _, record := range unwrapRecords(result) {
		company, err := decodeRecord[model.Company](record)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM company WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return companies, extractCount(countResult), nil
}

// Update updates a company
func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			address = $address,
			description = $description,
			logo = $logo,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":          company.ID,
		"name":        company.Name,
		"address":     company.Address,
		"description": company.Description,
		"logo":        company.Logo,
		"updated_by":  company.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a company as deleted without removing the record.
func (r *CompanyRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
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
