package repository

import (
	"context"
	"errors"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			name: $name,
			skills: $skills,
			company: $company,
			location: $location,
			salary: $salary,
			quantity: $quantity,
			level: $level,
			description: $description,
			startDate: <datetime> $startDate,
			endDate: <datetime> $endDate,
			isActive: $isActive,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":        job.Name,
		"skills":      job.Skills,
		"company":     job.Company,
		"location":    job.Location,
		"salary":      job.Salary,
		"quantity":    job.Quantity,
		"level":       job.Level,
		"description": job.Description,
		"startDate":   job.StartDate,
		"endDate":     job.EndDate,
		"isActive":    job.IsActive,
		"created_by":  job.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	job.ID = convertSurrealID(records[0]["id"])
	job.CreatedAt = parseTime(records[0]["created_at"])
	job.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a job by ID, excluding soft-deleted records.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
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
	return decodeRecord[model.Job](data)
}

// List returns a page of jobs and the total count of live records.
func (r *JobRepository) List(ctx context.Context, page, pageSize int) ([]*model.Job, int, error) {
	query := `SELECT * FROM job WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	jobs := make([]*model.Job, 0)
	for _, record := range unwrapRecords(result) {
		job, err := decodeRecord[model.Job](record)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM job WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return jobs, extractCount(countResult), nil
}

// FindActiveBySkills retrieves active jobs whose skill list intersects
// the given skills. Used by the weekly subscriber digest.
func (r *JobRepository) FindActiveBySkills(ctx context.Context, skills []string) ([]*model.Job, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	query := `SELECT * FROM job WHERE isActive = true AND is_deleted != true AND skills ANYINSIDE $skills`
	vars := map[string]interface{}{"skills": skills}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	jobs := make([]*model.Job, 0)
	for _, record := range unwrapRecords(result) {
		job, err := decodeRecord[model.Job](record)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// Update updates a job posting
func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			skills = $skills,
			company = $company,
			location = $location,
			salary = $salary,
			quantity = $quantity,
			level = $level,
			description = $description,
			startDate = <datetime> $startDate,
			endDate = <datetime> $endDate,
			isActive = $isActive,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":          job.ID,
		"name":        job.Name,
		"skills":      job.Skills,
		"company":     job.Company,
		"location":    job.Location,
		"salary":      job.Salary,
		"quantity":    job.Quantity,
		"level":       job.Level,
		"description": job.Description,
		"startDate":   job.StartDate,
		"endDate":     job.EndDate,
		"isActive":    job.IsActive,
		"updated_by":  job.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a job as deleted without removing the record.
func (r *JobRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
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
