package repository

import (
	"context"
	"errors"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// ResumeRepository handles resume (job application) data access
type ResumeRepository struct {
	db database.Database
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db database.Database) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Create creates a new resume submission
func (r *ResumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	query := `
		CREATE resume CONTENT {
			email: $email,
			userId: $userId,
			url: $url,
			status: $status,
			companyId: $companyId,
			jobId: $jobId,
			history: $history,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"email":      resume.Email,
		"userId":     resume.UserID,
		"url":        resume.URL,
		"status":     resume.Status,
		"companyId":  resume.CompanyID,
		"jobId":      resume.JobID,
		"history":    resume.History,
		"created_by": resume.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	resume.ID = convertSurrealID(records[0]["id"])
	resume.CreatedAt = parseTime(records[0]["created_at"])
	resume.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a resume by ID, excluding soft-deleted records.
func (r *ResumeRepository) GetByID(ctx context.Context, id string) (*model.Resume, error) {
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
	return decodeRecord[model.Resume](data)
}

// List returns a page of resumes and the total count of live records.
func (r *ResumeRepository) List(ctx context.Context, page, pageSize int) ([]*model.Resume, int, error) {
	query := `SELECT * FROM resume WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	resumes := make([]*model.Resume, 0)
	for _, record := range unwrapRecords(result) {
		resume, err := decodeRecord[model.Resume](record)
		if err != nil {
			return nil, 0, err
		}
		resumes = append(resumes, resume)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM resume WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return resumes, extractCount(countResult), nil
}

// ListByUser retrieves all live resumes submitted by the given user.
func (r *ResumeRepository) ListByUser(ctx context.Context, userID string) ([]*model.Resume, error) {
	query := `SELECT * FROM resume WHERE userId = $userId AND is_deleted != true ORDER BY created_at DESC`
	vars := map[string]interface{}{"userId": userID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	resumes := make([]*model.Resume, 0)
	for _, record := range unwrapRecords(result) {
		resume, err := decodeRecord[model.Resume](record)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, nil
}

// UpdateStatus sets the resume status and appends a history entry.
func (r *ResumeRepository) UpdateStatus(ctx context.Context, id, status string, entry model.ResumeHistoryEntry, updatedBy *model.Actor) error {
	query := `
		UPDATE type::record($id) SET
			status = $status,
			history += $entry,
			updated_by = $updated_by,
			updated_at = time::now()
	`
	vars := map[string]interface{}{
		"id":         id,
		"status":     status,
		"entry":      entry,
		"updated_by": updatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a resume as deleted without removing the record.
func (r *ResumeRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
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
