package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// SubscriberRepository handles job-alert subscriber data access
type SubscriberRepository struct {
	db database.Database
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db database.Database) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Create creates a new subscriber
func (r *SubscriberRepository) Create(ctx context.Context, sub *model.Subscriber) error {
	query := `
		CREATE subscriber CONTENT {
			name: $name,
			email: $email,
			skills: $skills,
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":       sub.Name,
		"email":      sub.Email,
		"skills":     sub.Skills,
		"created_by": sub.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already subscribed", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	sub.ID = convertSurrealID(records[0]["id"])
	sub.CreatedAt = parseTime(records[0]["created_at"])
	sub.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a subscriber by ID, excluding soft-deleted records.
func (r *SubscriberRepository) GetByID(ctx context.Context, id string) (*model.Subscriber, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted != true`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseSubscriber(result)
}

// GetByEmail retrieves a subscriber by email, excluding soft-deleted records.
func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	query := `SELECT * FROM subscriber WHERE email = $email AND is_deleted != true LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseSubscriber(result)
}

// List returns a page of subscribers and the total count of live records.
func (r *SubscriberRepository) List(ctx context.Context, page, pageSize int) ([]*model.Subscriber, int, error) {
	query := `SELECT * FROM subscriber WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	subs := make([]*model.Subscriber, 0)
	for _, record := range unwrapRecords(result) {
		sub, err := decodeRecord[model.Subscriber](record)
		if err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM subscriber WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return subs, extractCount(countResult), nil
}

// ListAll retrieves every live subscriber. Used by the weekly digest.
func (r *SubscriberRepository) ListAll(ctx context.Context) ([]*model.Subscriber, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM subscriber WHERE is_deleted != true`, nil)
	if err != nil {
		return nil, err
	}

	subs := make([]*model.Subscriber, 0)
	for _, record := range unwrapRecords(result) {
		sub, err := decodeRecord[model.Subscriber](record)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Update updates a subscriber's name and skills
func (r *SubscriberRepository) Update(ctx context.Context, sub *model.Subscriber) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			skills = $skills,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":         sub.ID,
		"name":       sub.Name,
		"skills":     sub.Skills,
		"updated_by": sub.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a subscriber as deleted without removing the record.
func (r *SubscriberRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
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

func parseSubscriber(result interface{}) (*model.Subscriber, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRecord[model.Subscriber](data)
}
