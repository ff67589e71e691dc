package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhive/api/internal/database"
	"github.com/workhive/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			age: $age,
			gender: $gender,
			address: $address,
			role: $role,
			company: $company,
			refresh_token: "",
			created_by: $created_by,
			is_deleted: false,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":       user.Name,
		"email":      user.Email,
		"hash":       user.Hash,
		"age":        user.Age,
		"gender":     user.Gender,
		"address":    user.Address,
		"role":       user.RoleID,
		"company":    user.Company,
		"created_by": user.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	user.ID = convertSurrealID(records[0]["id"])
	user.CreatedAt = parseTime(records[0]["created_at"])
	user.UpdatedAt = parseTime(records[0]["updated_at"])
	return nil
}

// GetByID retrieves a user by ID, excluding soft-deleted records.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id) WHERE is_deleted != true`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByEmail retrieves a user by email, excluding soft-deleted records.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email AND is_deleted != true LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// GetByRefreshToken retrieves the user holding the given refresh token.
func (r *UserRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error) {
	query := `SELECT * FROM user WHERE refresh_token = $token AND refresh_token != "" AND is_deleted != true LIMIT 1`
	vars := map[string]interface{}{"token": refreshToken}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUser(result)
}

// List returns a page of users and the total count of live records.
func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]*model.User, int, error) {
	query := `SELECT * FROM user WHERE is_deleted != true ORDER BY created_at DESC LIMIT $limit START $start`
	vars := map[string]interface{}{
		"limit": pageSize,
		"start": (page - 1) * pageSize,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, 0, err
	}

	users := make([]*model.User, 0)
	for _, record := range unwrapRecords(result) {
		user, err := parseUserRecord(record)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	countResult, err := r.db.QueryOne(ctx, `SELECT count() FROM user WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		return nil, 0, err
	}
	return users, extractCount(countResult), nil
}

// Update updates a user's profile fields
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			name = $name,
			age = $age,
			gender = $gender,
			address = $address,
			role = $role,
			company = $company,
			updated_by = $updated_by,
			updated_at = time::now()
	`

	vars := map[string]interface{}{
		"id":         user.ID,
		"name":       user.Name,
		"age":        user.Age,
		"gender":     user.Gender,
		"address":    user.Address,
		"role":       user.RoleID,
		"company":    user.Company,
		"updated_by": user.UpdatedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// UpdateRefreshToken stores the user's single active refresh token.
// An empty token clears the session.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error {
	query := `UPDATE type::record($id) SET refresh_token = $token, updated_at = time::now()`
	vars := map[string]interface{}{
		"id":    userID,
		"token": refreshToken,
	}

	return r.db.Execute(ctx, query, vars)
}

// SoftDelete marks a user as deleted without removing the record.
func (r *UserRepository) SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error {
	query := `
		UPDATE type::record($id) SET
			is_deleted = true,
			deleted_at = time::now(),
			deleted_by = $deleted_by,
			refresh_token = ""
	`
	vars := map[string]interface{}{
		"id":         id,
		"deleted_by": deletedBy,
	}

	return r.db.Execute(ctx, query, vars)
}

// CountAll returns the number of live user records.
func (r *UserRepository) CountAll(ctx context.Context) (int, error) {
	result, err := r.db.QueryOne(ctx, `SELECT count() FROM user WHERE is_deleted != true GROUP ALL`, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseUser(result interface{}) (*model.User, error) {
	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseUserRecord(data)
}

func parseUserRecord(data map[string]interface{}) (*model.User, error) {
	// Extract fields hidden from JSON (json:"-") before the round-trip
	hash := getString(data, "hash")
	refreshToken := getString(data, "refresh_token")

	user, err := decodeRecord[model.User](data)
	if err != nil {
		return nil, err
	}
	user.Hash = hash
	user.RefreshToken = refreshToken
	return user, nil
}
