package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/workhive/api/internal/model"
	"github.com/workhive/api/pkg/token"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128
)

// DefaultRoleName is the role assigned to self-registered accounts.
const DefaultRoleName = "USER"

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByRefreshToken(ctx context.Context, refreshToken string) (*model.User, error)
	List(ctx context.Context, page, pageSize int) ([]*model.User, int, error)
	Update(ctx context.Context, user *model.User) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
	CountAll(ctx context.Context) (int, error)
}

// RoleRepository defines the interface for role storage
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Role, int, error)
	Update(ctx context.Context, role *model.Role) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
	CountAll(ctx context.Context) (int, error)
}

// PermissionRepository defines the interface for permission storage
type PermissionRepository interface {
	Create(ctx context.Context, perm *model.Permission) error
	GetByID(ctx context.Context, id string) (*model.Permission, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Permission, error)
	FindByPathMethod(ctx context.Context, apiPath, method string) (*model.Permission, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Permission, int, error)
	Update(ctx context.Context, perm *model.Permission) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
	CountAll(ctx context.Context) (int, error)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo UserRepository
	roleRepo RoleRepository
	permRepo PermissionRepository
	issuer   *token.Issuer
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo UserRepository
	RoleRepo RoleRepository
	PermRepo PermissionRepository
	Issuer   *token.Issuer
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo: cfg.UserRepo,
		roleRepo: cfg.RoleRepo,
		permRepo: cfg.PermRepo,
		issuer:   cfg.Issuer,
	}
}

// TokenPair bundles a freshly signed access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
	Address  string
}

// Register creates a new user account with the default USER role.
// Registration does not log the user in; no tokens are issued.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	// Check if email already exists
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Hash:    hash,
		Age:     req.Age,
		Gender:  req.Gender,
		Address: req.Address,
	}

	// Self-registered accounts always get the default role
	role, err := s.roleRepo.GetByName(ctx, DefaultRoleName)
	if err != nil {
		return nil, err
	}
	if role != nil {
		user.RoleID = role.ID
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ValidateCredentials checks an email/password pair. It returns the user
// on success and (nil, nil) on any mismatch, so callers cannot tell a
// wrong password from an unknown email.
func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if user.Hash == "" || !checkPassword(password, user.Hash) {
		return nil, nil
	}
	return user, nil
}

// LoginResult represents a successful login
type LoginResult struct {
	User      *model.User
	RoleName  string
	TokenPair TokenPair
}

// Login authenticates a user with email/password and issues a token
// pair. The new refresh token replaces any previously stored one, so a
// user has at most one live session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	roleName, err := s.roleName(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user, roleName)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, RoleName: roleName, TokenPair: pair}, nil
}

// Refresh validates a refresh token against both its signature and the
// stored copy, then rotates it: a new pair is issued and the old token
// is dead. Every failure collapses to ErrInvalidRefreshToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// The presented token must be the one stored for the user. A token
	// that was already rotated out verifies fine but matches nothing.
	user, err := s.userRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if user == nil || user.ID != claims.UserID {
		return nil, ErrInvalidRefreshToken
	}

	roleName, err := s.roleName(ctx, user.RoleID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	pair, err := s.issueTokens(ctx, user, roleName)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return &LoginResult{User: user, RoleName: roleName, TokenPair: pair}, nil
}

// Logout clears the user's stored refresh token. Idempotent.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "")
}

// Account returns the authenticated user's profile with its role name
// and resolved permission set.
func (s *AuthService) Account(ctx context.Context, userID string) (*model.Principal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	roleName, err := s.roleName(ctx, user.RoleID)
	if err != nil {
		return nil, err
	}

	perms, err := s.ResolvePermissions(ctx, roleName)
	if err != nil {
		return nil, err
	}

	return &model.Principal{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        roleName,
		Permissions: perms,
	}, nil
}

// ResolvePermissions returns the permission set granted by a role name.
// Unknown or inactive roles grant nothing.
func (s *AuthService) ResolvePermissions(ctx context.Context, roleName string) ([]model.Permission, error) {
	if roleName == "" {
		return nil, nil
	}
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	if role == nil || !role.IsActive {
		return nil, nil
	}
	return s.permRepo.GetByIDs(ctx, role.PermissionIDs)
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User, roleName string) (TokenPair, error) {
	access, err := s.issuer.SignAccess(user.ID, user.Name, user.Email, roleName)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.issuer.SignRefresh(user.ID, user.Name, user.Email, roleName)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, refresh); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) roleName(ctx context.Context, roleID string) (string, error) {
	if roleID == "" {
		return "", nil
	}
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", nil
	}
	return role.Name, nil
}

// Helper functions

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func isValidEmail(email string) bool {
	// Basic email validation
	if email == "" {
		return false
	}
	if len(email) > 254 {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex < 1 {
		return false
	}
	dotIndex := strings.LastIndex(email, ".")
	if dotIndex < atIndex+2 {
		return false
	}
	if dotIndex >= len(email)-1 {
		return false
	}
	return true
}
