package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workhive/api/internal/model"
)

// SeederService bootstraps the permission catalog, the default roles,
// and a set of starter accounts on first run. Seeding only touches
// collections that are empty, so a restarted server never duplicates
// or overwrites existing data.
type SeederService struct {
	userRepo UserRepository
	roleRepo RoleRepository
	permRepo PermissionRepository
	config   SeederConfig
	logger   *slog.Logger
}

// SeederConfig holds configuration for the seeder
type SeederConfig struct {
	// ShouldInit gates the whole seeder. When false, Run is a no-op.
	ShouldInit bool
	// InitPassword is the password assigned to every seeded account.
	InitPassword string
}

// NewSeederService creates a new seeder service
func NewSeederService(userRepo UserRepository, roleRepo RoleRepository, permRepo PermissionRepository, cfg SeederConfig, logger *slog.Logger) *SeederService {
	return &SeederService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		permRepo: permRepo,
		config:   cfg,
		logger:   logger,
	}
}

// seededModule describes one resource whose CRUD endpoints get a
// permission row each.
type seededModule struct {
	name string
	path string
}

var seededModules = []seededModule{
	{"USERS", "/api/v1/users"},
	{"ROLES", "/api/v1/roles"},
	{"PERMISSIONS", "/api/v1/permissions"},
	{"COMPANIES", "/api/v1/companies"},
	{"JOBS", "/api/v1/jobs"},
	{"RESUMES", "/api/v1/resumes"},
	{"SUBSCRIBERS", "/api/v1/subscribers"},
}

// Run seeds permissions, roles, and users in that order. Each phase is
// skipped when its collection already has records.
func (s *SeederService) Run(ctx context.Context) error {
	if !s.config.ShouldInit {
		return nil
	}

	permIDs, err := s.seedPermissions(ctx)
	if err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}

	if err := s.seedRoles(ctx, permIDs); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	return nil
}

// seedPermissions creates one permission per CRUD endpoint of each
// module. Returns all permission IDs grouped by module name, loading
// them from the database when the collection is already populated.
func (s *SeederService) seedPermissions(ctx context.Context) (map[string][]string, error) {
	count, err := s.permRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("permissions already seeded", "count", count)
		return s.loadPermissionIDs(ctx)
	}

	byModule := make(map[string][]string)
	for _, mod := range seededModules {
		ops := []struct {
			verb   string
			method string
			path   string
		}{
			{"Create", "POST", mod.path},
			{"List", "GET", mod.path},
			{"Fetch", "GET", mod.path + "/{id}"},
			{"Update", "PATCH", mod.path + "/{id}"},
			{"Delete", "DELETE", mod.path + "/{id}"},
		}
		for _, op := range ops {
			perm := &model.Permission{
				Name:    fmt.Sprintf("%s a %s", op.verb, mod.name),
				APIPath: op.path,
				Method:  op.method,
				Module:  mod.name,
			}
			if err := s.permRepo.Create(ctx, perm); err != nil {
				return nil, err
			}
			byModule[mod.name] = append(byModule[mod.name], perm.ID)
		}
	}

	s.logger.Info("seeded permission catalog", "modules", len(seededModules))
	return byModule, nil
}

func (s *SeederService) loadPermissionIDs(ctx context.Context) (map[string][]string, error) {
	perms, _, err := s.permRepo.List(ctx, 1, maxPageSize)
	if err != nil {
		return nil, err
	}
	byModule := make(map[string][]string)
	for _, p := range perms {
		byModule[p.Module] = append(byModule[p.Module], p.ID)
	}
	return byModule, nil
}

// seedRoles creates the ADMIN, HR, and USER roles. ADMIN gets every
// permission, HR gets the hiring modules, USER gets none.
func (s *SeederService) seedRoles(ctx context.Context, permIDs map[string][]string) error {
	count, err := s.roleRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("roles already seeded", "count", count)
		return nil
	}

	var allPerms []string
	for _, mod := range seededModules {
		allPerms = append(allPerms, permIDs[mod.name]...)
	}

	var hrPerms []string
	for _, mod := range []string{"COMPANIES", "JOBS", "RESUMES"} {
		hrPerms = append(hrPerms, permIDs[mod]...)
	}

	roles := []*model.Role{
		{
			Name:          ProtectedRoleName,
			Description:   "Full access to every endpoint",
			IsActive:      true,
			PermissionIDs: allPerms,
		},
		{
			Name:          "HR",
			Description:   "Manages companies, job postings, and applications",
			IsActive:      true,
			PermissionIDs: hrPerms,
		},
		{
			Name:        DefaultRoleName,
			Description: "Standard account with access to its own data only",
			IsActive:    true,
		},
	}

	for _, role := range roles {
		if err := s.roleRepo.Create(ctx, role); err != nil {
			return err
		}
	}

	s.logger.Info("seeded default roles", "count", len(roles))
	return nil
}

// seedUsers creates the starter accounts, including the protected
// bootstrap admin.
func (s *SeederService) seedUsers(ctx context.Context) error {
	count, err := s.userRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("users already seeded", "count", count)
		return nil
	}

	hash, err := hashPassword(s.config.InitPassword)
	if err != nil {
		return err
	}

	seeds := []struct {
		name  string
		email string
		role  string
	}{
		{"Admin", ProtectedEmail, ProtectedRoleName},
		{"HR Manager", "hr@gmail.com", "HR"},
		{"Normal User", "user@gmail.com", DefaultRoleName},
		{"Recruiter", "recruiter@gmail.com", "HR"},
	}

	for _, seed := range seeds {
		role, err := s.roleRepo.GetByName(ctx, seed.role)
		if err != nil {
			return err
		}

		user := &model.User{
			Name:  seed.name,
			Email: seed.email,
			Hash:  hash,
		}
		if role != nil {
			user.RoleID = role.ID
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
	}

	s.logger.Info("seeded starter accounts", "count", len(seeds))
	return nil
}
