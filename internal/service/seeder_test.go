package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func setupSeeder(shouldInit bool) (*SeederService, *mockUserRepo, *mockRoleRepo, *mockPermRepo) {
	userRepo := newMockUserRepo()
	roleRepo := newMockRoleRepo()
	permRepo := newMockPermRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSeederService(userRepo, roleRepo, permRepo, SeederConfig{
		ShouldInit:   shouldInit,
		InitPassword: "init-password",
	}, logger)

	return svc, userRepo, roleRepo, permRepo
}

func TestSeederRun_Disabled_DoesNothing(t *testing.T) {
	svc, userRepo, roleRepo, permRepo := setupSeeder(false)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n, _ := permRepo.CountAll(context.Background()); n != 0 {
		t.Errorf("expected no permissions, got %d", n)
	}
	if n, _ := roleRepo.CountAll(context.Background()); n != 0 {
		t.Errorf("expected no roles, got %d", n)
	}
	if n, _ := userRepo.CountAll(context.Background()); n != 0 {
		t.Errorf("expected no users, got %d", n)
	}
}

func TestSeederRun_SeedsRolesUsersAndPermissions(t *testing.T) {
	svc, userRepo, roleRepo, permRepo := setupSeeder(true)
	ctx := context.Background()

	if err := svc.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7 modules x 5 endpoints
	if n, _ := permRepo.CountAll(ctx); n != 35 {
		t.Errorf("expected 35 permissions, got %d", n)
	}
	if n, _ := roleRepo.CountAll(ctx); n != 3 {
		t.Errorf("expected 3 roles, got %d", n)
	}
	if n, _ := userRepo.CountAll(ctx); n != 4 {
		t.Errorf("expected 4 users, got %d", n)
	}

	admin, err := roleRepo.GetByName(ctx, ProtectedRoleName)
	if err != nil || admin == nil {
		t.Fatal("expected ADMIN role to exist")
	}
	if len(admin.PermissionIDs) != 35 {
		t.Errorf("expected ADMIN to hold all 35 permissions, got %d", len(admin.PermissionIDs))
	}

	defaultRole, err := roleRepo.GetByName(ctx, DefaultRoleName)
	if err != nil || defaultRole == nil {
		t.Fatal("expected USER role to exist")
	}
	if len(defaultRole.PermissionIDs) != 0 {
		t.Errorf("expected USER role to hold no permissions, got %d", len(defaultRole.PermissionIDs))
	}

	adminUser, err := userRepo.GetByEmail(ctx, ProtectedEmail)
	if err != nil || adminUser == nil {
		t.Fatal("expected bootstrap admin account to exist")
	}
	if adminUser.RoleID != admin.ID {
		t.Error("expected bootstrap admin to hold the ADMIN role")
	}
	if !checkPassword("init-password", adminUser.Hash) {
		t.Error("expected seeded account to use the configured init password")
	}
}

func TestSeederRun_SecondRun_DoesNotDuplicate(t *testing.T) {
	svc, userRepo, roleRepo, permRepo := setupSeeder(true)
	ctx := context.Background()

	if err := svc.Run(ctx); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := svc.Run(ctx); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if n, _ := permRepo.CountAll(ctx); n != 35 {
		t.Errorf("expected 35 permissions after rerun, got %d", n)
	}
	if n, _ := roleRepo.CountAll(ctx); n != 3 {
		t.Errorf("expected 3 roles after rerun, got %d", n)
	}
	if n, _ := userRepo.CountAll(ctx); n != 4 {
		t.Errorf("expected 4 users after rerun, got %d", n)
	}
}
