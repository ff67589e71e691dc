package service

import (
	"context"
	"strings"

	"github.com/workhive/api/internal/model"
)

// ProtectedRoleName is the bootstrap admin role. It can never be deleted.
const ProtectedRoleName = "ADMIN"

// RoleService handles role management operations
type RoleService struct {
	roleRepo RoleRepository
	permRepo PermissionRepository
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo RoleRepository, permRepo PermissionRepository) *RoleService {
	return &RoleService{roleRepo: roleRepo, permRepo: permRepo}
}

// CreateRoleRequest represents a role creation request
type CreateRoleRequest struct {
	Name          string
	Description   string
	IsActive      bool
	PermissionIDs []string
}

// Create creates a role. Role names are unique.
func (s *RoleService) Create(ctx context.Context, req CreateRoleRequest, actor *model.Actor) (*model.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrRoleNameRequired
	}

	existing, err := s.roleRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleNameExists
	}

	if err := s.validatePermissionIDs(ctx, req.PermissionIDs); err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:          name,
		Description:   req.Description,
		IsActive:      req.IsActive,
		PermissionIDs: req.PermissionIDs,
	}
	role.CreatedBy = actor

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Get retrieves a role by ID with its permission set expanded.
func (s *RoleService) Get(ctx context.Context, id string) (*model.Role, []model.Permission, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if role == nil {
		return nil, nil, ErrRoleNotFound
	}

	perms, err := s.permRepo.GetByIDs(ctx, role.PermissionIDs)
	if err != nil {
		return nil, nil, err
	}
	return role, perms, nil
}

// List returns a page of roles with pagination metadata.
func (s *RoleService) List(ctx context.Context, page, pageSize int) ([]*model.Role, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	roles, total, err := s.roleRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return roles, newPageMeta(page, pageSize, total), nil
}

// UpdateRoleRequest represents a role update
type UpdateRoleRequest struct {
	Name          string
	Description   string
	IsActive      *bool
	PermissionIDs []string
}

// Update updates a role's fields and permission grants.
func (s *RoleService) Update(ctx context.Context, id string, req UpdateRoleRequest, actor *model.Actor) (*model.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != role.Name {
		existing, err := s.roleRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrRoleNameExists
		}
		role.Name = name
	}
	if req.Description != "" {
		role.Description = req.Description
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}
	if req.PermissionIDs != nil {
		if err := s.validatePermissionIDs(ctx, req.PermissionIDs); err != nil {
			return nil, err
		}
		role.PermissionIDs = req.PermissionIDs
	}
	role.UpdatedBy = actor

	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// Delete soft-deletes a role. The bootstrap admin role is protected.
func (s *RoleService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}
	if role.Name == ProtectedRoleName {
		return ErrRoleProtected
	}
	return s.roleRepo.SoftDelete(ctx, id, actor)
}

func (s *RoleService) validatePermissionIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	perms, err := s.permRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(perms) != len(ids) {
		return ErrPermissionNotFound
	}
	return nil
}
