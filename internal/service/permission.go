package service

import (
	"context"
	"strings"

	"github.com/workhive/api/internal/model"
)

var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// PermissionService handles permission catalog operations
type PermissionService struct {
	permRepo PermissionRepository
}

// NewPermissionService creates a new permission service
func NewPermissionService(permRepo PermissionRepository) *PermissionService {
	return &PermissionService{permRepo: permRepo}
}

// CreatePermissionRequest represents a permission creation request
type CreatePermissionRequest struct {
	Name    string
	APIPath string
	Method  string
	Module  string
}

// Create creates a permission. The (apiPath, method) pair is unique.
func (s *PermissionService) Create(ctx context.Context, req CreatePermissionRequest, actor *model.Actor) (*model.Permission, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if !validMethods[method] {
		return nil, ErrInvalidMethod
	}

	existing, err := s.permRepo.FindByPathMethod(ctx, req.APIPath, method)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPermissionExists
	}

	perm := &model.Permission{
		Name:    req.Name,
		APIPath: req.APIPath,
		Method:  method,
		Module:  req.Module,
	}
	perm.CreatedBy = actor

	if err := s.permRepo.Create(ctx, perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// Get retrieves a permission by ID
func (s *PermissionService) Get(ctx context.Context, id string) (*model.Permission, error) {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, ErrPermissionNotFound
	}
	return perm, nil
}

// List returns a page of permissions with pagination metadata.
func (s *PermissionService) List(ctx context.Context, page, pageSize int) ([]*model.Permission, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	perms, total, err := s.permRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return perms, newPageMeta(page, pageSize, total), nil
}

// UpdatePermissionRequest represents a permission update
type UpdatePermissionRequest struct {
	Name    string
	APIPath string
	Method  string
	Module  string
}

// Update updates a permission, keeping (apiPath, method) unique.
func (s *PermissionService) Update(ctx context.Context, id string, req UpdatePermissionRequest, actor *model.Actor) (*model.Permission, error) {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, ErrPermissionNotFound
	}

	apiPath := perm.APIPath
	method := perm.Method
	if req.APIPath != "" {
		apiPath = req.APIPath
	}
	if req.Method != "" {
		method = strings.ToUpper(strings.TrimSpace(req.Method))
		if !validMethods[method] {
			return nil, ErrInvalidMethod
		}
	}

	if apiPath != perm.APIPath || method != perm.Method {
		existing, err := s.permRepo.FindByPathMethod(ctx, apiPath, method)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPermissionExists
		}
	}

	perm.APIPath = apiPath
	perm.Method = method
	if req.Name != "" {
		perm.Name = req.Name
	}
	if req.Module != "" {
		perm.Module = req.Module
	}
	perm.UpdatedBy = actor

	if err := s.permRepo.Update(ctx, perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// Delete soft-deletes a permission.
func (s *PermissionService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	perm, err := s.permRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if perm == nil {
		return ErrPermissionNotFound
	}
	return s.permRepo.SoftDelete(ctx, id, actor)
}
