package service

import (
	"context"
	"strings"

	"github.com/workhive/api/internal/model"
)

// CompanyRepository defines the interface for company storage
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id string) (*model.Company, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Company, int, error)
	Update(ctx context.Context, company *model.Company) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
}

// CompanyService handles employer profile operations
type CompanyService struct {
	companyRepo CompanyRepository
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo CompanyRepository) *CompanyService {
	return &CompanyService{companyRepo: companyRepo}
}

// CompanyRequest represents a company create or update payload
type CompanyRequest struct {
	Name        string
	Address     string
	Description string
	Logo        string
}

// Create creates a company
func (s *CompanyService) Create(ctx context.Context, req CompanyRequest, actor *model.Actor) (*model.Company, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrCompanyNameRequired
	}

	company := &model.Company{
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Description: req.Description,
		Logo:        req.Logo,
	}
	company.CreatedBy = actor

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Get retrieves a company by ID
func (s *CompanyService) Get(ctx context.Context, id string) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}

// List returns a page of companies with pagination metadata.
func (s *CompanyService) List(ctx context.Context, page, pageSize int) ([]*model.Company, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	companies, total, err := s.companyRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return companies, newPageMeta(page, pageSize, total), nil
}

// Update updates a company
func (s *CompanyService) Update(ctx context.Context, id string, req CompanyRequest, actor *model.Actor) (*model.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		company.Name = strings.TrimSpace(req.Name)
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Logo != "" {
		company.Logo = req.Logo
	}
	company.UpdatedBy = actor

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete soft-deletes a company.
func (s *CompanyService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return ErrCompanyNotFound
	}
	return s.companyRepo.SoftDelete(ctx, id, actor)
}
