package service

import (
	"context"
	"strings"
	"time"

	"github.com/workhive/api/internal/model"
)

// JobRepository defines the interface for job posting storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Job, int, error)
	FindActiveBySkills(ctx context.Context, skills []string) ([]*model.Job, error)
	Update(ctx context.Context, job *model.Job) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
}

// JobService handles job posting operations
type JobService struct {
	jobRepo     JobRepository
	companyRepo CompanyRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo JobRepository, companyRepo CompanyRepository) *JobService {
	return &JobService{jobRepo: jobRepo, companyRepo: companyRepo}
}

// JobRequest represents a job create or update payload
type JobRequest struct {
	Name        string
	Skills      []string
	CompanyID   string
	Location    string
	Salary      float64
	Quantity    int
	Level       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
}

// Create creates a job posting. The company reference is denormalized
// onto the job at creation time.
func (s *JobService) Create(ctx context.Context, req JobRequest, actor *model.Actor) (*model.Job, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrJobNameRequired
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && !req.StartDate.Before(req.EndDate) {
		return nil, ErrInvalidJobDates
	}

	job := &model.Job{
		Name:        strings.TrimSpace(req.Name),
		Skills:      req.Skills,
		Location:    req.Location,
		Salary:      req.Salary,
		Quantity:    req.Quantity,
		Level:       req.Level,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive,
	}

	if req.CompanyID != "" {
		company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrCompanyNotFound
		}
		job.Company = company.Ref()
	}
	job.CreatedBy = actor

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get retrieves a job by ID
func (s *JobService) Get(ctx context.Context, id string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// List returns a page of jobs with pagination metadata.
func (s *JobService) List(ctx context.Context, page, pageSize int) ([]*model.Job, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	jobs, total, err := s.jobRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return jobs, newPageMeta(page, pageSize, total), nil
}

// Update updates a job posting
func (s *JobService) Update(ctx context.Context, id string, req JobRequest, actor *model.Actor) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		job.Name = strings.TrimSpace(req.Name)
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Salary != 0 {
		job.Salary = req.Salary
	}
	if req.Quantity != 0 {
		job.Quantity = req.Quantity
	}
	if req.Level != "" {
		job.Level = req.Level
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if !req.StartDate.IsZero() {
		job.StartDate = req.StartDate
	}
	if !req.EndDate.IsZero() {
		job.EndDate = req.EndDate
	}
	if !job.StartDate.IsZero() && !job.EndDate.IsZero() && !job.StartDate.Before(job.EndDate) {
		return nil, ErrInvalidJobDates
	}
	job.IsActive = req.IsActive

	if req.CompanyID != "" {
		company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, ErrCompanyNotFound
		}
		job.Company = company.Ref()
	}
	job.UpdatedBy = actor

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete soft-deletes a job posting.
func (s *JobService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}
	return s.jobRepo.SoftDelete(ctx, id, actor)
}
