package service

import (
	"context"
	"strings"
	"time"

	"github.com/workhive/api/internal/model"
)

// ResumeRepository defines the interface for resume storage
type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	GetByID(ctx context.Context, id string) (*model.Resume, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Resume, int, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Resume, error)
	UpdateStatus(ctx context.Context, id, status string, entry model.ResumeHistoryEntry, updatedBy *model.Actor) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
}

// ResumeService handles job application operations
type ResumeService struct {
	resumeRepo ResumeRepository
	jobRepo    JobRepository
}

// NewResumeService creates a new resume service
func NewResumeService(resumeRepo ResumeRepository, jobRepo JobRepository) *ResumeService {
	return &ResumeService{resumeRepo: resumeRepo, jobRepo: jobRepo}
}

// SubmitResumeRequest represents a resume submission
type SubmitResumeRequest struct {
	URL   string
	JobID string
}

// Submit creates a resume for the authenticated user against a job.
// New resumes start as PENDING with a single history entry.
func (s *ResumeService) Submit(ctx context.Context, req SubmitResumeRequest, actor *model.Actor) (*model.Resume, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrResumeURLRequired
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	resume := &model.Resume{
		Email:  actor.Email,
		UserID: actor.ID,
		URL:    strings.TrimSpace(req.URL),
		Status: model.ResumeStatusPending,
		JobID:  job.ID,
		History: []model.ResumeHistoryEntry{{
			Status:    model.ResumeStatusPending,
			UpdatedAt: time.Now().UTC(),
			UpdatedBy: *actor,
		}},
	}
	if job.Company != nil {
		resume.CompanyID = job.Company.ID
	}
	resume.CreatedBy = actor

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// Get retrieves a resume by ID
func (s *ResumeService) Get(ctx context.Context, id string) (*model.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}
	return resume, nil
}

// List returns a page of resumes with pagination metadata.
func (s *ResumeService) List(ctx context.Context, page, pageSize int) ([]*model.Resume, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	resumes, total, err := s.resumeRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return resumes, newPageMeta(page, pageSize, total), nil
}

// ListByUser retrieves all resumes submitted by the given user.
func (s *ResumeService) ListByUser(ctx context.Context, userID string) ([]*model.Resume, error) {
	return s.resumeRepo.ListByUser(ctx, userID)
}

// UpdateStatus moves a resume through the review pipeline and appends
// the transition to its history.
func (s *ResumeService) UpdateStatus(ctx context.Context, id, status string, actor *model.Actor) (*model.Resume, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !model.ValidResumeStatus(status) {
		return nil, ErrInvalidResumeStatus
	}

	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}

	entry := model.ResumeHistoryEntry{
		Status:    status,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: *actor,
	}
	if err := s.resumeRepo.UpdateStatus(ctx, id, status, entry, actor); err != nil {
		return nil, err
	}

	resume.Status = status
	resume.History = append(resume.History, entry)
	return resume, nil
}

// Delete soft-deletes a resume.
func (s *ResumeService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume == nil {
		return ErrResumeNotFound
	}
	return s.resumeRepo.SoftDelete(ctx, id, actor)
}
