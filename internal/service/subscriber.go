package service

import (
	"context"
	"strings"

	"github.com/workhive/api/internal/model"
)

// SubscriberRepository defines the interface for subscriber storage
type SubscriberRepository interface {
	Create(ctx context.Context, sub *model.Subscriber) error
	GetByID(ctx context.Context, id string) (*model.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Subscriber, int, error)
	ListAll(ctx context.Context) ([]*model.Subscriber, error)
	Update(ctx context.Context, sub *model.Subscriber) error
	SoftDelete(ctx context.Context, id string, deletedBy *model.Actor) error
}

// SubscriberService handles job-alert subscription operations
type SubscriberService struct {
	subRepo SubscriberRepository
}

// NewSubscriberService creates a new subscriber service
func NewSubscriberService(subRepo SubscriberRepository) *SubscriberService {
	return &SubscriberService{subRepo: subRepo}
}

// SubscriberRequest represents a subscription create or update payload
type SubscriberRequest struct {
	Name   string
	Email  string
	Skills []string
}

// Create subscribes an email to job alerts for a set of skills.
// Subscribing an already-subscribed email updates its skills instead.
func (s *SubscriberService) Create(ctx context.Context, req SubscriberRequest, actor *model.Actor) (*model.Subscriber, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	existing, err := s.subRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Name = req.Name
		existing.Skills = req.Skills
		existing.UpdatedBy = actor
		if err := s.subRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	sub := &model.Subscriber{
		Name:   req.Name,
		Email:  email,
		Skills: req.Skills,
	}
	sub.CreatedBy = actor

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Get retrieves a subscriber by ID
func (s *SubscriberService) Get(ctx context.Context, id string) (*model.Subscriber, error) {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriberNotFound
	}
	return sub, nil
}

// Skills returns the skill list for the authenticated user's own
// subscription, matched by email. No subscription means no skills.
func (s *SubscriberService) Skills(ctx context.Context, email string) ([]string, error) {
	sub, err := s.subRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	return sub.Skills, nil
}

// List returns a page of subscribers with pagination metadata.
func (s *SubscriberService) List(ctx context.Context, page, pageSize int) ([]*model.Subscriber, model.PageMeta, error) {
	page, pageSize = normalizePage(page, pageSize)
	subs, total, err := s.subRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, model.PageMeta{}, err
	}
	return subs, newPageMeta(page, pageSize, total), nil
}

// Update updates a subscriber's name and skills
func (s *SubscriberService) Update(ctx context.Context, id string, req SubscriberRequest, actor *model.Actor) (*model.Subscriber, error) {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubscriberNotFound
	}

	if strings.TrimSpace(req.Name) != "" {
		sub.Name = strings.TrimSpace(req.Name)
	}
	if req.Skills != nil {
		sub.Skills = req.Skills
	}
	sub.UpdatedBy = actor

	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete soft-deletes a subscriber.
func (s *SubscriberService) Delete(ctx context.Context, id string, actor *model.Actor) error {
	sub, err := s.subRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return ErrSubscriberNotFound
	}
	return s.subRepo.SoftDelete(ctx, id, actor)
}
