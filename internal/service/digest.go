package service

import (
	"context"
	"log/slog"

	"github.com/workhive/api/internal/mail"
	"github.com/workhive/api/internal/model"
)

// DigestService matches active job postings to subscriber skills and
// mails each subscriber their weekly digest.
type DigestService struct {
	subRepo SubscriberRepository
	jobRepo JobRepository
	mailer  mail.Mailer
	logger  *slog.Logger
}

// NewDigestService creates a new digest service
func NewDigestService(subRepo SubscriberRepository, jobRepo JobRepository, mailer mail.Mailer, logger *slog.Logger) *DigestService {
	return &DigestService{
		subRepo: subRepo,
		jobRepo: jobRepo,
		mailer:  mailer,
		logger:  logger,
	}
}

// DigestResult summarizes one digest run.
type DigestResult struct {
	Subscribers int `json:"subscribers"`
	Sent        int `json:"sent"`
	Failed      int `json:"failed"`
}

// Run sends the digest to every subscriber whose skills match at least
// one active job. A failed send is logged and skipped; one bad mailbox
// never stops the run.
func (s *DigestService) Run(ctx context.Context) (*DigestResult, error) {
	subs, err := s.subRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &DigestResult{Subscribers: len(subs)}
	for _, sub := range subs {
		if len(sub.Skills) == 0 {
			continue
		}

		jobs, err := s.jobRepo.FindActiveBySkills(ctx, sub.Skills)
		if err != nil {
			return nil, err
		}
		if len(jobs) == 0 {
			continue
		}

		body, err := mail.RenderDigest(digestData(sub, jobs))
		if err != nil {
			return nil, err
		}

		if err := s.mailer.Send(sub.Email, "New jobs matching your skills", body); err != nil {
			s.logger.Error("digest send failed", "email", sub.Email, "error", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	s.logger.Info("digest run complete",
		"subscribers", result.Subscribers,
		"sent", result.Sent,
		"failed", result.Failed)
	return result, nil
}

func digestData(sub *model.Subscriber, jobs []*model.Job) mail.DigestData {
	data := mail.DigestData{SubscriberName: sub.Name}
	if data.SubscriberName == "" {
		data.SubscriberName = sub.Email
	}
	for _, job := range jobs {
		row := mail.DigestJob{
			Name:     job.Name,
			Location: job.Location,
			Salary:   job.Salary,
			Skills:   job.Skills,
		}
		if job.Company != nil {
			row.CompanyName = job.Company.Name
		}
		data.Jobs = append(data.Jobs, row)
	}
	return data
}
