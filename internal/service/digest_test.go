package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/workhive/api/internal/model"
)

// ============================================================================
// Mocks
// ============================================================================

type mockSubRepo struct {
	subs   map[string]*model.Subscriber
	nextID int
}

func newMockSubRepo() *mockSubRepo {
	return &mockSubRepo{subs: make(map[string]*model.Subscriber)}
}

func (m *mockSubRepo) Create(_ context.Context, sub *model.Subscriber) error {
	m.nextID++
	sub.ID = fmt.Sprintf("subscriber:%d", m.nextID)
	m.subs[sub.ID] = sub
	return nil
}

func (m *mockSubRepo) GetByID(_ context.Context, id string) (*model.Subscriber, error) {
	sub, ok := m.subs[id]
	if !ok || sub.IsDeleted {
		return nil, nil
	}
	return sub, nil
}

func (m *mockSubRepo) GetByEmail(_ context.Context, email string) (*model.Subscriber, error) {
	for _, sub := range m.subs {
		if sub.Email == email && !sub.IsDeleted {
			return sub, nil
		}
	}
	return nil, nil
}

func (m *mockSubRepo) List(_ context.Context, page, pageSize int) ([]*model.Subscriber, int, error) {
	all, _ := m.ListAll(context.Background())
	return all, len(all), nil
}

func (m *mockSubRepo) ListAll(_ context.Context) ([]*model.Subscriber, error) {
	all := make([]*model.Subscriber, 0, len(m.subs))
	for _, sub := range m.subs {
		if !sub.IsDeleted {
			all = append(all, sub)
		}
	}
	return all, nil
}

func (m *mockSubRepo) Update(_ context.Context, sub *model.Subscriber) error {
	m.subs[sub.ID] = sub
	return nil
}

func (m *mockSubRepo) SoftDelete(_ context.Context, id string, deletedBy *model.Actor) error {
	if sub, ok := m.subs[id]; ok {
		sub.IsDeleted = true
	}
	return nil
}

type mockJobRepo struct {
	jobs   map[string]*model.Job
	nextID int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[string]*model.Job)}
}

func (m *mockJobRepo) Create(_ context.Context, job *model.Job) error {
	m.nextID++
	job.ID = fmt.Sprintf("job:%d", m.nextID)
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	job, ok := m.jobs[id]
	if !ok || job.IsDeleted {
		return nil, nil
	}
	return job, nil
}

func (m *mockJobRepo) List(_ context.Context, page, pageSize int) ([]*model.Job, int, error) {
	all := make([]*model.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		if !job.IsDeleted {
			all = append(all, job)
		}
	}
	return all, len(all), nil
}

func (m *mockJobRepo) FindActiveBySkills(_ context.Context, skills []string) ([]*model.Job, error) {
	want := make(map[string]bool, len(skills))
	for _, s := range skills {
		want[s] = true
	}

	var out []*model.Job
	for _, job := range m.jobs {
		if job.IsDeleted || !job.IsActive {
			continue
		}
		for _, skill := range job.Skills {
			if want[skill] {
				out = append(out, job)
				break
			}
		}
	}
	return out, nil
}

func (m *mockJobRepo) Update(_ context.Context, job *model.Job) error {
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) SoftDelete(_ context.Context, id string, deletedBy *model.Actor) error {
	if job, ok := m.jobs[id]; ok {
		job.IsDeleted = true
	}
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type captureMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

func (m *captureMailer) Send(to, subject, htmlBody string) error {
	if m.failFor[to] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

// ============================================================================
// Digest Tests
// ============================================================================

func setupDigest() (*DigestService, *mockSubRepo, *mockJobRepo, *captureMailer) {
	subRepo := newMockSubRepo()
	jobRepo := newMockJobRepo()
	mailer := &captureMailer{failFor: make(map[string]bool)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewDigestService(subRepo, jobRepo, mailer, logger), subRepo, jobRepo, mailer
}

func TestDigestRun_MatchingSkills_SendsMail(t *testing.T) {
	svc, subRepo, jobRepo, mailer := setupDigest()
	ctx := context.Background()

	_ = subRepo.Create(ctx, &model.Subscriber{
		Name:   "Ada",
		Email:  "ada@example.com",
		Skills: []string{"Go", "SQL"},
	})
	_ = jobRepo.Create(ctx, &model.Job{
		Name:     "Backend Engineer",
		Skills:   []string{"Go", "Kubernetes"},
		Location: "Remote",
		Salary:   120000,
		IsActive: true,
		Company:  &model.CompanyRef{ID: "company:1", Name: "Acme"},
	})

	result, err := svc.Run(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 1 {
		t.Fatalf("expected 1 mail sent, got %d", result.Sent)
	}
	if mailer.sent[0].to != "ada@example.com" {
		t.Errorf("expected mail to ada@example.com, got %q", mailer.sent[0].to)
	}
	if !strings.Contains(mailer.sent[0].body, "Backend Engineer") {
		t.Error("expected digest body to contain the matching job name")
	}
	if !strings.Contains(mailer.sent[0].body, "Acme") {
		t.Error("expected digest body to contain the company name")
	}
}

func TestDigestRun_NoMatchingJobs_SendsNothing(t *testing.T) {
	svc, subRepo, jobRepo, mailer := setupDigest()
	ctx := context.Background()

	_ = subRepo.Create(ctx, &model.Subscriber{
		Email:  "nomatch@example.com",
		Skills: []string{"COBOL"},
	})
	_ = jobRepo.Create(ctx, &model.Job{
		Name:     "Backend Engineer",
		Skills:   []string{"Go"},
		IsActive: true,
	})

	result, err := svc.Run(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 0 || len(mailer.sent) != 0 {
		t.Errorf("expected no mail, got %d sent", len(mailer.sent))
	}
}

func TestDigestRun_InactiveJob_NotIncluded(t *testing.T) {
	svc, subRepo, jobRepo, mailer := setupDigest()
	ctx := context.Background()

	_ = subRepo.Create(ctx, &model.Subscriber{
		Email:  "sub@example.com",
		Skills: []string{"Go"},
	})
	_ = jobRepo.Create(ctx, &model.Job{
		Name:     "Closed Role",
		Skills:   []string{"Go"},
		IsActive: false,
	})

	result, err := svc.Run(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sent != 0 || len(mailer.sent) != 0 {
		t.Error("expected inactive jobs to be excluded from the digest")
	}
}

func TestDigestRun_FailedSend_CountedAndSkipped(t *testing.T) {
	svc, subRepo, jobRepo, mailer := setupDigest()
	ctx := context.Background()

	_ = subRepo.Create(ctx, &model.Subscriber{
		Email:  "broken@example.com",
		Skills: []string{"Go"},
	})
	_ = subRepo.Create(ctx, &model.Subscriber{
		Email:  "fine@example.com",
		Skills: []string{"Go"},
	})
	_ = jobRepo.Create(ctx, &model.Job{
		Name:     "Backend Engineer",
		Skills:   []string{"Go"},
		IsActive: true,
	})
	mailer.failFor["broken@example.com"] = true

	result, err := svc.Run(ctx)

	if err != nil {
		t.Fatalf("expected run to survive a failed send, got %v", err)
	}
	if result.Failed != 1 {
		t.Errorf("expected 1 failed send, got %d", result.Failed)
	}
	if result.Sent != 1 {
		t.Errorf("expected 1 successful send, got %d", result.Sent)
	}
}

func TestDigestRun_EmptySkills_Skipped(t *testing.T) {
	svc, subRepo, jobRepo, mailer := setupDigest()
	ctx := context.Background()

	_ = subRepo.Create(ctx, &model.Subscriber{Email: "empty@example.com"})
	_ = jobRepo.Create(ctx, &model.Job{
		Name:     "Backend Engineer",
		Skills:   []string{"Go"},
		IsActive: true,
	})

	result, err := svc.Run(ctx)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Error("expected subscribers without skills to be skipped")
	}
	if result.Subscribers != 1 {
		t.Errorf("expected 1 subscriber counted, got %d", result.Subscribers)
	}
}
