package model

import "time"

// Resume statuses. New submissions start at pending; HR moves them
// through the review pipeline.
const (
	ResumeStatusPending   = "PENDING"
	ResumeStatusReviewing = "REVIEWING"
	ResumeStatusApproved  = "APPROVED"
	ResumeStatusRejected  = "REJECTED"
)

// ResumeHistoryEntry records one status transition and who made it.
type ResumeHistoryEntry struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy Actor     `json:"updatedBy"`
}

// Resume is an application a user submitted against a job.
type Resume struct {
	ID        string               `json:"id"`
	Email     string               `json:"email"`
	UserID    string               `json:"userId"`
	URL       string               `json:"url"`
	Status    string               `json:"status"`
	CompanyID string               `json:"companyId"`
	JobID     string               `json:"jobId"`
	History   []ResumeHistoryEntry `json:"history"`

	Audit
}

// ValidResumeStatus reports whether s is one of the known statuses.
func ValidResumeStatus(s string) bool {
	switch s {
	case ResumeStatusPending, ResumeStatusReviewing, ResumeStatusApproved, ResumeStatusRejected:
		return true
	}
	return false
}
