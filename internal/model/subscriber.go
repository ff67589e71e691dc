package model

// Subscriber holds an email address and the skills it wants job
// alerts for. The weekly digest matches these skills against active
// job postings.
type Subscriber struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`

	Audit
}
