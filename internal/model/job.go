package model

import "time"

// Job levels as stored on postings.
const (
	JobLevelIntern     = "INTERN"
	JobLevelFresher    = "FRESHER"
	JobLevelJunior     = "JUNIOR"
	JobLevelMiddle     = "MIDDLE"
	JobLevelSenior     = "SENIOR"
)

// Job is a posted opening. Skills drive both search filters and the
// weekly subscriber digest match.
type Job struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Skills    []string    `json:"skills"`
	Company   *CompanyRef `json:"company,omitempty"`
	Location  string      `json:"location"`
	Salary    float64     `json:"salary"`
	Quantity  int         `json:"quantity"`
	Level     string      `json:"level"`
	Description string    `json:"description"`
	StartDate time.Time   `json:"startDate"`
	EndDate   time.Time   `json:"endDate"`
	IsActive  bool        `json:"isActive"`

	Audit
}
