package model

import "time"

// Actor identifies the user responsible for a mutation.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Audit carries actor stamps and soft-delete state shared by all entities.
type Audit struct {
	CreatedBy *Actor     `json:"created_by,omitempty"`
	UpdatedBy *Actor     `json:"updated_by,omitempty"`
	DeletedBy *Actor     `json:"deleted_by,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	IsDeleted bool       `json:"is_deleted,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// PageMeta describes an offset-paginated collection.
type PageMeta struct {
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Total    int `json:"total"`
}
