package model

// Company is an employer profile. Jobs and HR users reference a
// company through CompanyRef.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	Audit
}

// Ref returns the denormalized reference form of the company.
func (c *Company) Ref() *CompanyRef {
	return &CompanyRef{ID: c.ID, Name: c.Name, Logo: c.Logo}
}
