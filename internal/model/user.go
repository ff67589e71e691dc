package model

// User represents an account holder: a candidate, an HR user, or an admin.
type User struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Hash    string  `json:"-"` // Never expose password hash
	Age     int     `json:"age,omitempty"`
	Gender  string  `json:"gender,omitempty"`
	Address string  `json:"address,omitempty"`
	RoleID  string  `json:"role"`
	Company *CompanyRef `json:"company,omitempty"`

	// The single active refresh token for this user. Overwritten on every
	// login and refresh, cleared on logout. Empty never validates.
	RefreshToken string `json:"-"`

	Audit
}

// CompanyRef is a denormalized company reference embedded on users and jobs.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Principal is the authenticated identity attached to a request, with the
// permission set resolved from its role at login/refresh time.
type Principal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        string       `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Allowed reports whether the principal's permission set grants the given
// method and request path.
func (p *Principal) Allowed(method, path string) bool {
	for i := range p.Permissions {
		if p.Permissions[i].Matches(method, path) {
			return true
		}
	}
	return false
}
