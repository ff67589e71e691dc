package model

import "testing"

func TestPermissionMatches(t *testing.T) {
	tests := []struct {
		name    string
		apiPath string
		method  string
		reqPath string
		reqMeth string
		want    bool
	}{
		{"exact match", "/api/v1/jobs", "GET", "/api/v1/jobs", "GET", true},
		{"method mismatch", "/api/v1/jobs", "GET", "/api/v1/jobs", "POST", false},
		{"method case-insensitive", "/api/v1/jobs", "get", "/api/v1/jobs", "GET", true},
		{"param segment matches any id", "/api/v1/jobs/{id}", "DELETE", "/api/v1/jobs/job:abc123", "DELETE", true},
		{"param segment wrong prefix", "/api/v1/jobs/{id}", "DELETE", "/api/v1/users/job:abc123", "DELETE", false},
		{"length mismatch", "/api/v1/jobs/{id}", "GET", "/api/v1/jobs", "GET", false},
		{"trailing slash tolerated", "/api/v1/jobs", "GET", "/api/v1/jobs/", "GET", true},
		{"literal braces only wrap full segment", "/api/v1/{id}/history", "PATCH", "/api/v1/resume:1/history", "PATCH", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Permission{APIPath: tt.apiPath, Method: tt.method}
			if got := p.Matches(tt.reqMeth, tt.reqPath); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.reqMeth, tt.reqPath, got, tt.want)
			}
		})
	}
}

func TestPrincipalAllowed(t *testing.T) {
	p := &Principal{
		Permissions: []Permission{
			{APIPath: "/api/v1/jobs", Method: "GET"},
			{APIPath: "/api/v1/jobs/{id}", Method: "DELETE"},
		},
	}

	if !p.Allowed("GET", "/api/v1/jobs") {
		t.Error("expected GET /api/v1/jobs to be allowed")
	}
	if !p.Allowed("DELETE", "/api/v1/jobs/job:xyz") {
		t.Error("expected DELETE /api/v1/jobs/job:xyz to be allowed")
	}
	if p.Allowed("POST", "/api/v1/jobs") {
		t.Error("expected POST /api/v1/jobs to be denied")
	}
}
