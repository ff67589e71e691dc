package model

import "strings"

// Role groups a set of permissions under a name. Guards resolve the
// caller's role to its permission set when a route requires one.
type Role struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	IsActive      bool     `json:"isActive"`
	PermissionIDs []string `json:"permissions"`

	Audit
}

// Permission names a single callable endpoint: an HTTP method plus an
// API path pattern. Path segments wrapped in braces ({id}) match any
// single segment.
type Permission struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	APIPath string `json:"apiPath"`
	Method string `json:"method"`
	Module string `json:"module"`

	Audit
}

// Matches reports whether the permission covers the given request
// method and path. Methods compare case-insensitively; paths compare
// segment by segment with {param} segments acting as wildcards.
func (p *Permission) Matches(method, path string) bool {
	if !strings.EqualFold(p.Method, method) {
		return false
	}
	return pathMatches(p.APIPath, path)
}

func pathMatches(pattern, path string) bool {
	pat := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(pat) != len(got) {
		return false
	}
	for i, seg := range pat {
		if len(seg) > 1 && seg[0] == '{' && seg[len(seg)-1] == '}' {
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
