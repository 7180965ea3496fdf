package models

import (
	json "github.com/goccy/go-json"
)

const (
	RoleOwner      = "owner"
	RoleSuperadmin = "superadmin"
	RoleEmployee   = "employee"
)

// Account mirrors a single entry of the host's auth_users record.
// Pin is an opaque hash owned by the host; the guard never interprets it.
type Account struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Pin      string `json:"pin"`
	Active   bool   `json:"active"`
}

// ParseAccounts decodes the serialized auth_users payload.
func ParseAccounts(raw string) ([]Account, error) {
	var accounts []Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// HasOwner reports whether any account carries the owner role.
func HasOwner(accounts []Account) bool {
	for _, a := range accounts {
		if a.Role == RoleOwner {
			return true
		}
	}
	return false
}
