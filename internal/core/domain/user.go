package domain

import "strings"

// Role controls how much aggregated data a user may read.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole accepts "USER"/"ADMIN" in any case, with or without a "ROLE_" prefix.
func ParseRole(s string) (Role, bool) {
	switch normalizeRole(s) {
	case string(RoleUser):
		return RoleUser, true
	case string(RoleAdmin):
		return RoleAdmin, true
	}
	return "", false
}

// User is an API account. CustomerID links a non-admin user to the
// customer whose data it may read.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CustomerID   *int64 `json:"customerID,omitempty"`
	AuditFields
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func normalizeRole(s string) string {
	return strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "ROLE_")
}
