package users

import "github.com/dentalcloud/console/internal/tenancy"

// Status marks whether a staff account can sign in.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// User is a staff account within one tenant.
type User struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Role   tenancy.Role `json:"role"`
	Status Status       `json:"status"`
}
