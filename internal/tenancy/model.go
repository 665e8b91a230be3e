package tenancy

import "errors"

// Plan is the subscription tier of a tenant.
type Plan string

const (
	PlanFree     Plan = "Free"
	PlanStandard Plan = "Standard"
	PlanPremium  Plan = "Premium"
)

// Role is the sole authorization dimension for clinic staff.
type Role string

const (
	RoleOwner    Role = "Owner"
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// ParseRole maps an externally supplied role string onto the closed role
// set. Unrecognized values degrade to Employee so an unknown role can never
// unlock admin surfaces.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleManager, RoleEmployee:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// IsAdmin reports whether the role may see admin-only surfaces.
func (r Role) IsAdmin() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Tenant is an isolated clinic account, the unit of data partitioning.
type Tenant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country"`
	Plan    Plan   `json:"plan"`

	// CoverageRate is the illustrative insurance coverage fraction used by
	// the treatment-plan ledger. Per-tenant so a real adjudication source
	// can be plugged in later without touching the ledger math.
	CoverageRate float64 `json:"coverage_rate"`
}

// ErrTenantNotFound is returned when a slug resolves to no tenant.
var ErrTenantNotFound = errors.New("tenant not found")
