// Package access is the single authorization policy for the console.
// Navigation filtering and page-level route guards both go through Visible
// so role checks are never duplicated per page.
package access

import "github.com/dentalcloud/console/internal/tenancy"

// Visible reports whether a surface is visible to the given role.
// Non-admin surfaces are visible to everyone. Admin surfaces require Owner
// or Admin; any role outside the closed set has already been degraded to
// Employee by tenancy.ParseRole, so the check fails safe.
func Visible(role tenancy.Role, adminOnly bool) bool {
	if !adminOnly {
		return true
	}
	return role.IsAdmin()
}
