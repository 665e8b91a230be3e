package navigation

import (
	"strings"

	"github.com/dentalcloud/console/internal/access"
	"github.com/dentalcloud/console/internal/tenancy"
)

// Crumb is one breadcrumb entry.
type Crumb struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Build returns the navigation entries visible to the role, in catalog
// order, with the tenant slug substituted into each path.
func Build(slug string, role tenancy.Role) []Item {
	items := make([]Item, 0, len(catalog))
	for _, e := range catalog {
		if !access.Visible(role, e.adminOnly) {
			continue
		}
		items = append(items, Item{
			Name:      e.name,
			Path:      "/" + slug + "/" + e.segment,
			Icon:      e.icon,
			AdminOnly: e.adminOnly,
		})
	}
	return items
}

// Breadcrumbs derives the breadcrumb trail for a path from the already
// filtered navigation list. The first crumb is always the tenant dashboard.
// The page segment (second path segment) is matched against item paths, so
// a detail path like /acme/patients/p1 resolves to the Patients item. No
// match returns the root crumb alone.
func Breadcrumbs(slug, tenantName, path string, items []Item) []Crumb {
	rootName := tenantName
	if rootName == "" {
		rootName = "Dashboard"
	}
	crumbs := []Crumb{{Name: rootName, Href: "/" + slug + "/dashboard"}}

	segments := splitPath(path)
	if len(segments) < 2 {
		return crumbs
	}
	page := segments[1]
	for _, item := range items {
		itemSegs := splitPath(item.Path)
		if len(itemSegs) == 2 && itemSegs[1] == page {
			crumbs = append(crumbs, Crumb{Name: item.Name, Href: item.Path})
			break
		}
	}
	return crumbs
}

// CanAccessPath is the page-level guard: it resolves the catalog entry
// owning the path's page segment and applies the access policy. Paths that
// map to no catalog entry are allowed; they are not admin surfaces.
func CanAccessPath(role tenancy.Role, path string) bool {
	segments := splitPath(path)
	if len(segments) < 2 {
		return true
	}
	for _, e := range catalog {
		if e.segment == segments[1] {
			return access.Visible(role, e.adminOnly)
		}
	}
	return true
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
