package navigation

// Item is a single sidebar entry with its tenant-substituted path.
type Item struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Icon      string `json:"icon"`
	AdminOnly bool   `json:"admin_only,omitempty"`
}

type catalogEntry struct {
	name      string
	segment   string
	icon      string
	adminOnly bool
}

// catalog is the fixed navigation structure of the console. Order is the
// render order and must be preserved by filtering.
var catalog = []catalogEntry{
	{name: "Dashboard", segment: "dashboard", icon: "layout-dashboard"},
	{name: "Patients", segment: "patients", icon: "users"},
	{name: "Appointments", segment: "appointments", icon: "calendar"},
	{name: "Treatment Plans", segment: "treatment-plans", icon: "file-text"},
	{name: "X-Rays", segment: "xrays", icon: "image"},
	{name: "Insurance", segment: "insurance", icon: "shield"},
	{name: "Billing", segment: "billing", icon: "credit-card"},
	{name: "Settings", segment: "settings", icon: "settings", adminOnly: true},
	{name: "User Management", segment: "users", icon: "user-cog", adminOnly: true},
}
