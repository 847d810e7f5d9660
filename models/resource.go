package models

// Resource is the immutable binding between a URL prefix, the table backing
// it, the writable column allow-list, and the route's authorization policy.
//
// The full set is built once by [Resources] at startup and never mutated at
// runtime: the router mounts one sub-router per entry, the sanitizer strips
// payload keys outside Columns, and the repository builds its queries from
// the same descriptor.
type Resource struct {
	// Name is the short identifier used in logs and schema bookkeeping.
	Name string

	// Prefix is the URL prefix the resource is mounted under, e.g. "/api/jobs".
	Prefix string

	// Table is the backing database table.
	Table string

	// Columns is the allow-list of client-writable columns. Keys outside this
	// list are stripped by the input sanitizer before the handler runs.
	Columns []string

	// TenantScoped marks tables carrying an org_id column. Reads and writes on
	// such tables are filtered by the caller's organization claim.
	TenantScoped bool

	// AllowedRoles is the authorization policy for the whole sub-router.
	// Empty means any authenticated caller may access the resource.
	AllowedRoles []Role
}

// Resources returns the complete, ordered resource registry. Order is
// significant: it fixes the route registration sequence, so it must stay
// deterministic between process runs.
func Resources() []Resource {
	staff := []Role{RoleAdmin, RoleHiringManager, RoleRecruiter}

	return []Resource{
		{
			Name:         "organizations",
			Prefix:       "/api/organizations",
			Table:        "organizations",
			Columns:      []string{"name", "website", "industry", "phone"},
			AllowedRoles: []Role{RoleAdmin, RoleHiringManager},
		},
		{
			Name:         "jobs",
			Prefix:       "/api/jobs",
			Table:        "jobs",
			Columns:      []string{"title", "description", "location", "status", "salary_min", "salary_max", "office_id"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:    "job-seekers",
			Prefix:  "/api/job-seekers",
			Table:   "job_seekers",
			Columns: []string{"name", "email", "phone", "resume_url", "status"},
			// Open to any authenticated role: job seekers manage their own profiles.
		},
		{
			Name:         "hiring-managers",
			Prefix:       "/api/hiring-managers",
			Table:        "hiring_managers",
			Columns:      []string{"name", "email", "phone", "office_id"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "custom-fields",
			Prefix:       "/api/custom-fields",
			Table:        "custom_fields",
			Columns:      []string{"entity", "name", "field_type", "options"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "leads",
			Prefix:       "/api/leads",
			Table:        "leads",
			Columns:      []string{"name", "email", "phone", "source", "status"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "tasks",
			Prefix:       "/api/tasks",
			Table:        "tasks",
			Columns:      []string{"title", "details", "due_date", "assignee_id", "status"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "offices",
			Prefix:       "/api/offices",
			Table:        "offices",
			Columns:      []string{"name", "address", "city", "country"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "teams",
			Prefix:       "/api/teams",
			Table:        "teams",
			Columns:      []string{"name", "description", "lead_id"},
			TenantScoped: true,
			AllowedRoles: staff,
		},
		{
			Name:         "users",
			Prefix:       "/api/users",
			Table:        "users",
			Columns:      []string{"email", "name", "role", "org_id"},
			AllowedRoles: []Role{RoleAdmin},
		},
	}
}
