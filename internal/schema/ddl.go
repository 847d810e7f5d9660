package schema

// statements holds the idempotent DDL for every table the server manages,
// keyed by table name. Every statement uses IF NOT EXISTS so running an
// initializer twice, sequentially or concurrently, yields the same schema.
var statements = map[string][]string{
	"organizations": {
		`CREATE TABLE IF NOT EXISTS organizations (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			website    TEXT,
			industry   TEXT,
			phone      TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	"users": {
		// password_hash defaults to '' so admin-provisioned accounts can be
		// created through the generic resource surface; an empty hash never
		// matches a bcrypt comparison, so such accounts cannot log in until
		// a credential is set via registration.
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			org_id        BIGINT,
			email         TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			role          TEXT NOT NULL,
			password_hash TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_org_id ON users (org_id)`,
	},
	"jobs": {
		`CREATE TABLE IF NOT EXISTS jobs (
			id          BIGSERIAL PRIMARY KEY,
			org_id      BIGINT,
			title       TEXT NOT NULL,
			description TEXT,
			location    TEXT,
			status      TEXT,
			salary_min  BIGINT,
			salary_max  BIGINT,
			office_id   BIGINT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_org_id ON jobs (org_id)`,
	},
	"job_seekers": {
		`CREATE TABLE IF NOT EXISTS job_seekers (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT,
			phone      TEXT,
			resume_url TEXT,
			status     TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	"hiring_managers": {
		`CREATE TABLE IF NOT EXISTS hiring_managers (
			id         BIGSERIAL PRIMARY KEY,
			org_id     BIGINT,
			name       TEXT NOT NULL,
			email      TEXT,
			phone      TEXT,
			office_id  BIGINT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_hiring_managers_org_id ON hiring_managers (org_id)`,
	},
	"custom_fields": {
		`CREATE TABLE IF NOT EXISTS custom_fields (
			id         BIGSERIAL PRIMARY KEY,
			org_id     BIGINT,
			entity     TEXT NOT NULL,
			name       TEXT NOT NULL,
			field_type TEXT,
			options    TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_custom_fields_org_id ON custom_fields (org_id)`,
	},
	"leads": {
		`CREATE TABLE IF NOT EXISTS leads (
			id         BIGSERIAL PRIMARY KEY,
			org_id     BIGINT,
			name       TEXT NOT NULL,
			email      TEXT,
			phone      TEXT,
			source     TEXT,
			status     TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_org_id ON leads (org_id)`,
	},
	"tasks": {
		`CREATE TABLE IF NOT EXISTS tasks (
			id          BIGSERIAL PRIMARY KEY,
			org_id      BIGINT,
			title       TEXT NOT NULL,
			details     TEXT,
			due_date    TIMESTAMPTZ,
			assignee_id BIGINT,
			status      TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_org_id ON tasks (org_id)`,
	},
	"offices": {
		`CREATE TABLE IF NOT EXISTS offices (
			id         BIGSERIAL PRIMARY KEY,
			org_id     BIGINT,
			name       TEXT NOT NULL,
			address    TEXT,
			city       TEXT,
			country    TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_offices_org_id ON offices (org_id)`,
	},
	"teams": {
		`CREATE TABLE IF NOT EXISTS teams (
			id          BIGSERIAL PRIMARY KEY,
			org_id      BIGINT,
			name        TEXT NOT NULL,
			description TEXT,
			lead_id     BIGINT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_org_id ON teams (org_id)`,
	},
}
