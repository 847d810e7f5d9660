// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema ensures the database tables backing each resource exist
// before the first request touches them.
//
// There is no versioned migration tool behind this package: every table is
// created with idempotent DDL (CREATE TABLE IF NOT EXISTS, CREATE INDEX IF
// NOT EXISTS) the first time a request addresses its resource. The Registry
// remembers which tables it has confirmed so the DDL runs at most once per
// process lifetime.
package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/store"
	"github.com/talentgrid/talentgrid-server/models"
)

// ErrSchemaInit wraps any failure to confirm a resource's tables. Under the
// failfast policy it surfaces to the client as a database error.
var ErrSchemaInit = errors.New("schema initialization failed")

// baselineTables are confirmed for every request under /api regardless of the
// resource addressed: users backs the auth guard's identity checks and
// organizations is the tenancy root referenced by every scoped table.
var baselineTables = []string{"organizations", "users"}

// Registry tracks which resource tables have been confirmed to exist and runs
// the idempotent DDL for those that have not.
//
// The confirmed set is guarded by a mutex, so concurrent requests racing on
// the same cold table serialise on the DDL and observe it run exactly once.
// A failed initializer leaves the table unconfirmed and the next request
// retries.
type Registry struct {
	provider *store.Provider
	logger   *logger.Logger

	// failFast controls the failure policy: reject the request (true) or log
	// and proceed in degraded mode (false).
	failFast bool

	mu        sync.Mutex
	confirmed map[string]bool
}

// NewRegistry constructs a Registry bound to the shared pool provider.
// failFast selects the failure policy configured via SchemaInitPolicy.
func NewRegistry(provider *store.Provider, failFast bool, log *logger.Logger) *Registry {
	return &Registry{
		provider:  provider,
		logger:    log,
		failFast:  failFast,
		confirmed: make(map[string]bool, len(statements)),
	}
}

// EnsureForPath confirms the baseline tables plus the tables of the resource
// the request path addresses. Already-confirmed tables are skipped without
// touching the database.
//
// Under the failfast policy the first initializer failure is returned wrapped
// in [ErrSchemaInit]; otherwise failures are logged and nil is returned so
// the request proceeds against whatever schema exists.
func (r *Registry) EnsureForPath(ctx context.Context, path string) error {
	for _, table := range tablesForPath(path) {
		if err := r.ensureTable(ctx, table); err != nil {
			if r.failFast {
				return fmt.Errorf("%w: table %s: %w", ErrSchemaInit, table, err)
			}
			logger.FromContext(ctx).Err(err).
				Str("table", table).
				Msg("schema initializer failed, continuing in degraded mode")
		}
	}
	return nil
}

// ensureTable runs the table's DDL unless a previous call already confirmed
// it. The mutex covers the whole check-and-execute sequence, so a cold table
// is initialized by exactly one of any number of concurrent callers.
func (r *Registry) ensureTable(ctx context.Context, table string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.confirmed[table] {
		return nil
	}

	ddl, ok := statements[table]
	if !ok {
		return fmt.Errorf("no statements registered for table %s", table)
	}

	db, err := r.provider.Pool(ctx)
	if err != nil {
		return err
	}

	for _, statement := range ddl {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	r.confirmed[table] = true
	r.logger.Debug().Str("table", table).Msg("schema confirmed")
	return nil
}

// tablesForPath resolves the request path to the set of tables that must
// exist before it is served: the baseline set plus the matching resource's
// table, if any. Unmatched paths (e.g. /api/auth/*) get the baseline only.
func tablesForPath(path string) []string {
	tables := make([]string, 0, len(baselineTables)+1)
	tables = append(tables, baselineTables...)

	for _, res := range models.Resources() {
		if matchesPrefix(path, res.Prefix) {
			if res.Table != "organizations" && res.Table != "users" {
				tables = append(tables, res.Table)
			}
			break
		}
	}
	return tables
}

// matchesPrefix reports whether path addresses the resource mounted at
// prefix. "/api/jobs" and "/api/jobs/5" match "/api/jobs"; "/api/jobseekers"
// does not.
func matchesPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
