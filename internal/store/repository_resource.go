// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. One instance serves every resource table: the
// descriptor passed to each call supplies the table name, the writable
// column allow-list, and the tenant-scoping rule, so the queries are built
// dynamically with squirrel instead of being hand-written per resource.
type resourceRepository struct {
	logger     *logger.Logger
	provider   *Provider
	classifier ErrorClassificator
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided pool provider and logger.
func NewResourceRepository(provider *Provider, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		provider:   provider,
		logger:     logger,
		classifier: NewPostgresErrorClassifier(),
	}
}

// List returns every row of the resource table visible to the caller,
// ordered by id for stable pagination. Tenant-scoped tables are filtered by
// the caller's organization.
func (r *resourceRepository) List(ctx context.Context, res models.Resource, orgID int64) ([]map[string]any, error) {
	builder := psql.Select("*").From(res.Table).OrderBy("id")
	if res.TenantScoped && orgID != 0 {
		builder = builder.Where(sq.Eq{"org_id": orgID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := r.provider.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(ctx, res, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Get returns a single row by id, or [ErrRecordNotFound] if it does not
// exist or lies outside the caller's organization scope.
func (r *resourceRepository) Get(ctx context.Context, res models.Resource, id int64, orgID int64) (map[string]any, error) {
	builder := psql.Select("*").From(res.Table).Where(sq.Eq{"id": id})
	if res.TenantScoped && orgID != 0 {
		builder = builder.Where(sq.Eq{"org_id": orgID})
	}

	query, args, err := builder.ToSql()
	return r.queryOne(ctx, res, query, args, err)
}

// Create inserts a new row from the sanitized payload. Keys outside the
// descriptor's column allow-list are ignored; tenant-scoped tables are
// stamped with the caller's organization. The inserted row is returned via a
// RETURNING clause.
func (r *resourceRepository) Create(ctx context.Context, res models.Resource, fields map[string]any, orgID int64) (map[string]any, error) {
	columns, values := writableFields(res, fields)
	if len(columns) == 0 {
		return nil, ErrNoWritableFields
	}

	if res.TenantScoped && orgID != 0 {
		columns = append(columns, "org_id")
		values = append(values, orgID)
	}

	builder := psql.Insert(res.Table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	return r.queryOne(ctx, res, query, args, err)
}

// Update applies the sanitized payload to an existing row and returns the
// updated representation. Missing rows (or rows outside the caller's scope)
// yield [ErrRecordNotFound].
func (r *resourceRepository) Update(ctx context.Context, res models.Resource, id int64, fields map[string]any, orgID int64) (map[string]any, error) {
	columns, values := writableFields(res, fields)
	if len(columns) == 0 {
		return nil, ErrNoWritableFields
	}

	builder := psql.Update(res.Table).Where(sq.Eq{"id": id})
	for i, column := range columns {
		builder = builder.Set(column, values[i])
	}
	builder = builder.Set("updated_at", sq.Expr("NOW()"))
	if res.TenantScoped && orgID != 0 {
		builder = builder.Where(sq.Eq{"org_id": orgID})
	}

	query, args, err := builder.Suffix("RETURNING *").ToSql()
	return r.queryOne(ctx, res, query, args, err)
}

// Delete removes a row by id. Returns [ErrRecordNotFound] when nothing was
// deleted.
func (r *resourceRepository) Delete(ctx context.Context, res models.Resource, id int64, orgID int64) error {
	builder := psql.Delete(res.Table).Where(sq.Eq{"id": id})
	if res.TenantScoped && orgID != 0 {
		builder = builder.Where(sq.Eq{"org_id": orgID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	db, err := r.provider.Pool(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.classify(ctx, res, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// queryOne executes a query expected to return exactly one row and converts
// it to a generic record.
func (r *resourceRepository) queryOne(ctx context.Context, res models.Resource, query string, args []any, buildErr error) (map[string]any, error) {
	if buildErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	db, err := r.provider.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.classify(ctx, res, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}

	return records[0], nil
}

// classify maps a driver-level error onto the repository's sentinel errors
// and logs the retryability classification for diagnostics.
func (r *resourceRepository) classify(ctx context.Context, res models.Resource, err error) error {
	log := logger.FromContext(ctx)

	log.Err(err).
		Str("resource", res.Name).
		Bool("retryable", r.classifier.Classify(err) == Retryable).
		Msg("resource query failed")

	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrDuplicateRecord
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// writableFields filters the payload down to the descriptor's column
// allow-list, preserving the descriptor's column order so the generated SQL
// is deterministic.
func writableFields(res models.Resource, fields map[string]any) ([]string, []any) {
	columns := make([]string, 0, len(res.Columns))
	values := make([]any, 0, len(res.Columns))
	for _, column := range res.Columns {
		if value, ok := fields[column]; ok {
			columns = append(columns, column)
			values = append(values, value)
		}
	}
	return columns, values
}

// scanRecords converts a generic result set into column→value maps. Byte
// slices are converted to strings because the pgx stdlib driver returns text
// columns as []byte. The password_hash column is dropped so credential
// hashes can never leak through a generic resource response.
func scanRecords(rows *sql.Rows) ([]map[string]any, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	records := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		record := make(map[string]any, len(columns))
		for i, column := range columns {
			value := values[i]
			if b, ok := value.([]byte); ok {
				value = string(b)
			}
			record[column] = value
		}
		delete(record, "password_hash")

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
