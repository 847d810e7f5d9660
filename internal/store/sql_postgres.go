package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/logger"
)

// DB is the shared database handle used by every repository and schema
// initializer. It wraps *sql.DB (pgx stdlib driver), so the standard pool
// semantics apply: connections are borrowed per operation and released when
// the row set is closed.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Provider lazily constructs and memoizes the single shared database pool
// for the process lifetime.
//
// The pool is not opened at construction time: the first caller of [Pool]
// pays the connection cost, and every subsequent caller receives the cached
// handle. Concurrent first callers are serialised by the mutex, so the
// underlying pool is constructed exactly once. Connection or configuration
// failures propagate to the caller and are not cached — the next call
// retries the construction.
type Provider struct {
	cfg    config.DB
	logger *logger.Logger

	mu sync.Mutex
	db *DB

	// open constructs the pool; replaced in tests to observe construction.
	open func(ctx context.Context) (*DB, error)
}

// NewProvider returns a Provider that will open the pool from cfg on first use.
func NewProvider(cfg config.DB, log *logger.Logger) *Provider {
	p := &Provider{cfg: cfg, logger: log}
	p.open = p.openPool
	return p
}

// NewProviderWithDB returns a Provider pre-seeded with an existing handle.
// Intended for tests substituting a sqlmock-backed *sql.DB.
func NewProviderWithDB(db *sql.DB, log *logger.Logger) *Provider {
	p := &Provider{
		logger: log,
		db: &DB{
			DB:                 db,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             log,
		},
	}
	p.open = p.openPool
	return p
}

// Pool returns the shared database handle, constructing it on first call.
//
// Construction opens a pgx-backed *sql.DB from the configured DSN, applies
// the connection-limit settings, and verifies reachability with a ping.
// Any failure is returned to the caller unretried; retries, if any, are a
// caller concern.
func (p *Provider) Pool(ctx context.Context) (*DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	db, err := p.open(ctx)
	if err != nil {
		return nil, err
	}

	p.db = db
	return p.db, nil
}

// openPool performs the actual pool construction from configuration.
func (p *Provider) openPool(ctx context.Context) (*DB, error) {
	if p.cfg.DSN == "" {
		return nil, errors.New("database DSN is not configured")
	}

	conn, err := sql.Open("pgx", p.cfg.DSN)
	if err != nil {
		p.logger.Err(err).Str("func", "Provider.Pool").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(p.cfg.MaxOpenConns)
	conn.SetMaxIdleConns(p.cfg.MaxIdleConns)

	if err := conn.PingContext(ctx); err != nil {
		p.logger.Err(err).Str("func", "Provider.Pool").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	p.logger.Info().Str("func", "Provider.Pool").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             p.logger,
	}, nil
}

// Close releases the underlying pool if it was ever constructed. Safe to call
// multiple times and before first use.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}

	err := p.db.Close()
	p.db = nil
	return err
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
