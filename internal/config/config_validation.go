// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// In development mode the checks are permissive: the server may start
// without a reachable database (the pool is constructed lazily on first
// use) and without a CORS allow-list. In production mode the required
// settings must be present.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.SchemaInitPolicy {
	case SchemaPolicyContinue, SchemaPolicyFailFast:
	default:
		return ErrInvalidSchemaInitPolicy
	}

	if !cfg.App.Restricted() {
		return nil
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if len(cfg.Server.CORSOrigins) == 0 {
		return ErrMissingCORSOrigins
	}

	return nil
}
