package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProductionConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:     "secret",
			Environment:      EnvProduction,
			SchemaInitPolicy: SchemaPolicyContinue,
		},
		Storage: Storage{DB: DB{DSN: "postgres://user:pass@db/ats"}},
		Server:  Server{CORSOrigins: []string{"https://app.example.com"}},
	}
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:   "complete production config",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "development mode tolerates missing DSN and secrets",
			mutate: func(cfg *StructuredConfig) {
				cfg.App.Environment = EnvDevelopment
				cfg.Storage.DB.DSN = ""
				cfg.App.TokenSignKey = ""
				cfg.Server.CORSOrigins = nil
			},
		},
		{
			name:    "production missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name:    "production missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "production missing CORS origins",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.CORSOrigins = nil },
			wantErr: ErrMissingCORSOrigins,
		},
		{
			name:    "unknown schema init policy",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SchemaInitPolicy = "retry" },
			wantErr: ErrInvalidSchemaInitPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validProductionConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
