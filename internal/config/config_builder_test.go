package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsApplied(t *testing.T) {
	// no sign key from any source: defaults merge but validation rejects
	_, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	if err == nil {
		t.Skip("APP_TOKEN_SIGN_KEY set in environment")
	}
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "15m")
	t.Setenv("STORAGE_MONGO_DATABASE", "envdb")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "envdb", cfg.Storage.Mongo.Database)

	// untouched fields fall through to defaults
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultMongoURI, cfg.Storage.Mongo.URI)
	assert.Equal(t, defaultConnectTimeout, cfg.Storage.Mongo.ConnectTimeout)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultBcryptCost, cfg.App.BcryptCost)
}

func TestValidate(t *testing.T) {
	valid := StructuredConfig{
		App: App{TokenSignKey: "k"},
		Storage: Storage{Mongo: Mongo{
			URI:      "mongodb://localhost:27017",
			Database: "notesdb",
		}},
		Server: Server{HTTPAddress: ":8000"},
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing mongo uri",
			mutate:  func(c *StructuredConfig) { c.Storage.Mongo.URI = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing database",
			mutate:  func(c *StructuredConfig) { c.Storage.Mongo.Database = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
