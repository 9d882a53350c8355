package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DB_QUERY_TIMEOUT", "")

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, StorageDriverMinIO, cfg.Storage.Driver)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "photos", cfg.Upload.PhotoFolder)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "local")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("AWS_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StorageDriverLocal, cfg.Storage.Driver)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "local storage ok",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverLocal
			},
		},
		{
			name: "minio without credentials",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMinIO
				c.MinIO.AccessKeyID = ""
			},
			wantErr: "AWS_ACCESS_KEY_ID",
		},
		{
			name: "minio with credentials",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMinIO
				c.MinIO.AccessKeyID = "key"
				c.MinIO.SecretAccessKey = "secret"
			},
		},
		{
			name: "unknown driver",
			mutate: func(c *Config) {
				c.Storage.Driver = "ftp"
			},
			wantErr: "unknown STORAGE_DRIVER",
		},
		{
			name: "missing db host",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverLocal
				c.Database.Host = ""
			},
			wantErr: "DB_HOST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
