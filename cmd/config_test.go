package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"cargo/cmd"
	"cargo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func validConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:       "8080",
		StorageDriver:  cmd.StorageDriverMemory,
		LogLevel:       "info",
		ReportSchedule: "0 */5 * * * *",
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without env file", func(t *testing.T) {
		for _, key := range []string{"HTTP_PORT", "STORAGE_DRIVER", "DB_PORT", "DB_SSLMODE", "SQLITE_PATH", "LOG_LEVEL", "REPORT_SCHEDULE"} {
			unsetEnv(t, key)
		}

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, cmd.StorageDriverMemory, cfg.StorageDriver)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSslMode)
		assert.Equal(t, "cargo.db", cfg.SQLitePath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "0 */5 * * * *", cfg.ReportSchedule)
		require.NoError(t, cfg.Validate())
	})

	t.Run("env file fills unset variables only", func(t *testing.T) {
		unsetEnv(t, "DB_NAME")
		t.Setenv("DB_USER", "from-environment")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("DB_NAME=cargo\nDB_USER=from-file\n"), 0o600))

		cfg, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, "cargo", cfg.DBName)
		assert.Equal(t, "from-environment", cfg.DBUser)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cmd.Config)
		wantErr error
		wantMsg string
	}{
		{name: "memory", mutate: func(*cmd.Config) {}},
		{
			name:    "port is not a number",
			mutate:  func(c *cmd.Config) { c.HTTPPort = "http" },
			wantErr: errs.ErrValueIsInvalid,
			wantMsg: "HTTP_PORT",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *cmd.Config) { c.StorageDriver = "mongo" },
			wantErr: errs.ErrValueIsInvalid,
			wantMsg: "STORAGE_DRIVER",
		},
		{
			name: "postgres without database",
			mutate: func(c *cmd.Config) {
				c.StorageDriver = cmd.StorageDriverPostgres
				c.DBHost, c.DBPort, c.DBUser = "localhost", "5432", "cargo"
			},
			wantErr: errs.ErrValueIsRequired,
			wantMsg: "DB_NAME",
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *cmd.Config) { c.StorageDriver = cmd.StorageDriverSQLite },
			wantErr: errs.ErrValueIsRequired,
			wantMsg: "SQLITE_PATH",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *cmd.Config) { c.LogLevel = "loud" },
			wantErr: errs.ErrValueIsInvalid,
			wantMsg: "LOG_LEVEL",
		},
		{
			name:    "five field schedule",
			mutate:  func(c *cmd.Config) { c.ReportSchedule = "*/5 * * * *" },
			wantErr: errs.ErrValueIsInvalid,
			wantMsg: "REPORT_SCHEDULE",
		},
		{
			name:    "malformed seed",
			mutate:  func(c *cmd.Config) { c.SeedLocations = "USNYC|New York" },
			wantErr: errs.ErrValueIsInvalid,
			wantMsg: "SEED_LOCATIONS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}

	t.Run("reports every problem", func(t *testing.T) {
		cfg := validConfig()
		cfg.HTTPPort = "0"
		cfg.LogLevel = "loud"

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP_PORT")
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "db", DBPort: "5433", DBUser: "cargo", DBPassword: "secret", DBName: "booking", DBSslMode: "require",
	}

	assert.Equal(t, "host=db port=5433 user=cargo password=secret dbname=booking sslmode=require", cfg.PostgresDSN())
}

func TestConfig_LocationSeeds(t *testing.T) {
	cfg := cmd.Config{SeedLocations: " USNYC|New York|NORTH_AMERICA ; AUMEL|Melbourne|oceania;"}

	seeds, err := cfg.LocationSeeds()

	require.NoError(t, err)
	assert.Equal(t, []cmd.LocationSeed{
		{UnLocode: "USNYC", Name: "New York", Region: "NORTH_AMERICA"},
		{UnLocode: "AUMEL", Name: "Melbourne", Region: "oceania"},
	}, seeds)
}
