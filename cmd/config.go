package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cargo/internal/jobs"
	"cargo/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort       string
	StorageDriver  string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	SQLitePath     string
	LogLevel       string
	ReportSchedule string
	SeedLocations  string
}

// LocationSeed is one entry of SEED_LOCATIONS.
type LocationSeed struct {
	UnLocode string
	Name     string
	Region   string
}

// LoadConfig reads envFile into the environment, without overriding variables
// that are already set, and builds the configuration from the environment. A
// missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		StorageDriver:  getEnv("STORAGE_DRIVER", StorageDriverMemory),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      getEnv("DB_SSLMODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "cargo.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		ReportSchedule: getEnv("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
		SeedLocations:  os.Getenv("SEED_LOCATIONS"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	var problems []error

	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"HTTP_PORT", fmt.Errorf("%q is not a TCP port", c.HTTPPort)))
	}

	switch c.StorageDriver {
	case StorageDriverPostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if value == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
	case StorageDriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errs.NewValueIsRequiredError("SQLITE_PATH"))
		}
	case StorageDriverMemory:
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER", fmt.Errorf("%q is not one of postgres, sqlite, memory", c.StorageDriver)))
	}

	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(c.ReportSchedule); err != nil {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("REPORT_SCHEDULE", err))
	}

	if _, err := c.LocationSeeds(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// PostgresDSN is the key/value connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// LocationSeeds parses SEED_LOCATIONS: entries separated by ";", each of the
// form "CODE|Name|REGION". Codes and regions are checked when the locations
// are registered.
func (c Config) LocationSeeds() ([]LocationSeed, error) {
	var seeds []LocationSeed
	for _, entry := range strings.Split(c.SeedLocations, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "|")
		if len(parts) != 3 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"SEED_LOCATIONS", fmt.Errorf("%q is not CODE|Name|REGION", entry))
		}
		seeds = append(seeds, LocationSeed{
			UnLocode: strings.TrimSpace(parts[0]),
			Name:     strings.TrimSpace(parts[1]),
			Region:   strings.TrimSpace(parts[2]),
		})
	}
	return seeds, nil
}
