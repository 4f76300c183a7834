package config

import (
	"time"
)

// Config is the top-level configuration container for the fitsync
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the reported version
	// and the user agent sent to the remote store.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds network settings for the remote document store client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs (sync, recalculation).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UserAgent identifies this client to the remote store.
	// Env: APP_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "/var/lib/fitsync/fitsync.db").
	// In-memory databases are rejected: the sync queue must be durable.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds network settings for the remote document store client.
type Adapter struct {
	// BaseURL is the remote store endpoint (e.g. "https://api.fitjourney.app").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval is how often the periodic sync job pushes the queue and
	// pulls remote changes (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// RecalcInterval is how often goal progress and streaks are
	// recalculated after the startup run (e.g. "24h").
	// Env: WORKERS_RECALC_INTERVAL
	RecalcInterval time.Duration `env:"RECALC_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (earlier sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
