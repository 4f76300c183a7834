package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d local database file path
//	-a remote store base URL
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval background sync interval (e.g., "5m")
//	-recalc-interval goal/streak recalculation interval (e.g., "24h")
func ParseFlags() *Config {
	var databaseDSN string
	var remoteBaseURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var recalcInterval time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&remoteBaseURL, "a", "", "Remote store base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.DurationVar(&recalcInterval, "recalc-interval", 0, "Recalculation interval (e.g., 24h)")

	flag.Parse()

	return &Config{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        remoteBaseURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:   syncInterval,
			RecalcInterval: recalcInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
