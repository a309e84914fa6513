// Package config loads environment variables at startup. Every knob has a
// default, so a bare `go run ./cmd/server` works out of the box.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the scholarship finder.
type Config struct {
	Port                  string
	CatalogPath           string // JSON catalog file
	RulesPath             string // optional override for the embedded rule table
	RolloverIntervalHours int    // how often the deadline rollover job fires; 0 disables it
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/scholarship_database.json"
	}

	interval := 24
	if s := os.Getenv("ROLLOVER_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("ROLLOVER_INTERVAL_HOURS must be a non-negative integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		Port:                  port,
		CatalogPath:           catalogPath,
		RulesPath:             os.Getenv("RULES_PATH"),
		RolloverIntervalHours: interval,
	}, nil
}
