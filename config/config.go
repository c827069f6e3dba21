package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// DefaultFeedURL is the public house-stock-watcher dataset of congressional
// trading disclosures.
const DefaultFeedURL = "https://house-stock-watcher-data.s3-us-west-2.amazonaws.com/data/all_transactions.json"

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// ENV equivalent:
//
//	SERVER_PORT=8080
//	FEED_URL=https://.../all_transactions.json
//	FEED_TIMEOUT_SECONDS=60
//	DATA_SOURCE=feed
//	ITEMS_PER_PAGE=10
//	SEARCH_DEBOUNCE_MS=500
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=capitolwatch
//	POSTGRES_SSLMODE=disable
type Config struct {
	Server    ServerConfig
	Feed      FeedConfig
	Dashboard DashboardConfig
	Postgres  PostgresConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string // TCP port the HTTP server listens on (e.g., "8080")
}

// FeedConfig describes the inbound dataset fetch.
type FeedConfig struct {
	URL            string // dataset endpoint; fetched once at startup
	TimeoutSeconds int    // HTTP client timeout for the single fetch
}

// DashboardConfig tunes the query engine's surface.
//
// Fields:
//   - ItemsPerPage: records per page (default 10).
//   - SearchDebounceMS: quiescence window before a search term commits.
//   - DataSource: "feed" loads from FEED_URL at startup, "postgres" loads the
//     archived snapshot instead.
type DashboardConfig struct {
	ItemsPerPage     int
	SearchDebounceMS int
	DataSource       string
}

// PostgresConfig defines connection details for the snapshot archive.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN
}

// AppConfig is the globally accessible configuration instance, populated
// once via LoadConfig(). Services read from here instead of re-reading the
// environment.
var AppConfig Config

// LoadConfig initializes AppConfig.
//
// Precedence (lowest to highest):
//  1. Defaults set here.
//  2. Values from a .env file, when present.
//  3. Environment variables.
//
// Missing required values terminate the process via validateConfig().
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("FEED_URL", DefaultFeedURL)
	viper.SetDefault("FEED_TIMEOUT_SECONDS", 60)
	viper.SetDefault("DATA_SOURCE", "feed")
	viper.SetDefault("ITEMS_PER_PAGE", 10)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 500)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "capitolwatch")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Feed: FeedConfig{
			URL:            viper.GetString("FEED_URL"),
			TimeoutSeconds: viper.GetInt("FEED_TIMEOUT_SECONDS"),
		},
		Dashboard: DashboardConfig{
			ItemsPerPage:     viper.GetInt("ITEMS_PER_PAGE"),
			SearchDebounceMS: viper.GetInt("SEARCH_DEBOUNCE_MS"),
			DataSource:       viper.GetString("DATA_SOURCE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig terminates the application when required variables are
// missing or out of range, so misconfiguration fails at startup rather than
// mid-session.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Feed.URL == "" {
		missing = append(missing, "FEED_URL")
	}
	if AppConfig.Dashboard.ItemsPerPage < 1 {
		missing = append(missing, "ITEMS_PER_PAGE")
	}
	if AppConfig.Dashboard.SearchDebounceMS < 0 {
		missing = append(missing, "SEARCH_DEBOUNCE_MS")
	}
	if src := AppConfig.Dashboard.DataSource; src != "feed" && src != "postgres" {
		missing = append(missing, "DATA_SOURCE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid environment variables: %v\n", missing)
	}
}
