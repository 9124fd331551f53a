// Package config loads application settings from a .env file and environment
// variables. Environment variables always take precedence over .env values.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names for STORE_BACKEND.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration.
type Config struct {
	// Backing store selection.
	StoreBackend string

	// Google Sheets backend. CredentialsJSON (inline service-account JSON)
	// takes precedence over CredentialsFile.
	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string
	StoreTTL        time.Duration

	// PostgreSQL backend – either set DatabaseURL directly, or the
	// individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Admin auth: the shared admin secret and the JWT signing secret.
	AdminPassword string
	JWTSecret     string

	// Roster
	DefaultCategory string
	PlayersTab      string
	TitlesTab       string
	MarketTab       string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("STORE_BACKEND", BackendSheets)
	v.SetDefault("STORE_TTL_MINUTES", 60)
	v.SetDefault("DB_USER", "vasco")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "convocacoes")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DEFAULT_CATEGORY", "Sub-20")
	v.SetDefault("PLAYERS_TAB", "Jogadores")
	v.SetDefault("TITLES_TAB", "Titulos")
	v.SetDefault("MARKET_TAB", "Transfermarkt")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "convocacoes.app,www.convocacoes.app")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		StoreBackend:    strings.ToLower(v.GetString("STORE_BACKEND")),
		SpreadsheetID:   v.GetString("SHEETS_SPREADSHEET_ID"),
		CredentialsFile: v.GetString("SHEETS_CREDENTIALS_FILE"),
		CredentialsJSON: v.GetString("SHEETS_CREDENTIALS_JSON"),
		StoreTTL:        time.Duration(v.GetInt("STORE_TTL_MINUTES")) * time.Minute,
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		DefaultCategory: v.GetString("DEFAULT_CATEGORY"),
		PlayersTab:      v.GetString("PLAYERS_TAB"),
		TitlesTab:       v.GetString("TITLES_TAB"),
		MarketTab:       v.GetString("MARKET_TAB"),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

func (c *Config) validate() {
	if c.AdminPassword == "" {
		log.Fatal("config: ADMIN_PASSWORD must be set")
	}
	if c.JWTSecret == "" {
		log.Fatal("config: JWT_SECRET must be set")
	}
	switch c.StoreBackend {
	case BackendSheets:
		if c.SpreadsheetID == "" {
			log.Fatal("config: SHEETS_SPREADSHEET_ID must be set for the sheets backend")
		}
		if c.CredentialsFile == "" && c.CredentialsJSON == "" {
			log.Fatal("config: SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON must be set")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" && c.DBPass == "" {
			log.Fatal("config: DATABASE_URL or DB_PASS must be set for the postgres backend")
		}
	case BackendMemory:
	default:
		log.Fatalf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
