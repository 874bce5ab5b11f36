package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all process configuration. Values come from the environment,
// optionally pre-populated from a .env file by the caller.
type Config struct {
	Port        string   `env:"PORT" envDefault:"5000"`
	GinMode     string   `env:"GIN_MODE"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	UploadsDir  string   `env:"UPLOADS_DIR" envDefault:"uploads"`
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	SeedOrders  bool     `env:"SEED_ORDERS" envDefault:"false"`

	Database DatabaseConfig `envPrefix:"DB_"`
}

// DatabaseConfig selects the SQL dialect and how to reach it.
type DatabaseConfig struct {
	Driver   string `env:"DRIVER" envDefault:"sqlite"`
	Path     string `env:"PATH" envDefault:"delivery_system.db"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT"`
	User     string `env:"USER" envDefault:"root"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"delivery_system"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads configuration from the given variables only.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", cfg.Database.Driver)
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = defaultPort(cfg.Database.Driver)
	}
	return cfg, nil
}

func defaultPort(driver string) string {
	switch driver {
	case DriverMySQL:
		return "3306"
	case DriverPostgres:
		return "5432"
	}
	return ""
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// String returns a printable summary with the password masked.
func (c *Config) String() string {
	db := c.Database
	target := db.Path
	if db.Driver != DriverSQLite {
		target = fmt.Sprintf("%s@%s:%s/%s", db.User, db.Host, db.Port, db.Name)
	}
	return fmt.Sprintf("Config{port: %s, db: %s %s, uploads: %s}", c.Port, db.Driver, target, c.UploadsDir)
}
