package config

import (
	"fmt"
	"log/slog"
	"net"
	"regexp"
	"strings"

	"delivery-guides-api/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// InitDB opens the configured database, creates it when the dialect allows,
// and migrates the schema. The pool holds a single connection so every
// request is serialized through it.
func InitDB(cfg DatabaseConfig, log *slog.Logger) (*gorm.DB, error) {
	if cfg.Driver == DriverMySQL {
		if err := ensureMySQLDatabase(cfg); err != nil {
			return nil, err
		}
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database connected and migrated", "driver", cfg.Driver)
	return db, nil
}

// Migrate creates missing tables, columns, foreign keys and indexes.
// Running it against an up-to-date schema is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Order{},
		&models.DeliveryGuide{},
		&models.Receipt{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

func dialectorFor(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.Path)), nil
	case DriverMySQL:
		return mysql.Open(mysqlDSN(cfg, cfg.Name)), nil
	case DriverPostgres:
		return postgres.Open(postgresDSN(cfg)), nil
	}
	return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off per connection.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func mysqlDSN(cfg DatabaseConfig, dbName string) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = dbName
	mc.ParseTime = true
	// report matched rows, so an update that changes nothing is not mistaken for a missing row
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func postgresDSN(cfg DatabaseConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode)
}

// ensureMySQLDatabase issues CREATE DATABASE IF NOT EXISTS on a server-level
// connection. Identifiers cannot be bound as parameters, so the name is
// restricted to a safe character set instead.
func ensureMySQLDatabase(cfg DatabaseConfig) error {
	if !dbNamePattern.MatchString(cfg.Name) {
		return fmt.Errorf("invalid database name %q", cfg.Name)
	}
	server, err := gorm.Open(mysql.Open(mysqlDSN(cfg, "")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to mysql server: %w", err)
	}
	sqlDB, err := server.DB()
	if err != nil {
		return fmt.Errorf("get sql handle: %w", err)
	}
	defer sqlDB.Close()

	if err := server.Exec("CREATE DATABASE IF NOT EXISTS `" + cfg.Name + "`").Error; err != nil {
		return fmt.Errorf("create database %s: %w", cfg.Name, err)
	}
	return nil
}
