package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseConfig describes one Postgres endpoint. The ledger runs with a
// writer and a reader, each read from its own POSTGRES_<ROLE>_* variables.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadDatabaseConfig reads POSTGRES_<role>_*; pool sizing is shared.
func loadDatabaseConfig(role string) *DatabaseConfig {
	env := func(name, def string) string {
		return getEnvWithDefault("POSTGRES_"+role+"_"+name, def)
	}
	return &DatabaseConfig{
		Host:            env("HOST", "localhost"),
		Port:            env("PORT", "5432"),
		User:            env("USER", "postgres"),
		Password:        env("PASSWORD", ""),
		DBName:          env("DB_NAME", "pitchcraft"),
		SSLMode:         env("SSL_MODE", "disable"),
		MaxOpenConns:    getEnvIntWithDefault("DB_MAX_OPEN_CONNS", 50),
		MaxIdleConns:    getEnvIntWithDefault("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", time.Hour),
	}
}

// gormLogLevel keeps statement logging off by default since ledger inserts
// carry prospect details and generated text.
func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s application_name=pitchcraft-api",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects and applies the pool limits.
func (c *DatabaseConfig) Open() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(c.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(getEnvWithDefault("DB_LOG_LEVEL", "warn"))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s:%s/%s: %w", c.Host, c.Port, c.DBName, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)

	return db, nil
}

// DatabaseConnections holds the writer used for inserts, billing updates and
// quota counts, and the reader used for history pages.
type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

func NewDatabaseConnections() (*DatabaseConnections, error) {
	writer, err := loadDatabaseConfig("WRITER").Open()
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}

	reader, err := loadDatabaseConfig("READER").Open()
	if err != nil {
		closeDB(writer)
		return nil, fmt.Errorf("reader: %w", err)
	}

	return &DatabaseConnections{Writer: writer, Reader: reader}, nil
}

func (dc *DatabaseConnections) Close() error {
	return errors.Join(closeDB(dc.Writer), closeDB(dc.Reader))
}

func closeDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
