package database

import (
	"database/sql"
	"fmt"

	"videau/pkg/config"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func dsn(cfg *config.Config, dbName string) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		dbName,
		cfg.DBPort,
		cfg.DBSSLMode,
	)
}

// NewPostgresDB opens the gorm connection, creating the database first when
// DB_AUTO_CREATE is set.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBAutoCreate {
		if err := ensureDatabaseExists(cfg); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(postgres.Open(dsn(cfg, cfg.DBName)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// ensureDatabaseExists connects to the maintenance database and creates
// cfg.DBName if it is missing.
func ensureDatabaseExists(cfg *config.Config) error {
	db, err := sql.Open("postgres", dsn(cfg, "postgres"))
	if err != nil {
		return fmt.Errorf("failed to open maintenance database: %w", err)
	}
	defer db.Close()

	var exists bool
	if err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check database %s: %w", cfg.DBName, err)
	}
	if exists {
		return nil
	}

	if _, err := db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(cfg.DBName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", cfg.DBName, err)
	}
	return nil
}
