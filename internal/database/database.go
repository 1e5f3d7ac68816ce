package database

import (
	"fmt"
	"log/slog"
	"time"

	"recurrence-ledger/internal/config"
	"recurrence-ledger/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Transaction{},
		&models.Recurrence{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the indexes the migrations declare, so an AutoMigrate schema
// keeps at most one transaction per recurrence and date.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_account_date ON transactions(account, date)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_vendor_lower ON transactions(LOWER(vendor))",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_recurrence_date_unique ON transactions(recurrence_id, date) WHERE recurrence_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_recurrences_account ON recurrences(account)",
		"CREATE INDEX IF NOT EXISTS idx_recurrences_end_date ON recurrences(end_date)",
		"CREATE INDEX IF NOT EXISTS idx_recurrences_signature ON recurrences(LOWER(vendor), LOWER(account), LOWER(category))",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrationDB, err := OpenMigrationDB(&cfg.Database)
	if err != nil {
		return nil, err
	}
	defer migrationDB.Close()

	if err := RunMigrationsIfEnabled(migrationDB, cfg.Database.Migration); err != nil {
		slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized")

	return db.DB, nil
}
