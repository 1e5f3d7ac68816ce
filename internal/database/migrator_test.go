package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"recurrence-ledger/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrationConfig(seedsPath string) config.MigrationConfig {
	return config.MigrationConfig{
		AutoMigrate:    true,
		SeedDatabase:   true,
		MigrationsPath: "db/migrations",
		SeedsPath:      seedsPath,
	}
}

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := migrationConfig("db/seeds")
	runner := NewMigrationRunner(db, cfg)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, cfg.MigrationsPath, runner.migrationsPath)
	assert.Equal(t, cfg.SeedsPath, runner.seedsPath)
	assert.True(t, runner.loadSeeds)
}

func TestOpenMigrationDB_IsLazy(t *testing.T) {
	db, err := OpenMigrationDB(&config.DatabaseConfig{
		Host: "127.0.0.1", Port: "1", User: "u", Password: "p", Name: "n", SSLMode: "disable",
	})

	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 3)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	err = NewMigrationRunner(db, migrationConfig("")).WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = NewMigrationRunner(db, migrationConfig("")).WaitForDatabase()

	assert.ErrorContains(t, err, "database not ready after 2 attempts")
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := migrationConfig("")
	cfg.MigrationsPath = "/nonexistent/path/to/migrations"

	assert.NoError(t, NewMigrationRunner(db, cfg).RunMigrations())
}

func TestLoadSeeds_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := migrationConfig(t.TempDir())
	cfg.SeedDatabase = false

	assert.NoError(t, NewMigrationRunner(db, cfg).LoadSeeds())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, NewMigrationRunner(db, migrationConfig("/nonexistent/seeds/path")).LoadSeeds())
}

func TestLoadSeeds_ExecutionFailureIsContinued(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seedsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(seedsDir, "001_bad.sql"), []byte("INSERT INTO nonexistent_table VALUES (1);"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(seedsDir, "002_ledger.sql"), []byte("INSERT INTO transactions (id) VALUES ('x');"), 0644))

	mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("table does not exist"))
	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewMigrationRunner(db, migrationConfig(seedsDir)).LoadSeeds()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ReadFileError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seedsDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(seedsDir, "001_invalid.sql"), 0755))

	err = NewMigrationRunner(db, migrationConfig(seedsDir)).LoadSeeds()

	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	cfg := migrationConfig("")
	cfg.AutoMigrate = false

	assert.NoError(t, RunMigrationsIfEnabled(db, cfg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	fastRetries(t, 2)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err = RunMigrationsIfEnabled(db, migrationConfig(""))

	assert.ErrorContains(t, err, "database readiness check failed")
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := migrationConfig("")
	cfg.MigrationsPath = "/nonexistent/migrations"

	_, _, err = NewMigrationRunner(db, cfg).GetMigrationStatus()

	assert.ErrorContains(t, err, "migrations directory not found")
}
