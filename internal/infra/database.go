package infra

import (
	"fmt"
	"strings"

	"workoutapi/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite://"

// PoolOptions sizes the underlying database/sql pool.
type PoolOptions struct {
	MaxOpenConns int
	MaxIdleConns int
	Debug        bool
}

// DefaultPool mirrors the defaults in config.Load.
var DefaultPool = PoolOptions{MaxOpenConns: 25, MaxIdleConns: 5}

// NewDatabase opens a GORM connection for dsn. A "sqlite://<path>" DSN selects the
// pure-Go SQLite driver (local development and tests); anything else is handed to
// the pgx-backed PostgreSQL driver.
//
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey on both dialects.
func NewDatabase(dsn string, pool PoolOptions) (*gorm.DB, error) {
	logMode := logger.Silent
	if pool.Debug {
		logMode = logger.Info
	}

	dialector, isSQLite := dialectorFor(dsn)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// SQLite has a single writer; one connection avoids SQLITE_BUSY between pooled conns.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	return db, nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	if !strings.HasPrefix(dsn, sqliteScheme) {
		return postgres.Open(dsn), false
	}
	path := strings.TrimPrefix(dsn, sqliteScheme)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return sqlite.Open(path + sep + "_pragma=foreign_keys(1)"), true
}

// RunMigrations creates / updates the three tables and then applies the
// idempotent patches GORM cannot express.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Categoria{},
		&model.CentroTreinamento{},
		&model.Atleta{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs PostgreSQL-only DDL. Each statement is guarded with
// IF NOT EXISTS so re-running on an already-patched schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	patches := []string{
		// name search uses lower(nome) LIKE ...
		`CREATE INDEX IF NOT EXISTS idx_atletas_nome_lower ON atletas (lower(nome))`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
