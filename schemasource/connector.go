package schemasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver (pgx)
	_ "github.com/mattn/go-sqlite3"     // SQLite driver

	"github.com/schemalens/schemalens"
)

// NormalizeDriverName maps configured driver aliases onto registered
// database/sql driver names.
func NormalizeDriverName(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pgx":
		return "pgx"
	case "mysql", "mariadb":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return strings.ToLower(strings.TrimSpace(driver))
	}
}

// Open connects to a database described by a driver alias and connection
// string, and verifies the connection with a ping.
func Open(ctx context.Context, driver, connection string) (*sql.DB, error) {
	driverName := NormalizeDriverName(driver)

	switch driverName {
	case "pgx", "mysql", "sqlite3":
	default:
		return nil, fmt.Errorf("%w: %s", schemalens.ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driverName, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Extract introspects a live database and produces a schema document in the
// same shape as a hand-written one. Column comments become descriptions
// where the engine exposes them.
func Extract(ctx context.Context, db *sql.DB, driver string) (*schemalens.SchemaDocument, error) {
	switch NormalizeDriverName(driver) {
	case "sqlite3":
		return extractSQLite(ctx, db)
	case "pgx":
		return extractPostgres(ctx, db)
	case "mysql":
		return extractMySQL(ctx, db)
	default:
		return nil, fmt.Errorf("%w: %s", schemalens.ErrUnsupportedDriver, driver)
	}
}
