package db

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialect identifiers supported by the database layer.
const (
	// DialectPostgres is the PostgreSQL dialect name.
	DialectPostgres = "postgres"
	// DialectSQLite is the SQLite dialect name.
	DialectSQLite = "sqlite"
)

// DialectName returns the active database dialect name.
func DialectName(conn *gorm.DB) string {
	if conn == nil || conn.Dialector == nil {
		return ""
	}
	return conn.Dialector.Name()
}

// IsSQLite reports whether the connection uses SQLite.
func IsSQLite(conn *gorm.DB) bool {
	return DialectName(conn) == DialectSQLite
}

// dialectorFor picks a GORM dialector from the DSN shape. Postgres URLs and
// keyword DSNs go to the pgx driver; everything else is treated as a SQLite
// file path or URI.
func dialectorFor(dsn string) gorm.Dialector {
	trimmed := strings.TrimSpace(dsn)
	if strings.HasPrefix(trimmed, "postgres://") ||
		strings.HasPrefix(trimmed, "postgresql://") ||
		strings.Contains(trimmed, "host=") {
		return postgres.Open(trimmed)
	}
	return sqlite.Open(trimmed)
}
