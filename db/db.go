package db

import (
	"errors"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to MySQL when dsn is set, otherwise to the SQLite file.
// The returned handle is passed to the stores at construction time.
func Open(dsn, sqliteFile string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if dsn != "" {
		return gorm.Open(mysql.Open(dsn), cfg)
	}
	if sqliteFile != "" {
		return gorm.Open(sqlite.Open(sqliteFile), cfg)
	}
	return nil, errors.New("no database configured: set MYSQL_DSN or SQLITE_FILE")
}
