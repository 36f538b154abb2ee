package db

import (
	_ "embed"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tkaykim/totalmanagement-sub003/internal/config"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

//go:embed schema/sqlite.sql
var sqliteSchema string

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	if conf.DbDriver == DriverSQLite {
		return ConnectSQLite(conf.SqlitePath)
	}

	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens an embedded database at path (":memory:" for a throwaway one) and
// creates the schema. Foreign keys are switched on for every pooled connection.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(DriverSQLite, sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := ApplySQLiteSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func sqliteDSN(path string) string {
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_pragma=foreign_keys(1)"
}

func ApplySQLiteSchema(db *sqlx.DB) error {
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("apply sqlite schema: %w", err)
	}
	return nil
}
