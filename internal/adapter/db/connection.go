package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"taskboard/internal/config"
)

const (
	defaultParams   = "parseTime=true&multiStatements=true"
	connectTimeout  = 10 * time.Second
	connMaxLifetime = 3 * time.Minute
	maxOpenConns    = 10
)

// DSN builds the go-sql-driver/mysql data source name for conf.
func DSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "mysql", DSN(conf))
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)

	return db, nil
}
