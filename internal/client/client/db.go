// Package client provides the CLI's outward-facing plumbing: the REST
// client for the backend and the local sqlite database holding client
// state.
package client

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fileblock/internal/client/migrations"
	"github.com/dmitrijs2005/fileblock/internal/client/repositories/state"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	State state.Repository
	DB    *sql.DB
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		State: state.NewSQLiteRepository(db),
		DB:    db,
	}, nil
}
