package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fileblock/internal/dbx"
	"github.com/dmitrijs2005/fileblock/internal/server/migrations"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/customext"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/fixedext"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) FixedExtensions(db dbx.DBTX) fixedext.Repository {
	return fixedext.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) CustomExtensions(db dbx.DBTX) customext.Repository {
	return customext.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
