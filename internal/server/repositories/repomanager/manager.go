// Package repomanager hands out repositories bound to a database handle
// (either *sql.DB or a transaction) and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fileblock/internal/dbx"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/customext"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/fixedext"
)

type RepositoryManager interface {
	FixedExtensions(db dbx.DBTX) fixedext.Repository
	CustomExtensions(db dbx.DBTX) customext.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
