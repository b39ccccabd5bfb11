package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/fileblock/internal/dbx"
	"github.com/dmitrijs2005/fileblock/internal/extension"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CustomExtensionService provides operations on a user's custom list:
// - List: all entries, newest first
// - Add: normalize, validate (format, cap, duplicate), insert
// - Delete: owner-scoped removal by id
type CustomExtensionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCustomExtensionService constructs a CustomExtensionService.
func NewCustomExtensionService(db *sql.DB, m repomanager.RepositoryManager) *CustomExtensionService {
	return &CustomExtensionService{db: db, repomanager: m}
}

// List returns the user's custom extensions, newest first.
func (s *CustomExtensionService) List(ctx context.Context, userID string) ([]*models.CustomExtension, error) {
	repo := s.repomanager.CustomExtensions(s.db)
	return repo.ListByUser(ctx, userID)
}

// Add normalizes rawName, validates it against the user's current list and
// count, and inserts a new row with a fresh id. Validation failures are
// returned as the extension package sentinels with no persistence.
//
// The count check and the insert are separate statements; under concurrent
// adds for one user the 200 cap can be overshot slightly. The cap is best
// effort; the unique constraint still rejects duplicates.
func (s *CustomExtensionService) Add(ctx context.Context, userID, rawName string) (*models.CustomExtension, error) {
	name := extension.Normalize(rawName)

	repo := s.repomanager.CustomExtensions(s.db)

	count, err := repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(existing))
	for _, e := range existing {
		names = append(names, e.Name)
	}

	if err := extension.ValidateNew(name, names, count); err != nil {
		return nil, err
	}

	return repo.Create(ctx, &models.CustomExtension{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
}

// Delete removes the entry with the given id if it belongs to userID.
// Returns common.ErrorNotFound when the id is unknown or owned by another
// user; the lookup and the delete run in one transaction.
func (s *CustomExtensionService) Delete(ctx context.Context, userID, id string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.CustomExtensions(tx)

		if _, err := repo.FindByID(ctx, userID, id); err != nil {
			return err
		}

		return repo.Delete(ctx, id)
	})
}
