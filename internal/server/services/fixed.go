// Package services contains server-side business logic. This file implements
// FixedExtensionService, which reads and bulk-updates per-user block-state
// overrides for the fixed extension catalog.
package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fileblock/internal/extension"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
	"github.com/dmitrijs2005/fileblock/internal/server/repositories/repomanager"
)

// PolicyEntry is one (name, blocked) pair of a bulk policy update.
type PolicyEntry struct {
	Name      string
	IsBlocked bool
}

// FixedExtensionService provides catalog override operations:
// - List: stored overrides for a user
// - SetPolicy: idempotent bulk upsert of (name, blocked) pairs
type FixedExtensionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewFixedExtensionService constructs a FixedExtensionService.
func NewFixedExtensionService(db *sql.DB, m repomanager.RepositoryManager) *FixedExtensionService {
	return &FixedExtensionService{db: db, repomanager: m}
}

// List returns all stored overrides for the user. Catalog names without a
// stored row are unblocked by definition; merging is the caller's concern.
func (s *FixedExtensionService) List(ctx context.Context, userID string) ([]*models.FixedExtension, error) {
	repo := s.repomanager.FixedExtensions(s.db)
	return repo.ListByUser(ctx, userID)
}

// SetPolicy normalizes each entry name and upserts the override row for
// (userID, name). Catalog names are externally trusted, so no validation
// beyond normalization applies. Applying the same list twice yields the
// same stored state; entries are independent per-key writes.
func (s *FixedExtensionService) SetPolicy(ctx context.Context, userID string, entries []PolicyEntry) ([]*models.FixedExtension, error) {
	repo := s.repomanager.FixedExtensions(s.db)

	result := make([]*models.FixedExtension, 0, len(entries))
	for _, e := range entries {
		row, err := repo.Upsert(ctx, &models.FixedExtension{
			UserID:    userID,
			Name:      extension.Normalize(e.Name),
			IsBlocked: e.IsBlocked,
		})
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, nil
}
