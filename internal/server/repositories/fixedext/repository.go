// Package fixedext persists per-user block-state overrides for the fixed
// extension catalog.
package fixedext

import (
	"context"

	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

type Repository interface {
	// ListByUser returns all stored overrides for the user, catalog order
	// is not guaranteed; rows are keyed (user_id, name).
	ListByUser(ctx context.Context, userID string) ([]*models.FixedExtension, error)

	// Upsert creates or updates the override row for (UserID, Name).
	Upsert(ctx context.Context, ext *models.FixedExtension) (*models.FixedExtension, error)
}
