// Package customext persists user-added custom extension entries.
package customext

import (
	"context"

	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

type Repository interface {
	// ListByUser returns the user's custom extensions, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.CustomExtension, error)

	// CountByUser returns the number of live rows for the user.
	CountByUser(ctx context.Context, userID string) (int, error)

	// Create inserts a new row. ID and CreatedAt must be set by the caller.
	Create(ctx context.Context, ext *models.CustomExtension) (*models.CustomExtension, error)

	// FindByID returns the row with the given id scoped to the owning user.
	// Returns common.ErrorNotFound when absent or owned by another user.
	FindByID(ctx context.Context, userID, id string) (*models.CustomExtension, error)

	// Delete removes the row with the given id.
	Delete(ctx context.Context, id string) error
}
