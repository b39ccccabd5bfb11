package fixedext

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fileblock/internal/dbx"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.FixedExtension, error) {

	query :=
		`SELECT user_id, name, is_blocked FROM fixed_extensions
		 WHERE user_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FixedExtension
	for rows.Next() {
		ext := &models.FixedExtension{}
		if err := rows.Scan(&ext.UserID, &ext.Name, &ext.IsBlocked); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ext)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, ext *models.FixedExtension) (*models.FixedExtension, error) {

	query :=
		`INSERT INTO fixed_extensions (user_id, name, is_blocked, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, name)
		 DO UPDATE SET is_blocked = EXCLUDED.is_blocked, updated_at = now()
		 RETURNING user_id, name, is_blocked
		 `

	out := &models.FixedExtension{}
	err := r.db.QueryRowContext(ctx, query, ext.UserID, ext.Name, ext.IsBlocked).
		Scan(&out.UserID, &out.Name, &out.IsBlocked)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return out, nil
}
