package customext

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fileblock/internal/common"
	"github.com/dmitrijs2005/fileblock/internal/dbx"
	"github.com/dmitrijs2005/fileblock/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.CustomExtension, error) {

	query :=
		`SELECT id, user_id, name, created_at FROM custom_extensions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.CustomExtension
	for rows.Next() {
		ext := &models.CustomExtension{}
		if err := rows.Scan(&ext.ID, &ext.UserID, &ext.Name, &ext.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ext)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID string) (int, error) {

	query := `SELECT count(*) FROM custom_extensions WHERE user_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ext *models.CustomExtension) (*models.CustomExtension, error) {

	query :=
		`INSERT INTO custom_extensions (id, user_id, name, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		ext.ID, ext.UserID, ext.Name, ext.CreatedAt).Scan(&ext.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ext, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, userID, id string) (*models.CustomExtension, error) {

	query :=
		`SELECT id, user_id, name, created_at FROM custom_extensions
		 WHERE id = $1 AND user_id = $2
		 `

	ext := &models.CustomExtension{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&ext.ID, &ext.UserID, &ext.Name, &ext.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ext, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	query := `DELETE FROM custom_extensions WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
