package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/report_intake/internal/draft"
	"github.com/shenikar/report_intake/internal/models"
)

type PostgresDraftRepository struct {
	db *pgxpool.Pool
}

func NewPostgresDraftRepository(db *pgxpool.Pool) draft.Repository {
	return &PostgresDraftRepository{db: db}
}

// Put сохраняет черновик, перезаписывая слот
func (r *PostgresDraftRepository) Put(ctx context.Context, slot string, payload []byte) error {
	query := `
		INSERT INTO report_drafts (slot, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, slot, payload); err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

// Get возвращает черновик по слоту
func (r *PostgresDraftRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	query := `SELECT payload FROM report_drafts WHERE slot = $1;`

	var payload []byte
	err := r.db.QueryRow(ctx, query, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft by slot: %w", err)
	}
	return payload, nil
}

// Delete удаляет черновик. Отсутствие строки ошибкой не считается.
func (r *PostgresDraftRepository) Delete(ctx context.Context, slot string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM report_drafts WHERE slot = $1;`, slot); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
