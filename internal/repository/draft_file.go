package repository

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/shenikar/report_intake/internal/draft"
	"github.com/shenikar/report_intake/internal/models"
)

type FileDraftRepository struct {
	dir string
}

// NewFileDraftRepository создает хранилище черновиков в каталоге на диске
func NewFileDraftRepository(dir string) (draft.Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create draft directory: %w", err)
	}
	return &FileDraftRepository{dir: dir}, nil
}

// path экранирует слот обратимо, поэтому разные слоты не делят файл
func (r *FileDraftRepository) path(slot string) string {
	return filepath.Join(r.dir, url.PathEscape(slot)+".json")
}

// Put пишет во временный файл и атомарно переименовывает его,
// чтобы после падения процесса в слоте остался целый черновик
func (r *FileDraftRepository) Put(_ context.Context, slot string, payload []byte) error {
	target := r.path(slot)
	tmp, err := os.CreateTemp(r.dir, ".draft-*")
	if err != nil {
		return fmt.Errorf("failed to create temp draft file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write draft file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync draft file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close draft file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace draft file: %w", err)
	}
	return nil
}

// Get читает черновик из файла слота
func (r *FileDraftRepository) Get(_ context.Context, slot string) ([]byte, error) {
	payload, err := os.ReadFile(r.path(slot))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, models.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	return payload, nil
}

// Delete удаляет файл слота
func (r *FileDraftRepository) Delete(_ context.Context, slot string) error {
	if err := os.Remove(r.path(slot)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete draft file: %w", err)
	}
	return nil
}
