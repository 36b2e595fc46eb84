package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDraftRepository_PutGetDelete(t *testing.T) {
	// Подготовка
	dir := t.TempDir()
	repo, err := NewFileDraftRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	// Действие
	require.NoError(t, repo.Put(ctx, "report_draft:reporter-1", []byte(`{"a":1}`)))
	require.NoError(t, repo.Put(ctx, "report_draft:reporter-1", []byte(`{"a":2}`)))
	payload, err := repo.Get(ctx, "report_draft:reporter-1")

	// Проверки
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(payload))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "report_draft:reporter-1.json", entries[0].Name())

	require.NoError(t, repo.Delete(ctx, "report_draft:reporter-1"))
	_, err = repo.Get(ctx, "report_draft:reporter-1")
	assert.ErrorIs(t, err, models.ErrDraftNotFound)
}

func TestFileDraftRepository_GetMissing(t *testing.T) {
	repo, err := NewFileDraftRepository(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "report_draft:nobody")

	assert.ErrorIs(t, err, models.ErrDraftNotFound)
	assert.NoError(t, repo.Delete(context.Background(), "report_draft:nobody"))
}

func TestFileDraftRepository_SlotsDoNotCollide(t *testing.T) {
	// Подготовка
	dir := t.TempDir()
	repo, err := NewFileDraftRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()
	slots := []string{"report_draft:a:b", "report_draft:a_b", "report_draft:a/b", `report_draft:a\b`, "report_draft:a%2Fb"}

	// Действие
	for i, slot := range slots {
		require.NoError(t, repo.Put(ctx, slot, []byte(fmt.Sprintf(`{"n":%d}`, i))))
	}

	// Проверки
	for i, slot := range slots {
		payload, err := repo.Get(ctx, slot)
		require.NoError(t, err, slot)
		assert.JSONEq(t, fmt.Sprintf(`{"n":%d}`, i), string(payload), slot)
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(slots))
	for _, e := range entries {
		assert.False(t, e.IsDir(), e.Name())
	}
}
