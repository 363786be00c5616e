package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/domain"
	pkgerrors "github.com/country-explorer/internal/pkg/errors"
)

// fakeSessionRepo - хранилище сессий в памяти. В отличие от моков удобно
// для сценариев из нескольких операций над одним состоянием.
type fakeSessionRepo struct {
	states  map[string]*domain.FavoritesState
	loadErr error
	saveErr error
	saves   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{states: make(map[string]*domain.FavoritesState)}
}

func (r *fakeSessionRepo) Load(_ context.Context, sessionID string) (*domain.FavoritesState, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	state, ok := r.states[sessionID]
	if !ok {
		return nil, nil
	}
	// Копия через сериализацию, как в реальном хранилище
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var clone domain.FavoritesState
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, err
	}
	return &clone, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, sessionID string, state *domain.FavoritesState, _ time.Duration) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.states[sessionID] = state
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.states, sessionID)
	return nil
}

func newFavoritesUC(repo *fakeSessionRepo, now time.Time) *FavoritesUseCase {
	uc := NewFavoritesUseCase(repo, zap.NewNop(), time.Hour)
	uc.now = func() time.Time { return now }
	return uc
}

func TestFavoritesUseCase_Toggle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("toggle persists across loads", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		added, err := uc.Toggle(ctx, "sid", "fr")
		require.NoError(t, err)
		assert.True(t, added)

		added, err = uc.Toggle(ctx, "sid", "FR")
		require.NoError(t, err)
		assert.False(t, added)

		list, err := uc.List(ctx, "sid", false)
		require.NoError(t, err)
		assert.Zero(t, list.Total)
	})

	t.Run("invalid code rejected", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		_, err := uc.Toggle(ctx, "sid", "fra")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidCountryCode)
		assert.Zero(t, repo.saves)
	})

	t.Run("store failure maps to session unavailable", func(t *testing.T) {
		repo := newFakeSessionRepo()
		repo.loadErr = errors.New("connection refused")
		uc := newFavoritesUC(repo, now)

		_, err := uc.Toggle(ctx, "sid", "fr")
		assert.ErrorIs(t, err, pkgerrors.ErrSessionUnavailable)
	})
}

func TestFavoritesUseCase_Mutations(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no-op mutations skip persist", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		require.NoError(t, uc.Add(ctx, "sid", "fr", "note"))
		savesAfterAdd := repo.saves

		// Повторное добавление, удаление и заметки по неизвестному коду
		require.NoError(t, uc.Add(ctx, "sid", "fr", "other"))
		require.NoError(t, uc.Remove(ctx, "sid", "zz"))
		require.NoError(t, uc.SetNote(ctx, "sid", "zz", "note"))
		require.NoError(t, uc.ClearNote(ctx, "sid", "zz"))

		assert.Equal(t, savesAfterAdd, repo.saves)
	})

	t.Run("note edit survives reload", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		require.NoError(t, uc.Add(ctx, "sid", "fr", ""))
		require.NoError(t, uc.SetNote(ctx, "sid", "fr", "visited"))

		list, err := uc.List(ctx, "sid", false)
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "visited", list.Favorites[0].Notes)
		assert.Equal(t, now, list.Favorites[0].AddedAt)
	})

	t.Run("clear all empties session", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		require.NoError(t, uc.Add(ctx, "sid", "fr", ""))
		require.NoError(t, uc.Add(ctx, "sid", "de", ""))
		require.NoError(t, uc.ClearAll(ctx, "sid"))

		list, err := uc.List(ctx, "sid", false)
		require.NoError(t, err)
		assert.Zero(t, list.Total)

		recent, err := uc.Recent(ctx, "sid", 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("save failure does not break the operation", func(t *testing.T) {
		repo := newFakeSessionRepo()
		repo.saveErr = errors.New("connection refused")
		uc := newFavoritesUC(repo, now)

		added, err := uc.Toggle(ctx, "sid", "fr")
		require.NoError(t, err)
		assert.True(t, added)
	})
}

func TestFavoritesUseCase_ListOrder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeSessionRepo()
	uc := newFavoritesUC(repo, now)
	require.NoError(t, uc.Add(ctx, "sid", "fr", ""))

	uc.now = func() time.Time { return now.Add(time.Hour) }
	require.NoError(t, uc.Add(ctx, "sid", "de", ""))

	newest, err := uc.List(ctx, "sid", false)
	require.NoError(t, err)
	require.Equal(t, 2, newest.Total)
	assert.Equal(t, "de", newest.Favorites[0].Code)

	oldest, err := uc.List(ctx, "sid", true)
	require.NoError(t, err)
	assert.Equal(t, "fr", oldest.Favorites[0].Code)
}

func TestFavoritesUseCase_ExportImport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trip between sessions", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)

		require.NoError(t, uc.Add(ctx, "first", "fr", "wine"))
		require.NoError(t, uc.Add(ctx, "first", "jp", "sushi"))

		export, err := uc.Export(ctx, "first")
		require.NoError(t, err)
		doc, err := json.Marshal(export)
		require.NoError(t, err)

		result, err := uc.Import(ctx, "second", doc)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Imported)
		assert.Equal(t, 2, result.Total)

		list, err := uc.List(ctx, "second", false)
		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
	})

	t.Run("rejected import leaves session untouched", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)
		require.NoError(t, uc.Add(ctx, "sid", "fr", "keep"))
		savesBefore := repo.saves

		_, err := uc.Import(ctx, "sid", []byte(`{"not":"valid"}`))
		assert.ErrorIs(t, err, pkgerrors.ErrImportFormatInvalid)
		assert.Equal(t, savesBefore, repo.saves)

		list, err := uc.List(ctx, "sid", false)
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "keep", list.Favorites[0].Notes)
	})

	t.Run("import of only duplicates skips persist", func(t *testing.T) {
		repo := newFakeSessionRepo()
		uc := newFavoritesUC(repo, now)
		require.NoError(t, uc.Add(ctx, "sid", "fr", ""))
		savesBefore := repo.saves

		doc := []byte(`{"version":"1.0","exportedAt":"2026-08-01T12:00:00Z","favorites":[{"code":"fr"}]}`)
		result, err := uc.Import(ctx, "sid", doc)
		require.NoError(t, err)
		assert.Zero(t, result.Imported)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, savesBefore, repo.saves)
	})
}
