package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/country-explorer/internal/pkg/errors"
)

func TestFavoritesState_Toggle(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("toggle adds then removes", func(t *testing.T) {
		state := NewFavoritesState()

		added := state.Toggle("fr", now)
		assert.True(t, added)
		assert.True(t, state.Has("fr"))

		added = state.Toggle("fr", now)
		assert.False(t, added)
		assert.False(t, state.Has("fr"))
		assert.Empty(t, state.RecentlyAdded)
	})

	t.Run("codes are normalized to lowercase", func(t *testing.T) {
		state := NewFavoritesState()

		state.Toggle("US", now)
		assert.True(t, state.Has("us"))
		assert.True(t, state.Has("US"))
		require.Len(t, state.RecentlyAdded, 1)
		assert.Equal(t, "us", state.RecentlyAdded[0])
	})

	t.Run("toggle twice is identity", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("de", "note", now)

		state.Toggle("jp", now)
		state.Toggle("jp", now.Add(time.Second))

		assert.Equal(t, map[string]FavoriteMeta{
			"de": {AddedAt: now, Notes: "note"},
		}, state.Favorites)
		assert.Equal(t, []string{"de"}, state.RecentlyAdded)
	})
}

func TestFavoritesState_AddRemove(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("add is no-op for existing code", func(t *testing.T) {
		state := NewFavoritesState()

		require.True(t, state.Add("fr", "first", now))
		assert.False(t, state.Add("FR", "second", now.Add(time.Hour)))

		meta := state.Favorites["fr"]
		assert.Equal(t, "first", meta.Notes)
		assert.Equal(t, now, meta.AddedAt)
	})

	t.Run("remove unknown code is no-op", func(t *testing.T) {
		state := NewFavoritesState()
		assert.False(t, state.Remove("zz"))
	})

	t.Run("remove drops code from recent queue", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "", now)
		state.Add("de", "", now.Add(time.Second))

		require.True(t, state.Remove("fr"))
		assert.Equal(t, []string{"de"}, state.RecentlyAdded)
	})
}

func TestFavoritesState_Notes(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("set note preserves added_at", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "", now)

		require.True(t, state.SetNote("fr", "visited in 2024"))
		meta := state.Favorites["fr"]
		assert.Equal(t, "visited in 2024", meta.Notes)
		assert.Equal(t, now, meta.AddedAt)
	})

	t.Run("clear note preserves membership", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "old note", now)

		require.True(t, state.ClearNote("fr"))
		assert.True(t, state.Has("fr"))
		assert.Empty(t, state.Favorites["fr"].Notes)
	})

	t.Run("note ops on unknown code are no-ops", func(t *testing.T) {
		state := NewFavoritesState()
		assert.False(t, state.SetNote("zz", "note"))
		assert.False(t, state.ClearNote("zz"))
	})
}

func TestFavoritesState_RecentQueue(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("newest first", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "", now)
		state.Add("de", "", now.Add(time.Second))
		state.Add("jp", "", now.Add(2*time.Second))

		assert.Equal(t, []string{"jp", "de", "fr"}, state.RecentCodes(10))
	})

	t.Run("bounded by limit", func(t *testing.T) {
		state := NewFavoritesState()
		codes := []string{"ad", "be", "ch", "de", "es", "fi", "gr", "hu", "ie", "jp", "kr", "lu"}
		for i, code := range codes {
			state.Add(code, "", now.Add(time.Duration(i)*time.Second))
		}

		assert.Len(t, state.RecentlyAdded, RecentLimit)
		// Старейшие вытеснены, но остаются в избранном
		assert.NotContains(t, state.RecentlyAdded, "ad")
		assert.NotContains(t, state.RecentlyAdded, "be")
		assert.True(t, state.Has("ad"))
		assert.Equal(t, "lu", state.RecentlyAdded[0])
	})

	t.Run("default query limit", func(t *testing.T) {
		state := NewFavoritesState()
		for i, code := range []string{"ad", "be", "ch", "de", "es", "fi", "gr"} {
			state.Add(code, "", now.Add(time.Duration(i)*time.Second))
		}

		assert.Len(t, state.RecentCodes(0), DefaultRecentQuery)
		assert.Len(t, state.RecentCodes(-1), DefaultRecentQuery)
	})
}

func TestFavoritesState_ExportImport(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round trip preserves metadata", func(t *testing.T) {
		source := NewFavoritesState()
		source.Add("fr", "wine", now)
		source.Add("jp", "sushi", now.Add(time.Hour))

		doc, err := json.Marshal(source.Export(now.Add(2 * time.Hour)))
		require.NoError(t, err)

		target := NewFavoritesState()
		merged, err := target.Import(doc, now.Add(24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 2, merged)

		// AddedAt берется из документа, не из момента импорта
		assert.Equal(t, source.Favorites, target.Favorites)
		assert.Equal(t, []string{"jp", "fr"}, target.RecentlyAdded)
	})

	t.Run("export orders newest first", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "", now)
		state.Add("de", "", now.Add(time.Second))

		export := state.Export(now.Add(time.Minute))
		require.Len(t, export.Favorites, 2)
		assert.Equal(t, ExportVersion, export.Version)
		assert.Equal(t, "de", export.Favorites[0].Code)
		assert.Equal(t, "fr", export.Favorites[1].Code)
	})

	t.Run("malformed document fails without mutation", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "keep me", now)

		for _, doc := range []string{
			`not json at all`,
			`{"not":"valid"}`,
			`{"version":"1.0","exportedAt":"2026-08-01T12:00:00Z"}`,
		} {
			merged, err := state.Import([]byte(doc), now)
			require.Error(t, err, doc)
			assert.ErrorIs(t, err, pkgerrors.ErrImportFormatInvalid, doc)
			assert.Zero(t, merged, doc)
		}

		assert.Len(t, state.Favorites, 1)
		assert.Equal(t, "keep me", state.Favorites["fr"].Notes)
	})

	t.Run("duplicates and empty codes are skipped", func(t *testing.T) {
		state := NewFavoritesState()
		state.Add("fr", "existing", now)

		doc := []byte(`{
			"version": "1.0",
			"exportedAt": "2026-08-01T12:00:00Z",
			"favorites": [
				{"code": "FR", "notes": "imported"},
				{"code": ""},
				{"code": "de", "addedAt": "2026-07-01T00:00:00Z"}
			]
		}`)

		merged, err := state.Import(doc, now)
		require.NoError(t, err)
		assert.Equal(t, 1, merged)
		assert.Equal(t, "existing", state.Favorites["fr"].Notes)
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), state.Favorites["de"].AddedAt)
	})

	t.Run("missing addedAt falls back to import time", func(t *testing.T) {
		state := NewFavoritesState()
		doc := []byte(`{"version":"1.0","exportedAt":"2026-08-01T12:00:00Z","favorites":[{"code":"jp"}]}`)

		merged, err := state.Import(doc, now)
		require.NoError(t, err)
		assert.Equal(t, 1, merged)
		assert.Equal(t, now, state.Favorites["jp"].AddedAt)
	})
}

func TestFavoritesState_Session(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("logout wipes everything", func(t *testing.T) {
		state := NewFavoritesState()
		state.Login()
		state.Add("fr", "note", now)
		state.Add("de", "", now.Add(time.Second))

		state.Logout()

		assert.False(t, state.Authenticated)
		assert.Empty(t, state.Favorites)
		assert.Empty(t, state.RecentlyAdded)
	})

	t.Run("clear all keeps auth flag", func(t *testing.T) {
		state := NewFavoritesState()
		state.Login()
		state.Add("fr", "", now)

		state.ClearAll()

		assert.True(t, state.Authenticated)
		assert.Empty(t, state.Favorites)
	})
}
