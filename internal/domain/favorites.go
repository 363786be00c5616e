package domain

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/pkg/utils"
)

const (
	// ExportVersion - версия формата документа экспорта избранного
	ExportVersion = "1.0"

	// RecentLimit - размер очереди недавно добавленных
	RecentLimit = 10

	// DefaultRecentQuery - лимит выборки недавних по умолчанию
	DefaultRecentQuery = 5
)

// FavoriteMeta - метаданные избранной страны
type FavoriteMeta struct {
	AddedAt time.Time `json:"added_at"`
	Notes   string    `json:"notes,omitempty"`
}

// FavoritesState - состояние сессии: флаг аутентификации, избранные страны
// с метаданными и очередь недавно добавленных.
//
// Инвариант: код присутствует в Favorites тогда и только тогда, когда он
// присутствует в RecentlyAdded либо был вытеснен из нее по границе
// RecentLimit; каждый код в RecentlyAdded имеет запись в Favorites.
// Все коды нормализованы через utils.NormalizeCode до записи.
type FavoritesState struct {
	Authenticated bool                    `json:"is_authenticated"`
	Favorites     map[string]FavoriteMeta `json:"favorites"`
	RecentlyAdded []string                `json:"recently_added"`
}

// FavoritesExport - транспортный документ экспорта/импорта
type FavoritesExport struct {
	Version    string               `json:"version"`
	ExportedAt time.Time            `json:"exportedAt"`
	Favorites  []FavoriteExportItem `json:"favorites"`
}

// FavoriteExportItem - одна запись документа экспорта. AddedAt - указатель,
// чтобы отличать отсутствующую метку времени от нулевой при импорте.
type FavoriteExportItem struct {
	Code    string     `json:"code"`
	AddedAt *time.Time `json:"addedAt,omitempty"`
	Notes   string     `json:"notes,omitempty"`
}

func NewFavoritesState() *FavoritesState {
	return &FavoritesState{
		Favorites:     make(map[string]FavoriteMeta),
		RecentlyAdded: make([]string, 0),
	}
}

// Has проверяет наличие кода в избранном
func (s *FavoritesState) Has(code string) bool {
	_, ok := s.Favorites[utils.NormalizeCode(code)]
	return ok
}

// Toggle добавляет код, если его нет, и удаляет, если есть.
// Возвращает true, если код был добавлен.
func (s *FavoritesState) Toggle(code string, now time.Time) bool {
	normalized := utils.NormalizeCode(code)
	if _, ok := s.Favorites[normalized]; ok {
		s.remove(normalized)
		return false
	}
	s.add(normalized, "", now)
	return true
}

// Add добавляет код с опциональной заметкой. No-op, если код уже в избранном.
func (s *FavoritesState) Add(code, notes string, now time.Time) bool {
	normalized := utils.NormalizeCode(code)
	if _, ok := s.Favorites[normalized]; ok {
		return false
	}
	s.add(normalized, notes, now)
	return true
}

// Remove удаляет код. No-op, если кода нет.
func (s *FavoritesState) Remove(code string) bool {
	normalized := utils.NormalizeCode(code)
	if _, ok := s.Favorites[normalized]; !ok {
		return false
	}
	s.remove(normalized)
	return true
}

// SetNote устанавливает заметку, сохраняя AddedAt. Неизвестный код - no-op.
func (s *FavoritesState) SetNote(code, note string) bool {
	normalized := utils.NormalizeCode(code)
	meta, ok := s.Favorites[normalized]
	if !ok {
		return false
	}
	meta.Notes = note
	s.Favorites[normalized] = meta
	return true
}

// ClearNote очищает заметку, сохраняя AddedAt. Неизвестный код - no-op.
func (s *FavoritesState) ClearNote(code string) bool {
	return s.SetNote(code, "")
}

// ClearAll очищает избранное, метаданные и очередь недавних за один шаг
func (s *FavoritesState) ClearAll() {
	s.Favorites = make(map[string]FavoriteMeta)
	s.RecentlyAdded = make([]string, 0)
}

// Login выставляет флаг аутентификации
func (s *FavoritesState) Login() {
	s.Authenticated = true
}

// Logout снимает флаг и полностью очищает избранное: избранное живет в
// рамках сессии
func (s *FavoritesState) Logout() {
	s.Authenticated = false
	s.ClearAll()
}

// RecentCodes возвращает до limit недавно добавленных кодов, самые новые
// первыми. limit <= 0 трактуется как значение по умолчанию.
func (s *FavoritesState) RecentCodes(limit int) []string {
	if limit <= 0 {
		limit = DefaultRecentQuery
	}
	if limit > len(s.RecentlyAdded) {
		limit = len(s.RecentlyAdded)
	}
	out := make([]string, limit)
	copy(out, s.RecentlyAdded[:limit])
	return out
}

// CodesByDate возвращает все коды, упорядоченные по времени добавления.
// По умолчанию новые первыми. При равных метках порядок фиксируется кодом.
func (s *FavoritesState) CodesByDate(ascending bool) []string {
	codes := make([]string, 0, len(s.Favorites))
	for code := range s.Favorites {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		a, b := s.Favorites[codes[i]], s.Favorites[codes[j]]
		if !a.AddedAt.Equal(b.AddedAt) {
			if ascending {
				return a.AddedAt.Before(b.AddedAt)
			}
			return a.AddedAt.After(b.AddedAt)
		}
		return codes[i] < codes[j]
	})
	return codes
}

// Export сериализует текущее избранное в транспортный документ
func (s *FavoritesState) Export(now time.Time) *FavoritesExport {
	items := make([]FavoriteExportItem, 0, len(s.Favorites))
	for _, code := range s.CodesByDate(false) {
		meta := s.Favorites[code]
		addedAt := meta.AddedAt
		items = append(items, FavoriteExportItem{
			Code:    code,
			AddedAt: &addedAt,
			Notes:   meta.Notes,
		})
	}
	return &FavoritesExport{
		Version:    ExportVersion,
		ExportedAt: now,
		Favorites:  items,
	}
}

// Import разбирает документ экспорта и вливает записи, кодов которых еще
// нет в избранном. Малформированный документ или отсутствие последовательности
// favorites - типизированная ошибка без какой-либо мутации состояния.
// Возвращает количество влитых записей.
func (s *FavoritesState) Import(doc []byte, now time.Time) (int, error) {
	var parsed FavoritesExport
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return 0, errors.ErrImportFormatInvalid
	}
	if parsed.Favorites == nil {
		return 0, errors.ErrImportFormatInvalid
	}

	merged := 0
	for _, item := range parsed.Favorites {
		normalized := utils.NormalizeCode(item.Code)
		if normalized == "" {
			continue
		}
		if _, ok := s.Favorites[normalized]; ok {
			// Дубликаты пропускаются
			continue
		}

		addedAt := now
		if item.AddedAt != nil && !item.AddedAt.IsZero() {
			addedAt = *item.AddedAt
		}
		s.Favorites[normalized] = FavoriteMeta{
			AddedAt: addedAt,
			Notes:   item.Notes,
		}
		merged++
	}

	if merged > 0 {
		s.rebuildRecent()
	}
	return merged, nil
}

func (s *FavoritesState) add(normalized, notes string, now time.Time) {
	if s.Favorites == nil {
		s.Favorites = make(map[string]FavoriteMeta)
	}
	s.Favorites[normalized] = FavoriteMeta{
		AddedAt: now,
		Notes:   notes,
	}
	s.pushRecent(normalized)
}

func (s *FavoritesState) remove(normalized string) {
	delete(s.Favorites, normalized)
	filtered := s.RecentlyAdded[:0]
	for _, c := range s.RecentlyAdded {
		if c != normalized {
			filtered = append(filtered, c)
		}
	}
	s.RecentlyAdded = filtered
}

// pushRecent - upsert-to-front: код перемещается в голову очереди без
// дубликатов, очередь усечена до RecentLimit
func (s *FavoritesState) pushRecent(normalized string) {
	out := make([]string, 0, len(s.RecentlyAdded)+1)
	out = append(out, normalized)
	for _, c := range s.RecentlyAdded {
		if c != normalized {
			out = append(out, c)
		}
	}
	if len(out) > RecentLimit {
		out = out[:RecentLimit]
	}
	s.RecentlyAdded = out
}

// rebuildRecent пересобирает очередь недавних из полного набора избранного
// после импорта
func (s *FavoritesState) rebuildRecent() {
	codes := s.CodesByDate(false)
	if len(codes) > RecentLimit {
		codes = codes[:RecentLimit]
	}
	s.RecentlyAdded = codes
}
