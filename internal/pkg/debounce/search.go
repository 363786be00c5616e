package debounce

import (
	"strings"
	"sync"
	"time"
)

// Search - дебаунс поискового запроса. Хранит сырое значение (обновляется
// сразу) и устоявшееся (обновляется после паузы во вводе).
type Search struct {
	d *Debouncer[string]

	mu      sync.Mutex
	raw     string
	settled string
	pending bool
}

func NewSearch(delay time.Duration) *Search {
	s := &Search{}
	s.d = New(delay, func(term string) {
		s.mu.Lock()
		s.settled = term
		s.pending = false
		s.mu.Unlock()
	})
	return s
}

// Update принимает очередное значение запроса
func (s *Search) Update(term string) {
	s.mu.Lock()
	s.raw = term
	s.pending = true
	s.mu.Unlock()

	s.d.Set(term)
}

// Term возвращает сырое (последнее введенное) значение
func (s *Search) Term() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Settled возвращает устоявшееся значение
func (s *Search) Settled() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled
}

// Pending - true строго между изменением ввода и его устаканиванием
func (s *Search) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Active - true, если устоявшийся запрос после trim непустой
func (s *Search) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.TrimSpace(s.settled) != ""
}

// Stop отменяет ожидающее обновление. Используется при завершении сессии,
// чтобы не получить запись в уже выброшенное состояние.
func (s *Search) Stop() {
	s.d.Stop()
}
