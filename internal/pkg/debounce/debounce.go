// Package debounce реализует trailing-edge дебаунс значений: колбэк
// вызывается только после того, как вход не менялся в течение delay.
package debounce

import (
	"sync"
	"time"
)

// Debouncer - дебаунсер одного значения. Каждый Set отменяет ранее
// запланированный вызов, поэтому в любой момент времени ожидает срабатывания
// не больше одного таймера.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
}

// New создает дебаунсер с задержкой delay. delay <= 0 означает срабатывание
// на ближайшем тике планировщика (практически немедленно).
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{
		delay: delay,
		fn:    fn,
	}
}

// Set планирует вызов fn(v) через delay, отменяя предыдущий запланированный
// вызов, если он еще не сработал.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	delay := d.delay
	if delay < 0 {
		delay = 0
	}

	d.pending = true
	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.mu.Unlock()

		d.fn(v)
	})
}

// Pending сообщает, запланирован ли вызов, который еще не сработал
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop отменяет запланированный вызов и запрещает дальнейшие. После Stop
// колбэк гарантированно не будет вызван, даже если таймер уже взведен.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
	d.stopped = true
}
