// Package debounce откладывает выполнение функции до истечения паузы после последнего вызова.
package debounce

import (
	"sync"
	"time"
)

// Debouncer объединяет серию вызовов Trigger в один: выполняется только последняя
// переданная функция, и только после того, как с момента последнего Trigger прошло delay.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	gen     uint64
	stopped bool
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger заменяет ожидающую функцию на fn и перезапускает таймер.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.gen++
	d.pending = fn
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// fire выполняет ожидающую функцию, если за время ожидания не было нового Trigger.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.mu.Unlock()

	fn()
}

// Flush немедленно выполняет ожидающую функцию, если она есть.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	fn := d.pending
	d.pending = nil
	d.gen++
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Pending сообщает, ожидает ли функция выполнения.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop отменяет ожидающую функцию. После Stop новые вызовы Trigger игнорируются.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}
}
