package field

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBlinkInterval is the caret blink half-period.
const DefaultBlinkInterval = 530 * time.Millisecond

// Scheduler runs fn every interval until the returned cancel is called.
//
// fn may run on another goroutine. Cancel must be safe to call more than
// once.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(interval time.Duration, fn func()) (cancel func())

func (f SchedulerFunc) Every(interval time.Duration, fn func()) func() { return f(interval, fn) }

// TickerScheduler drives ticks from a time.Ticker on its own goroutine.
// Once cancel returns, fn is not called again. fn must not call cancel.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	t := time.NewTicker(interval)
	done := make(chan struct{})

	var mu sync.Mutex
	stopped := false
	go func() {
		defer t.Stop()
		for {
			select {
			case <-t.C:
				mu.Lock()
				if !stopped {
					fn()
				}
				mu.Unlock()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			stopped = true
			mu.Unlock()
			close(done)
		})
	}
}

// blinker owns the caret visibility flag. Ticks only touch the atomics, so
// they can race with event processing.
type blinker struct {
	sched    Scheduler
	interval time.Duration
	dirty    func()

	visible   atomic.Bool
	selecting atomic.Bool
	cancel    func()
}

func (b *blinker) start() {
	b.visible.Store(true)
	if b.cancel != nil {
		return
	}
	b.cancel = b.sched.Every(b.interval, b.tick)
}

func (b *blinker) stop() {
	if b.cancel == nil {
		return
	}
	b.cancel()
	b.cancel = nil
}

func (b *blinker) tick() {
	if b.selecting.Load() {
		b.visible.Store(true)
	} else {
		v := b.visible.Load()
		b.visible.CompareAndSwap(v, !v)
	}
	b.dirty()
}

// reset shows the caret; called whenever it moves.
func (b *blinker) reset(selecting bool) {
	b.selecting.Store(selecting)
	b.visible.Store(true)
}
