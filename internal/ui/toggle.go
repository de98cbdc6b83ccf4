package ui

import (
	"context"
	"sync"
	"time"
)

// Toggler flips a flag every interval while running. It drives purely
// cosmetic loops such as the book illustration wobble.
type Toggler struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	on       bool
	running  bool
	gen      uint64
	timer    Timer
	stopCtx  func() bool
	onFlip   func(bool)
}

// NewToggler returns a stopped toggler. onFlip may be nil.
func NewToggler(clock Clock, interval time.Duration, onFlip func(bool)) *Toggler {
	return &Toggler{clock: clock, interval: interval, onFlip: onFlip}
}

// Start begins flipping until Stop is called or ctx is done. Starting a
// running toggler does nothing.
func (t *Toggler) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.interval <= 0 {
		return
	}
	t.running = true
	t.gen++
	t.arm(t.gen)
	t.stopCtx = context.AfterFunc(ctx, t.Stop)
}

// arm schedules the next flip. The caller holds t.mu.
func (t *Toggler) arm(gen uint64) {
	t.timer = t.clock.AfterFunc(t.interval, func() { t.tick(gen) })
}

func (t *Toggler) tick(gen uint64) {
	t.mu.Lock()
	if !t.running || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.on = !t.on
	on := t.on
	t.arm(gen)
	cb := t.onFlip
	t.mu.Unlock()

	if cb != nil {
		cb(on)
	}
}

// Stop halts the toggler and resets the flag. It is safe to call more
// than once.
func (t *Toggler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	t.running = false
	t.on = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.stopCtx != nil {
		t.stopCtx()
		t.stopCtx = nil
	}
}

func (t *Toggler) On() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

func (t *Toggler) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}
