package ui

import (
	"sync"
	"time"
)

// RevealState is the phase of an enter/exit animation.
type RevealState int

const (
	Hidden RevealState = iota
	Entering
	Visible
	Exiting
)

func (s RevealState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Exiting:
		return "exiting"
	}
	return "unknown"
}

// RevealEvent drives a RevealState.
type RevealEvent int

const (
	Show RevealEvent = iota
	Hide
	TimerDone
)

// Next is the transition table of the reveal machine. Events that do not
// apply to the current state leave it unchanged.
func (s RevealState) Next(ev RevealEvent) RevealState {
	switch ev {
	case Show:
		if s == Hidden || s == Exiting {
			return Entering
		}
	case Hide:
		if s == Entering || s == Visible {
			return Exiting
		}
	case TimerDone:
		switch s {
		case Entering:
			return Visible
		case Exiting:
			return Hidden
		}
	}
	return s
}

// Reveal runs the reveal machine against a clock. Entering and Exiting
// each last one animation duration; when an auto-hide hold is set, Visible
// turns into Exiting after the hold.
type Reveal struct {
	mu       sync.Mutex
	clock    Clock
	duration time.Duration
	hold     time.Duration
	state    RevealState
	gen      uint64
	timer    Timer
	onChange func(RevealState)
}

// RevealOption configures a Reveal.
type RevealOption func(*Reveal)

// WithAutoHide makes the element hide itself hold after becoming visible.
func WithAutoHide(hold time.Duration) RevealOption {
	return func(r *Reveal) { r.hold = hold }
}

// OnRevealChange registers a callback run after every state change.
func OnRevealChange(fn func(RevealState)) RevealOption {
	return func(r *Reveal) { r.onChange = fn }
}

// NewReveal returns a hidden element animating over duration.
func NewReveal(clock Clock, duration time.Duration, opts ...RevealOption) *Reveal {
	r := &Reveal{clock: clock, duration: duration}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current phase.
func (r *Reveal) State() RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Reveal) Show() { r.fire(Show, 0) }
func (r *Reveal) Hide() { r.fire(Hide, 0) }

// Stop cancels any pending timer and freezes the current state.
func (r *Reveal) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// fire applies ev. Timer events carry the generation they were scheduled
// in and are dropped when a later event has superseded them.
func (r *Reveal) fire(ev RevealEvent, gen uint64) {
	r.mu.Lock()
	if ev == TimerDone && gen != r.gen {
		r.mu.Unlock()
		return
	}

	prev := r.state
	next := prev.Next(ev)
	if next == prev {
		r.mu.Unlock()
		return
	}
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.state = next
	r.gen++

	switch next {
	case Entering, Exiting:
		r.schedule(r.duration, TimerDone)
	case Visible:
		if r.hold > 0 {
			r.schedule(r.hold, Hide)
		}
	}
	cb := r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(next)
	}
}

// schedule arms a timer for ev in the current generation. The caller holds r.mu.
func (r *Reveal) schedule(d time.Duration, ev RevealEvent) {
	gen := r.gen
	r.timer = r.clock.AfterFunc(d, func() {
		if ev == Hide {
			r.mu.Lock()
			stale := gen != r.gen
			r.mu.Unlock()
			if stale {
				return
			}
		}
		r.fire(ev, gen)
	})
}
