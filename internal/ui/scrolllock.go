package ui

import "sync"

// ScrollLock is the document-level "body does not scroll" flag. Several
// holders may lock it at once; it is released when the last hold goes away.
type ScrollLock struct {
	mu    sync.Mutex
	holds int
}

// Acquire takes a hold and returns its release function. Calling release
// more than once has no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holds++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holds--
			l.mu.Unlock()
		})
	}
}

// Locked reports whether any hold is outstanding.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holds > 0
}

// Holds returns the number of outstanding holds.
func (l *ScrollLock) Holds() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holds
}
