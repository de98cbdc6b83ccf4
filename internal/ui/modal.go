package ui

import "sync"

// CloseReason says which path closed a modal.
type CloseReason int

const (
	CloseControl CloseReason = iota
	CloseEscape
	CloseOutside
	CloseUnmount
)

func (r CloseReason) String() string {
	switch r {
	case CloseControl:
		return "control"
	case CloseEscape:
		return "escape"
	case CloseOutside:
		return "outside"
	case CloseUnmount:
		return "unmount"
	}
	return "unknown"
}

// Point is a pointer position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Modal is the open/closed state of one detail dialog. While open it holds
// the scroll lock it was created with; every way of closing it, unmount
// included, gives the hold back.
type Modal struct {
	mu        sync.Mutex
	lock      *ScrollLock
	bounds    Rect
	open      bool
	unmounted bool
	release   func()
	onOpen    func()
	onClose   func(CloseReason)
}

// ModalOption configures a Modal.
type ModalOption func(*Modal)

// WithBounds sets the content box used to detect outside clicks.
func WithBounds(r Rect) ModalOption {
	return func(m *Modal) { m.bounds = r }
}

// OnOpen registers a callback run after every Closed to Open transition.
func OnOpen(fn func()) ModalOption {
	return func(m *Modal) { m.onOpen = fn }
}

// OnClose registers a callback run after every Open to Closed transition
// except the one caused by Unmount.
func OnClose(fn func(CloseReason)) ModalOption {
	return func(m *Modal) { m.onClose = fn }
}

// NewModal returns a closed modal. A nil lock gives a modal that never
// suspends page scrolling, such as the mobile menu.
func NewModal(lock *ScrollLock, opts ...ModalOption) *Modal {
	m := &Modal{lock: lock}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open shows the modal. Opening an open or unmounted modal does nothing.
func (m *Modal) Open() {
	m.mu.Lock()
	if m.open || m.unmounted {
		m.mu.Unlock()
		return
	}
	m.open = true
	if m.lock != nil {
		m.release = m.lock.Acquire()
	}
	cb := m.onOpen
	m.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Close hides the modal. Closing a closed modal does nothing.
func (m *Modal) Close(reason CloseReason) {
	if reason == CloseUnmount {
		m.Unmount()
		return
	}
	m.mu.Lock()
	closed := m.closeTransition()
	m.mu.Unlock()
	if !closed {
		return
	}
	if m.onClose != nil {
		m.onClose(reason)
	}
}

// closeTransition moves Open to Closed. The caller holds m.mu.
func (m *Modal) closeTransition() bool {
	if !m.open {
		return false
	}
	m.open = false
	if m.release != nil {
		m.release()
		m.release = nil
	}
	return true
}

// IsOpen reports the current state.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// HandleKey closes the modal on Escape and reports whether it did.
func (m *Modal) HandleKey(key string) bool {
	if key != "Escape" && key != "Esc" {
		return false
	}
	if !m.IsOpen() {
		return false
	}
	m.Close(CloseEscape)
	return true
}

// HandlePointerDown closes the modal when p falls outside its content box
// and reports whether it did.
func (m *Modal) HandlePointerDown(p Point) bool {
	m.mu.Lock()
	outside := m.open && !m.bounds.Contains(p)
	m.mu.Unlock()
	if !outside {
		return false
	}
	m.Close(CloseOutside)
	return true
}

// SetBounds updates the content box, e.g. after a resize.
func (m *Modal) SetBounds(r Rect) {
	m.mu.Lock()
	m.bounds = r
	m.mu.Unlock()
}

// Unmount tears the modal down. A held scroll lock is released and the
// modal ignores every later event.
func (m *Modal) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeTransition()
	m.unmounted = true
}
