// Package ui models the interactive state of the site independently of any
// rendering technology: modal dialogs and the scroll lock they hold, reveal
// animations, scroll-linked chrome, section highlighting and navigation
// links. The page renderer drives these types per request and the client
// script mirrors them in the browser.
package ui

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by the runtime timers.
func SystemClock() Clock { return systemClock{} }
