package ui

import "github.com/elisdimitrova/psysite/internal/config"

// ProgressFraction is how far the page has been scrolled, in [0, 1]. A page
// that does not scroll reports 0.
func ProgressFraction(scrollY, scrollHeight, viewportHeight float64) float64 {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return min(1, max(0, scrollY/scrollable))
}

// ChromeState is what the scroll-linked chrome shows at one scroll position.
type ChromeState struct {
	Progress         float64
	ProgressVisible  bool
	BackToTopVisible bool
}

// ScrollTarget is a requested window scroll.
type ScrollTarget struct {
	Top    float64
	Smooth bool
}

// Chrome derives the progress bar and back-to-top button from the scroll
// position using the configured thresholds.
type Chrome struct {
	progressThreshold  float64
	backToTopThreshold float64
	filterOffset       float64
}

func NewChrome(cfg config.UIConfig) Chrome {
	return Chrome{
		progressThreshold:  cfg.ProgressThreshold,
		backToTopThreshold: cfg.BackToTopThreshold,
		filterOffset:       cfg.FilterScrollOffset,
	}
}

func (c Chrome) State(scrollY, scrollHeight, viewportHeight float64) ChromeState {
	return ChromeState{
		Progress:         ProgressFraction(scrollY, scrollHeight, viewportHeight),
		ProgressVisible:  scrollY > c.progressThreshold,
		BackToTopVisible: scrollY > c.backToTopThreshold,
	}
}

// BackToTopTarget is where the back-to-top button scrolls to.
func (c Chrome) BackToTopTarget() ScrollTarget {
	return ScrollTarget{Top: 0, Smooth: true}
}

// FilterScrollTarget brings a listing back into view after its category
// changes. container is the listing box relative to the viewport; when it
// is not mounted there is nothing to scroll to.
func (c Chrome) FilterScrollTarget(container *Rect, pageYOffset float64) (ScrollTarget, bool) {
	if container == nil {
		return ScrollTarget{}, false
	}
	return ScrollTarget{Top: container.Y + pageYOffset - c.filterOffset, Smooth: true}, true
}
