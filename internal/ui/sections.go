package ui

import "sync"

// SectionTracker picks the sidebar section to highlight. After every
// observation batch the topmost section, in document order, that
// intersects the viewport by at least the threshold becomes active. When
// no section qualifies the previous choice stands.
type SectionTracker struct {
	mu        sync.Mutex
	sections  []string
	threshold float64
	ratios    map[string]float64
	active    string
	onChange  func(string)
	subs      []*Subscription
}

// NewSectionTracker subscribes to every section on obs. sections must be
// in document order. onChange may be nil.
func NewSectionTracker(obs *VisibilityObserver, sections []string, threshold float64, onChange func(string)) *SectionTracker {
	t := &SectionTracker{
		sections:  append([]string(nil), sections...),
		threshold: threshold,
		ratios:    map[string]float64{},
		onChange:  onChange,
	}
	for _, s := range sections {
		t.subs = append(t.subs, obs.Watch(s, t.observe))
	}
	t.subs = append(t.subs, obs.OnBatch(t.settle))
	return t
}

func (t *SectionTracker) observe(v Visibility) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v.Intersecting {
		t.ratios[v.Region] = v.Ratio
	} else {
		delete(t.ratios, v.Region)
	}
}

func (t *SectionTracker) settle() {
	t.mu.Lock()
	next := t.active
	for _, s := range t.sections {
		if r, ok := t.ratios[s]; ok && r >= t.threshold {
			next = s
			break
		}
	}
	changed := next != t.active
	t.active = next
	cb := t.onChange
	t.mu.Unlock()

	if changed && cb != nil {
		cb(next)
	}
}

// Active returns the highlighted section, or "" before the first match.
func (t *SectionTracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Close cancels every subscription the tracker holds.
func (t *SectionTracker) Close() {
	for _, s := range t.subs {
		s.Cancel()
	}
}
