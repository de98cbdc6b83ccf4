package ui

import "sync"

// Visibility is one observation of a region against the viewport.
type Visibility struct {
	Region       string
	Intersecting bool
	Ratio        float64
}

// Subscription is registered interest in observer events.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel stops delivery. It is safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
}

// VisibilityObserver fans visibility observations out to the subscribers of
// each region. Observations arrive in batches; batch listeners run after
// every region event of the batch has been delivered.
type VisibilityObserver struct {
	mu      sync.Mutex
	next    int
	regions map[int]regionWatch
	batches map[int]func()
}

type regionWatch struct {
	region string
	fn     func(Visibility)
}

func NewVisibilityObserver() *VisibilityObserver {
	return &VisibilityObserver{
		regions: map[int]regionWatch{},
		batches: map[int]func(){},
	}
}

// Watch delivers every observation of region to fn until cancelled.
func (o *VisibilityObserver) Watch(region string, fn func(Visibility)) *Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.next
	o.next++
	o.regions[id] = regionWatch{region: region, fn: fn}
	return &Subscription{cancel: func() {
		o.mu.Lock()
		delete(o.regions, id)
		o.mu.Unlock()
	}}
}

// OnBatch runs fn at the end of every batch until cancelled.
func (o *VisibilityObserver) OnBatch(fn func()) *Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.next
	o.next++
	o.batches[id] = fn
	return &Subscription{cancel: func() {
		o.mu.Lock()
		delete(o.batches, id)
		o.mu.Unlock()
	}}
}

// Publish delivers a batch of observations. Subscribers are called in
// registration order, outside the observer's lock.
func (o *VisibilityObserver) Publish(batch ...Visibility) {
	o.mu.Lock()
	watches := make([]regionWatch, 0, len(o.regions))
	for id := range o.next {
		if w, ok := o.regions[id]; ok {
			watches = append(watches, w)
		}
	}
	var listeners []func()
	for id := range o.next {
		if fn, ok := o.batches[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	o.mu.Unlock()

	for _, v := range batch {
		for _, w := range watches {
			if w.region == v.Region {
				w.fn(v)
			}
		}
	}
	for _, fn := range listeners {
		fn()
	}
}

// Subscribers returns the number of live subscriptions.
func (o *VisibilityObserver) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.regions) + len(o.batches)
}
