package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const anim = 500 * time.Millisecond

func TestRevealTransitions(t *testing.T) {
	tests := []struct {
		from RevealState
		ev   RevealEvent
		want RevealState
	}{
		{Hidden, Show, Entering},
		{Hidden, Hide, Hidden},
		{Hidden, TimerDone, Hidden},
		{Entering, TimerDone, Visible},
		{Entering, Hide, Exiting},
		{Entering, Show, Entering},
		{Visible, Hide, Exiting},
		{Visible, Show, Visible},
		{Visible, TimerDone, Visible},
		{Exiting, TimerDone, Hidden},
		{Exiting, Show, Entering},
		{Exiting, Hide, Exiting},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Next(tt.ev), "%s + %d", tt.from, tt.ev)
	}
}

func TestReveal_RunsThroughPhases(t *testing.T) {
	clock := &manualClock{}
	var seen []RevealState
	r := NewReveal(clock, anim, OnRevealChange(func(s RevealState) { seen = append(seen, s) }))

	r.Show()
	assert.Equal(t, Entering, r.State())
	clock.Advance(anim - time.Millisecond)
	assert.Equal(t, Entering, r.State())
	clock.Advance(time.Millisecond)
	assert.Equal(t, Visible, r.State())

	r.Hide()
	clock.Advance(anim)
	assert.Equal(t, Hidden, r.State())
	assert.Equal(t, []RevealState{Entering, Visible, Exiting, Hidden}, seen)
	assert.Zero(t, clock.pending())
}

func TestReveal_AutoHide(t *testing.T) {
	clock := &manualClock{}
	r := NewReveal(clock, anim, WithAutoHide(5*time.Second))

	r.Show()
	clock.Advance(anim)
	assert.Equal(t, Visible, r.State())

	clock.Advance(5*time.Second - time.Millisecond)
	assert.Equal(t, Visible, r.State())
	clock.Advance(time.Millisecond)
	assert.Equal(t, Exiting, r.State())
	clock.Advance(anim)
	assert.Equal(t, Hidden, r.State())
}

func TestReveal_InterruptedExitIgnoresStaleTimer(t *testing.T) {
	clock := &manualClock{}
	r := NewReveal(clock, anim)

	r.Show()
	clock.Advance(anim)
	r.Hide()
	clock.Advance(anim / 2)
	r.Show()
	assert.Equal(t, Entering, r.State())

	// The exit timer would have fired here.
	clock.Advance(anim / 2)
	assert.Equal(t, Entering, r.State())
	clock.Advance(anim / 2)
	assert.Equal(t, Visible, r.State())
}

func TestReveal_DropsTimerEventsFromEarlierGenerations(t *testing.T) {
	r := NewReveal(&manualClock{}, anim)
	r.Show()
	stale := r.gen - 1

	r.fire(TimerDone, stale)
	assert.Equal(t, Entering, r.State())
	r.fire(TimerDone, r.gen)
	assert.Equal(t, Visible, r.State())
}

func TestReveal_Stop(t *testing.T) {
	clock := &manualClock{}
	r := NewReveal(clock, anim)
	r.Show()
	r.Stop()
	clock.Advance(time.Hour)
	assert.Equal(t, Entering, r.State())
}

func TestToggler(t *testing.T) {
	clock := &manualClock{}
	var flips []bool
	tg := NewToggler(clock, 3*time.Second, func(on bool) { flips = append(flips, on) })

	tg.Start(context.Background())
	tg.Start(context.Background())
	assert.True(t, tg.Running())

	clock.Advance(9 * time.Second)
	assert.Equal(t, []bool{true, false, true}, flips)
	assert.True(t, tg.On())

	tg.Stop()
	tg.Stop()
	assert.False(t, tg.Running())
	assert.False(t, tg.On())
	clock.Advance(time.Minute)
	assert.Len(t, flips, 3)
}

func TestToggler_StopsWithContext(t *testing.T) {
	clock := &manualClock{}
	ctx, cancel := context.WithCancel(context.Background())
	tg := NewToggler(clock, time.Second, nil)
	tg.Start(ctx)

	cancel()
	assert.Eventually(t, func() bool { return !tg.Running() }, time.Second, time.Millisecond)
}
