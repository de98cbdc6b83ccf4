package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elisdimitrova/psysite/internal/config"
)

func TestProgressFraction(t *testing.T) {
	assert.Equal(t, 0.0, ProgressFraction(0, 2000, 1000))
	assert.Equal(t, 0.5, ProgressFraction(500, 2000, 1000))
	assert.Equal(t, 1.0, ProgressFraction(1000, 2000, 1000))
	assert.Equal(t, 1.0, ProgressFraction(1500, 2000, 1000), "overscroll clamps")
	assert.Equal(t, 0.0, ProgressFraction(-40, 2000, 1000), "rubber band clamps")
	assert.Equal(t, 0.0, ProgressFraction(10, 800, 1000), "page shorter than viewport")
}

func TestChromeState(t *testing.T) {
	c := NewChrome(config.DefaultConfig().UI)

	s := c.State(100, 3000, 1000)
	assert.False(t, s.ProgressVisible)
	assert.False(t, s.BackToTopVisible)

	s = c.State(101, 3000, 1000)
	assert.True(t, s.ProgressVisible)
	assert.False(t, s.BackToTopVisible)

	s = c.State(301, 3000, 1000)
	assert.True(t, s.BackToTopVisible)
	assert.InDelta(t, 0.1505, s.Progress, 1e-9)

	assert.Equal(t, ScrollTarget{Top: 0, Smooth: true}, c.BackToTopTarget())
}

func TestFilterScrollTarget(t *testing.T) {
	c := NewChrome(config.DefaultConfig().UI)

	target, ok := c.FilterScrollTarget(&Rect{Y: 250}, 1200)
	require.True(t, ok)
	assert.Equal(t, 1350.0, target.Top)

	_, ok = c.FilterScrollTarget(nil, 1200)
	assert.False(t, ok)
}

func TestResolveLinks(t *testing.T) {
	links := append(SidebarLinks(), SocialLinks([]config.SocialLink{{Name: "Facebook", URL: "https://facebook.com"}})...)
	views := ResolveAll(links, "books")

	require.Len(t, views, 6)
	assert.Equal(t, "#books", views[1].Href)
	assert.True(t, views[1].Active)
	assert.False(t, views[0].Active)

	social := views[5]
	assert.Equal(t, "https://facebook.com", social.Href)
	assert.Equal(t, "_blank", social.Target)
	assert.False(t, social.Active)

	assert.Equal(t, []string{"about", "books", "services", "blog", "contact"}, SectionIDs(links))
}
