package site

import (
	"maps"
	"net/http"
	"net/url"
	"strings"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
)

// ThemeCookie stores the visitor's colour scheme.
const ThemeCookie = "theme"

// OpenAvatar is the Open target of the author portrait modal.
const OpenAvatar = "avatar"

// PageState is the visitor-controlled state of the landing page. It lives
// entirely in the URL (plus the theme cookie), so every view is linkable and
// works without the client script.
type PageState struct {
	// Categories holds the selected category per registry. A missing entry
	// means All.
	Categories map[content.Kind]string
	// Open addresses the modal shown on top of the page: "<kind>/<slug>" or
	// OpenAvatar.
	Open string
	Menu bool
	// Sent and Error carry the outcome of the last form post, named by form
	// kind.
	Sent  string
	Error string
	Theme config.Theme
}

// ParseState reads the page state from a request.
func ParseState(r *http.Request, defaultTheme config.Theme) PageState {
	st := StateFromQuery(r.URL.Query())
	st.Theme = defaultTheme
	if c, err := r.Cookie(ThemeCookie); err == nil {
		if t, ok := parseTheme(c.Value); ok {
			st.Theme = t
		}
	}
	return st
}

// StateFromQuery reads the URL part of the page state.
func StateFromQuery(q url.Values) PageState {
	st := PageState{Categories: map[content.Kind]string{}}
	for _, kind := range content.Kinds() {
		if c := strings.TrimSpace(q.Get(string(kind))); c != "" && !content.IsAll(c) {
			st.Categories[kind] = c
		}
	}
	st.Open = strings.Trim(q.Get("open"), "/")
	st.Menu = q.Get("menu") == "1"
	st.Sent = q.Get("sent")
	st.Error = q.Get("error")
	return st
}

func parseTheme(s string) (config.Theme, bool) {
	switch t := config.Theme(s); t {
	case config.ThemeDark, config.ThemeLight:
		return t, true
	}
	return "", false
}

// Category returns the selected category of a registry, or All.
func (s PageState) Category(kind content.Kind) string {
	if c, ok := s.Categories[kind]; ok {
		return c
	}
	return content.All
}

// OpenTarget splits Open into a registry kind and slug. ok is false when
// Open does not address a record.
func (s PageState) OpenTarget() (kind content.Kind, slug string, ok bool) {
	k, slug, found := strings.Cut(s.Open, "/")
	if !found || slug == "" {
		return "", "", false
	}
	kind, err := content.ParseKind(k)
	if err != nil {
		return "", "", false
	}
	return kind, slug, true
}

func (s PageState) clone() PageState {
	s.Categories = maps.Clone(s.Categories)
	if s.Categories == nil {
		s.Categories = map[content.Kind]string{}
	}
	return s
}

// WithCategory selects a category. All clears the selection. Form outcome
// flags are dropped so a banner is shown once.
func (s PageState) WithCategory(kind content.Kind, category string) PageState {
	s = s.clone()
	if content.IsAll(category) {
		delete(s.Categories, kind)
	} else {
		s.Categories[kind] = category
	}
	s.Sent, s.Error = "", ""
	return s
}

// WithOpen addresses a modal. An empty target closes it.
func (s PageState) WithOpen(target string) PageState {
	s = s.clone()
	s.Open = target
	s.Sent, s.Error = "", ""
	return s
}

// WithMenu opens or closes the mobile menu.
func (s PageState) WithMenu(open bool) PageState {
	s = s.clone()
	s.Menu = open
	s.Sent, s.Error = "", ""
	return s
}

// Query encodes the URL part of the state.
func (s PageState) Query() url.Values {
	q := url.Values{}
	for kind, c := range s.Categories {
		q.Set(string(kind), c)
	}
	if s.Open != "" {
		q.Set("open", s.Open)
	}
	if s.Menu {
		q.Set("menu", "1")
	}
	if s.Sent != "" {
		q.Set("sent", s.Sent)
	}
	if s.Error != "" {
		q.Set("error", s.Error)
	}
	return q
}

// Href is the landing page URL of the state, scrolled to fragment.
func (s PageState) Href(fragment string) string {
	href := "/"
	if q := s.Query(); len(q) > 0 {
		href += "?" + q.Encode()
	}
	if fragment != "" {
		href += "#" + fragment
	}
	return href
}
