package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/ui"
)

// Renderer assembles the landing page from the library, the configuration
// and the visitor's page state.
type Renderer struct {
	cfg        *config.Config
	lib        atomic.Pointer[content.Library]
	images     images
	logger     *log.Logger
	tmpl       *template.Template
	clock      ui.Clock
	static     bool
	liveReload string
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithClock replaces the clock driving the giveaway banner.
func WithClock(c ui.Clock) Option {
	return func(r *Renderer) { r.clock = c }
}

// WithStaticLinks makes detail links point at pre-rendered pages
// (/<kind>/<slug>/) instead of the ?open= query, for static hosting.
func WithStaticLinks() Option {
	return func(r *Renderer) { r.static = true }
}

// WithLiveReload makes pages connect to the websocket at path and reload
// when told to.
func WithLiveReload(path string) Option {
	return func(r *Renderer) { r.liveReload = path }
}

// NewRenderer parses the page templates. assets is the static file tree
// local images are checked against; nil treats every local image as
// missing.
func NewRenderer(cfg *config.Config, lib *content.Library, assets fs.FS, logger *log.Logger, opts ...Option) (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(templateFuncs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r := &Renderer{
		cfg:    cfg,
		images: images{assets: assets},
		logger: logger,
		tmpl:   tmpl,
		clock:  ui.SystemClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lib.Store(lib)
	return r, nil
}

// Library returns the library pages are currently rendered from.
func (r *Renderer) Library() *content.Library { return r.lib.Load() }

// SetLibrary swaps in a reloaded library. Requests in flight keep the one
// they started with.
func (r *Renderer) SetLibrary(lib *content.Library) { r.lib.Store(lib) }

// GiveawayView is the success banner of the free-book form.
type GiveawayView struct {
	Visible bool
	Phase   string
	ResetMS int64
}

// Settings are the thresholds and timings handed to the client script.
type Settings struct {
	ProgressThreshold  float64 `json:"progressThreshold"`
	BackToTopThreshold float64 `json:"backToTopThreshold"`
	SectionThreshold   float64 `json:"sectionThreshold"`
	FilterScrollOffset float64 `json:"filterScrollOffset"`
	WobbleMS           int64   `json:"wobbleMs"`
	RevealMS           int64   `json:"revealMs"`
	LiveReload         string  `json:"liveReload,omitempty"`
}

// Page is everything the page template needs. CloseHref is the page with
// no modal open.
type Page struct {
	Site          config.SiteConfig
	Theme         config.Theme
	ThemeHref     string
	Avatar        Image
	Profile       content.Profile
	Sidebar       []ui.LinkView
	Socials       []ui.LinkView
	Books         Listing
	Services      Listing
	Blog          Listing
	Open          *ModalView
	AvatarOpen    bool
	AvatarHref    string
	CloseHref     string
	MenuOpen      bool
	MenuHref      string
	MenuCloseHref string
	ScrollLocked  bool
	Chrome        ui.ChromeState
	Sent          string
	Error         string
	Giveaway      GiveawayView
	Settings      Settings
}

// Listing filters one registry by the category selected in st. A category
// the registry does not know falls back to All.
func (r *Renderer) Listing(kind content.Kind, st PageState) Listing {
	return r.listing(r.Library(), kind, st)
}

func (r *Renderer) listing(lib *content.Library, kind content.Kind, st PageState) Listing {
	cats := lib.Categories(kind)
	selected := st.Category(kind)
	if !slices.Contains(cats, selected) {
		selected = content.All
	}

	l := Listing{
		Kind:         kind,
		Selected:     selected,
		ScrollOffset: r.cfg.UI.FilterScrollOffset,
	}
	for _, c := range cats {
		l.Categories = append(l.Categories, CategoryButton{
			Label:  c,
			Href:   st.WithCategory(kind, c).Href(string(kind)),
			Active: c == selected,
		})
	}
	// Every record is rendered so the script can re-filter client-side;
	// the ones outside the selection start hidden.
	matched := matchingSlugs(lib, kind, selected)
	for _, c := range r.cards(lib, kind, st) {
		c.Hidden = !matched[c.Slug]
		l.Rendered = append(l.Rendered, c)
		if !c.Hidden {
			l.Cards = append(l.Cards, c)
		}
	}
	l.Empty = len(l.Cards) == 0
	l.EmptyText = emptyText(kind)
	l.ResetHref = st.WithCategory(kind, content.All).Href(string(kind))
	return l
}

// matchingSlugs is the result of filtering the kind's registry by category.
func matchingSlugs(lib *content.Library, kind content.Kind, category string) map[string]bool {
	slugs := map[string]bool{}
	switch kind {
	case content.KindBlog:
		for _, p := range lib.Posts.Filter(category) {
			slugs[p.Slug()] = true
		}
	case content.KindBooks:
		for _, b := range lib.Books.Filter(category) {
			slugs[b.Slug()] = true
		}
	case content.KindServices:
		for _, s := range lib.Services.Filter(category) {
			slugs[s.Slug()] = true
		}
	}
	return slugs
}

// cards builds a card for every record of the kind, in registry order.
func (r *Renderer) cards(lib *content.Library, kind content.Kind, st PageState) []Card {
	var cards []Card
	switch kind {
	case content.KindBlog:
		for _, p := range lib.Posts.All() {
			tags, more := splitTags(p.Tags)
			cards = append(cards, Card{
				Kind:        kind,
				Slug:        p.Slug(),
				Title:       p.Title,
				Description: p.Excerpt,
				Image:       r.images.resolve(p.ImageURL, p.Title),
				Categories:  p.Tags,
				Tags:        tags,
				MoreTags:    more,
				Date:        p.Date,
				ReadingTime: p.ReadingTime(r.cfg.Content.WordsPerMinute),
				OpenHref:    r.openHref(kind, p.Slug(), st),
			})
		}
	case content.KindBooks:
		for _, b := range lib.Books.All() {
			cards = append(cards, Card{
				Kind:        kind,
				Slug:        b.Slug(),
				Title:       b.Title,
				Description: b.Description,
				Image:       r.images.resolve(b.ImgSrc, b.Title),
				Categories:  b.Categories,
				Tags:        b.Tech,
				OpenHref:    r.openHref(kind, b.Slug(), st),
				Links:       bookLinks(b),
			})
		}
	case content.KindServices:
		for _, s := range lib.Services.All() {
			cards = append(cards, Card{
				Kind:        kind,
				Slug:        s.Slug(),
				Title:       s.Title,
				Description: s.Description,
				Image:       r.images.resolve(s.ImgSrc, s.Title),
				Categories:  s.Categories,
				Tags:        s.Tech,
				OpenHref:    r.openHref(kind, s.Slug(), st),
				Links:       serviceLinks(s),
			})
		}
	}
	return cards
}

func bookLinks(b content.Book) []ui.LinkView {
	var links []ui.Link
	if b.ExternalLink != "" {
		links = append(links, ui.MenuLink{Label: "Купи книгата", Href: b.ExternalLink, Icon: "cart", External: true})
	}
	if b.SourceLink != "" {
		links = append(links, ui.MenuLink{Label: "Прочети откъс", Href: b.SourceLink, Icon: "book", External: true})
	}
	return ui.ResolveAll(links, "")
}

func serviceLinks(s content.Service) []ui.LinkView {
	var links []ui.Link
	if s.BookingLink != "" {
		links = append(links, ui.MenuLink{Label: "Онлайн записване", Href: s.BookingLink, Icon: "calendar", External: true})
	}
	if s.ScheduleLink != "" {
		links = append(links, ui.MenuLink{Label: "Виж графика", Href: s.ScheduleLink, Icon: "video", External: true})
	}
	return ui.ResolveAll(links, "")
}

func (r *Renderer) openHref(kind content.Kind, slug string, st PageState) string {
	if r.static {
		return DetailPath(kind, slug)
	}
	return st.WithOpen(string(kind) + "/" + slug).Href(string(kind))
}

func (r *Renderer) closeHref(kind content.Kind, st PageState) string {
	if r.static {
		return "/#" + string(kind)
	}
	return st.WithOpen("").Href(string(kind))
}

// DetailPath is the canonical path of a record's own page.
func DetailPath(kind content.Kind, slug string) string {
	return "/" + string(kind) + "/" + slug + "/"
}

// Modal builds the detail view of a record. ok is false when the registry
// has no record with that slug.
func (r *Renderer) Modal(kind content.Kind, slug string, st PageState) (ModalView, bool) {
	return r.modal(r.Library(), kind, slug, st)
}

func (r *Renderer) modal(lib *content.Library, kind content.Kind, slug string, st PageState) (ModalView, bool) {
	rec, ok := lib.Find(kind, slug)
	if !ok {
		return ModalView{}, false
	}
	mv := ModalView{
		ID:        "modal-" + string(kind) + "-" + slug,
		Kind:      kind,
		Slug:      slug,
		CloseHref: r.closeHref(kind, st),
	}
	switch rec := rec.(type) {
	case content.BlogPost:
		author := rec.Author
		if author == "" {
			author = r.cfg.Site.Author.Name
		}
		mv.Title = rec.Title
		mv.Image = r.images.resolve(rec.ImageURL, rec.Title)
		mv.Body = template.HTML(rec.Content)
		mv.Tags = rec.Tags
		mv.Date = rec.Date
		mv.Author = author
		mv.ReadingTime = rec.ReadingTime(r.cfg.Content.WordsPerMinute)
		mv.Share = content.ShareLinks(r.absoluteURL(DetailPath(kind, slug)), rec.Title)
	case content.Book:
		mv.Title = rec.Title
		mv.Image = r.images.resolve(rec.ImgSrc, rec.Title)
		mv.Body = template.HTML(rec.ModalContent)
		mv.Tags = rec.Tech
		mv.Facts = bookFacts(rec.Details)
		mv.Links = bookLinks(rec)
	case content.Service:
		mv.Title = rec.Title
		mv.Image = r.images.resolve(rec.ImgSrc, rec.Title)
		mv.Body = template.HTML(rec.ModalContent)
		mv.Tags = rec.Tech
		mv.Facts = r.serviceFacts(rec.Facts)
		mv.Links = serviceLinks(rec)
	}
	return mv, true
}

func bookFacts(d content.BookDetails) []Fact {
	var facts []Fact
	add := func(label, value string) {
		if value != "" && value != "0" {
			facts = append(facts, Fact{Label: label, Value: value})
		}
	}
	add("Автор", d.Author)
	add("Издателство", d.Publisher)
	add("Година", fmt.Sprint(d.Year))
	add("Страници", fmt.Sprint(d.Pages))
	add("ISBN", d.ISBN)
	add("Формат", d.Format)
	return facts
}

func (r *Renderer) serviceFacts(f content.ServiceFacts) []Fact {
	var facts []Fact
	for _, kv := range []Fact{
		{"Продължителност", f.Duration},
		{"Локация", f.Location},
		{"Участници", f.Participants},
		{"Рейтинг", f.Rating},
		{"Телефон", r.cfg.Site.Phone},
		{"Имейл", r.cfg.Site.Email},
	} {
		if kv.Value != "" {
			facts = append(facts, kv)
		}
	}
	return facts
}

func (r *Renderer) absoluteURL(path string) string {
	return strings.TrimSuffix(r.cfg.Site.URL, "/") + path
}

// Page assembles the landing page for st.
//
// Every card mounts a modal against one scroll lock for the request and the
// modal addressed by st.Open is opened. The body is scroll-locked while any
// modal is open. All modals are unmounted before Page returns, which must
// leave the lock free.
func (r *Renderer) Page(st PageState) Page {
	lib := r.Library()
	site := r.cfg.Site

	p := Page{
		Site:     site,
		Theme:    st.Theme,
		Avatar:   r.images.resolve(site.Author.Avatar, site.Author.Name),
		Profile:  lib.Profile,
		Sidebar:  ui.ResolveAll(ui.SidebarLinks(), "about"),
		Socials:  ui.ResolveAll(ui.SocialLinks(site.Socials), ""),
		Books:    r.listing(lib, content.KindBooks, st),
		Services: r.listing(lib, content.KindServices, st),
		Blog:     r.listing(lib, content.KindBlog, st),
		Chrome:   ui.NewChrome(r.cfg.UI).State(0, 0, 0),
		Sent:     st.Sent,
		Error:    st.Error,
		Settings: Settings{
			ProgressThreshold:  r.cfg.UI.ProgressThreshold,
			BackToTopThreshold: r.cfg.UI.BackToTopThreshold,
			SectionThreshold:   r.cfg.UI.SectionThreshold,
			FilterScrollOffset: r.cfg.UI.FilterScrollOffset,
			WobbleMS:           r.cfg.UI.WobbleInterval.Milliseconds(),
			RevealMS:           r.cfg.UI.RevealDuration.Milliseconds(),
			LiveReload:         r.liveReload,
		},
	}
	if p.Theme == "" {
		p.Theme = site.DefaultTheme
	}
	p.ThemeHref = "/theme?to=" + string(otherTheme(p.Theme)) + "&back=" + url.QueryEscape(st.Href(""))

	lock := &ui.ScrollLock{}
	var mounted []*ui.Modal
	mount := func(target string, m *ui.Modal) *ui.Modal {
		if st.Open == target {
			m.Open()
		}
		mounted = append(mounted, m)
		return m
	}

	for _, l := range []Listing{p.Books, p.Services, p.Blog} {
		for _, c := range l.Cards {
			m := mount(string(c.Kind)+"/"+c.Slug, ui.NewModal(lock))
			if !m.IsOpen() {
				continue
			}
			if mv, ok := r.modal(lib, c.Kind, c.Slug, st); ok {
				p.Open = &mv
			}
		}
	}

	avatar := mount(OpenAvatar, ui.NewModal(lock))
	p.AvatarOpen = avatar.IsOpen()
	p.AvatarHref = st.WithOpen(OpenAvatar).Href("")
	p.CloseHref = st.WithOpen("").Href("")

	menu := ui.NewModal(nil)
	if st.Menu {
		menu.Open()
	}
	mounted = append(mounted, menu)
	p.MenuOpen = menu.IsOpen()
	p.MenuHref = st.WithMenu(true).Href("")
	p.MenuCloseHref = st.WithMenu(false).Href("")

	if st.Sent == "giveaway" {
		p.Giveaway = r.giveaway()
	}

	p.ScrollLocked = lock.Locked()
	for _, m := range mounted {
		m.Unmount()
	}
	if lock.Locked() {
		r.logger.Error("scroll lock still held after render", "holds", lock.Holds(), "open", st.Open)
	}
	return p
}

// giveaway starts the success banner's reveal with its auto-hide hold and
// captures the phase it enters. The client script plays the rest.
func (r *Renderer) giveaway() GiveawayView {
	rv := ui.NewReveal(r.clock, r.cfg.UI.RevealDuration, ui.WithAutoHide(r.cfg.UI.GiveawayReset))
	defer rv.Stop()
	rv.Show()
	state := rv.State()
	return GiveawayView{
		Visible: state != ui.Hidden,
		Phase:   state.String(),
		ResetMS: r.cfg.UI.GiveawayReset.Milliseconds(),
	}
}

func otherTheme(t config.Theme) config.Theme {
	if t == config.ThemeLight {
		return config.ThemeDark
	}
	return config.ThemeLight
}

// Render writes the landing page for st.
func (r *Renderer) Render(w io.Writer, st PageState) error {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.Page(st)); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
