package site

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/logging"
	"github.com/elisdimitrova/psysite/internal/progress"
)

var (
	slugA    = content.Slugify("Първа книга")
	slugB    = content.Slugify("Втора книга")
	slugPost = content.Slugify("Статия за стреса")
)

func testLibrary() *content.Library {
	books := []content.Book{
		{Title: "Първа книга", ImgSrc: "/img/a.jpg", Categories: []string{"Психология", "Самопомощ"}, Description: "a",
			ExternalLink: "https://shop.example.com/a", Details: content.BookDetails{Author: "Елис Петрова", Year: 2018}},
		{Title: "Втора книга", ImgSrc: "/img/missing.jpg", Categories: []string{"Психология"}, Description: "b"},
		{Title: "Трета книга", ImgSrc: "https://cdn.example.com/c.jpg", Categories: []string{"Самопомощ"}, Description: "c"},
	}
	posts := []content.BlogPost{{
		Title:   "Статия за стреса",
		Date:    "1 юни 2023",
		Excerpt: "кратко",
		Content: "<p>" + strings.Repeat("дума ", 450) + "</p>",
		Tags:    []string{"Стрес", "Психично здраве", "Практика"},
	}}
	services := []content.Service{{
		Title:       "Онлайн сесии",
		Categories:  []string{"Онлайн"},
		Description: "s",
		BookingLink: "https://calendly.com",
		Facts:       content.ServiceFacts{Duration: "50 минути"},
	}}
	return content.NewLibrary(posts, books, services, content.Profile{})
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{"img/a.jpg": {Data: []byte("jpeg")}}
}

func newTestRenderer(t *testing.T, logs *bytes.Buffer) *Renderer {
	t.Helper()
	if logs == nil {
		logs = &bytes.Buffer{}
	}
	rend, err := NewRenderer(config.DefaultConfig(), testLibrary(), testAssets(), logging.NewWithWriter(logs, false))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return rend
}

func newTestRouter(t *testing.T) (*Renderer, chi.Router) {
	t.Helper()
	rend := newTestRenderer(t, nil)
	r := chi.NewRouter()
	RegisterRoutes(r, rend)
	return rend, r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func titles(cards []Card) []string {
	var out []string
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListingFiltersByCategory(t *testing.T) {
	rend := newTestRenderer(t, nil)

	l := rend.Listing(content.KindBooks, StateFromQuery(url.Values{"books": {"Психология"}}))
	if got := titles(l.Cards); !equal(got, []string{"Първа книга", "Втора книга"}) {
		t.Errorf("cards = %v", got)
	}
	if l.Empty {
		t.Error("listing should not be empty")
	}
	for _, b := range l.Categories {
		if b.Active != (b.Label == "Психология") {
			t.Errorf("button %q active = %v", b.Label, b.Active)
		}
	}
	if l.Categories[0].Label != content.All {
		t.Errorf("first button = %q, want %q", l.Categories[0].Label, content.All)
	}
}

func TestListingAllAndUnknownCategory(t *testing.T) {
	rend := newTestRenderer(t, nil)
	want := []string{"Първа книга", "Втора книга", "Трета книга"}

	for _, q := range []url.Values{{}, {"books": {content.All}}, {"books": {"Няма такава"}}} {
		l := rend.Listing(content.KindBooks, StateFromQuery(q))
		if got := titles(l.Cards); !equal(got, want) {
			t.Errorf("query %v: cards = %v", q, got)
		}
		if l.Selected != content.All {
			t.Errorf("query %v: selected = %q", q, l.Selected)
		}
	}
}

func TestListingEmptyStateResets(t *testing.T) {
	rend := newTestRenderer(t, nil)

	l := rend.Listing(content.KindBooks, StateFromQuery(url.Values{"books": {"Семейство"}}))
	if !l.Empty || len(l.Cards) != 0 {
		t.Fatalf("expected empty listing, got %v", titles(l.Cards))
	}
	if l.EmptyText != "Няма намерени книги в тази категория." {
		t.Errorf("empty text = %q", l.EmptyText)
	}
	if l.ResetHref != "/#books" {
		t.Errorf("reset href = %q", l.ResetHref)
	}

	u, err := url.Parse(l.ResetHref)
	if err != nil {
		t.Fatal(err)
	}
	reset := rend.Listing(content.KindBooks, StateFromQuery(u.Query()))
	if reset.Empty || len(reset.Cards) != 3 || reset.Selected != content.All {
		t.Errorf("after reset: empty=%v cards=%d selected=%q", reset.Empty, len(reset.Cards), reset.Selected)
	}
}

func TestEmptyStateRendered(t *testing.T) {
	_, r := newTestRouter(t)

	w := get(r, "/?services="+url.QueryEscape("Групови"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if n := strings.Count(w.Body.String(), `<div class="empty">`); n != 1 {
		t.Errorf("visible empty states = %d, want 1", n)
	}
	if !strings.Contains(w.Body.String(), "Няма намерени услуги в тази категория.") {
		t.Error("expected services empty text")
	}

	if n := strings.Count(get(r, "/").Body.String(), `<div class="empty">`); n != 0 {
		t.Errorf("unfiltered page shows %d empty states", n)
	}
}

// listingMarkup cuts the listing of kind out of a rendered page.
func listingMarkup(t *testing.T, page, kind string) string {
	t.Helper()
	start := strings.Index(page, `id="listing-`+kind+`"`)
	if start < 0 {
		t.Fatalf("no %s listing in page", kind)
	}
	end := strings.Index(page[start:], "</section>")
	if end < 0 {
		t.Fatalf("unterminated %s listing", kind)
	}
	return page[start : start+end]
}

var hiddenCard = regexp.MustCompile(`<article class="card [^>]*\shidden>`)

func TestFilteredPageRendersWholeRegistry(t *testing.T) {
	_, r := newTestRouter(t)

	tests := []struct {
		category string
		hidden   int
		empty    bool
	}{
		{"Семейство", 3, true},
		{"Психология", 1, false},
		{content.All, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			w := get(r, "/?books="+url.QueryEscape(tt.category))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			books := listingMarkup(t, w.Body.String(), "books")

			// The reset and "all" controls re-filter in place, so every
			// record has to be in the markup.
			if n := strings.Count(books, `<article class="card card-books`); n != 3 {
				t.Errorf("book cards = %d, want the whole registry (3)", n)
			}
			if n := len(hiddenCard.FindAllString(books, -1)); n != tt.hidden {
				t.Errorf("hidden cards = %d, want %d", n, tt.hidden)
			}
			if got := strings.Contains(books, `<div class="empty">`); got != tt.empty {
				t.Errorf("empty state visible = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestContentBlocksReveal(t *testing.T) {
	_, r := newTestRouter(t)
	page := get(r, "/").Body.String()

	if n := strings.Count(page, `<article class="card card-books reveal reveal-hidden" data-reveal`); n != 3 {
		t.Errorf("book cards under reveal = %d, want 3", n)
	}
	for _, section := range []string{"about", "books", "services", "blog", "contact"} {
		body := page[strings.Index(page, `<section id="`+section+`"`):]
		body = body[:strings.Index(body, "</section>")]
		if !strings.Contains(body, `class="reveal reveal-hidden" data-reveal`) {
			t.Errorf("section %s has no revealed block", section)
		}
	}
	if !strings.Contains(jsContent, "[data-reveal]") || !strings.Contains(jsContent, "IntersectionObserver") {
		t.Error("script does not drive the reveal")
	}
}

func TestFilterKeepsOtherState(t *testing.T) {
	st := StateFromQuery(url.Values{"blog": {"Стрес"}, "sent": {"newsletter"}})
	next := st.WithCategory(content.KindBooks, "Психология")

	if next.Category(content.KindBlog) != "Стрес" || next.Category(content.KindBooks) != "Психология" {
		t.Errorf("categories = %v", next.Categories)
	}
	if next.Sent != "" {
		t.Error("form flag should be dropped")
	}
	if st.Category(content.KindBooks) != content.All {
		t.Error("WithCategory must not modify the receiver")
	}

	u, _ := url.Parse(next.Href("books"))
	if u.Fragment != "books" || u.Query().Get("books") != "Психология" || u.Query().Get("blog") != "Стрес" {
		t.Errorf("href = %q", next.Href("books"))
	}
}

func TestOpenModalLocksScroll(t *testing.T) {
	var logs bytes.Buffer
	rend := newTestRenderer(t, &logs)

	p := rend.Page(StateFromQuery(url.Values{"open": {"books/" + slugA}}))
	if !p.ScrollLocked {
		t.Error("body should be scroll-locked while a modal is open")
	}
	if p.Open == nil || p.Open.Title != "Първа книга" {
		t.Fatalf("open modal = %+v", p.Open)
	}
	if p.Open.CloseHref != "/#books" {
		t.Errorf("close href = %q", p.Open.CloseHref)
	}
	if strings.Contains(logs.String(), "scroll lock") {
		t.Errorf("lock leaked: %s", logs.String())
	}

	closed := rend.Page(StateFromQuery(url.Values{}))
	if closed.ScrollLocked || closed.Open != nil {
		t.Error("no modal should be open")
	}
}

func TestOpenModalOfFilteredOutCardIsNotMounted(t *testing.T) {
	rend := newTestRenderer(t, nil)

	p := rend.Page(StateFromQuery(url.Values{"books": {"Самопомощ"}, "open": {"books/" + slugB}}))
	if p.Open != nil || p.ScrollLocked {
		t.Errorf("open = %+v, locked = %v", p.Open, p.ScrollLocked)
	}
}

func TestAvatarAndMenu(t *testing.T) {
	rend := newTestRenderer(t, nil)

	p := rend.Page(StateFromQuery(url.Values{"open": {OpenAvatar}}))
	if !p.AvatarOpen || !p.ScrollLocked {
		t.Errorf("avatar open = %v, locked = %v", p.AvatarOpen, p.ScrollLocked)
	}

	p = rend.Page(StateFromQuery(url.Values{"menu": {"1"}}))
	if !p.MenuOpen {
		t.Error("menu should be open")
	}
	if p.ScrollLocked {
		t.Error("the menu does not lock scrolling")
	}
	if p.MenuCloseHref != "/" {
		t.Errorf("menu close href = %q", p.MenuCloseHref)
	}
}

func TestPageRendersScrollLockedBody(t *testing.T) {
	_, r := newTestRouter(t)

	w := get(r, "/?open=books/"+slugA)
	body := w.Body.String()
	if !strings.Contains(body, `class="scroll-locked"`) {
		t.Error("expected scroll-locked body class")
	}
	if !strings.Contains(body, `id="modal-books-`+slugA+`"`) {
		t.Error("expected the book modal")
	}
	if !strings.Contains(body, "Детайли за книгата") || !strings.Contains(body, "Елис Петрова") {
		t.Error("expected the book fact sheet")
	}

	w = get(r, "/")
	if strings.Contains(w.Body.String(), `class="scroll-locked"`) {
		t.Error("closed page must not lock scrolling")
	}
}

func TestImageFallback(t *testing.T) {
	rend := newTestRenderer(t, nil)
	cards := rend.Listing(content.KindBooks, PageState{}).Cards

	if cards[0].Image.Missing {
		t.Error("existing local image reported missing")
	}
	if !cards[1].Image.Missing || cards[1].Image.Initials != "ВК" {
		t.Errorf("missing image = %+v", cards[1].Image)
	}
	if cards[2].Image.Missing {
		t.Error("remote images are left to the browser")
	}

	noAssets, err := NewRenderer(config.DefaultConfig(), testLibrary(), nil, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if img := noAssets.Listing(content.KindBooks, PageState{}).Cards[0].Image; !img.Missing {
		t.Error("without a static dir every local image falls back")
	}
}

func TestBlogCard(t *testing.T) {
	rend := newTestRenderer(t, nil)
	card := rend.Listing(content.KindBlog, PageState{}).Cards[0]

	if !equal(card.Tags, []string{"Стрес", "Психично здраве"}) || card.MoreTags != 1 {
		t.Errorf("tags = %v +%d", card.Tags, card.MoreTags)
	}
	if card.ReadingTime != 3 {
		t.Errorf("reading time = %d, want 3", card.ReadingTime)
	}

	_, r := newTestRouter(t)
	body := get(r, "/").Body.String()
	for _, want := range []string{"+1 още", "3 мин. четене"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestBlogModal(t *testing.T) {
	rend := newTestRenderer(t, nil)

	mv, ok := rend.Modal(content.KindBlog, slugPost, PageState{})
	if !ok {
		t.Fatal("post not found")
	}
	if len(mv.Share) != 3 || !strings.Contains(mv.Share[0].URL, url.QueryEscape("/blog/"+slugPost+"/")) {
		t.Errorf("share links = %+v", mv.Share)
	}
	if mv.Author != "Елис Димитрова" {
		t.Errorf("author = %q, want the configured author", mv.Author)
	}
	if _, ok := rend.Modal(content.KindBlog, "nope", PageState{}); ok {
		t.Error("unknown slug should not resolve")
	}
}

func TestDetailRoutes(t *testing.T) {
	_, r := newTestRouter(t)

	for _, target := range []string{"/books/" + slugA, "/books/" + slugA + "/", "/blog/" + slugPost} {
		w := get(r, target)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", target, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), "scroll-locked") {
			t.Errorf("%s: expected open modal", target)
		}
	}

	for _, target := range []string{"/books/nope", "/?open=books/nope"} {
		if w := get(r, target); w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, w.Code)
		}
	}
}

func TestListingAPI(t *testing.T) {
	_, r := newTestRouter(t)

	w := get(r, "/api/books?category="+url.QueryEscape("Самопомощ"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var l Listing
	if err := json.Unmarshal(w.Body.Bytes(), &l); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := titles(l.Cards); !equal(got, []string{"Първа книга", "Трета книга"}) {
		t.Errorf("cards = %v", got)
	}

	w = get(r, "/api/books/categories")
	var cats []string
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !equal(cats, append([]string{content.All}, content.BookCategories()...)) {
		t.Errorf("categories = %v", cats)
	}

	w = get(r, "/api/services/"+content.Slugify("Онлайн сесии"))
	var svc content.Service
	if err := json.Unmarshal(w.Body.Bytes(), &svc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if svc.Title != "Онлайн сесии" {
		t.Errorf("service = %+v", svc)
	}

	for _, target := range []string{"/api/movies", "/api/books/nope"} {
		if w := get(r, target); w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, w.Code)
		}
	}
}

func TestThemeCookie(t *testing.T) {
	_, r := newTestRouter(t)

	w := get(r, "/theme?to=light&back="+url.QueryEscape("/?open=avatar#about"))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?open=avatar#about" {
		t.Errorf("location = %q", loc)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != ThemeCookie || cookies[0].Value != "light" {
		t.Errorf("cookies = %v", cookies)
	}

	for _, back := range []string{"https://evil.example.com/", "//evil.example.com", "relative"} {
		w := get(r, "/theme?to=dark&back="+url.QueryEscape(back))
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("back %q redirected to %q", back, loc)
		}
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: ThemeCookie, Value: "light"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if !strings.Contains(w.Body.String(), `data-theme="light"`) {
		t.Error("expected the light theme from the cookie")
	}
	if !strings.Contains(get(r, "/").Body.String(), `data-theme="dark"`) {
		t.Error("expected the configured default theme")
	}
}

func TestGiveawayBanner(t *testing.T) {
	rend := newTestRenderer(t, nil)

	p := rend.Page(StateFromQuery(url.Values{"sent": {"giveaway"}}))
	if !p.Giveaway.Visible || p.Giveaway.Phase != "entering" || p.Giveaway.ResetMS != 5000 {
		t.Errorf("giveaway = %+v", p.Giveaway)
	}
	if p := rend.Page(PageState{}); p.Giveaway.Visible {
		t.Error("banner only shows after a signup")
	}
}

func TestAssetsAndIndexes(t *testing.T) {
	_, r := newTestRouter(t)

	if w := get(r, "/style.css"); !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css content type = %q", w.Header().Get("Content-Type"))
	}
	if w := get(r, "/script.js"); !strings.Contains(w.Body.String(), "IntersectionObserver") {
		t.Error("script.js not served")
	}

	var entries []SearchEntry
	if err := json.Unmarshal(get(r, "/search-index.json").Body.Bytes(), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("entries = %d, want 5", len(entries))
	}
	if entries[0].URL != "/books/"+slugA+"/" || entries[4].Kind != content.KindBlog {
		t.Errorf("entries = %+v", entries)
	}

	var ex Export
	if err := json.Unmarshal(get(r, "/content.json").Body.Bytes(), &ex); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(ex.Books) != 3 || len(ex.Categories[content.KindBlog]) != 4 {
		t.Errorf("export = %d books, blog categories %v", len(ex.Books), ex.Categories[content.KindBlog])
	}
}

func TestSwapLibrary(t *testing.T) {
	rend := newTestRenderer(t, nil)
	rend.SetLibrary(content.NewLibrary(nil, nil, nil, content.Profile{}))

	if l := rend.Listing(content.KindBooks, PageState{}); !l.Empty {
		t.Error("expected the swapped-in empty library")
	}
}

func TestGenerate(t *testing.T) {
	staticDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(staticDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "img", "a.jpg"), []byte("jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Build.OutputDir = t.TempDir()
	cfg.Server.StaticDir = staticDir

	var out bytes.Buffer
	gen := NewGenerator(cfg, testLibrary(), progress.NewLogReporter(&out, "Building site"), logging.Discard())
	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 6 {
		t.Errorf("pages = %d, want 6", n)
	}

	for _, f := range []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		"content.json",
		filepath.Join("books", slugA, "index.html"),
		filepath.Join("blog", slugPost, "index.html"),
		filepath.Join("img", "a.jpg"),
	} {
		if _, err := os.Stat(filepath.Join(cfg.Build.OutputDir, f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}

	index, err := os.ReadFile(filepath.Join(cfg.Build.OutputDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), `href="/books/`+slugA+`/"`) {
		t.Error("static pages should link to pre-rendered detail pages")
	}

	detail, err := os.ReadFile(filepath.Join(cfg.Build.OutputDir, "books", slugA, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(detail), "scroll-locked") {
		t.Error("detail page should render with its modal open")
	}

	if !strings.Contains(out.String(), "Building site: 10 files") {
		t.Errorf("progress output = %q", out.String())
	}
}
