package site

import (
	"encoding/json"
	"os"
	"unicode/utf8"

	"github.com/elisdimitrova/psysite/internal/content"
)

// maxSearchContent bounds the plain text stored per entry.
const maxSearchContent = 2000

// SearchEntry represents a single searchable record of the site.
type SearchEntry struct {
	Kind       content.Kind `json:"kind"`
	Title      string       `json:"title"`
	Slug       string       `json:"slug"`
	URL        string       `json:"url"`
	Summary    string       `json:"summary"`
	Categories []string     `json:"categories"`
	Content    string       `json:"content"`
}

// BuildSearchIndex lists every record of the library in page order:
// books, services, then blog posts.
func BuildSearchIndex(lib *content.Library) []SearchEntry {
	var entries []SearchEntry
	add := func(kind content.Kind, rec content.Record, title, summary, html string) {
		entries = append(entries, SearchEntry{
			Kind:       kind,
			Title:      title,
			Slug:       rec.Slug(),
			URL:        DetailPath(kind, rec.Slug()),
			Summary:    summary,
			Categories: rec.CategorySet(),
			Content:    truncate(content.PlainText(html), maxSearchContent),
		})
	}
	for _, b := range lib.Books.All() {
		add(content.KindBooks, b, b.Title, b.Description, b.ModalContent)
	}
	for _, s := range lib.Services.All() {
		add(content.KindServices, s, s.Title, s.Description, s.ModalContent)
	}
	for _, p := range lib.Posts.All() {
		add(content.KindBlog, p, p.Title, p.Excerpt, p.Content)
	}
	return entries
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// Export is the machine-readable dump of the library served as
// content.json.
type Export struct {
	Categories map[content.Kind][]string `json:"categories"`
	Books      []content.Book            `json:"books"`
	Services   []content.Service         `json:"services"`
	Blog       []content.BlogPost        `json:"blog"`
}

// BuildExport collects the library into an Export.
func BuildExport(lib *content.Library) Export {
	ex := Export{
		Categories: map[content.Kind][]string{},
		Books:      lib.Books.All(),
		Services:   lib.Services.All(),
		Blog:       lib.Posts.All(),
	}
	for _, kind := range content.Kinds() {
		ex.Categories[kind] = lib.Categories(kind)
	}
	return ex
}
