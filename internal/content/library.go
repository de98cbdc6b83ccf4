package content

import (
	"embed"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/elisdimitrova/psysite/internal/config"
)

//go:embed posts/*.md
var builtinPosts embed.FS

// Library bundles the three registries and the author profile.
type Library struct {
	Posts    *Registry[BlogPost]
	Books    *Registry[Book]
	Services *Registry[Service]
	Profile  Profile
}

// NewLibrary assembles a library from already-built records. Books and
// services use their declared category lists.
func NewLibrary(posts []BlogPost, books []Book, services []Service, profile Profile) *Library {
	return &Library{
		Posts:    NewRegistry(KindBlog, posts),
		Books:    NewRegistry(KindBooks, books, BookCategories()...),
		Services: NewRegistry(KindServices, services, ServiceCategories()...),
		Profile:  profile,
	}
}

// Load builds the library from the embedded content plus any posts found in
// cfg.Dir. Malformed entries are logged as warnings and kept; only I/O and
// markdown errors fail the load.
func Load(cfg config.ContentConfig, logger *log.Logger) (*Library, error) {
	md := NewMarkdown()

	posts, err := md.LoadPosts(builtinPosts, "posts/*.md", false)
	if err != nil {
		return nil, fmt.Errorf("loading built-in posts: %w", err)
	}
	if cfg.Dir != "" {
		if _, err := os.Stat(cfg.Dir); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		extra, err := md.LoadPosts(os.DirFS(cfg.Dir), cfg.Pattern, true)
		if err != nil {
			return nil, fmt.Errorf("loading posts from %s: %w", cfg.Dir, err)
		}
		logger.Debug("loaded external posts", "dir", cfg.Dir, "count", len(extra))
		posts = append(posts, extra...)
	}

	books, err := renderBooks(md)
	if err != nil {
		return nil, err
	}
	services, err := renderServices(md)
	if err != nil {
		return nil, err
	}

	lib := NewLibrary(posts, books, services, builtinProfile())
	for _, w := range lib.Validate() {
		logger.Warn("malformed registry entry",
			"kind", w.Kind, "index", w.Index, "title", w.Key, "problem", w.Problem)
	}
	return lib, nil
}

func renderBooks(md *Markdown) ([]Book, error) {
	sources := builtinBooks()
	books := make([]Book, 0, len(sources))
	for _, src := range sources {
		body, err := md.HTML(src.body)
		if err != nil {
			return nil, fmt.Errorf("rendering book %q: %w", src.book.Title, err)
		}
		b := src.book
		b.ModalContent = body
		books = append(books, b)
	}
	return books, nil
}

func renderServices(md *Markdown) ([]Service, error) {
	sources := builtinServices()
	services := make([]Service, 0, len(sources))
	for _, src := range sources {
		body, err := md.HTML(src.body)
		if err != nil {
			return nil, fmt.Errorf("rendering service %q: %w", src.service.Title, err)
		}
		s := src.service
		s.ModalContent = body
		services = append(services, s)
	}
	return services, nil
}

// Validate runs every registry's checks.
func (l *Library) Validate() []Warning {
	var warnings []Warning
	warnings = append(warnings, l.Posts.Validate()...)
	warnings = append(warnings, l.Books.Validate()...)
	warnings = append(warnings, l.Services.Validate()...)
	return warnings
}

// Categories returns the category set of the registry of the given kind.
func (l *Library) Categories(kind Kind) []string {
	switch kind {
	case KindBlog:
		return l.Posts.Categories()
	case KindBooks:
		return l.Books.Categories()
	case KindServices:
		return l.Services.Categories()
	}
	return nil
}

// Find returns the record of the given kind with the given slug.
func (l *Library) Find(kind Kind, slug string) (Record, bool) {
	switch kind {
	case KindBlog:
		if p, ok := l.Posts.BySlug(slug); ok {
			return p, true
		}
	case KindBooks:
		if b, ok := l.Books.BySlug(slug); ok {
			return b, true
		}
	case KindServices:
		if s, ok := l.Services.BySlug(slug); ok {
			return s, true
		}
	}
	return nil, false
}
