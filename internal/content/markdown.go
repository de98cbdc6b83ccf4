package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown converts markdown bodies to HTML fragments.
type Markdown struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown returns a converter with GFM, syntax highlighting and heading
// IDs enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		policy: bluemonday.UGCPolicy(),
	}
}

// HTML renders src to an HTML fragment.
func (m *Markdown) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Sanitize strips scripts, event handlers and other unsafe markup from
// HTML that did not ship with the site.
func (m *Markdown) Sanitize(fragment string) string {
	return m.policy.Sanitize(fragment)
}

// postMeta is the front matter of a blog post file.
type postMeta struct {
	Title     string   `yaml:"title"`
	Date      string   `yaml:"date"`
	Published string   `yaml:"published"`
	Author    string   `yaml:"author"`
	Excerpt   string   `yaml:"excerpt"`
	Tags      []string `yaml:"tags"`
	Image     string   `yaml:"image"`
}

// LoadPosts reads every file in fsys matching the doublestar pattern, in
// lexical path order, and converts it into a BlogPost. When sanitize is set
// the rendered HTML goes through the UGC policy.
func (m *Markdown) LoadPosts(fsys fs.FS, pattern string, sanitize bool) ([]BlogPost, error) {
	paths, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}
	slices.Sort(paths)

	posts := make([]BlogPost, 0, len(paths))
	for _, path := range paths {
		post, err := m.loadPost(fsys, path, sanitize)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *Markdown) loadPost(fsys fs.FS, path string, sanitize bool) (BlogPost, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return BlogPost{}, err
	}

	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return BlogPost{}, fmt.Errorf("parsing front matter: %w", err)
	}

	rendered, err := m.HTML(string(body))
	if err != nil {
		return BlogPost{}, err
	}
	if sanitize {
		rendered = m.Sanitize(rendered)
	}

	post := BlogPost{
		Title:    strings.TrimSpace(meta.Title),
		Date:     meta.Date,
		Author:   meta.Author,
		Excerpt:  strings.TrimSpace(meta.Excerpt),
		Content:  rendered,
		Tags:     meta.Tags,
		ImageURL: meta.Image,
	}
	if meta.Published != "" {
		t, err := time.Parse(time.DateOnly, meta.Published)
		if err != nil {
			return BlogPost{}, fmt.Errorf("parsing published date %q: %w", meta.Published, err)
		}
		post.Published = t
	}
	return post, nil
}
