package site

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/progress"
)

// Generator exports the site as static files.
type Generator struct {
	OutputDir string
	StaticDir string
	// Options are applied to the page renderer after WithStaticLinks.
	Options []Option

	cfg      *config.Config
	lib      *content.Library
	reporter progress.Reporter
	logger   *log.Logger
}

// NewGenerator creates a Generator writing to cfg.Build.OutputDir and
// copying images from cfg.Server.StaticDir.
func NewGenerator(cfg *config.Config, lib *content.Library, reporter progress.Reporter, logger *log.Logger) *Generator {
	return &Generator{
		OutputDir: cfg.Build.OutputDir,
		StaticDir: cfg.Server.StaticDir,
		cfg:       cfg,
		lib:       lib,
		reporter:  reporter,
		logger:    logger,
	}
}

type outputFile struct {
	path  string
	write func(io.Writer) error
}

// Generate builds the full static site: the landing page, one page per
// record with its modal open, the assets, the search index and the content
// dump. Returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	var assets fs.FS
	if g.StaticDir != "" {
		if info, err := os.Stat(g.StaticDir); err == nil && info.IsDir() {
			assets = os.DirFS(g.StaticDir)
		} else {
			g.logger.Warn("static directory not found, images will fall back to initials", "dir", g.StaticDir)
		}
	}

	opts := append([]Option{WithStaticLinks()}, g.Options...)
	rend, err := NewRenderer(g.cfg, g.lib, assets, g.logger, opts...)
	if err != nil {
		return 0, err
	}

	base := PageState{Theme: g.cfg.Site.DefaultTheme}
	pages := []outputFile{{
		path:  "index.html",
		write: func(w io.Writer) error { return rend.Render(w, base) },
	}}
	for _, e := range BuildSearchIndex(g.lib) {
		st := base.WithOpen(string(e.Kind) + "/" + e.Slug)
		pages = append(pages, outputFile{
			path:  filepath.Join(string(e.Kind), e.Slug, "index.html"),
			write: func(w io.Writer) error { return rend.Render(w, st) },
		})
	}

	files := []outputFile{
		{path: "style.css", write: writeString(cssContent)},
		{path: "script.js", write: writeString(jsContent)},
		{path: "search-index.json", write: writeJSONFile(BuildSearchIndex(g.lib))},
		{path: "content.json", write: writeJSONFile(BuildExport(g.lib))},
	}
	files = append(files, pages...)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	g.reporter.Start(len(files))
	defer g.reporter.Finish()
	for i, f := range files {
		if err := g.writeFile(f); err != nil {
			return 0, fmt.Errorf("writing %s: %w", f.path, err)
		}
		g.reporter.Update(i+1, f.path)
	}

	if assets != nil {
		n, err := copyTree(assets, g.OutputDir)
		if err != nil {
			return 0, fmt.Errorf("copying static files: %w", err)
		}
		g.logger.Debug("copied static files", "count", n, "from", g.StaticDir)
	}

	return len(pages), nil
}

func (g *Generator) writeFile(f outputFile) error {
	outPath := filepath.Join(g.OutputDir, f.path)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := f.write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func writeJSONFile(v any) func(io.Writer) error {
	return func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// copyTree copies every regular file of src into dir, keeping the layout.
func copyTree(src fs.FS, dir string) (int, error) {
	n := 0
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		outPath := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		n++
		return os.WriteFile(outPath, data, 0o644)
	})
	return n, err
}
