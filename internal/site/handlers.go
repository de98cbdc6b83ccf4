package site

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
)

// RegisterRoutes mounts the pages, the JSON API and the generated assets on
// the given router.
func RegisterRoutes(r chi.Router, rend *Renderer) {
	r.Get("/", handlePage(rend))
	for _, kind := range content.Kinds() {
		r.Get("/"+string(kind)+"/{slug}", handleDetail(rend, kind))
		r.Get("/"+string(kind)+"/{slug}/", handleDetail(rend, kind))
	}
	r.Get("/theme", handleTheme(rend.cfg.Site.DefaultTheme))

	r.Get("/style.css", handleAsset("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", handleAsset("application/javascript; charset=utf-8", jsContent))
	r.Get("/search-index.json", handleSearchIndex(rend))
	r.Get("/content.json", handleExport(rend))

	r.Route("/api", func(r chi.Router) {
		r.Get("/{kind}", handleListing(rend))
		r.Get("/{kind}/categories", handleCategories(rend))
		r.Get("/{kind}/{slug}", handleRecord(rend))
	})
}

func handlePage(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := ParseState(r, rend.cfg.Site.DefaultTheme)
		if kind, slug, ok := st.OpenTarget(); ok {
			if _, found := rend.Library().Find(kind, slug); !found {
				http.NotFound(w, r)
				return
			}
		}
		writePage(w, rend, st)
	}
}

// handleDetail renders the landing page with the record's modal open.
func handleDetail(rend *Renderer, kind content.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if _, ok := rend.Library().Find(kind, slug); !ok {
			http.NotFound(w, r)
			return
		}
		st := ParseState(r, rend.cfg.Site.DefaultTheme)
		// The card must be in the listing for its modal to mount.
		st = st.WithCategory(kind, content.All).WithOpen(string(kind) + "/" + slug)
		writePage(w, rend, st)
	}
}

func writePage(w http.ResponseWriter, rend *Renderer, st PageState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rend.Render(w, st); err != nil {
		rend.logger.Error("render failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// handleTheme stores the chosen theme and sends the visitor back.
func handleTheme(fallback config.Theme) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme, ok := parseTheme(r.URL.Query().Get("to"))
		if !ok {
			theme = fallback
		}
		http.SetCookie(w, &http.Cookie{
			Name:     ThemeCookie,
			Value:    string(theme),
			Path:     "/",
			MaxAge:   int((365 * 24 * time.Hour).Seconds()),
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, localPath(r.URL.Query().Get("back")), http.StatusSeeOther)
	}
}

// localPath accepts only same-site absolute paths, so the redirect cannot
// be pointed at another host.
func localPath(back string) string {
	u, err := url.Parse(back)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(back, "//") {
		return "/"
	}
	return back
}

func handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		_, _ = w.Write([]byte(body))
	}
}

func handleSearchIndex(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BuildSearchIndex(rend.Library()))
	}
}

func handleExport(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, BuildExport(rend.Library()))
	}
}

// handleListing returns the filtered listing of a registry. The category
// comes from ?category=; unknown categories fall back to All.
func handleListing(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		st := PageState{}.WithCategory(kind, r.URL.Query().Get("category"))
		writeJSON(w, http.StatusOK, rend.Listing(kind, st))
	}
}

func handleCategories(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rend.Library().Categories(kind))
	}
}

func handleRecord(rend *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		rec, ok := rend.Library().Find(kind, chi.URLParam(r, "slug"))
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
