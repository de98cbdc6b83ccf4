package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/db"
	"github.com/elisdimitrova/psysite/internal/forms"
	"github.com/elisdimitrova/psysite/internal/livereload"
	"github.com/elisdimitrova/psysite/internal/server"
	"github.com/elisdimitrova/psysite/internal/site"
	"github.com/elisdimitrova/psysite/internal/ui"
)

const (
	liveReloadPath = "/ws/reload"
	pingInterval   = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site and capture form submissions",
	Long: `Starts the web server: the landing page, one page per book, service and
post, the JSON API, and the form endpoints. Submissions are stored in a
SQLite database under server.data_dir and forwarded by mail or webhook
when configured.

With --dev the server watches content.dir and reloads open pages when a
post changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("dev", false, "watch content and reload open pages")
	serveCmd.Flags().Bool("open", false, "open the site in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if dev, _ := cmd.Flags().GetBool("dev"); dev {
		cfg.Server.Dev = true
	}

	lib, err := loadLibrary(cfg, logger)
	if err != nil {
		return err
	}

	database, err := db.OpenDir(cfg.Server.DataDir)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server, database, logger)
	r := srv.Router()

	var opts []site.Option
	var hub *livereload.Hub
	if cfg.Server.Dev {
		hub = livereload.NewHub(logger)
		defer hub.Close()
		r.Get(liveReloadPath, hub.ServeHTTP)
		hub.KeepAlive(ctx, ui.SystemClock(), pingInterval)
		opts = append(opts, site.WithLiveReload(liveReloadPath))
	}

	rend, err := site.NewRenderer(cfg, lib, staticFS(cfg.Server.StaticDir), logger, opts...)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	site.RegisterRoutes(r, rend)

	svc := forms.NewService(forms.NewStore(database), forms.NewProcessor(cfg.Forms, logger), logger)
	limiter := forms.NewLimiter(cfg.Forms.RateLimit.Requests, cfg.Forms.RateLimit.Window)
	forms.RegisterRoutes(r, svc, limiter)

	srv.MountStatic()

	if hub != nil {
		startContentWatcher(ctx, cfg, rend, hub, logger)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
	}

	logger.Info("psysite starting", "version", Version, "database", database.Path(), "dev", cfg.Server.Dev)
	return srv.Start()
}

// startContentWatcher reloads the library when the content directory
// changes and tells open pages to refresh.
func startContentWatcher(ctx context.Context, cfg *config.Config, rend *site.Renderer, hub *livereload.Hub, logger *log.Logger) {
	if cfg.Content.Dir == "" {
		logger.Info("content.dir not set, live reload only follows restarts")
		return
	}
	w := livereload.NewWatcher(logger, 0, func() {
		lib, err := loadLibrary(cfg, logger)
		if err != nil {
			logger.Error("reloading content", "err", err)
			return
		}
		rend.SetLibrary(lib)
		hub.Reload()
	}, cfg.Content.Dir)

	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Error("content watcher stopped", "err", err)
		}
	}()
}
