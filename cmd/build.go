package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/livereload"
	"github.com/elisdimitrova/psysite/internal/progress"
	"github.com/elisdimitrova/psysite/internal/server"
	"github.com/elisdimitrova/psysite/internal/site"
	"github.com/elisdimitrova/psysite/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static copy of the site",
	Long: `Writes the landing page, one page per book, service and post, the
stylesheet, the script, search-index.json and content.json into the
output directory, then copies the static directory (images, CV) next to
them.

--watch rebuilds when content.dir or the static directory changes.
--serve previews the output locally and reloads open pages after each
rebuild. Forms need the server (psysite serve) to capture submissions.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides build.output_dir)")
	buildCmd.Flags().Bool("watch", false, "rebuild on changes")
	buildCmd.Flags().Bool("serve", false, "serve the output directory after building")
	buildCmd.Flags().Int("port", 0, "port for --serve (overrides server.port)")
	buildCmd.Flags().Bool("open", false, "open the preview in a browser (with --serve)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Build.OutputDir = out
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	serve, _ := cmd.Flags().GetBool("serve")

	var opts []site.Option
	if serve {
		opts = append(opts, site.WithLiveReload(liveReloadPath))
	}
	build := func() error {
		return buildSite(cfg, logger, opts...)
	}
	if err := build(); err != nil {
		return err
	}
	if !watch && !serve {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var hub *livereload.Hub
	errc := make(chan error, 1)
	if serve {
		hub = livereload.NewHub(logger)
		defer hub.Close()
		hub.KeepAlive(ctx, ui.SystemClock(), pingInterval)

		previewCfg := cfg.Server
		previewCfg.StaticDir = cfg.Build.OutputDir
		srv := server.New(previewCfg, nil, logger)
		srv.Router().Get(liveReloadPath, hub.ServeHTTP)
		srv.MountStatic()

		go func() { errc <- srv.Start() }()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		if open, _ := cmd.Flags().GetBool("open"); open {
			go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
		}
	}

	if watch {
		roots := watchRoots(cfg)
		if len(roots) == 0 {
			logger.Warn("nothing to watch: set content.dir or create the static directory")
		} else {
			w := livereload.NewWatcher(logger, 0, func() {
				if err := build(); err != nil {
					logger.Error("rebuild failed", "err", err)
					return
				}
				if hub != nil {
					hub.Reload()
				}
			}, roots...)
			go func() {
				if err := w.Run(ctx); err != nil {
					errc <- err
				}
			}()
		}
	}

	select {
	case <-ctx.Done():
		logger.Info("stopping")
		return nil
	case err := <-errc:
		return err
	}
}

func buildSite(cfg *config.Config, logger *log.Logger, opts ...site.Option) error {
	start := time.Now()
	lib, err := loadLibrary(cfg, logger)
	if err != nil {
		return err
	}
	gen := site.NewGenerator(cfg, lib, progress.NewReporter("Building site"), logger)
	gen.Options = opts
	pages, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}
	logger.Info("site built", "dir", cfg.Build.OutputDir, "pages", pages, "took", time.Since(start).Round(time.Millisecond))
	return nil
}

// watchRoots lists the directories a rebuild depends on. Built-in content
// is compiled in, so only the optional external directories count. A root
// that contains the output directory is skipped, since every build would
// trigger the next one.
func watchRoots(cfg *config.Config) []string {
	out, _ := filepath.Abs(cfg.Build.OutputDir)
	var roots []string
	for _, dir := range []string{cfg.Content.Dir, cfg.Server.StaticDir} {
		if dir == "" {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			if rel, err := filepath.Rel(abs, out); err == nil && !strings.HasPrefix(rel, "..") {
				continue
			}
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			roots = append(roots, dir)
		}
	}
	return roots
}
