package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/elisdimitrova/psysite/internal/config"
	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `psysite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger() *log.Logger {
	return logging.New(verbose)
}

func loadLibrary(cfg *config.Config, logger *log.Logger) (*content.Library, error) {
	lib, err := content.Load(cfg.Content, logger)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	logger.Debug("content loaded",
		"books", lib.Books.Len(),
		"services", lib.Services.Len(),
		"posts", lib.Posts.Len())
	return lib, nil
}

// staticFS returns the static directory as a filesystem, or nil when it
// does not exist.
func staticFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
