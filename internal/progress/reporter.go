package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while the static site is written.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a LogReporter when the CI environment variable is set
// and a TerminalReporter otherwise. description labels the bar.
func NewReporter(description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewLogReporter(os.Stderr, description)
	}
	return &TerminalReporter{description: description}
}

// Discard is a Reporter that reports nothing.
func Discard() Reporter { return discard{} }

type discard struct{}

func (discard) Start(int)          {}
func (discard) Update(int, string) {}
func (discard) Finish()            {}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	description string
	bar         *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LogReporter prints line-by-line progress suitable for CI logs.
type LogReporter struct {
	w           io.Writer
	description string
	total       int
}

func NewLogReporter(w io.Writer, description string) *LogReporter {
	return &LogReporter{w: w, description: description}
}

func (r *LogReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "%s: %d files\n", r.description, total)
}

func (r *LogReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *LogReporter) Finish() {
	fmt.Fprintf(r.w, "%s: done\n", r.description)
}
