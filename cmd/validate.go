package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elisdimitrova/psysite/internal/content"
	"github.com/elisdimitrova/psysite/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and content for malformed entries",
	Long: `Loads the configuration and every book, service and post, and reports
entries the site would hide: missing titles, empty descriptions, unknown
or missing categories, duplicate slugs. Exits non-zero when anything is
reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		// Warnings are printed below; keep Load quiet.
		lib, err := content.Load(cfg.Content, logging.Discard())
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		out := cmd.OutOrStdout()
		counts := map[content.Kind]int{
			content.KindBooks:    lib.Books.Len(),
			content.KindServices: lib.Services.Len(),
			content.KindBlog:     lib.Posts.Len(),
		}
		for _, kind := range content.Kinds() {
			// The first category is always "all".
			fmt.Fprintf(out, "%-9s %d entries, %d categories\n", kind+":", counts[kind], len(lib.Categories(kind))-1)
		}

		warnings := lib.Validate()
		if len(warnings) == 0 {
			fmt.Fprintln(out, "No problems found.")
			return nil
		}
		fmt.Fprintf(out, "\n%d problem(s):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
		return fmt.Errorf("%d malformed content entries", len(warnings))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
