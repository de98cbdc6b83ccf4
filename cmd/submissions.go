package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/elisdimitrova/psysite/internal/db"
	"github.com/elisdimitrova/psysite/internal/forms"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Inspect captured form submissions",
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List form submissions, newest first",
	RunE:  runSubmissionsList,
}

var submissionsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count submissions per form",
	RunE:  runSubmissionsStats,
}

func init() {
	submissionsListCmd.Flags().String("kind", "", "only this form (consultation, giveaway, newsletter)")
	submissionsListCmd.Flags().String("status", "", "only this status (received, processed, failed)")
	submissionsListCmd.Flags().Duration("since", 0, "only submissions newer than this, e.g. 72h")
	submissionsListCmd.Flags().Int("limit", 50, "maximum rows")
	submissionsListCmd.Flags().Bool("json", false, "print JSON instead of a table")

	submissionsCmd.AddCommand(submissionsListCmd)
	submissionsCmd.AddCommand(submissionsStatsCmd)
	rootCmd.AddCommand(submissionsCmd)
}

func openSubmissions() (*forms.Store, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := db.OpenDir(cfg.Server.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return forms.NewStore(database), database.Close, nil
}

func runSubmissionsList(cmd *cobra.Command, args []string) error {
	filter := forms.ListFilter{}
	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		filter.Kind = forms.Kind(kind)
		if !slices.Contains(forms.Kinds(), filter.Kind) {
			return fmt.Errorf("unknown form %q", kind)
		}
	}
	if status, _ := cmd.Flags().GetString("status"); status != "" {
		filter.Status = forms.Status(status)
	}
	if since, _ := cmd.Flags().GetDuration("since"); since > 0 {
		filter.Since = time.Now().Add(-since)
	}
	filter.Limit, _ = cmd.Flags().GetInt("limit")

	store, closeDB, err := openSubmissions()
	if err != nil {
		return err
	}
	defer closeDB()

	subs, err := store.List(context.Background(), filter)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(subs)
	}

	if len(subs) == 0 {
		fmt.Println("No submissions.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECEIVED\tFORM\tSTATUS\tNAME\tEMAIL\tSERVICE\tMESSAGE")
	for _, s := range subs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Kind, s.Status,
			dash(s.Name), s.Email, dash(s.Service),
			dash(truncate(s.Message, 40)))
	}
	return w.Flush()
}

func runSubmissionsStats(cmd *cobra.Command, args []string) error {
	store, closeDB, err := openSubmissions()
	if err != nil {
		return err
	}
	defer closeDB()

	counts, err := store.Count(context.Background())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FORM\tSUBMISSIONS")
	total := 0
	for _, kind := range forms.Kinds() {
		fmt.Fprintf(w, "%s\t%d\n", kind, counts[kind])
		total += counts[kind]
	}
	fmt.Fprintf(w, "total\t%d\n", total)
	return w.Flush()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
