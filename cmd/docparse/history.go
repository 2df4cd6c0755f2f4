package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/docparse/internal/history"
	"github.com/pdiddy/docparse/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent parse runs",
	Long: `History lists recent parse runs from the run history database, newest
first, with their status and output location.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().String("format", "table", "output format: table or yaml")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := viper.GetString("history.path")
	if path == "" {
		return fmt.Errorf("run history is off; set history.path in the config or pass --history-db")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		return printRuns(os.Stdout, runs)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(runs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want table or yaml)", format)
	}
}

func printRuns(w io.Writer, runs []types.RunRecord) error {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STARTED\tSTATUS\tDOCUMENT\tOUTPUT\tDURATION\tERROR")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format(time.DateTime), r.Status, r.DocumentPath,
			r.OutputPath, r.Duration.Round(time.Millisecond), r.Error)
	}
	return tw.Flush()
}
