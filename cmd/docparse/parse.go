package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docparse/internal/archive"
	"github.com/pdiddy/docparse/internal/history"
	"github.com/pdiddy/docparse/internal/pipeline"
	"github.com/pdiddy/docparse/internal/submit"
	"github.com/pdiddy/docparse/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [document]",
	Short: "Upload a document and save the parse result",
	Long: `Parse creates the documents and output directories if they are missing,
uploads one document to the parsing service, prints the JSON it returns, and
writes it pretty-printed to the output file, replacing any earlier result.

The document argument is a file name inside the documents directory or a
path. Failures are reported on stderr; the exit status stays 0 unless
--strict is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	cfg := loadConfig(viper.GetViper(), stderr)
	if len(args) == 1 {
		cfg.Workspace.Document = args[0]
	}

	if err := parseDocument(cmd.Context(), cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error parsing document: %v\n", err)
		if viper.GetBool("strict") {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return err
		}
	}
	return nil
}

// parseDocument wires the submitter, archive and history from cfg and runs
// the pipeline once.
func parseDocument(ctx context.Context, cfg types.Config, stdout, stderr io.Writer) error {
	deps := pipeline.Deps{
		Submitter: submit.New(cfg.Submit, &http.Client{Timeout: cfg.Submit.Timeout}),
		Out:       stdout,
		Warn:      stderr,
	}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			fmt.Fprintf(stderr, "warning: run history disabled: %v\n", err)
		} else {
			defer store.Close()
			deps.History = store
		}
	}

	if cfg.Archive.Enabled() {
		storage, err := archive.NewS3(ctx, cfg.Archive)
		if err != nil {
			fmt.Fprintf(stderr, "warning: archiving disabled: %v\n", err)
		} else {
			deps.Archiver = archive.New(storage, cfg.Archive)
		}
	}

	_, err := pipeline.Run(ctx, deps, cfg.Workspace)
	return err
}
