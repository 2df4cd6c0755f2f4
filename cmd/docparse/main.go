// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docparse CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docparse/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultUserAgent = "docparse/0.1"
	credentialEnvVar = "LLAMAPARSE_API_KEY"
	credentialFile   = "llamaparse-api-key"
	secretsDir       = ".secrets/"
	dotEnvFile       = ".env"
)

// rootCmd is the base command. Invoked without a subcommand it runs parse.
var rootCmd = &cobra.Command{
	Use:   "docparse [document]",
	Short: "Upload a document to LlamaParse and save the JSON result",
	Long: `docparse uploads a local document to the LlamaParse parsing API and saves
the JSON response to disk.

With no subcommand it behaves like "docparse parse": it creates the documents
and output directories if needed, uploads documents/form-dv-test-2.pdf (or the
document named on the command line), prints the result, and writes it to
output/parsed_output.json.

The API key is read from the LLAMAPARSE_API_KEY environment variable, a .env
file, .secrets/llamaparse-api-key, or api_key in the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./docparse.yaml or ~/.config/docparse/docparse.yaml)")
	pf.String("documents-dir", "", "directory holding documents to upload (default \"documents\")")
	pf.String("output-dir", "", "directory receiving parse results (default \"output\")")
	pf.String("output", "", "output file name inside the output directory (default \"parsed_output.json\")")
	pf.String("endpoint", "", "parsing service URL (default \""+types.DefaultEndpoint+"\")")
	pf.Duration("timeout", 0, "HTTP request timeout (default none)")
	pf.Bool("metadata", false, "also write a YAML metadata sidecar next to the output")
	pf.Bool("strict", false, "exit non-zero when the document cannot be parsed")
	pf.String("history-db", "", "record runs in this SQLite database, e.g. .docparse/history.db (default off)")

	for key, flag := range map[string]string{
		"documents_dir":  "documents-dir",
		"output_dir":     "output-dir",
		"output_file":    "output",
		"endpoint":       "endpoint",
		"timeout":        "timeout",
		"write_metadata": "metadata",
		"strict":         "strict",
		"history.path":   "history-db",
	} {
		viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docparse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docparse"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("DOCPARSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
