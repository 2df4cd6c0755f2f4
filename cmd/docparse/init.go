package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docparse/internal/workspace"
	"github.com/pdiddy/docparse/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the documents and output directories",
	Long: `Init creates the documents and output directories if they do not exist.
Running it again is harmless; existing directories and their contents are
left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout := workspace.FromConfig(types.WorkspaceConfig{
			DocumentsDir: viper.GetString("documents_dir"),
			OutputDir:    viper.GetString("output_dir"),
		})
		created, err := layout.Ensure()
		for _, dir := range created {
			fmt.Fprintf(os.Stdout, "created: %s\n", dir)
		}
		if err != nil {
			return err
		}
		if len(created) == 0 {
			fmt.Fprintln(os.Stdout, "Workspace directories already present.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
