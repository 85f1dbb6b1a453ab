package commands

import (
	"github.com/kilnworks/kiln/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			to, _ := cmd.Flags().GetString("to")
			incremental, _ := cmd.Flags().GetBool("incremental")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "json"
			}

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Target:      to,
				Incremental: incremental,
				OutputMode:  outputMode,
			})
		},
	}
	cmd.Flags().String("to", "files", "Build output target: files, json, or ndjson")
	cmd.Flags().BoolP("incremental", "i", false, "Skip outputs whose content has not changed")
	cmd.Flags().StringP("output-mode", "o", "auto", "Log format: auto, pretty, or json")
	cmd.Flags().Bool("ci", false, "Use JSON log format (shorthand for --output-mode=json)")
	return cmd
}
