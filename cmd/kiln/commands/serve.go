package commands

import (
	"github.com/kilnworks/kiln/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build, watch for changes, and serve with live reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			port, _ := cmd.Flags().GetInt("port")
			debounce, _ := cmd.Flags().GetInt("debounce")
			incremental, _ := cmd.Flags().GetBool("incremental")
			outputMode, _ := cmd.Flags().GetString("output-mode")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Port:        port,
				DebounceMs:  debounce,
				Incremental: incremental,
				OutputMode:  outputMode,
			})
		},
	}
	cmd.Flags().IntP("port", "p", 0, "Dev server port (defaults to the configured port)")
	cmd.Flags().Int("debounce", 0, "Debounce window in milliseconds (defaults to the configured window)")
	cmd.Flags().BoolP("incremental", "i", false, "Rebuild only the changed template when possible")
	cmd.Flags().StringP("output-mode", "o", "auto", "Log format: auto, pretty, or json")
	return cmd
}
