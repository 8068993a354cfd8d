// Package cli implements the courier command line interface, a thin consumer
// of the request/execution library.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/courier/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "courier",
	Short:   "A declarative HTTP client with timing metrics",
	Version: version,
	Long: `Courier describes HTTP requests declaratively, runs them through a
composable modifier pipeline, and reports per-request timing metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "include response headers in output")
	RootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	RootCmd.AddCommand(sendCmd)
	RootCmd.AddCommand(runCmd)
}

// newFormatter builds a formatter honoring the persistent flags; color is
// also disabled when stdout is not a terminal.
func newFormatter(cmd *cobra.Command) *output.Formatter {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	if !output.IsTerminal(os.Stdout) {
		noColor = true
	}
	return output.NewFormatter(verbose, noColor)
}
