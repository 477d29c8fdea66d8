package commands

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedbatch-dev/seedbatch/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "seedbatch"})

	rootCmd := &cobra.Command{
		Use:     "seedbatch",
		Short:   "Turn pasted payment details into a bulk payout workbook",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser decisions to stderr")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(logger),
		newListCommand(),
		newExportCommand(logger),
		newResetCommand(logger),
	)

	return rootCmd
}
