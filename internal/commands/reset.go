package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedbatch-dev/seedbatch/internal/activity"
)

func newResetCommand(logger *log.Logger) *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Empty the batch to start a new one",
		Long:  "Empty the batch to start a new one. Files waiting in import/ are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir)
			if err != nil {
				return err
			}

			acc, err := ws.store.Load()
			if err != nil {
				return err
			}
			removed := acc.Len()
			acc.Reset()
			if err := ws.store.Save(acc); err != nil {
				return err
			}

			details := fmt.Sprintf("cleared %d entries", removed)
			if err := ws.record(logger, activity.ActionReset, details, removed, 0); err != nil {
				return err
			}

			fmt.Printf("Batch cleared (%d entries removed)\n", removed)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")

	return cmd
}
