package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedbatch-dev/seedbatch/internal/activity"
	"github.com/seedbatch-dev/seedbatch/internal/export"
)

func newExportCommand(logger *log.Logger) *cobra.Command {
	var repoDir string
	var outDir string
	var seq int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the batch to a bulk payout workbook",
		Long: `Write the batch to a bulk payout workbook named like SEEDS05JAN001.xlsx.

The batch is left unchanged; run reset to start a new one. With --seq 0 the
next sequence number not yet used for today in the output directory is taken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = ws.exportDir()
			}
			return runExport(ws, logger, outDir, seq, time.Now())
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: export.dir from seeds.yaml)")
	cmd.Flags().IntVar(&seq, "seq", 1, "sequence number in the file name, 0 for the next unused one")

	return cmd
}

func runExport(ws *workspace, logger *log.Logger, outDir string, seq int, now time.Time) error {
	if seq < 0 || seq > 999 {
		return fmt.Errorf("sequence %d out of range 0-999", seq)
	}

	acc, err := ws.store.Load()
	if err != nil {
		return err
	}
	records := acc.Snapshot()
	if len(records) == 0 {
		return export.ErrNothingToExport
	}

	prefix := ws.cfg.Export.Prefix
	if prefix == "" {
		prefix = export.DefaultPrefix
	}
	if seq == 0 {
		seq, err = nextSequence(outDir, prefix, now)
		if err != nil {
			return err
		}
	}

	path, err := export.WriteFile(outDir, export.FileName(prefix, now, seq), records)
	if errors.Is(err, export.ErrFileExists) {
		return fmt.Errorf("%w (use --seq 0 for the next free name)", err)
	}
	if err != nil {
		return err
	}
	logger.Debug("wrote workbook", "path", path, "rows", len(records))

	if err := ws.record(logger, activity.ActionExport, filepath.Base(path), len(records), len(records)); err != nil {
		return err
	}

	fmt.Printf("Exported %d entries to %s\n", len(records), path)
	return nil
}

// nextSequence returns one past the highest sequence already exported to dir
// for the same prefix and day.
func nextSequence(dir, prefix string, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("reading export dir: %w", err)
	}

	highest := 0
	for _, e := range entries {
		p, day, month, seq, err := export.ParseFileName(e.Name())
		if err != nil {
			continue
		}
		if p == prefix && day == now.Day() && month == now.Month() && seq > highest {
			highest = seq
		}
	}
	if highest >= 999 {
		return 0, fmt.Errorf("no sequence numbers left for %s", export.FileName(prefix, now, 999))
	}
	return highest + 1, nil
}
