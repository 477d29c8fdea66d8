package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedbatch-dev/seedbatch/internal/activity"
	"github.com/seedbatch-dev/seedbatch/internal/inbox"
	"github.com/seedbatch-dev/seedbatch/internal/model"
	"github.com/seedbatch-dev/seedbatch/internal/seeds"
)

// source is one piece of raw pasted text and where it came from.
type source struct {
	name  string
	text  string
	inbox bool
}

func newAddCommand(logger *log.Logger) *cobra.Command {
	var repoDir string
	var fromInbox bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "add [file...]",
		Short: "Parse pasted payment details and append them to the batch",
		Long: `Parse pasted payment details and append them to the batch.

Text is read from the named files, from import/*.txt with --inbox, or from
stdin when neither is given. Blocks are separated by blank lines; each block
must contain a beneficiary name, account number, IFSC and amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(repoDir)
			if err != nil {
				return err
			}
			sources, err := collectSources(cmd.InOrStdin(), ws.dir, args, fromInbox)
			if err != nil {
				return err
			}
			return runAdd(ws, logger, sources, dryRun)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().BoolVar(&fromInbox, "inbox", false, "read every .txt file waiting in import/")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be added without changing the batch")

	return cmd
}

func collectSources(stdin io.Reader, workspace string, files []string, fromInbox bool) ([]source, error) {
	var sources []source
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, source{name: filepath.Base(path), text: string(data)})
	}

	if fromInbox {
		waiting, err := inbox.Scan(workspace)
		if err != nil {
			return nil, err
		}
		if len(waiting) == 0 && len(files) == 0 {
			return nil, fmt.Errorf("no .txt files waiting in %s", filepath.Join(workspace, "import"))
		}
		for _, f := range waiting {
			text, err := inbox.Read(f)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source{name: f.Name, text: text, inbox: true})
		}
	}

	if len(files) == 0 && !fromInbox {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		sources = append(sources, source{name: "stdin", text: string(data)})
	}
	return sources, nil
}

func runAdd(ws *workspace, logger *log.Logger, sources []source, dryRun bool) error {
	acc, err := ws.store.Load()
	if err != nil {
		return err
	}

	parser := seeds.New(ws.cfg.Defaults(), seeds.WithLogger(logger))

	var parsed []model.Record
	var consumed []string
	for _, src := range sources {
		res := parser.Parse(src.text)
		for _, d := range res.Dropped {
			if d.ZeroAmount {
				logger.Warn("skipped block with zero amount", "source", src.name, "block", d.Index+1)
			}
		}
		logger.Debug("parsed source", "source", src.name, "blocks", res.Blocks, "records", len(res.Records))

		if len(res.Records) == 0 {
			if len(sources) > 1 {
				logger.Warn("no entries found", "source", src.name)
			}
			continue
		}
		parsed = append(parsed, res.Records...)
		if src.inbox {
			consumed = append(consumed, src.name)
		}
	}

	if len(parsed) == 0 {
		return seeds.ErrNoEntries
	}

	if dryRun {
		printRecords(os.Stdout, parsed)
		fmt.Printf("Parsed %d entries (dry run, batch unchanged at %d)\n", len(parsed), acc.Len())
		return nil
	}

	// Inbox files move before the batch is saved; a failed save moves them back.
	if err := inbox.MarkAllProcessed(ws.dir, consumed); err != nil {
		return fmt.Errorf("batch unchanged: %w", err)
	}

	size := acc.Append(parsed)
	if err := ws.store.Save(acc); err != nil {
		if len(consumed) == 0 {
			return err
		}
		return fmt.Errorf("%w; %s", err, inbox.RestoreAll(ws.dir, consumed, nil))
	}

	details := fmt.Sprintf("%d entries", len(parsed))
	if err := ws.record(logger, activity.ActionAdd, details, len(parsed), size); err != nil {
		return err
	}

	fmt.Printf("Added %d entries (batch now %d)\n", len(parsed), size)
	return nil
}
