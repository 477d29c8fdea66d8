package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seedbatch-dev/seedbatch/internal/activity"
	"github.com/seedbatch-dev/seedbatch/internal/batch"
	"github.com/seedbatch-dev/seedbatch/internal/config"
	"github.com/seedbatch-dev/seedbatch/internal/gitops"
)

// workspace bundles what every batch command needs from a workspace dir.
type workspace struct {
	dir   string
	cfg   *config.Config
	store *batch.Store
}

func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("%s is not a seedbatch workspace (run seedbatch init): %w", absDir, err)
	}
	return &workspace{dir: absDir, cfg: cfg, store: batch.NewStore(absDir)}, nil
}

// exportDir resolves the configured export directory against the workspace.
func (w *workspace) exportDir() string {
	if filepath.IsAbs(w.cfg.Export.Dir) {
		return w.cfg.Export.Dir
	}
	return filepath.Join(w.dir, w.cfg.Export.Dir)
}

// record commits the workspace when auto-commit is on, then appends the
// action to the activity log with the resulting commit hash.
func (w *workspace) record(logger *log.Logger, action activity.Action, details string, records, batchSize int) error {
	var hash string
	if w.cfg.Git.AutoCommit && gitops.IsRepo(w.dir) {
		author := gitops.Author{Name: w.cfg.Git.AuthorName, Email: w.cfg.Git.AuthorEmail}
		h, err := gitops.CommitAll(w.dir, fmt.Sprintf("%s: %s", action, details), author)
		if err != nil {
			return fmt.Errorf("committing workspace: %w", err)
		}
		hash = h
		logger.Debug("committed workspace", "hash", hash)
	}

	entry := activity.Entry{
		Timestamp:  time.Now().UTC(),
		Action:     action,
		Details:    details,
		Records:    records,
		BatchSize:  batchSize,
		CommitHash: hash,
	}
	if err := activity.Append(w.dir, entry); err != nil {
		return fmt.Errorf("writing activity log: %w", err)
	}
	return nil
}
