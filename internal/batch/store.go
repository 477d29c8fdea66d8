package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the batch file inside a workspace.
const FileName = "batch.csv"

// Store persists an Accumulator to <workspace>/batch.csv between commands.
type Store struct {
	root string
}

// NewStore creates a Store for the workspace at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Path returns the batch file path.
func (s *Store) Path() string {
	return filepath.Join(s.root, FileName)
}

// Load reads the batch file into a new Accumulator. A missing file is an
// empty batch.
func (s *Store) Load() (*Accumulator, error) {
	f, err := os.Open(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return NewAccumulator(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening batch: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading batch %s: %w", s.Path(), err)
	}

	if verrs := ValidateRecords(records); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return NewAccumulator(records), nil
}

// Save replaces the batch file with the accumulator's current records. The
// new file is written alongside and renamed into place.
func (s *Store) Save(acc *Accumulator) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating workspace dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.root, ".batch-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp batch: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteRecords(tmp, acc.Snapshot()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing batch: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp batch: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		return fmt.Errorf("replacing batch: %w", err)
	}
	return nil
}
