package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/seedbatch-dev/seedbatch/internal/model"
)

var (
	// ErrNothingToExport is returned for an empty batch; no file is produced.
	ErrNothingToExport = errors.New("nothing to export")
	// ErrFileExists is returned when the workbook name is already taken.
	ErrFileExists = errors.New("export file already exists")
)

// Write renders records as a single-sheet workbook: a header row of
// model.Columns followed by one row per record.
func Write(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, len(model.Columns))
	for i, c := range model.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := rec.Values()
		for j, v := range row {
			// Amounts go in as numbers so the sheet can sum them.
			if d, ok := v.(decimal.Decimal); ok {
				row[j] = d.InexactFloat64()
			}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteFile writes the workbook to dir/name, creating dir if needed, and
// returns the full path. An existing file is never overwritten.
func WriteFile(dir, name string, records []model.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNothingToExport
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, name)
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%s: %w", path, ErrFileExists)
	}
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}
	if err := Write(out, records); err != nil {
		out.Close()
		os.Remove(path)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	return path, nil
}
