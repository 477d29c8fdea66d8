package inbox

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// importDir is the subdirectory pasted text files are dropped into.
const importDir = "import"

// processedDir receives files once their entries are in the batch.
const processedDir = "import/processed"

// FileInfo describes a text file waiting in the inbox.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Scan returns the .txt files in <workspace>/import/, sorted by name.
func Scan(workspace string) ([]FileInfo, error) {
	dir := filepath.Join(workspace, importDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Read returns the text of an inbox file.
func Read(f FileInfo) (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return string(data), nil
}

// MarkProcessed moves a file from import/ to import/processed/.
func MarkProcessed(workspace, fileName string) error {
	src := filepath.Join(workspace, importDir, fileName)
	dstDir := filepath.Join(workspace, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

// Restore moves a file from import/processed/ back to import/.
func Restore(workspace, fileName string) error {
	src := filepath.Join(workspace, processedDir, fileName)
	dst := filepath.Join(workspace, importDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("restoring %s from processed: %w", fileName, err)
	}
	return nil
}

// MarkAllProcessed moves every named file to import/processed/. If a move
// fails, the files already moved are put back and the error names where each
// file was left.
func MarkAllProcessed(workspace string, names []string) error {
	for i, name := range names {
		if err := MarkProcessed(workspace, name); err != nil {
			return fmt.Errorf("%w; %s", err, RestoreAll(workspace, names[:i], names[i:]))
		}
	}
	return nil
}

// RestoreAll moves the named files back to import/ and describes where every
// file of moved and untouched ended up.
func RestoreAll(workspace string, moved, untouched []string) string {
	inImport := append([]string(nil), untouched...)
	var inProcessed []string
	for _, name := range moved {
		if err := Restore(workspace, name); err != nil {
			inProcessed = append(inProcessed, name)
			continue
		}
		inImport = append(inImport, name)
	}
	sort.Strings(inImport)

	msg := "left in import/: " + strings.Join(inImport, ", ")
	if len(inProcessed) > 0 {
		msg += "; left in import/processed/: " + strings.Join(inProcessed, ", ")
	}
	return msg
}
