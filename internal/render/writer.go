package render

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes a generated file into the output directory, creating the
// directory if needed.
func WriteFile(f *File, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, f.Filename)
	if err := os.WriteFile(outputPath, f.Content, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", f.Filename, err)
	}
	return nil
}
