package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ValidationError indicates a bad input or output path supplied by the
// user.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// ValidateInputFile checks that path exists, is a regular file, and
// carries one of the allowed extensions (compared case-insensitively).
func ValidateInputFile(path string, exts []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Path: path, Reason: "input file does not exist"}
	}
	if info.IsDir() {
		return &ValidationError{Path: path, Reason: "input path is a directory"}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return nil
		}
	}
	return &ValidationError{
		Path:   path,
		Reason: fmt.Sprintf("unsupported extension %q (want one of %s)", ext, strings.Join(exts, ", ")),
	}
}

// ValidateOutputDir checks that dir exists and is a directory.
func ValidateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &ValidationError{Path: dir, Reason: "output directory does not exist"}
	}
	if !info.IsDir() {
		return &ValidationError{Path: dir, Reason: "output path is not a directory"}
	}
	return nil
}

// SafeWriteFile writes data to a uniquely named temp file and atomically
// renames it into place. The uuid suffix keeps concurrent runs writing
// into the same directory from clobbering each other's temp files.
func SafeWriteFile(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// PrettyJSON marshals a value as indented JSON.
func PrettyJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}
