package wordlist

import (
	"fmt"
	"path/filepath"
	"strings"

	"wordofday/internal/repository"
)

// FileRepo picks a file reader by extension
func FileRepo(path string) (repository.WordRepository, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLFileRepo(path), nil
	case ".xlsx":
		return NewExcelFileRepo(path, ""), nil
	default:
		return nil, fmt.Errorf("unsupported word list format: %q", path)
	}
}
