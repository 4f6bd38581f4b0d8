package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/mcobj/internal/config"
	"github.com/dyluth/mcobj/pkg/catalog"
)

// CheckExisting checks if mcobj.yml or the data/ directory already exist in dir
// Returns an error if they do, nil otherwise
func CheckExisting(dir string) error {
	var existingFiles []string

	if _, err := os.Stat(filepath.Join(dir, config.DefaultPath)); err == nil {
		existingFiles = append(existingFiles, config.DefaultPath)
	}

	if info, err := os.Stat(filepath.Join(dir, catalog.DefaultDataDirectory)); err == nil && info.IsDir() {
		existingFiles = append(existingFiles, catalog.DefaultDataDirectory+"/")
	}

	if len(existingFiles) > 0 {
		errMsg := "project already initialized\n\nFound existing"
		if len(existingFiles) == 1 {
			errMsg += fmt.Sprintf(": %s\n", existingFiles[0])
		} else {
			errMsg += " files:\n"
			for _, file := range existingFiles {
				errMsg += fmt.Sprintf("  - %s\n", file)
			}
		}
		errMsg += "\nUse 'mcobj init --force' to reinitialize (this will overwrite existing configuration)"

		return &ExistingError{Files: existingFiles, msg: errMsg}
	}

	return nil
}

// ExistingError lists the files that block a fresh initialization.
type ExistingError struct {
	Files []string
	msg   string
}

func (e *ExistingError) Error() string { return e.msg }
