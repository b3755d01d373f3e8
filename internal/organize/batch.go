package organize

import (
	"fmt"
	"os"
	"path/filepath"
)

// RenamePair records one completed (or simulated) rename.
type RenamePair struct {
	From string
	To   string
}

// RenameError records one file that could not be renamed.
type RenameError struct {
	File string
	Err  error
}

// BatchReport summarizes a batch rename run.
type BatchReport struct {
	Total   int
	Renamed []RenamePair
	Skipped []string
	Errors  []RenameError
}

// BatchRename renames every file in files using renameFn, which maps an
// old base name to a new one. Files whose name doesn't change are
// skipped, and an existing destination is an error for that file rather
// than an overwrite. With dryRun set the report is built without touching
// the filesystem.
func BatchRename(files []string, renameFn func(string) string, dryRun bool) BatchReport {
	report := BatchReport{Total: len(files)}

	for _, path := range files {
		dir := filepath.Dir(path)
		oldName := filepath.Base(path)
		newName := renameFn(oldName)

		if oldName == newName {
			report.Skipped = append(report.Skipped, path)
			continue
		}

		newPath := filepath.Join(dir, newName)
		if _, err := os.Stat(newPath); err == nil {
			report.Errors = append(report.Errors, RenameError{
				File: path,
				Err:  fmt.Errorf("%w: %s", ErrDestinationExists, newPath),
			})
			continue
		}

		if !dryRun {
			if err := os.Rename(path, newPath); err != nil {
				report.Errors = append(report.Errors, RenameError{File: path, Err: err})
				continue
			}
		}
		report.Renamed = append(report.Renamed, RenamePair{From: path, To: newPath})
	}

	return report
}
