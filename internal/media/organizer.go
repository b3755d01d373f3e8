package media

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vmunix/mediasort/internal/organize"
	"github.com/vmunix/mediasort/pkg/parse"
)

// OrganizeOptions are the knobs for a batch organize run.
type OrganizeOptions struct {
	DryRun             bool
	Copy               bool // copy instead of move
	CreateFolders      bool
	SkipDuplicates     bool
	BackupBeforeRename bool
}

// OrganizeError records one file that could not be organized.
type OrganizeError struct {
	File string
	Err  error
}

// OrganizeReport summarizes a batch organize run.
type OrganizeReport struct {
	OperationID string
	TotalFiles  int
	Moved       []organize.RenamePair
	Skipped     []string
	Errors      []OrganizeError
}

// Organizer relocates a list of files into the destination hierarchy for
// one media record. History is optional; with a store attached every
// outcome is journaled under one operation id.
type Organizer struct {
	ops     Operations
	mover   *organize.Mover
	history *organize.HistoryStore
	log     *slog.Logger
	opts    OrganizeOptions
}

// NewOrganizer creates an Organizer. history may be nil.
func NewOrganizer(ops Operations, mover *organize.Mover, history *organize.HistoryStore, log *slog.Logger, opts OrganizeOptions) *Organizer {
	if log == nil {
		log = slog.Default()
	}
	return &Organizer{ops: ops, mover: mover, history: history, log: log, opts: opts}
}

// OrganizeFiles moves (or copies) files into destRoot under the record's
// folder structure, renaming each to its canonical name. The files may
// come from several source directories. Failures are per-file: one bad
// file never aborts the batch.
func (o *Organizer) OrganizeFiles(ctx context.Context, files []string, destRoot string, rec *Record) *OrganizeReport {
	report := &OrganizeReport{
		OperationID: organize.NewOperationID(),
		TotalFiles:  len(files),
	}

	op := organize.OpMove
	if o.opts.Copy {
		op = organize.OpCopy
	}

	for _, src := range files {
		destDir := o.destDirFor(destRoot, rec, filepath.Base(src))

		if _, err := os.Stat(destDir); os.IsNotExist(err) && !o.opts.DryRun {
			if !o.opts.CreateFolders {
				report.Errors = append(report.Errors, OrganizeError{File: src, Err: err})
				continue
			}
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				report.Errors = append(report.Errors, OrganizeError{File: src, Err: err})
				continue
			}
		}

		newName := o.ops.GenerateNewFilename(rec, filepath.Base(src))
		dest := filepath.Join(destDir, newName)

		if _, err := os.Stat(dest); err == nil {
			if o.opts.SkipDuplicates {
				report.Skipped = append(report.Skipped, src)
				o.journal(report.OperationID, organize.OpSkip, organize.Result{
					Success: true, SourcePath: src, Destination: dest,
				})
				continue
			}
			if o.opts.BackupBeforeRename && !o.opts.DryRun {
				o.backupExisting(ctx, dest)
			}
			dest = organize.CollisionFreePath(dest)
		}

		if o.opts.DryRun {
			report.Moved = append(report.Moved, organize.RenamePair{From: src, To: dest})
			continue
		}

		var res organize.Result
		if o.opts.Copy {
			res = o.mover.SafeCopy(ctx, src, dest)
		} else {
			res = o.mover.SafeMove(ctx, src, dest)
		}
		o.journal(report.OperationID, op, res)

		if !res.Success {
			report.Errors = append(report.Errors, OrganizeError{File: src, Err: res.Err})
			continue
		}
		report.Moved = append(report.Moved, organize.RenamePair{From: src, To: res.Destination})
		o.log.Info("organized", "src", src, "dest", res.Destination)
	}

	return report
}

// destDirFor picks the directory a file belongs in. Series files get a
// per-file season folder from their own episode code; everything else
// follows the record's folder structure.
func (o *Organizer) destDirFor(destRoot string, rec *Record, original string) string {
	if rec == nil {
		return destRoot
	}

	if rec.ContentType == ContentTVSeries || rec.ContentType == ContentEpisode {
		name := rec.SeriesName
		if name == "" {
			name = rec.Title
		}
		dir := filepath.Join(destRoot, sanitized(name))
		info := parse.Extract(original, parse.KindVideo)
		if info.Season > 0 {
			dir = filepath.Join(dir, seasonFolder(info.Season))
		}
		return dir
	}

	parts := append([]string{destRoot}, rec.FolderStructure()...)
	return filepath.Join(parts...)
}

// backupExisting keeps a copy of a destination that is about to gain a
// collision-suffixed sibling, replacing any stale backup.
func (o *Organizer) backupExisting(ctx context.Context, dest string) {
	backup := dest + ".backup"
	_ = os.Remove(backup)
	if res := o.mover.SafeCopy(ctx, dest, backup); !res.Success {
		o.log.Warn("backup failed", "file", dest, "error", res.Err)
	}
}

func (o *Organizer) journal(operationID, op string, res organize.Result) {
	if o.history == nil {
		return
	}
	if err := o.history.Record(operationID, op, res); err != nil {
		o.log.Warn("history write failed", "error", err)
	}
}
