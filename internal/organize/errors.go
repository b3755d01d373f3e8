package organize

import (
	"context"
	"errors"
	"os"
)

var (
	// ErrSourceNotFound indicates the source file doesn't exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrDestinationExists indicates the destination file already exists.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrIntegrityMismatch indicates post-copy verification failed.
	ErrIntegrityMismatch = errors.New("destination does not match source")

	// ErrCrossVolumeMove indicates the copy fallback of a cross-device
	// move failed.
	ErrCrossVolumeMove = errors.New("cross-volume move failed")
)

// ErrorKind classifies a file operation failure.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindFileNotFound      ErrorKind = "file_not_found"
	KindPermissionDenied  ErrorKind = "permission_denied"
	KindDestinationExists ErrorKind = "destination_exists"
	KindCrossVolumeMove   ErrorKind = "cross_volume_move_failed"
	KindIntegrityMismatch ErrorKind = "integrity_mismatch"
	KindTimeout           ErrorKind = "timeout"
	KindIO                ErrorKind = "io_error"
)

// classify maps an error to its ErrorKind.
func classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrSourceNotFound) || os.IsNotExist(err):
		return KindFileNotFound
	case errors.Is(err, ErrDestinationExists):
		return KindDestinationExists
	case errors.Is(err, ErrIntegrityMismatch):
		return KindIntegrityMismatch
	case errors.Is(err, ErrCrossVolumeMove):
		return KindCrossVolumeMove
	case os.IsPermission(err):
		return KindPermissionDenied
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		return KindTimeout
	default:
		return KindIO
	}
}
