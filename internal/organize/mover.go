package organize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const copyChunkSize = 1 << 20

// Result reports the outcome of a single copy or move. Operations never
// panic or return bare errors past this boundary: a failed operation is a
// Result with Success false and the failure classified in Kind.
type Result struct {
	Success     bool
	SourcePath  string
	Destination string // final path, may differ from the requested one
	Kind        ErrorKind
	Err         error
}

// Mover performs collision-aware file copies and moves. The zero value is
// usable; NewMover attaches a logger.
type Mover struct {
	log *slog.Logger
}

// NewMover creates a Mover. A nil logger falls back to slog.Default().
func NewMover(log *slog.Logger) *Mover {
	if log == nil {
		log = slog.Default()
	}
	return &Mover{log: log}
}

func (m *Mover) logger() *slog.Logger {
	if m.log == nil {
		return slog.Default()
	}
	return m.log
}

// SafeCopy copies src to dst, creating parent directories as needed. The
// source is left untouched. The copy only succeeds once the destination
// length matches the source; a partial destination is removed on any
// failure, so dst is either absent or fully written.
func (m *Mover) SafeCopy(ctx context.Context, src, dst string) Result {
	res := Result{SourcePath: src, Destination: dst}

	if err := m.copyVerified(ctx, src, dst); err != nil {
		res.Kind = classify(err)
		res.Err = err
		m.logger().Warn("copy failed", "src", src, "dst", dst, "kind", string(res.Kind), "error", err)
		return res
	}

	res.Success = true
	return res
}

// SafeMove moves src to dst. Same-volume moves use an atomic rename;
// cross-volume moves copy, verify byte-for-byte, and only then delete the
// source. The destination is never partially written.
func (m *Mover) SafeMove(ctx context.Context, src, dst string) Result {
	res := Result{SourcePath: src, Destination: dst}

	fail := func(err error) Result {
		res.Kind = classify(err)
		res.Err = err
		m.logger().Warn("move failed", "src", src, "dst", dst, "kind", string(res.Kind), "error", err)
		return res
	}

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return fail(fmt.Errorf("%w: %s", ErrSourceNotFound, src))
		}
		return fail(err)
	}
	if _, err := os.Stat(dst); err == nil {
		return fail(fmt.Errorf("%w: %s", ErrDestinationExists, dst))
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fail(fmt.Errorf("create directory: %w", err))
	}

	err := os.Rename(src, dst)
	if err == nil {
		res.Success = true
		return res
	}

	// Rename failed, most likely a cross-device link error. Fall back to
	// copy, verify byte-for-byte, delete source.
	if copyErr := m.copyVerified(ctx, src, dst); copyErr != nil {
		if classify(copyErr) == KindTimeout {
			return fail(copyErr)
		}
		return fail(fmt.Errorf("%w: %v", ErrCrossVolumeMove, copyErr))
	}
	identical, cmpErr := sameContent(ctx, src, dst)
	if cmpErr != nil {
		_ = os.Remove(dst)
		return fail(cmpErr)
	}
	if !identical {
		_ = os.Remove(dst)
		return fail(fmt.Errorf("%w: %s", ErrIntegrityMismatch, dst))
	}
	if rmErr := os.Remove(src); rmErr != nil {
		// Destination is complete; report success but keep the source so
		// no data is lost.
		m.logger().Warn("source left behind after move", "src", src, "error", rmErr)
	}

	res.Success = true
	return res
}

// copyVerified copies src to dst and confirms the destination length
// matches the source. Transient permission errors are retried once.
func (m *Mover) copyVerified(ctx context.Context, src, dst string) error {
	err := m.copyOnce(ctx, src, dst)
	if err != nil && classify(err) == KindPermissionDenied {
		m.logger().Debug("retrying copy after permission error", "src", src)
		err = m.copyOnce(ctx, src, dst)
	}
	return err
}

func (m *Mover) copyOnce(ctx context.Context, src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return err
	}
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	written, err := copyWithContext(ctx, dstFile, srcFile)
	if err == nil {
		err = dstFile.Sync()
	}
	if closeErr := dstFile.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written != srcInfo.Size() {
		err = fmt.Errorf("%w: wrote %d of %d bytes", ErrIntegrityMismatch, written, srcInfo.Size())
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// copyWithContext copies in chunks, checking for cancellation between
// chunks so a deadline can bound moves on slow volumes.
func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, copyChunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			wn, writeErr := dst.Write(buf[:n])
			written += int64(wn)
			if writeErr != nil {
				return written, writeErr
			}
			if wn != n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

// sameContent compares two files byte-for-byte.
func sameContent(ctx context.Context, a, b string) (bool, error) {
	fa, err := os.Open(a)
	if err != nil {
		return false, err
	}
	defer func() { _ = fa.Close() }()

	fb, err := os.Open(b)
	if err != nil {
		return false, err
	}
	defer func() { _ = fb.Close() }()

	bufA := make([]byte, copyChunkSize)
	bufB := make([]byte, copyChunkSize)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		na, errA := io.ReadFull(fa, bufA)
		nb, errB := io.ReadFull(fb, bufB)
		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return errB == io.EOF || errB == io.ErrUnexpectedEOF, nil
		}
		if errA != nil {
			return false, errA
		}
		if errB != nil {
			return false, errB
		}
	}
}

// CollisionFreePath returns path if it is free, otherwise the first
// "name (n).ext" variant that doesn't exist yet. Collision checking and
// the subsequent move must be serialized per destination by the caller.
func CollisionFreePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
