package organize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSafeMove(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src", "movie.mkv")
	dst := filepath.Join(tmp, "dst", "Movie (1999).mkv")
	writeFile(t, src, "video bytes")

	res := NewMover(nil).SafeMove(context.Background(), src, dst)

	require.True(t, res.Success, "move failed: %v", res.Err)
	assert.Equal(t, dst, res.Destination)
	assert.NoFileExists(t, src)

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "video bytes", string(content))
}

func TestSafeMove_SourceMissing(t *testing.T) {
	tmp := t.TempDir()

	res := NewMover(nil).SafeMove(context.Background(), filepath.Join(tmp, "gone.mkv"), filepath.Join(tmp, "dst.mkv"))

	assert.False(t, res.Success)
	assert.Equal(t, KindFileNotFound, res.Kind)
	assert.ErrorIs(t, res.Err, ErrSourceNotFound)
}

func TestSafeMove_DestinationExists(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.mkv")
	dst := filepath.Join(tmp, "dst.mkv")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	res := NewMover(nil).SafeMove(context.Background(), src, dst)

	assert.False(t, res.Success)
	assert.Equal(t, KindDestinationExists, res.Kind)

	// Neither file was touched.
	content, _ := os.ReadFile(dst)
	assert.Equal(t, "old", string(content))
	assert.FileExists(t, src)
}

func TestSafeCopy(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "track.flac")
	dst := filepath.Join(tmp, "library", "01 - Track.flac")
	writeFile(t, src, "audio bytes")

	res := NewMover(nil).SafeCopy(context.Background(), src, dst)

	require.True(t, res.Success, "copy failed: %v", res.Err)
	assert.FileExists(t, src, "source must survive a copy")

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(content))
}

func TestSafeCopy_CanceledContext(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.mkv")
	dst := filepath.Join(tmp, "dst.mkv")
	writeFile(t, src, "data")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewMover(nil).SafeCopy(ctx, src, dst)

	assert.False(t, res.Success)
	assert.Equal(t, KindTimeout, res.Kind)
	assert.NoFileExists(t, dst, "no partial destination may remain")
}

func TestCollisionFreePath(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "name.mkv")

	// Free path comes back unchanged.
	assert.Equal(t, path, CollisionFreePath(path))

	writeFile(t, path, "x")
	assert.Equal(t, filepath.Join(tmp, "name (1).mkv"), CollisionFreePath(path))

	writeFile(t, filepath.Join(tmp, "name (1).mkv"), "x")
	assert.Equal(t, filepath.Join(tmp, "name (2).mkv"), CollisionFreePath(path))
}
