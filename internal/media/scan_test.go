package media

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRoots(t *testing.T) {
	tmp := t.TempDir()
	mk := func(rel string) string {
		path := filepath.Join(tmp, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		return path
	}
	a := mk("one/a.mkv")
	b := mk("two/b.mkv")
	c := mk("two/deep/c.mp4")

	files, err := ScanRoots(context.Background(), NewVideoOps("", ""), []string{
		filepath.Join(tmp, "one"),
		filepath.Join(tmp, "two"),
	})
	require.NoError(t, err)

	want := []string{a, b, c}
	sort.Strings(want)
	assert.Equal(t, want, files)
}

func TestScanRoots_OverlappingRoots(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "sub", "a.mkv")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	// The parent and its subdirectory both cover the same file.
	files, err := ScanRoots(context.Background(), NewVideoOps("", ""), []string{
		tmp,
		filepath.Join(tmp, "sub"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 1, "a file covered by two roots must be reported once")
}

func TestScanRoots_MissingRoot(t *testing.T) {
	_, err := ScanRoots(context.Background(), NewVideoOps("", ""), []string{"/nonexistent/root"})
	assert.Error(t, err)
}
