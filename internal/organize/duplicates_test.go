package organize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDuplicates_ByHash(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.mkv"), "same content")
	writeFile(t, filepath.Join(tmp, "sub", "b.mkv"), "same content")
	writeFile(t, filepath.Join(tmp, "c.mkv"), "different")

	groups, err := FindDuplicates(tmp, []string{".mkv"}, ByHash)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	for _, paths := range groups {
		assert.ElementsMatch(t, []string{
			filepath.Join(tmp, "a.mkv"),
			filepath.Join(tmp, "sub", "b.mkv"),
		}, paths)
	}
}

func TestFindDuplicates_BySize(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.mp3"), "12345")
	writeFile(t, filepath.Join(tmp, "b.mp3"), "abcde")
	writeFile(t, filepath.Join(tmp, "c.mp3"), "longer file")

	groups, err := FindDuplicates(tmp, []string{".mp3"}, BySize)
	require.NoError(t, err)

	// Same length counts as a candidate group even with different bytes.
	require.Len(t, groups, 1)
	for _, paths := range groups {
		assert.Len(t, paths, 2)
	}
}

func TestFindDuplicates_ExtensionFilter(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.mkv"), "same")
	writeFile(t, filepath.Join(tmp, "b.txt"), "same")

	groups, err := FindDuplicates(tmp, []string{".mkv"}, ByHash)
	require.NoError(t, err)
	assert.Empty(t, groups, "non-matching extensions must be ignored")
}

func TestFindDuplicates_NoDuplicates(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.mkv"), "one")
	writeFile(t, filepath.Join(tmp, "b.mkv"), "two three")

	groups, err := FindDuplicates(tmp, nil, ByHash)
	require.NoError(t, err)
	assert.Empty(t, groups)
}
