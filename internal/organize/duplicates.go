package organize

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DuplicateKey selects how files are grouped when hunting duplicates.
type DuplicateKey int

const (
	// ByHash groups files by SHA-256 content digest. Accurate but reads
	// every byte.
	ByHash DuplicateKey = iota
	// BySize groups files by byte length only. Fast pre-filter.
	BySize
)

// FindDuplicates walks root and groups files with matching extensions by
// the chosen key. Only groups with two or more members are returned.
// Unreadable files are skipped, not fatal.
func FindDuplicates(root string, extensions []string, key DuplicateKey) (map[string][]string, error) {
	extSet := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		extSet[strings.ToLower(e)] = true
	}

	groups := make(map[string][]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if len(extSet) > 0 && !extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		var k string
		switch key {
		case BySize:
			k = strconv.FormatInt(info.Size(), 10)
		default:
			digest, hashErr := hashFile(path)
			if hashErr != nil {
				return nil
			}
			k = digest
		}
		groups[k] = append(groups[k], path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	for k, paths := range groups {
		if len(paths) < 2 {
			delete(groups, k)
		}
	}
	return groups, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
