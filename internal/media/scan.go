package media

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentWalks bounds how many roots are scanned at once.
const maxConcurrentWalks = 4

// ScanRoots enumerates files for ops under every root concurrently and
// merges the results. Overlapping roots are common (a parent and its
// subdirectory); results are deduplicated by canonical path so a file is
// reported once no matter how many roots cover it. Output order is
// deterministic.
func ScanRoots(ctx context.Context, ops Operations, roots []string) ([]string, error) {
	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		out  []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWalks)

	for _, root := range roots {
		root := root
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files, err := ops.FindFiles(root)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for _, f := range files {
				key := canonicalPath(f)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, f)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

// canonicalPath resolves a path to its identity for deduplication:
// absolute, cleaned, symlinks resolved when possible.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
