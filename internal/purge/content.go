package purge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Source is one content file read for token extraction.
type Source struct {
	Path string
	Text string
}

// ResolveContent expands the configured content globs relative to baseDir and
// returns the matching regular files, sorted and de-duplicated. A glob that
// matches nothing is not an error.
func ResolveContent(baseDir string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(baseDir, pattern)
		}

		matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("content pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadSources reads each path, stopping early if ctx is cancelled.
func ReadSources(ctx context.Context, paths []string) ([]Source, error) {
	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", path, err)
		}
		sources = append(sources, Source{Path: path, Text: string(data)})
	}
	return sources, nil
}
