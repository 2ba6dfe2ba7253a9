package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsHidden reports whether a file should be skipped when collecting media:
// dot files and Office lock files ("~$report.xlsx").
func IsHidden(name string) bool {
	base := path.Base(name)
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~$")
}

// ListFiles returns the regular files below dir matching the doublestar
// pattern, relative to dir, sorted and without hidden files.
// A missing dir yields no files.
func ListFiles(dir, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s in %s: %w", pattern, dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if IsHidden(m) || IsTempFile(m) {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}
