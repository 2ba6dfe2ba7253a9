package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dasch-swiss/00A1-import-scripts/pkg/config"
)

// FindRoot looks upwards from startDir for a project root, i.e. a directory
// holding an import.yaml. It returns the absolute path of that directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, config.DefaultFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", config.DefaultFile, abs)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}

// ResolveConfigPath returns path when set. Otherwise it returns the
// import.yaml of the nearest project root above workDir, or import.yaml in
// workDir itself when there is none (the defaults then apply).
func ResolveConfigPath(path, workDir string) (string, error) {
	if path != "" {
		return path, nil
	}
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}
	if root, err := FindRoot(workDir); err == nil {
		return filepath.Join(root, config.DefaultFile), nil
	}
	return filepath.Join(workDir, config.DefaultFile), nil
}
