package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// TempFilePrefix marks the staging files of WriteAtomic. The watcher never
// reports them.
const TempFilePrefix = ".dspimport-tmp-"

// WriteAtomic replaces filename with whatever write produces. The content is
// staged in a temp file next to filename and renamed over it only when write
// succeeded, so a failed or interrupted run leaves the previous file intact.
// Missing parent directories are created.
func WriteAtomic(filename string, perm os.FileMode, write func(io.Writer) error) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	staging, err := os.CreateTemp(dir, TempFilePrefix+filepath.Base(filename)+"-*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filename, err)
	}
	committed := false
	defer func() {
		if !committed {
			staging.Close()
			os.Remove(staging.Name())
		}
	}()

	buf := bufio.NewWriter(staging)
	if err := write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if err := staging.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set mode of %s: %w", filename, err)
	}
	if err := staging.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", filename, err)
	}
	if err := staging.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}
	if err := os.Rename(staging.Name(), filename); err != nil {
		os.Remove(staging.Name())
		committed = true
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	committed = true
	return nil
}

// WriteFileAtomic is WriteAtomic for content already in memory.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return WriteAtomic(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// IsTempFile reports whether name is a staging file of WriteAtomic.
func IsTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), TempFilePrefix)
}
