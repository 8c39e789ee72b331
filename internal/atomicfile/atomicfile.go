// Package atomicfile writes configuration files without leaving partial
// content behind.
package atomicfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultMode fs.FileMode = 0o644

// WriteFile replaces path with data, creating missing parent directories.
// Readers see either the old content or the new one, never a mix.
//
// A zero perm keeps the mode of the file being replaced, or 0644 for a new
// file.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	staged, err := stage(dir, filepath.Base(path), data, modeFor(path, perm))
	if err != nil {
		return err
	}
	if err := replace(staged, path); err != nil {
		_ = os.Remove(staged)
		return err
	}
	return nil
}

func modeFor(path string, perm fs.FileMode) fs.FileMode {
	if perm != 0 {
		return perm
	}
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return defaultMode
}

// stage writes data to a hidden sibling of the target and returns its path.
// Nothing is left on disk when it fails.
func stage(dir, base string, data []byte, mode fs.FileMode) (name string, err error) {
	f, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name = f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(name)
		}
	}()

	// chmod is unsupported on some filesystems.
	_ = f.Chmod(mode)

	if _, err = f.Write(data); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return name, nil
}

// replace renames src over dst. Windows refuses to rename over an existing
// file, so dst is removed and the rename retried once.
func replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	_ = os.Remove(dst)
	if retry := os.Rename(src, dst); retry != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
