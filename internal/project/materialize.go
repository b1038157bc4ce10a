package project

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Materialize copies srcPath from src to target when target does not exist.
// An existing target is never overwritten. It reports whether a file was
// written.
func Materialize(fsys afero.Fs, target string, src fs.FS, srcPath string) (bool, error) {
	exists, err := afero.Exists(fsys, target)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", target, err)
	}
	if exists {
		return false, nil
	}

	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return false, fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fsys, target, data, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", target, err)
	}
	return true, nil
}
