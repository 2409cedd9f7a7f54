package vimv

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// pathExists follows symlinks, so a dangling link does not exist.
func pathExists(fs afero.Fs, name string) bool {
	if name == "" {
		return false
	}
	_, err := fs.Stat(name)
	return err == nil
}

func isDir(fs afero.Fs, name string) bool {
	info, err := fs.Stat(name)
	return err == nil && info.IsDir()
}

// parentToCreate returns the parent directory of path when it is not already
// a directory, or "" when nothing needs creating.
func parentToCreate(fs afero.Fs, path string) string {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return ""
	}
	if isDir(fs, dir) {
		return ""
	}
	return dir
}
