package pathutil

import (
	"os"
	"path/filepath"
)

// Resolve returns the canonical absolute form of path. Existing paths are
// resolved through symlinks; nonexistent paths are only made absolute, since
// whether (and when) to create them is the caller's decision.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EndsWithSeparator reports whether the raw argument ends with a path
// separator. Callers must check this before cleaning the path, because
// filepath.Clean and filepath.Abs strip the trailing separator.
func EndsWithSeparator(arg string) bool {
	if arg == "" {
		return false
	}
	last := arg[len(arg)-1]
	return last == '/' || os.PathSeparator != '/' && last == os.PathSeparator
}
