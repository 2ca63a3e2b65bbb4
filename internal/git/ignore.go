// Package git queries the repository state psync needs: the set of paths that
// git ignores under a given root. Ignore-rule evaluation stays inside git
// itself; this package only shells out and parses the answer.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/byterings/psync/internal/config"
	"github.com/byterings/psync/internal/ui"
)

// ErrNotARepository reports that a path has no usable git metadata and
// therefore no ignore state to query.
var ErrNotARepository = errors.New("not a git repository")

// lsFilesArgs asks for everything ignored under the standard exclude files,
// reporting ignored directories as a single entry instead of descending into
// them. That keeps large ignored trees (node_modules, build caches) to one
// pattern each.
var lsFilesArgs = []string{"ls-files", "--others", "--ignored", "--exclude-standard", "--directory", "-z"}

// runGit executes git in dir and returns stdout. Replaced in tests so ignore
// handling can be exercised without a git binary.
var runGit = func(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	errbuf := bytes.NewBuffer(nil)
	cmd.Stderr = errbuf

	out, err := cmd.Output()
	if err != nil {
		stderr := strings.TrimSpace(errbuf.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
			return nil, ErrNotARepository
		}
		if stderr != "" {
			return nil, fmt.Errorf("git %s: %s: %w", args[0], stderr, err)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

// IgnoredPaths returns the set of root-relative paths that must be excluded
// when mirroring root, as reported by git, plus the psync config file name so
// the record is never treated as repository content. The result is an
// exclusion filter; callers must not rely on its order.
func IgnoredPaths(root string, verbose bool) ([]string, error) {
	if verbose {
		ui.Command(append([]string{"git", "-C", root}, lsFilesArgs...)...)
	}

	out, err := runGit(root, lsFilesArgs...)
	if err != nil {
		if errors.Is(err, ErrNotARepository) {
			return nil, fmt.Errorf("%s: %w", root, ErrNotARepository)
		}
		return nil, fmt.Errorf("failed to list ignored paths: %w", err)
	}

	paths := parseNulSeparated(out)
	return append(paths, config.FileName), nil
}

func parseNulSeparated(out []byte) []string {
	var paths []string
	for _, entry := range bytes.Split(out, []byte{0}) {
		if len(entry) == 0 {
			continue
		}
		paths = append(paths, string(entry))
	}
	return paths
}
