// Package mirror drives the rsync transfer that makes a destination tree
// match a source tree minus its ignored paths. It owns the argument policy
// (archive mode, delete-extraneous, the .git include override) but delegates
// the actual copying to rsync.
package mirror

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/byterings/psync/internal/pathutil"
	"github.com/byterings/psync/internal/ui"
)

// ErrMissingDirectory reports that a side of the transfer that had to exist
// as a directory does not.
var ErrMissingDirectory = errors.New("missing directory")

// runRsync executes rsync with output passed through to the terminal.
// Replaced in tests.
var runRsync = func(args []string) error {
	cmd := exec.Command("rsync", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// BuildArgs assembles the rsync argument vector for mirroring src into dst.
// The .git include comes before every exclude: rsync filter rules are
// first-match, and the metadata directory must travel even when ignore rules
// would generically drop dotfiles. Excludes are anchored at the transfer root
// so a pattern like "build/" cannot accidentally match nested directories git
// never reported. --delete-excluded keeps the guarantee symmetric: a path
// that enters the ignore set after an earlier run copied it is purged from
// the destination, not just skipped.
func BuildArgs(src, dst string, ignores []string, verbose bool) []string {
	args := []string{"-a"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "--delete", "--delete-excluded", "--include=/.git")
	for _, pattern := range ignores {
		args = append(args, "--exclude=/"+pattern)
	}
	return append(args, src+string(os.PathSeparator), dst)
}

// Mirror makes dst a filtered copy of src: after a successful run dst holds
// src's unignored content plus the .git directory, and anything else that was
// in dst is gone. dst is created (parents included) when missing; a missing
// src aborts before anything is touched.
func Mirror(src, dst string, ignores []string, verbose bool) error {
	if !pathutil.IsDir(src) {
		return fmt.Errorf("source %s: %w", src, ErrMissingDirectory)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", dst, err)
	}
	if !pathutil.IsDir(dst) {
		return fmt.Errorf("destination %s: %w", dst, ErrMissingDirectory)
	}

	args := BuildArgs(src, dst, ignores, verbose)
	if verbose {
		for _, pattern := range ignores {
			fmt.Printf("ignoring %s\n", pattern)
		}
		ui.Command(append([]string{"rsync"}, args...)...)
	}

	if err := runRsync(args); err != nil {
		return fmt.Errorf("rsync failed: %w", err)
	}
	return nil
}
