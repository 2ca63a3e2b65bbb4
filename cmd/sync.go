package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byterings/psync/internal/config"
	"github.com/byterings/psync/internal/mirror"
	"github.com/byterings/psync/internal/pathutil"
	"github.com/byterings/psync/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:     "sync [source] [destination]",
	Aliases: []string{"s"},
	Short:   "Mirror the local side to its counterpart",
	Long: `Mirror the source directory to the destination, excluding ignored
files. With no arguments both sides come from the nearest psync config
record, found by searching upward from the current directory; one argument
overrides the destination, two override both.

The direction is always source to destination. Files present at the
destination but absent (or ignored) at the source are deleted.`,
	Example: `  # Use the paths recorded at clone time
  psync sync

  # Push the configured local side somewhere else
  psync sync /mnt/usb/repo

  # Fully explicit, ignoring the config record
  psync sync ~/code/repo /mnt/backup/repo`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// resolveSyncEndpoints applies the argument priority chain: explicit
// arguments beat config bindings, and a single argument only replaces the
// destination.
func resolveSyncEndpoints(rec config.Record, args []string) (source, destination string) {
	source, destination = rec.Local, rec.Remote
	switch len(args) {
	case 1:
		destination = args[0]
	case 2:
		source, destination = args[0], args[1]
	}
	return source, destination
}

func runSync(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	rec, err := loadRecord(cwd)
	if err != nil {
		return err
	}

	source, destination := resolveSyncEndpoints(rec, args)
	if source == "" {
		return fmt.Errorf("no source: none given and no config record found: %w", mirror.ErrMissingDirectory)
	}
	if destination == "" {
		return fmt.Errorf("no destination: none given and no config record found: %w", mirror.ErrMissingDirectory)
	}

	source, err = pathutil.Resolve(source)
	if err != nil {
		return err
	}
	if !pathutil.IsDir(source) {
		return fmt.Errorf("source %s: %w", source, mirror.ErrMissingDirectory)
	}
	destination, err = pathutil.Resolve(destination)
	if err != nil {
		return err
	}

	ignores, err := ignoredPaths(source, verbose)
	if err != nil {
		return err
	}

	if err := mirrorTransfer(source, destination, ignores, verbose); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Synced %s → %s", source, destination))
	return nil
}
