package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/byterings/psync/internal/config"
	"github.com/byterings/psync/internal/mirror"
	"github.com/byterings/psync/internal/pathutil"
	"github.com/byterings/psync/internal/ui"
)

var cloneYes bool

var cloneCmd = &cobra.Command{
	Use:     "clone [source] <destination>",
	Aliases: []string{"checkout", "co", "c"},
	Short:   "Seed a new mirror of a repository",
	Long: `Create the counterpart of a repository and record the pairing in a
psync config file, so later 'psync sync' runs need no arguments.

With one argument the current directory is the source and the argument the
destination. Which side gets created depends on what already exists:

  - source exists, destination argument ends with a separator and names an
    existing directory: the copy lands in <destination>/<basename(source)>
  - source exists, destination is missing or a plain directory: the copy
    lands in <destination> itself, created if needed
  - source is missing but the destination directory exists: the direction
    is reversed once, and the source is created and seeded from the
    destination

The config record is written at the freshly created side, with 'local'
pointing at it and 'remote' at the pre-existing side.`,
	Example: `  # Mirror the current repository onto a mounted disk
  psync clone /mnt/backup/

  # Explicit pair
  psync clone ~/code/repo /mnt/backup/repo

  # Seed a fresh working copy from an existing mirror
  psync clone ~/code/repo-here /mnt/backup/repo`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	cloneCmd.Flags().BoolVarP(&cloneYes, "yes", "y", false, "Skip the confirmation when mirroring into an existing non-empty directory")
}

// cloneScenario enumerates the role-disambiguation cases, keyed on which
// sides exist as directories and whether the raw destination argument ends
// with a path separator.
type cloneScenario int

const (
	// source exists, destination is an existing directory named with a
	// trailing separator; the copy nests under it
	scenarioNestUnderDestination cloneScenario = iota
	// source exists, destination is an existing directory; mirror into it
	scenarioIntoExistingDestination
	// source exists, destination is missing; create it
	scenarioCreateDestination
	// source is missing, destination exists; seed the source from it
	scenarioSeedSourceFromDestination
)

// clonePlan is the outcome of role disambiguation: the transfer direction
// plus which side is the freshly established one the config record belongs
// to. From is always the pre-existing, authoritative side.
type clonePlan struct {
	scenario cloneScenario
	from     string
	to       string
}

// resolveClonePlan decides the transfer direction for a source/destination
// argument pair. The trailing separator is read off the raw destination
// argument, before path cleaning strips it. Neither side is created here.
func resolveClonePlan(sourceArg, destArg string) (clonePlan, error) {
	source, err := pathutil.Resolve(sourceArg)
	if err != nil {
		return clonePlan{}, err
	}
	dest, err := pathutil.Resolve(destArg)
	if err != nil {
		return clonePlan{}, err
	}

	if source == dest {
		return clonePlan{}, fmt.Errorf("source and destination are the same path: %s", source)
	}

	sourceIsDir := pathutil.IsDir(source)
	destIsDir := pathutil.IsDir(dest)

	switch {
	case sourceIsDir && destIsDir && pathutil.EndsWithSeparator(destArg):
		return clonePlan{
			scenario: scenarioNestUnderDestination,
			from:     source,
			to:       filepath.Join(dest, filepath.Base(source)),
		}, nil
	case sourceIsDir && destIsDir:
		return clonePlan{scenario: scenarioIntoExistingDestination, from: source, to: dest}, nil
	case sourceIsDir:
		return clonePlan{scenario: scenarioCreateDestination, from: source, to: dest}, nil
	case destIsDir:
		return clonePlan{scenario: scenarioSeedSourceFromDestination, from: dest, to: source}, nil
	default:
		return clonePlan{}, fmt.Errorf("source %s: %w", source, mirror.ErrMissingDirectory)
	}
}

func runClone(cmd *cobra.Command, args []string) error {
	var sourceArg, destArg string
	if len(args) == 1 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		sourceArg, destArg = cwd, args[0]
	} else {
		sourceArg, destArg = args[0], args[1]
	}

	plan, err := resolveClonePlan(sourceArg, destArg)
	if err != nil {
		return err
	}

	if plan.scenario == scenarioSeedSourceFromDestination {
		ui.Info(fmt.Sprintf("Seeding %s from existing mirror %s", plan.to, plan.from))
	}

	// Delete-mirroring into a directory that already has content is
	// destructive; make sure that is what the user wants.
	if !cloneYes && pathutil.IsDir(plan.to) && dirHasEntries(plan.to) {
		confirmed, err := ui.PromptConfirmation(
			fmt.Sprintf("%s is not empty; content not present at %s will be deleted. Continue?", plan.to, plan.from))
		if err != nil {
			return err
		}
		if !confirmed {
			ui.Info("Aborted, nothing copied")
			return nil
		}
	}

	ignores, err := ignoredPaths(plan.from, verbose)
	if err != nil {
		return err
	}

	if err := mirrorTransfer(plan.from, plan.to, ignores, verbose); err != nil {
		return err
	}

	// The created side exists now, so canonicalize it before recording.
	created, err := pathutil.Resolve(plan.to)
	if err != nil {
		return err
	}

	recordPath := filepath.Join(created, config.FileName)
	if err := config.Save(recordPath, created, plan.from); err != nil {
		return err
	}

	ui.Success(fmt.Sprintf("Cloned %s → %s", plan.from, created))
	ui.Info(fmt.Sprintf("Config written to %s; run 'psync' from there to sync back", recordPath))
	return nil
}

func dirHasEntries(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) > 0
}
