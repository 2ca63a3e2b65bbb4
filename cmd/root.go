package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "psync [source] [destination]",
	Short: "Mirror a git working directory, minus its ignored files",
	Long: `psync keeps a copy of a git working directory in a counterpart
location (a backup disk, a network mount) without dragging along build
output, dependency caches, or anything else the repository ignores.

What to exclude is asked of git itself; the copying is delegated to rsync
with delete-mirroring, so the counterpart always matches the source minus
the ignored paths. The .git directory travels with the copy, which is what
lets the counterpart answer ignore queries of its own later.

Running psync with no verb is the same as running 'psync sync'.`,
	Args:          cobra.MaximumNArgs(2),
	RunE:          runSync,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// flagError marks flag-parse failures so main can exit with a status
// distinct from operational errors.
type flagError struct{ error }

// IsFlagError reports whether err came from flag parsing.
func IsFlagError(err error) bool {
	var fe flagError
	return errors.As(err, &fe)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo delegated commands and list ignored paths before the transfer")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return flagError{err}
	})
}

// Execute runs the root command and returns its error for main to map to an
// exit status.
func Execute() error {
	return rootCmd.Execute()
}
