package cmd

import "testing"

// stubCollaborators swaps the git and rsync seams for the duration of a
// test. Passing nil keeps the real collaborator.
func stubCollaborators(t *testing.T, ign func(root string, verbose bool) ([]string, error), mir func(src, dst string, ignores []string, verbose bool) error) {
	t.Helper()
	origIgn, origMir := ignoredPaths, mirrorTransfer
	if ign != nil {
		ignoredPaths = ign
	}
	if mir != nil {
		mirrorTransfer = mir
	}
	t.Cleanup(func() {
		ignoredPaths, mirrorTransfer = origIgn, origMir
	})
}
