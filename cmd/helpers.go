package cmd

import (
	"github.com/byterings/psync/internal/config"
	"github.com/byterings/psync/internal/git"
	"github.com/byterings/psync/internal/mirror"
)

// Collaborator seams for the two external engines. The verbs only ever talk
// to git and rsync through these, so tests can substitute stubs and exercise
// the full clone/sync flows without either binary.
var (
	ignoredPaths   = git.IgnoredPaths
	mirrorTransfer = mirror.Mirror
)

// loadRecord finds and loads the nearest config record above startDir. A
// missing record yields an empty record, not an error; the verbs decide
// whether empty bindings are fatal.
func loadRecord(startDir string) (config.Record, error) {
	path, err := config.Find(startDir)
	if err != nil || path == "" {
		return config.Record{}, err
	}
	return config.Load(path)
}
