// Package config stores the psync path bindings next to the repositories it
// mirrors. The record is a two-line file of single-quoted key=value bindings,
// discovered by walking parent directories upward from wherever psync runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the record file looked up by Find. It is also the
// entry appended to every ignore set so the record never travels with the
// mirrored content.
const FileName = "psync_config"

// Record holds the two persisted path bindings. Local is the side the record
// lives on; Remote is its mirror counterpart.
type Record struct {
	Local  string `toml:"local"`
	Remote string `toml:"remote"`
}

// Find searches startDir and each of its parents for the record file and
// returns the path of the first match. A missing record is a normal case and
// returns "" without error.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads a record, tolerating anything it does not recognize. Each line
// is decoded on its own; lines that fail to parse are inert, so a record
// edited by hand degrades to whichever bindings remain readable. Bindings
// absent from the file stay empty.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read config: %w", err)
	}

	var rec Record
	for _, line := range strings.Split(string(data), "\n") {
		var partial Record
		if _, err := toml.Decode(line, &partial); err != nil {
			continue
		}
		if partial.Local != "" {
			rec.Local = partial.Local
		}
		if partial.Remote != "" {
			rec.Remote = partial.Remote
		}
	}
	return rec, nil
}

// Save writes the two bindings to path, replacing any existing record.
func Save(path, local, remote string) error {
	content := fmt.Sprintf("local='%s'\nremote='%s'\n", local, remote)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
