package mirror

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubRunRsync(t *testing.T, fn func(args []string) error) {
	t.Helper()
	orig := runRsync
	runRsync = fn
	t.Cleanup(func() { runRsync = orig })
}

func TestBuildArgs(t *testing.T) {
	args := BuildArgs("/repo", "/backup", []string{"build/", "out.bin"}, false)

	assert.Equal(t, []string{
		"-a",
		"--delete",
		"--delete-excluded",
		"--include=/.git",
		"--exclude=/build/",
		"--exclude=/out.bin",
		"/repo/",
		"/backup",
	}, args)
}

func TestBuildArgsVerbose(t *testing.T) {
	args := BuildArgs("/repo", "/backup", nil, true)
	assert.Equal(t, []string{"-a", "-v", "--delete", "--delete-excluded", "--include=/.git", "/repo/", "/backup"}, args)
}

func TestBuildArgsPurgesExcludedDestinationPaths(t *testing.T) {
	// A file copied before it became ignored must not survive the next
	// run; rsync only removes such destination paths when told to delete
	// excluded content as well.
	args := BuildArgs("/repo", "/backup", []string{"build/", "out.bin"}, false)
	assert.Contains(t, args, "--delete-excluded")
}

func TestBuildArgsIncludePrecedesExcludes(t *testing.T) {
	args := BuildArgs("/repo", "/backup", []string{".git", "a"}, false)

	include := -1
	firstExclude := len(args)
	for i, a := range args {
		if a == "--include=/.git" && include == -1 {
			include = i
		}
		if firstExclude == len(args) && len(a) > 10 && a[:10] == "--exclude=" {
			firstExclude = i
		}
	}
	require.NotEqual(t, -1, include)
	assert.Less(t, include, firstExclude)
}

func TestMirrorMissingSource(t *testing.T) {
	called := false
	stubRunRsync(t, func(args []string) error {
		called = true
		return nil
	})

	err := Mirror(filepath.Join(t.TempDir(), "absent"), t.TempDir(), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDirectory)
	assert.Contains(t, err.Error(), "source")
	assert.False(t, called, "rsync must not run when the source is missing")
}

func TestMirrorCreatesDestination(t *testing.T) {
	var got []string
	stubRunRsync(t, func(args []string) error {
		got = args
		return nil
	})

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "deep", "nested", "backup")

	require.NoError(t, Mirror(src, dst, []string{"tmp/"}, false))
	assert.DirExists(t, dst)
	assert.Equal(t, BuildArgs(src, dst, []string{"tmp/"}, false), got)
}

func TestMirrorDestinationIsAFile(t *testing.T) {
	stubRunRsync(t, func(args []string) error {
		t.Fatal("rsync must not run")
		return nil
	})

	dst := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(dst, []byte("x"), 0o644))

	err := Mirror(t.TempDir(), dst, nil, false)
	assert.Error(t, err)
}

func TestMirrorWrapsRsyncFailure(t *testing.T) {
	boom := errors.New("exit status 23")
	stubRunRsync(t, func(args []string) error { return boom })

	err := Mirror(t.TempDir(), t.TempDir(), nil, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
