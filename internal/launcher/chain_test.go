package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildChain creates a three-hop symlink chain:
//
//	dir/foo2 -> foo1
//	dir/foo1 -> foo0
//	dir/foo0 -> <launcherExe>
//
// and returns the path to foo2.
func buildChain(t *testing.T, dir, launcherExe string) string {
	t.Helper()
	require.NoError(t, os.Symlink(launcherExe, filepath.Join(dir, "foo0")))
	require.NoError(t, os.Symlink("foo0", filepath.Join(dir, "foo1")))
	require.NoError(t, os.Symlink("foo1", filepath.Join(dir, "foo2")))
	return filepath.Join(dir, "foo2")
}

func TestResolveChainSimple(t *testing.T) {
	dir := t.TempDir()
	launcherExe := filepath.Join(dir, "launcher-bin")
	require.NoError(t, os.WriteFile(launcherExe, []byte("#!/bin/true\n"), 0o755))

	invoked := buildChain(t, dir, launcherExe)

	var lines []string
	dbg := newDebugLogger(sliceWriter{&lines}, true)

	result, err := resolveChain(invoked, launcherExe, dbg)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "foo0"), result.LastHop)
	require.Empty(t, result.ProfileBinDir)

	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "readlink=")
	require.Contains(t, lines[0], "foo2")
	require.Contains(t, lines[0], "foo1")
	require.Contains(t, lines[1], "foo1")
	require.Contains(t, lines[1], "foo0")
	require.Contains(t, lines[2], "foo0")
	require.Contains(t, lines[2], "launcher-bin")
}

func TestResolveChainDetectsProfileBinDir(t *testing.T) {
	dir := t.TempDir()
	outer := filepath.Join(dir, "outer")
	require.NoError(t, os.Mkdir(outer, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, profileBinMarker), []byte(""), 0o644))

	launcherExe := filepath.Join(dir, "launcher-bin")
	require.NoError(t, os.WriteFile(launcherExe, []byte("#!/bin/true\n"), 0o755))

	require.NoError(t, os.Symlink(launcherExe, filepath.Join(outer, "tool0")))
	invoked := filepath.Join(outer, "tool0")

	dbg := newDebugLogger(sliceWriter{&[]string{}}, false)
	result, err := resolveChain(invoked, launcherExe, dbg)
	require.NoError(t, err)
	require.Equal(t, outer, result.ProfileBinDir)
}

func TestResolveChainTooLong(t *testing.T) {
	dir := t.TempDir()
	launcherExe := filepath.Join(dir, "launcher-bin")
	require.NoError(t, os.WriteFile(launcherExe, []byte("#!/bin/true\n"), 0o755))

	// A chain that cycles and never reaches launcherExe.
	require.NoError(t, os.Symlink("b", filepath.Join(dir, "a")))
	require.NoError(t, os.Symlink("a", filepath.Join(dir, "b")))

	dbg := newDebugLogger(sliceWriter{&[]string{}}, false)
	_, err := resolveChain(filepath.Join(dir, "a"), launcherExe, dbg)
	require.Error(t, err)
	var le *LaunchError
	require.ErrorAs(t, err, &le)
	require.Equal(t, KindChainTooLong, le.Kind)
}

func TestJoinHopRelativeIsTextual(t *testing.T) {
	// dirname("d/foo1") == "d"; joining with raw target "foo0" is a plain
	// textual concatenation, not a cleaned path.
	require.Equal(t, "d/foo0", joinHop("d/foo1", "foo0"))
	// A "." dirname (argv with no slash) is preserved literally rather
	// than dropped, producing a denormalized "./foo2" rather than "foo2".
	require.Equal(t, "./foo2", joinHop("foo3", "foo2"))
}

func TestJoinHopAbsoluteIsUsedAsIs(t *testing.T) {
	require.Equal(t, "/usr/bin/real", joinHop("d/foo1", "/usr/bin/real"))
}

// sliceWriter appends each Write call's bytes as one more line in *lines.
type sliceWriter struct {
	lines *[]string
}

func (w sliceWriter) Write(p []byte) (int, error) {
	*w.lines = append(*w.lines, string(p))
	return len(p), nil
}
