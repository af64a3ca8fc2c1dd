package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLinkFileTrimsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tool.link")
	require.NoError(t, os.WriteFile(p, []byte("/bin/echo\n"), 0o644))

	got, err := readLinkFile(p)
	require.NoError(t, err)
	require.Equal(t, "/bin/echo", got)
}

func TestReadLinkFileNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tool.link")
	require.NoError(t, os.WriteFile(p, []byte("/bin/echo"), 0o644))

	got, err := readLinkFile(p)
	require.NoError(t, err)
	require.Equal(t, "/bin/echo", got)
}

func TestNeedsPathLookup(t *testing.T) {
	require.True(t, needsPathLookup("echo"))
	require.False(t, needsPathLookup("/bin/echo"))
	require.False(t, needsPathLookup("./echo"))
}

func TestTrimTrailingNewlineHandlesCRLF(t *testing.T) {
	require.Equal(t, "/bin/echo", trimTrailingNewline("/bin/echo\r\n"))
	require.Equal(t, "/bin/echo", trimTrailingNewline("/bin/echo"))
}
