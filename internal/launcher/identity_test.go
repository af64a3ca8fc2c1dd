package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatIdentitySameFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	a := statIdentity(p)
	b := statIdentity(p)
	require.True(t, a.ok)
	require.True(t, a.sameAs(b))
}

func TestStatIdentityFollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.WriteFile(real, []byte("x"), 0o644))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(real, link))

	require.True(t, statIdentity(real).sameAs(statIdentity(link)))
}

func TestStatIdentityDifferentFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("y"), 0o644))

	require.False(t, statIdentity(a).sameAs(statIdentity(b)))
}

func TestStatIdentityMissingPath(t *testing.T) {
	id := statIdentity("/nonexistent/path/that/should/not/exist")
	require.False(t, id.ok)
	require.False(t, id.sameAs(id))
}
