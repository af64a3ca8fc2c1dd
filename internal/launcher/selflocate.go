package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// usageErr is the sentinel the direct-execution special case returns. It
// is not a *LaunchError: it maps to exit code 0, not 127, so Run must
// recognize it before falling into the generic failure path.
type usageErr struct{}

func (usageErr) Error() string { return "Usage: this binary is not meant to be run directly" }

// locate resolves invoked_path from argv0 and PATH.
//
// If argv0 contains a path separator it is used as-is, no PATH search and
// no realpath. Otherwise each PATH entry is tried left to right for the
// first "<dir>/<argv0>" that exists and is executable. If none is found,
// notInPath is returned.
//
// The one exception: if the resolved invoked_path turns out to be a
// regular, non-symlink file whose identity matches the launcher's own
// running binary, this is direct execution of the launcher itself, and
// usageErr is returned instead of proceeding to chain resolution.
func locate(argv0, pathEnv, launcherExe string) (string, error) {
	var invoked string
	if strings.ContainsRune(argv0, os.PathSeparator) {
		invoked = argv0
	} else {
		found, err := searchPath(argv0, pathEnv)
		if err != nil {
			return "", err
		}
		invoked = found
	}

	info, err := os.Lstat(invoked)
	if err == nil && info.Mode()&os.ModeSymlink == 0 {
		if statIdentity(invoked).sameAs(statIdentity(launcherExe)) {
			return "", usageErr{}
		}
	}

	return invoked, nil
}

// searchPath walks pathEnv's entries left to right looking for the first
// "<dir>/<name>" that exists and is executable by the calling process.
func searchPath(name, pathEnv string) (string, error) {
	for _, dir := range strings.Split(pathEnv, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if unix.Access(candidate, unix.X_OK) == nil {
			return candidate, nil
		}
	}
	return "", notInPath(name)
}
