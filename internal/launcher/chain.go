package launcher

import (
	"os"
	"path"
)

// maxHops bounds how many symlink hops resolveChain will follow before
// giving up, guarding against a cyclic or pathological chain.
const maxHops = 40

// profileBinMarker is the file whose presence in a hop's lexical
// directory marks that directory as the profile_bin_dir.
const profileBinMarker = "is-profile-bin"

// chainResult is the outcome of walking from invoked_path to the
// launcher binary: the path of the last hop before the launcher (where
// sidecar discovery starts) and the profile_bin_dir, if any was seen.
type chainResult struct {
	LastHop       string
	ProfileBinDir string
}

// resolveChain walks from invokedPath toward the launcher binary one
// symlink hop at a time, joining each raw readlink target against the
// hop's lexical directory textually — never filepath.Clean'd or
// filepath.Join'd, so a relative target like "../foo" or "./foo" stays
// denormalized exactly as written on disk. It also records the
// profile_bin_dir, if any hop's directory carries the marker file.
//
// The walk ends when the current hop is no longer a symlink at all; at
// that point it must be the launcher binary itself, confirmed via a
// device+inode identity check (since nothing is left to traverse).
//
// lastHop tracks the most recent cur for which readlink succeeded: when
// the walk terminates at the launcher binary, lastHop is the final
// symlink in the chain, which is where sidecar discovery starts.
func resolveChain(invokedPath, launcherExe string, dbg *debugLogger) (chainResult, error) {
	launcherID := statIdentity(launcherExe)

	cur := invokedPath
	var result chainResult
	var lastHop string

	for i := 0; i < maxHops; i++ {
		if dir := lexicalDir(cur); result.ProfileBinDir == "" && hasProfileBinMarker(dir) {
			result.ProfileBinDir = dir
		}

		target, err := os.Readlink(cur)
		if err != nil {
			// Not a symlink. If it's not the launcher binary either, the
			// chain is broken: nothing left to resolve.
			if statIdentity(cur).sameAs(launcherID) {
				result.LastHop = lastHop
				return result, nil
			}
			return chainResult{}, readlinkFailed(cur, err)
		}
		dbg.readlink(cur, target)

		lastHop = cur
		cur = joinHop(cur, target)
	}

	return chainResult{}, chainTooLong()
}

// lexicalDir returns the textual directory component of p via path.Dir:
// no filesystem access, but path.Dir lexically cleans the directory part
// it returns ("./foo" gives ".", "a/../b/foo" gives "b").
func lexicalDir(p string) string {
	return path.Dir(p)
}

// joinHop joins a hop's lexical directory with a raw readlink target.
// Absolute targets are used as-is; relative targets are concatenated
// textually with the directory, producing denormalized paths like
// "././foo" when the inputs warrant it.
func joinHop(from, target string) string {
	if path.IsAbs(target) {
		return target
	}
	return lexicalDir(from) + "/" + target
}

func hasProfileBinMarker(dir string) bool {
	_, err := os.Stat(dir + "/" + profileBinMarker)
	return err == nil
}
