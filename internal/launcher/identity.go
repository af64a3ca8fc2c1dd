package launcher

import "golang.org/x/sys/unix"

// fileIdentity is a (device, inode) pair: the POSIX answer to "is this
// the same file", independent of which path happened to reach it.
type fileIdentity struct {
	Dev uint64
	Ino uint64
	ok  bool
}

// statIdentity follows symlinks (like stat(2)) and returns the identity
// of whatever path ultimately resolves to. Used to decide whether a chain
// hop has reached the launcher binary itself without canonicalizing the
// path string.
func statIdentity(path string) fileIdentity {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fileIdentity{}
	}
	return fileIdentity{Dev: uint64(st.Dev), Ino: st.Ino, ok: true}
}

func (a fileIdentity) sameAs(b fileIdentity) bool {
	return a.ok && b.ok && a.Dev == b.Dev && a.Ino == b.Ino
}
