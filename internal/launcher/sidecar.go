package launcher

import (
	"os"
	"path"
)

// sidecar is the resolved companion file for a hop: either a plain-text
// redirect (.link) or a shebang script (.real).
type sidecar struct {
	LinkPath string // non-empty when a .link sidecar was found
	RealPath string // non-empty when a .real sidecar was found
}

// findSidecar derives base/name from lastHop and looks for
// "<base>/<name>.link" then "<base>/<name>.real", in that order.
// Neither existing is a NoSidecar error naming the .real path.
func findSidecar(lastHop string) (sidecar, error) {
	dir := path.Dir(lastHop)
	name := path.Base(lastHop)

	linkPath := dir + "/" + name + ".link"
	if fileExists(linkPath) {
		return sidecar{LinkPath: linkPath}, nil
	}

	realPath := dir + "/" + name + ".real"
	if fileExists(realPath) {
		return sidecar{RealPath: realPath}, nil
	}

	return sidecar{}, noSidecar(realPath)
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
