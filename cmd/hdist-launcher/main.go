// Command hdist-launcher is the native launcher binary: invoked through
// a chain of symlinks, it locates the sidecar next to the last hop and
// execs the real program, preserving argv[0].
package main

import (
	"os"

	"github.com/hashdist/hdist-launcher/internal/launcher"
)

func main() {
	os.Exit(launcher.Run(os.Args, os.Environ(), os.Stderr))
}
