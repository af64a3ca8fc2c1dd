// Package launcher implements the hdist-launcher symlink-forwarding
// algorithm: given a process invoked through a chain of symlinks, find
// the sidecar file next to the last hop and exec the real program it
// names, preserving the original argv[0].
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Run is the entry point cmd/hdist-launcher calls. It never returns
// normally on the success path: dispatch replaces the process image.
// It returns only on failure (or the direct-execution Usage case),
// having already written any diagnostic to stderr.
func Run(args, environ []string, stderr io.Writer) int {
	launcherExe, err := os.Executable()
	if err != nil {
		err = execFailed("self", err)
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}

	dbg := newDebugLogger(stderr, lookupEnv(environ, debugEnvVar) != "")

	invoked, err := locate(args[0], lookupEnv(environ, "PATH"), launcherExe)
	if err != nil {
		var u usageErr
		if errors.As(err, &u) {
			fmt.Fprintf(stderr, "%sUsage: %s <args...>\n", diagnosticPrefix, args[0])
			return 0
		}
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}

	chain, err := resolveChain(invoked, launcherExe, dbg)
	if err != nil {
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}
	// Emitted exactly once, even when empty.
	dbg.profileBinDir(chain.ProfileBinDir)

	sc, err := findSidecar(chain.LastHop)
	if err != nil {
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}

	if sc.LinkPath != "" {
		err := dispatchLink(sc.LinkPath, chain.LastHop, args)
		// Only reached if exec failed; success never returns.
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}

	sb, err := parseShebang(sc.RealPath, chain.ProfileBinDir)
	if err != nil {
		fmt.Fprint(stderr, diagnostic(err))
		return ExitCode(err)
	}
	dbg.shebangCmd(sb.Cmd)
	dbg.shebangArg(sb.Arg)

	err = dispatchReal(sb, sc.RealPath, args)
	fmt.Fprint(stderr, diagnostic(err))
	return ExitCode(err)
}

// lookupEnv finds key in a slice of "KEY=VALUE" strings, the same shape
// os.Environ() / a constructed test environment both use.
func lookupEnv(environ []string, key string) string {
	prefix := key + "="
	for _, kv := range environ {
		if len(kv) > len(prefix) && kv[:len(prefix)] == prefix {
			return kv[len(prefix):]
		}
		if kv == key+"=" {
			return ""
		}
	}
	return ""
}
