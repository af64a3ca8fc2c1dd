package launcher

import (
	"errors"
	"fmt"
)

// diagnosticPrefix is the tag every launcher stderr line carries.
const diagnosticPrefix = "hdist-launcher:"

// Kind identifies which branch of the error taxonomy produced a
// LaunchError.
type Kind int

const (
	// KindUsage is not really a failure: direct execution of the launcher
	// binary itself. Exit code 0.
	KindUsage Kind = iota
	// KindNotInPath: argv[0] has no separator and no PATH entry matched.
	KindNotInPath
	// KindChainTooLong: the symlink hop limit was exceeded.
	KindChainTooLong
	// KindReadlinkFailed: a hop was expected to be a symlink but wasn't,
	// and it isn't the launcher binary either.
	KindReadlinkFailed
	// KindNoSidecar: neither <name>.link nor <name>.real exists.
	KindNoSidecar
	// KindBadShebang: a .real file's first line doesn't start with "#!".
	KindBadShebang
	// KindExecFailed: execve returned control to us.
	KindExecFailed
)

// LaunchError is the single error type the launcher's stages return.
// It carries just enough context to format a one-line diagnostic for
// its kind.
type LaunchError struct {
	Kind Kind
	Path string // meaning depends on Kind; see Error()
	Err  error  // wrapped cause, if any
}

func (e *LaunchError) Error() string {
	switch e.Kind {
	case KindNotInPath:
		return "Not found in PATH: " + e.Path
	case KindChainTooLong:
		return "Symlink chain too long"
	case KindReadlinkFailed, KindBadShebang, KindExecFailed:
		return "Unable to launch '" + e.Path + "'"
	case KindNoSidecar:
		return "Unable to launch '" + e.Path + "'"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "launch failed"
	}
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitCode maps an error to the process exit status. Every launcher
// failure is 127; the direct-execution "Usage" case is the sole
// exception and is handled separately by Run (it never constructs a
// KindUsage LaunchError to print — see run.go).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var le *LaunchError
	if errors.As(err, &le) {
		return 127
	}
	return 127
}

func notInPath(argv0 string) error {
	return &LaunchError{Kind: KindNotInPath, Path: argv0}
}

func chainTooLong() error {
	return &LaunchError{Kind: KindChainTooLong}
}

func readlinkFailed(path string, cause error) error {
	return &LaunchError{Kind: KindReadlinkFailed, Path: path, Err: cause}
}

func noSidecar(realPath string) error {
	return &LaunchError{Kind: KindNoSidecar, Path: realPath}
}

func badShebang(path string, cause error) error {
	return &LaunchError{Kind: KindBadShebang, Path: path, Err: cause}
}

func execFailed(cmd string, cause error) error {
	return &LaunchError{Kind: KindExecFailed, Path: cmd, Err: cause}
}

var (
	errNoShebangMarker    = errors.New("missing '#!' marker")
	errNoInterpreterFound = errors.New("no candidate interpreter found")
)

// diagnostic formats an error for standard error, including the trailing
// newline. Errors that are not *LaunchError are wrapped plainly.
func diagnostic(err error) string {
	return fmt.Sprintf("%s%s\n", diagnosticPrefix, err.Error())
}
