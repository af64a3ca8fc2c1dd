package launcher

import (
	"os"
	"os/exec"
	"syscall"
)

// dispatchLink reads a .link sidecar's plain text redirect target, and
// execs it with the original arguments, argv[0] set to lastHop (the
// last symlink in the chain before the launcher binary).
func dispatchLink(linkPath, lastHop string, originalArgs []string) error {
	target, err := readLinkFile(linkPath)
	if err != nil {
		return execFailed(target, err)
	}
	return execve(target, append([]string{lastHop}, originalArgs[1:]...))
}

// dispatchReal execs a .real sidecar's parsed shebang.Cmd with argv
// [shebang.Cmd, shebang.Arg (if non-empty), realPath,
// original_argv[1:]...].
func dispatchReal(sb shebangLine, realPath string, originalArgs []string) error {
	argv := []string{sb.Cmd}
	if sb.Arg != "" {
		argv = append(argv, sb.Arg)
	}
	argv = append(argv, realPath)
	argv = append(argv, originalArgs[1:]...)
	return execve(sb.Cmd, argv)
}

// execve resolves cmd against PATH if it has no separator, then
// replaces the current process image. On success it never returns.
func execve(cmd string, argv []string) error {
	resolved := cmd
	if needsPathLookup(cmd) {
		found, err := exec.LookPath(cmd)
		if err != nil {
			return execFailed(cmd, err)
		}
		resolved = found
	}

	err := syscall.Exec(resolved, argv, os.Environ())
	return execFailed(cmd, err)
}

func needsPathLookup(cmd string) bool {
	for _, c := range cmd {
		if c == '/' {
			return false
		}
	}
	return true
}

func readLinkFile(linkPath string) (string, error) {
	data, err := os.ReadFile(linkPath)
	if err != nil {
		return "", err
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
