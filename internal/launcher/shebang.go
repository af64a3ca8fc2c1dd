package launcher

import (
	"bufio"
	"os"
	"path"
	"strings"

	"golang.org/x/sys/unix"
)

// naVar is substituted for ${PROFILE_BIN_DIR} when no profile_bin_dir
// was detected during chain resolution.
const naVar = "__NA__"

// shebangLine is the parsed, variable-expanded first line of a .real
// file, split on the first run of whitespace into command and argument.
// No quoting is honored.
type shebangLine struct {
	Cmd string
	Arg string
}

// parseShebang reads realPath's first line, verifies it begins with
// "#!", splits it into command/argument, expands ${ORIGIN} and
// ${PROFILE_BIN_DIR}, and resolves an "A:B"-style multi-interpreter
// fallback to the first colon-separated candidate that exists and is
// executable.
func parseShebang(realPath, profileBinDir string) (shebangLine, error) {
	f, err := os.Open(realPath)
	if err != nil {
		return shebangLine{}, badShebang(realPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return shebangLine{}, badShebang(realPath, scanner.Err())
	}
	line := scanner.Text()

	if !strings.HasPrefix(line, "#!") {
		return shebangLine{}, badShebang(realPath, errNoShebangMarker)
	}
	line = strings.TrimPrefix(line, "#!")

	cmd, arg := splitShebangFields(line)

	origin := path.Dir(realPath)
	profileVar := profileBinDir
	if profileVar == "" {
		profileVar = naVar
	}

	cmd = expandShebangVars(cmd, origin, profileVar)
	arg = expandShebangVars(arg, origin, profileVar)

	resolvedCmd, err := resolveInterpreter(cmd)
	if err != nil {
		return shebangLine{}, badShebang(realPath, err)
	}

	return shebangLine{Cmd: resolvedCmd, Arg: arg}, nil
}

// splitShebangFields splits the (marker-stripped) shebang line into a
// command and argument on the first run of one-or-more spaces/tabs. The
// argument is trimmed of trailing whitespace; if nothing follows the
// run of whitespace, the argument is the empty string.
func splitShebangFields(line string) (cmd, arg string) {
	idx := strings.IndexAny(line, " \t")
	if idx == -1 {
		return line, ""
	}
	cmd = line[:idx]
	rest := strings.TrimLeft(line[idx:], " \t")
	return cmd, strings.TrimRight(rest, " \t")
}

func expandShebangVars(s, origin, profileBinDir string) string {
	s = strings.ReplaceAll(s, "${ORIGIN}", origin)
	s = strings.ReplaceAll(s, "${PROFILE_BIN_DIR}", profileBinDir)
	return s
}

// resolveInterpreter splits cmd on ":" (the multi-interpreter fallback
// syntax) and returns the first candidate that exists and is
// executable. A single entry with no colon is returned unchanged,
// existence unchecked, so the normal exec-failure path reports it.
func resolveInterpreter(cmd string) (string, error) {
	candidates := strings.Split(cmd, ":")
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	for _, c := range candidates {
		if unix.Access(c, unix.X_OK) == nil {
			return c, nil
		}
	}
	return "", errNoInterpreterFound
}
