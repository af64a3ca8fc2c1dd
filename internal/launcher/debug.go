package launcher

import (
	"fmt"
	"io"
)

// debugEnvVar is the switch that turns on the DEBUG protocol lines.
const debugEnvVar = "HDIST_LAUNCHER_DEBUG"

// debugLogger writes "hdist-launcher:DEBUG:<key>=<value>\n" lines to
// stderr when enabled. A nil Out means logging is disabled; every
// method is then a no-op.
type debugLogger struct {
	Out io.Writer
}

// newDebugLogger returns a logger that writes to w when enabled is true,
// or a disabled logger (nil Out) otherwise.
func newDebugLogger(w io.Writer, enabled bool) *debugLogger {
	if !enabled {
		return &debugLogger{}
	}
	return &debugLogger{Out: w}
}

func (d *debugLogger) enabled() bool { return d != nil && d.Out != nil }

func (d *debugLogger) logf(key, format string, args ...any) {
	if !d.enabled() {
		return
	}
	value := fmt.Sprintf(format, args...)
	fmt.Fprintf(d.Out, "%sDEBUG:%s=%s\n", diagnosticPrefix, key, value)
}

// readlink records a single chain hop: "readlink=<from> -> <to>".
func (d *debugLogger) readlink(from, to string) {
	d.logf("readlink", "%s -> %s", from, to)
}

func (d *debugLogger) profileBinDir(dir string) {
	d.logf("PROFILE_BIN_DIR", "%s", dir)
}

func (d *debugLogger) shebangCmd(cmd string) {
	d.logf("shebang_cmd", "%s", cmd)
}

func (d *debugLogger) shebangArg(arg string) {
	d.logf("shebang_arg", "%s", arg)
}
