package buildenv

import (
	"os"
	"path/filepath"
	"strings"
)

// passthroughVars are picked up from the process environment so tools
// spawned by the build behave the same as when run by hand: the Arm
// tool license server, terminal colour support, the host architecture
// and unbuffered output for python helpers.
var passthroughVars = []string{
	"ARMLMD_LICENSE_FILE",
	"TERM",
	"PROCESSOR_ARCHITECTURE",
	"PYTHONUNBUFFERED",
}

// ParseDefaultVars resolves the options declared by the default schema
// into exported environment and search-path state.
//
// CPATH and LPATH segments may be relative; they are made absolute
// against the current working directory here, before the build moves
// into a variant subdirectory where they would resolve wrongly. Call
// this before any chdir.
func ParseDefaultVars(e *Env) error {
	for _, name := range passthroughVars {
		if v, ok := os.LookupEnv(name); ok {
			e.ENV[name] = v
		}
	}
	if e.Has("PATH") {
		e.PrependENVPath("PATH", e.String("PATH"))
	}
	if e.Has("LD_LIBRARY_PATH") {
		e.PrependENVPath("LD_LIBRARY_PATH", e.String("LD_LIBRARY_PATH"))
	}
	if e.Has("CPATH") {
		dirs, err := absSegments(e.String("CPATH"))
		if err != nil {
			return err
		}
		e.AppendCPPPath(dirs...)
	}
	if e.Has("LPATH") {
		dirs, err := absSegments(e.String("LPATH"))
		if err != nil {
			return err
		}
		e.AppendLibPath(dirs...)
	}
	return nil
}

// PrependENVPath prepends value (itself a list-separator-delimited
// path list) to the named exported variable, dropping duplicates.
func (e *Env) PrependENVPath(key, value string) {
	segments := splitPathList(value)
	for _, s := range splitPathList(e.ENV[key]) {
		segments = appendUnique(segments, s)
	}
	e.ENV[key] = strings.Join(segments, string(os.PathListSeparator))
}

// absSegments splits a list-separator-delimited path list and makes
// each segment absolute against the current working directory.
func absSegments(value string) ([]string, error) {
	var out []string
	for _, s := range splitPathList(value) {
		abs, err := filepath.Abs(s)
		if err != nil {
			return nil, err
		}
		out = append(out, abs)
	}
	return out, nil
}

func splitPathList(value string) []string {
	var out []string
	for _, s := range strings.Split(value, string(os.PathListSeparator)) {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
