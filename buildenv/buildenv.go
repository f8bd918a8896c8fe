// Package buildenv holds the mutable construction environment shared by
// every configuration step of a driver-stack build: option values, the
// environment exported to spawned tools, compiler/linker flag lists and
// the selected tool names.
package buildenv

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// defaultPath seeds the exported PATH so that tools spawned during the
// build can be found even when the caller starts from an empty ENV.
const defaultPath = "/usr/local/bin:/usr/bin:/bin"

// Env is the construction environment. Option values live in a
// key-addressed map because several operations (validation, path
// absolutization) work over caller-chosen keys and must distinguish
// "absent" from "empty". Structured state the build consumes directly
// lives in typed fields.
type Env struct {
	vars map[string]any

	// ENV is the environment exported to processes spawned by the
	// build. It is explicit state, not the process environment: the
	// caller decides when it reaches a child process.
	ENV map[string]string

	// Compiler include and linker library search paths.
	CPPPATH []string
	LIBPATH []string

	// Flag lists. Appends are deduplicating.
	CPPFLAGS  []string
	CXXFLAGS  []string
	LINKFLAGS []string

	// Tool names, preloaded with the native defaults.
	CC     string
	CXX    string
	Link   string
	AS     string
	AR     string
	Ranlib string
}

// New returns an Env with native tool names and a minimal exported PATH.
func New() *Env {
	return &Env{
		vars:   make(map[string]any),
		ENV:    map[string]string{"PATH": defaultPath},
		CC:     "gcc",
		CXX:    "g++",
		Link:   "g++",
		AS:     "as",
		AR:     "ar",
		Ranlib: "ranlib",
	}
}

// Set stores an option value.
func (e *Env) Set(key string, value any) {
	e.vars[key] = value
}

// Get returns the raw option value and whether the key is present.
func (e *Env) Get(key string) (any, bool) {
	v, ok := e.vars[key]
	return v, ok
}

// Has reports whether the key is present, independent of its value.
func (e *Env) Has(key string) bool {
	_, ok := e.vars[key]
	return ok
}

// String returns the option value rendered as a string, or "" when the
// key is absent.
func (e *Env) String(key string) string {
	v, ok := e.vars[key]
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprint(v)
	}
}

// Bool interprets the option value as a flag. Options parsed from the
// command line or an options file arrive as strings, so "1", "true",
// "0" and friends are honoured.
func (e *Env) Bool(key string) bool {
	v, ok := e.vars[key]
	if !ok {
		return false
	}
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		if n, err := strconv.Atoi(v); err == nil {
			return n != 0
		}
		return v != ""
	default:
		return v != nil
	}
}

// Int returns the option value as an int. The second result is false
// when the key is absent or the value does not parse.
func (e *Env) Int(key string) (int, bool) {
	v, ok := e.vars[key]
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// Strings returns the option value as a list. A plain string is split
// on commas, the way list-valued options arrive from the command line.
func (e *Env) Strings(key string) []string {
	v, ok := e.vars[key]
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case []string:
		return v
	case string:
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ExportVar copies the named option into the exported environment, but
// only if it has been set.
func (e *Env) ExportVar(key string) {
	if _, ok := e.vars[key]; ok {
		e.ENV[key] = e.String(key)
	}
}

// AppendCPPFlags appends preprocessor/warning flags, skipping any flag
// already present.
func (e *Env) AppendCPPFlags(flags ...string) {
	e.CPPFLAGS = appendUnique(e.CPPFLAGS, flags...)
}

// AppendCXXFlags appends C++ compile flags, skipping duplicates.
func (e *Env) AppendCXXFlags(flags ...string) {
	e.CXXFLAGS = appendUnique(e.CXXFLAGS, flags...)
}

// AppendLinkFlags appends linker flags, skipping duplicates.
func (e *Env) AppendLinkFlags(flags ...string) {
	e.LINKFLAGS = appendUnique(e.LINKFLAGS, flags...)
}

// AppendCPPPath appends include directories, skipping duplicates.
func (e *Env) AppendCPPPath(dirs ...string) {
	e.CPPPATH = appendUnique(e.CPPPATH, dirs...)
}

// PrependCPPPath prepends include directories so they win over paths
// injected from the outside. Directories already present keep their
// position.
func (e *Env) PrependCPPPath(dirs ...string) {
	e.CPPPATH = prependUnique(e.CPPPATH, dirs...)
}

// AppendLibPath appends linker library directories, skipping duplicates.
func (e *Env) AppendLibPath(dirs ...string) {
	e.LIBPATH = appendUnique(e.LIBPATH, dirs...)
}

// appendUnique returns list with every item not yet present appended.
func appendUnique(list []string, items ...string) []string {
	for _, it := range items {
		if !slices.Contains(list, it) {
			list = append(list, it)
		}
	}
	return list
}

// prependUnique returns list with every item not yet present placed in
// front, preserving the relative order of items.
func prependUnique(list []string, items ...string) []string {
	var fresh []string
	for _, it := range items {
		if !slices.Contains(list, it) && !slices.Contains(fresh, it) {
			fresh = append(fresh, it)
		}
	}
	return append(fresh, list...)
}
