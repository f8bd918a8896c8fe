package buildenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// AbsPaths replaces the value of each present key with its absolute
// directory path. Absent keys are left untouched; no key is ever
// inserted.
func (e *Env) AbsPaths(keys ...string) error {
	for _, key := range keys {
		if !e.Has(key) {
			continue
		}
		abs, err := filepath.Abs(e.String(key))
		if err != nil {
			return err
		}
		e.vars[key] = abs
	}
	return nil
}

// AbsFilePaths is the file-path variant of AbsPaths. Empty values are
// skipped as well: an empty path would absolutize to the current
// directory, which is never a file.
func (e *Env) AbsFilePaths(keys ...string) error {
	for _, key := range keys {
		if !e.Has(key) || e.String(key) == "" {
			continue
		}
		abs, err := filepath.Abs(e.String(key))
		if err != nil {
			return err
		}
		e.vars[key] = abs
	}
	return nil
}

// VariantDir derives the build output directory, <build_dir>/debug or
// <build_dir>/release depending on the debug option, optionally
// wrapped with prefix and suffix components. The absolute result is
// stored under variant_dir and returned.
func (e *Env) VariantDir(prefix, suffix string) (string, error) {
	config := "release"
	if e.Bool("debug") {
		config = "debug"
	}
	result := filepath.Join(e.String("build_dir"), config)
	if prefix != "" {
		result = filepath.Join(prefix, result)
	}
	if suffix != "" {
		result = filepath.Join(result, suffix)
	}
	abs, err := filepath.Abs(result)
	if err != nil {
		return "", err
	}
	e.vars["variant_dir"] = abs
	return abs, nil
}

// SingleElem returns the sole element of elems. msgContext names the
// offending list in the error when its length is not exactly one.
func SingleElem[T any](elems []T, msgContext string) (T, error) {
	if len(elems) != 1 {
		var zero T
		return zero, fmt.Errorf("%s: list must contain exactly one element, got %d", msgContext, len(elems))
	}
	return elems[0], nil
}

// RootDir returns the root of the driver-stack tree, two directory
// levels above the running binary (which is installed under
// <root>/<dir>/).
func RootDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
