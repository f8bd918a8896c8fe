// Package scons wraps scons invocations: build variables are passed as
// key=value arguments and the construction environment is exported to
// the spawned process.
package scons

import (
	"os"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/npubuild/sitecfg/buildenv"
)

// Scons drives an SCons-based build.
type Scons struct {
	sourceDir string
	env       *buildenv.Env
	variables map[string]string
	jobs      int
}

// New returns a ready-to-use Scons rooted at sourceDir.
func New(sourceDir string) *Scons {
	return &Scons{
		sourceDir: sourceDir,
		variables: make(map[string]string),
	}
}

// Env sets the construction environment whose exported ENV is passed
// to every spawned scons process.
func (s *Scons) Env(e *buildenv.Env) { s.env = e }

// Variable adds a key=value build variable.
func (s *Scons) Variable(key, value string) {
	s.variables[key] = value
}

// Jobs sets the -j parallelism level.
func (s *Scons) Jobs(n int) { s.jobs = n }

// Build runs "scons" with all configured variables and the given
// targets.
func (s *Scons) Build(targets ...string) error {
	return s.run(append(s.args(), targets...))
}

// Install runs the install target.
func (s *Scons) Install() error {
	return s.Build("install")
}

// Clean runs "scons -c" for the given targets.
func (s *Scons) Clean(targets ...string) error {
	return s.run(append(append(s.args(), "-c"), targets...))
}

func (s *Scons) args() []string {
	var args []string
	if s.jobs > 0 {
		args = append(args, "-j", strconv.Itoa(s.jobs))
	}
	return append(args, s.variablesArgs()...)
}

func (s *Scons) variablesArgs() []string {
	if len(s.variables) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.variables))
	for k := range s.variables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, k+"="+s.variables[k])
	}
	return args
}

func (s *Scons) run(args []string) error {
	cmd := exec.Command("scons", args...)
	cmd.Dir = s.sourceDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if s.env != nil && len(s.env.ENV) > 0 {
		cmd.Env = mergeEnv(os.Environ(), s.env.ENV)
	}
	return cmd.Run()
}

// mergeEnv returns base with every key in overrides replaced or appended.
func mergeEnv(base []string, overrides map[string]string) []string {
	idx := make(map[string]int, len(base))
	for i, kv := range base {
		if k, _, ok := strings.Cut(kv, "="); ok {
			idx[k] = i
		}
	}
	for k, v := range overrides {
		if i, ok := idx[k]; ok {
			base[i] = k + "=" + v
		} else {
			base = append(base, k+"="+v)
		}
	}
	return base
}
