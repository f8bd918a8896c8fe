package scons

import (
	"slices"
	"strings"
	"testing"

	"github.com/npubuild/sitecfg/buildenv"
)

func TestVariablesArgsSorted(t *testing.T) {
	s := New(".")
	s.Variable("debug", "1")
	s.Variable("build_dir", "out")
	s.Variable("toolchain", "aarch64")

	want := []string{"build_dir=out", "debug=1", "toolchain=aarch64"}
	if got := s.variablesArgs(); !slices.Equal(got, want) {
		t.Errorf("variablesArgs = %v, want %v", got, want)
	}
}

func TestArgsIncludeJobs(t *testing.T) {
	s := New(".")
	s.Jobs(8)
	s.Variable("debug", "0")

	want := []string{"-j", "8", "debug=0"}
	if got := s.args(); !slices.Equal(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}

func TestArgsEmpty(t *testing.T) {
	s := New(".")
	if got := s.args(); len(got) != 0 {
		t.Errorf("args = %v, want none", got)
	}
}

func TestMergeEnv(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/u"}
	merged := mergeEnv(base, map[string]string{
		"PATH": "/opt/bin",
		"TERM": "xterm",
	})

	if !slices.Contains(merged, "PATH=/opt/bin") {
		t.Errorf("merged = %v, want PATH overridden", merged)
	}
	if !slices.Contains(merged, "HOME=/home/u") {
		t.Errorf("merged = %v, want HOME kept", merged)
	}
	if !slices.Contains(merged, "TERM=xterm") {
		t.Errorf("merged = %v, want TERM appended", merged)
	}
	for _, kv := range merged {
		if strings.HasPrefix(kv, "PATH=") && kv != "PATH=/opt/bin" {
			t.Errorf("merged contains a stale PATH entry: %s", kv)
		}
	}
}

func TestEnvExported(t *testing.T) {
	e := buildenv.New()
	e.ENV["LD_LIBRARY_PATH"] = "/opt/lib"

	s := New(".")
	s.Env(e)
	if s.env == nil || s.env.ENV["LD_LIBRARY_PATH"] != "/opt/lib" {
		t.Error("Env did not attach the construction environment")
	}
}
