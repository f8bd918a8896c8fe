package buildenv

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// buildError stands in for a caller-specific error type.
type buildError struct {
	msg string
}

func (e *buildError) Error() string { return e.msg }

func newBuildError(msg string) error { return &buildError{msg: msg} }

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()

	e := New()
	e.Set("ple_dir", dir)
	if err := e.ValidateDir("ple_dir", newBuildError); err != nil {
		t.Errorf("ValidateDir on an existing directory: %v", err)
	}

	e.Set("ple_dir", dir+"/nope")
	err := e.ValidateDir("ple_dir", newBuildError)
	if err == nil {
		t.Fatal("ValidateDir on a missing directory returned nil")
	}
	var be *buildError
	if !errors.As(err, &be) {
		t.Errorf("error type = %T, want *buildError", err)
	}
	if !strings.Contains(err.Error(), "ple_dir") {
		t.Errorf("error %q does not name the offending key", err)
	}
}

func TestValidateDirRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/f"
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	e := New()
	e.Set("ple_dir", file)
	if err := e.ValidateDir("ple_dir", newBuildError); err == nil {
		t.Error("ValidateDir accepted a regular file")
	}
}

func TestParseInt(t *testing.T) {
	e := New()
	e.Set("timeout", "30")
	if err := e.ParseInt("timeout", newBuildError); err != nil {
		t.Fatalf("ParseInt: %v", err)
	}
	v, _ := e.Get("timeout")
	if v != 30 {
		t.Errorf("timeout = %v (%T), want int 30", v, v)
	}

	e.Set("timeout", "soon")
	err := e.ParseInt("timeout", newBuildError)
	if err == nil {
		t.Fatal("ParseInt accepted a non-numeric value")
	}
	var be *buildError
	if !errors.As(err, &be) {
		t.Errorf("error type = %T, want *buildError", err)
	}
}

func TestParseIntAbsentKey(t *testing.T) {
	e := New()
	if err := e.ParseInt("missing", newBuildError); err == nil {
		t.Error("ParseInt on an absent key returned nil")
	}
}

func TestRequireVar(t *testing.T) {
	e := New()
	e.Set("build_dir", "")
	if err := e.RequireVar("build_dir", newBuildError); err != nil {
		t.Errorf("RequireVar failed on a present (empty) key: %v", err)
	}
	err := e.RequireVar("install_prefix", newBuildError)
	if err == nil {
		t.Fatal("RequireVar on an absent key returned nil")
	}
	if !strings.Contains(err.Error(), "install_prefix") {
		t.Errorf("error %q does not name the missing key", err)
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("boom")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want *ConfigError", err)
	}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
}
