package buildenv

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParseDefaultVarsPassthrough(t *testing.T) {
	t.Setenv("ARMLMD_LICENSE_FILE", "27000@licenses.example.com")
	t.Setenv("TERM", "xterm-256color")

	// Registers the cleanup, then makes the variable truly absent.
	t.Setenv("PROCESSOR_ARCHITECTURE", "x")
	os.Unsetenv("PROCESSOR_ARCHITECTURE")

	e := New()
	if err := ParseDefaultVars(e); err != nil {
		t.Fatalf("ParseDefaultVars: %v", err)
	}

	if got := e.ENV["ARMLMD_LICENSE_FILE"]; got != "27000@licenses.example.com" {
		t.Errorf("ENV[ARMLMD_LICENSE_FILE] = %q, want the license server", got)
	}
	if got := e.ENV["TERM"]; got != "xterm-256color" {
		t.Errorf("ENV[TERM] = %q, want %q", got, "xterm-256color")
	}
	if _, ok := e.ENV["PROCESSOR_ARCHITECTURE"]; ok {
		t.Error("unset PROCESSOR_ARCHITECTURE was imported")
	}
}

func TestParseDefaultVarsPrependsPath(t *testing.T) {
	sep := string(os.PathListSeparator)

	e := New()
	e.ENV["PATH"] = "/usr/bin" + sep + "/bin"
	e.Set("PATH", "/opt/tool/bin"+sep+"/usr/bin")
	if err := ParseDefaultVars(e); err != nil {
		t.Fatalf("ParseDefaultVars: %v", err)
	}

	want := "/opt/tool/bin" + sep + "/usr/bin" + sep + "/bin"
	if got := e.ENV["PATH"]; got != want {
		t.Errorf("ENV[PATH] = %q, want %q", got, want)
	}
}

func TestParseDefaultVarsLDLibraryPath(t *testing.T) {
	e := New()
	e.Set("LD_LIBRARY_PATH", "/opt/tool/lib")
	if err := ParseDefaultVars(e); err != nil {
		t.Fatalf("ParseDefaultVars: %v", err)
	}
	if got := e.ENV["LD_LIBRARY_PATH"]; got != "/opt/tool/lib" {
		t.Errorf("ENV[LD_LIBRARY_PATH] = %q, want %q", got, "/opt/tool/lib")
	}
}

func TestParseDefaultVarsAbsolutizesCPATH(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	sep := string(os.PathListSeparator)

	e := New()
	e.Set("CPATH", "headers"+sep+"more/headers")
	e.Set("LPATH", "libs")
	if err := ParseDefaultVars(e); err != nil {
		t.Fatalf("ParseDefaultVars: %v", err)
	}

	// t.Chdir already resolved dir's symlinks on some platforms, so
	// compare against what filepath.Abs sees.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	wantCPP := []string{filepath.Join(wd, "headers"), filepath.Join(wd, "more", "headers")}
	if !slices.Equal(e.CPPPATH, wantCPP) {
		t.Errorf("CPPPATH = %v, want %v", e.CPPPATH, wantCPP)
	}
	wantLib := []string{filepath.Join(wd, "libs")}
	if !slices.Equal(e.LIBPATH, wantLib) {
		t.Errorf("LIBPATH = %v, want %v", e.LIBPATH, wantLib)
	}
}

func TestParseDefaultVarsDeduplicatesCPATH(t *testing.T) {
	sep := string(os.PathListSeparator)

	e := New()
	e.Set("CPATH", "/inc"+sep+"/inc")
	if err := ParseDefaultVars(e); err != nil {
		t.Fatalf("ParseDefaultVars: %v", err)
	}
	if len(e.CPPPATH) != 1 || e.CPPPATH[0] != "/inc" {
		t.Errorf("CPPPATH = %v, want [/inc]", e.CPPPATH)
	}
}

func TestPrependENVPathKeepsOrder(t *testing.T) {
	sep := string(os.PathListSeparator)

	e := New()
	e.ENV["PATH"] = strings.Join([]string{"/a", "/b"}, sep)
	e.PrependENVPath("PATH", "/c"+sep+"/a")
	if got := e.ENV["PATH"]; got != strings.Join([]string{"/c", "/a", "/b"}, sep) {
		t.Errorf("PATH = %q, want c,a,b", got)
	}
}
