// Package vars declares the recognized build options and populates a
// construction environment from key=value arguments and an options
// file, in the spirit of SCons Variables.
package vars

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npubuild/sitecfg/buildenv"
)

// Variable is one recognized option.
type Variable struct {
	Name    string
	Help    string
	Default string

	// HasDefault distinguishes "defaults to empty" from "unset unless
	// given" (scons_extra and the plain path-list options).
	HasDefault bool

	// IsPath marks options holding filesystem paths. Any string is
	// accepted (the path need not exist yet), the marker only drives
	// help output and later absolutization.
	IsPath bool
}

// Variables is the declarative option schema.
type Variables struct {
	decls []Variable
}

// New returns an empty schema.
func New() *Variables {
	return &Variables{}
}

// Default returns the schema every driver-stack build starts from.
func Default() *Variables {
	v := New()
	v.AddDefault("options", "Options file, e.g. debug=0", "options.py")
	v.Add("PATH", "Prepend to the PATH environment variable")
	v.Add("LD_LIBRARY_PATH", "Prepend to the LD_LIBRARY_PATH environment variable")
	v.Add("CPATH", "Append to the C include path list the compiler uses")
	v.Add("LPATH", "Append to the library path list the compiler uses")
	v.Add("scons_extra", "Extra site scripts to be loaded, separated by comma.")
	v.AddPath("install_prefix", "Installation prefix",
		filepath.Join(string(filepath.Separator), "usr", "local"))
	v.AddPath("install_bin_dir", "Executables installation directory",
		filepath.Join("$install_prefix", "bin"))
	v.AddPath("install_include_dir", "Header files installation directory",
		filepath.Join("$install_prefix", "include"))
	v.AddPath("install_lib_dir", "Libraries installation directory",
		filepath.Join("$install_prefix", "lib"))
	return v
}

// Add declares an option with no default.
func (v *Variables) Add(name, help string) {
	v.decls = append(v.decls, Variable{Name: name, Help: help})
}

// AddDefault declares an option with a default value.
func (v *Variables) AddDefault(name, help, def string) {
	v.decls = append(v.decls, Variable{Name: name, Help: help, Default: def, HasDefault: true})
}

// AddPath declares a path-valued option with a default.
func (v *Variables) AddPath(name, help, def string) {
	v.decls = append(v.decls, Variable{Name: name, Help: help, Default: def, HasDefault: true, IsPath: true})
}

// Decls returns the declared options in declaration order.
func (v *Variables) Decls() []Variable {
	return v.decls
}

// Update populates e from the schema defaults, the options file and
// the key=value args, in that order (later sources win). Keys not
// declared in the schema are stored as-is; validation of individual
// options happens later, where their requirements are known.
func (v *Variables) Update(e *buildenv.Env, args []string) error {
	for _, d := range v.decls {
		if d.HasDefault {
			e.Set(d.Name, d.Default)
		}
	}

	cmdline, err := parsePairs(args)
	if err != nil {
		return err
	}

	optionsFile := e.String("options")
	if f, ok := cmdline["options"]; ok {
		optionsFile = f
	}
	if optionsFile != "" {
		if err := loadOptionsFile(e, optionsFile); err != nil {
			return err
		}
	}

	for key, value := range cmdline {
		e.Set(key, value)
	}

	v.expand(e)
	return nil
}

// expand substitutes $name references (e.g. $install_prefix in
// install_bin_dir) with the current option values, in declaration
// order so earlier options are final before later ones refer to them.
func (v *Variables) expand(e *buildenv.Env) {
	for _, d := range v.decls {
		val := e.String(d.Name)
		if !strings.Contains(val, "$") {
			continue
		}
		e.Set(d.Name, os.Expand(val, func(name string) string {
			return e.String(name)
		}))
	}
}

// Help renders the recognized options for the command help output.
func (v *Variables) Help() string {
	var b strings.Builder
	for _, d := range v.decls {
		fmt.Fprintf(&b, "%s: %s", d.Name, d.Help)
		if d.HasDefault {
			fmt.Fprintf(&b, " (default %q)", d.Default)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parsePairs validates key=value arguments and returns them as a map.
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q, want key=value", arg)
		}
		pairs[key] = value
	}
	return pairs, nil
}

// loadOptionsFile reads key=value lines from an options file. A
// missing file is not an error: the default options.py need not
// exist. Blank lines and # comments are skipped, quotes around
// values are dropped.
func loadOptionsFile(e *buildenv.Env, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("%s:%d: invalid line %q, want key=value", path, n+1, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		e.Set(key, value)
	}
	return nil
}
