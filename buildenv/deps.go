package buildenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetupPleLibDependency resolves the plelib include directory and
// prepends it to the include path list. The ple_include option wins
// when the directory it names exists; otherwise the conventional
// build output under ple_dir is used.
//
// Prepending (rather than appending) matters: an installed copy of
// plelib may already be reachable through CPATH, and the in-tree
// headers must shadow it.
func SetupPleLibDependency(e *Env) error {
	include := e.String("ple_include")
	if include == "" {
		root, err := RootDir()
		if err != nil {
			return err
		}
		include = filepath.Join(root, "include")
	}

	if _, err := os.Stat(include); err != nil {
		if !e.Has("ple_dir") {
			return NewConfigError(errorStyle.Render(
				fmt.Sprintf("ERROR: %s does not exist and no ple_dir is set.", include)))
		}
		include = filepath.Join(e.String("ple_dir"), "build", "release", "include")
	}

	e.PrependCPPPath(include)
	return nil
}

// ArchRegsDir selects the architecture register header directory for a
// hardware variant. An empty variant defaults to the sole entry of the
// variants option; configurations with several variants must pass one
// explicitly.
func ArchRegsDir(e *Env, variant string) (string, error) {
	if variant == "" {
		var err error
		variant, err = SingleElem(e.Strings("variants"), "variants")
		if err != nil {
			return "", err
		}
	}
	if variant == "fenchurch" {
		return e.String("arch_regs_dir"), nil
	}
	return e.String("arch_regs_nx7_dir"), nil
}
