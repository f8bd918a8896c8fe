package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/npubuild/sitecfg/buildenv"
	"github.com/npubuild/sitecfg/internal/extras"
	"github.com/npubuild/sitecfg/sitefile"
	"github.com/npubuild/sitecfg/toolchain"
	"github.com/npubuild/sitecfg/vars"
)

var (
	configureToolchain string
	configureParams    []string
	configurePrefix    string
	configureSuffix    string
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

var configureCmd = &cobra.Command{
	Use:   "configure [key=value ...]",
	Short: "Prepare the construction environment",
	Long: `Configure builds the construction environment from the recognized
options, the options file, the selected toolchain and any extra site
scripts, then prints the result.`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringVarP(&configureToolchain, "toolchain", "t", "native",
		"Toolchain to build with (aarch64, armclang, native)")
	configureCmd.Flags().StringArrayVarP(&configureParams, "param", "p", nil,
		"key=value parameter exported to extra site scripts")
	configureCmd.Flags().StringVar(&configurePrefix, "variant-prefix", "",
		"Prefix component of the variant directory")
	configureCmd.Flags().StringVar(&configureSuffix, "variant-suffix", "",
		"Suffix component of the variant directory")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	e, err := configureEnv(args, configureToolchain)
	if err != nil {
		return err
	}
	printEnv(cmd, e)
	return nil
}

// configureEnv runs the full configuration sequence. Relative CPATH
// and LPATH segments are resolved here, against the directory the
// user invoked us from, before anything changes directory.
func configureEnv(args []string, toolchainName string) (*buildenv.Env, error) {
	e := buildenv.New()
	if err := vars.Default().Update(e, args); err != nil {
		return nil, err
	}
	if err := buildenv.ParseDefaultVars(e); err != nil {
		return nil, err
	}

	toolchain.Setup(e, toolchainName)
	buildenv.SetupCommonEnv(e)

	if err := e.AbsFilePaths("options"); err != nil {
		return nil, err
	}
	if err := e.AbsPaths("install_prefix", "install_bin_dir", "install_include_dir", "install_lib_dir"); err != nil {
		return nil, err
	}

	// ple_dir is only required when set; the schema cannot express a
	// conditional path requirement.
	if e.Has("ple_dir") {
		if err := e.AbsPaths("ple_dir"); err != nil {
			return nil, err
		}
		if err := e.ValidateDir("ple_dir", buildenv.NewConfigError); err != nil {
			return nil, err
		}
	}
	if e.Has("ple_dir") || e.Has("ple_include") {
		if err := buildenv.SetupPleLibDependency(e); err != nil {
			return nil, err
		}
	}

	if e.Has("build_dir") {
		if _, err := e.VariantDir(configurePrefix, configureSuffix); err != nil {
			return nil, err
		}
	}

	params, err := parseParams(configureParams)
	if err != nil {
		return nil, err
	}
	if err := extras.Load(e, params); err != nil {
		return nil, err
	}
	return e, nil
}

// parseParams converts --param key=value flags into script parameters.
func parseParams(pairs []string) (*sitefile.Params, error) {
	params := sitefile.NewParams(nil)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, want key=value", pair)
		}
		params.Set(key, value)
	}
	return params, nil
}

func printEnv(cmd *cobra.Command, e *buildenv.Env) {
	out := cmd.OutOrStdout()
	section := func(name string, values []string) {
		fmt.Fprintln(out, titleStyle.Render(name))
		for _, v := range values {
			fmt.Fprintf(out, "  %s\n", v)
		}
	}
	section("Tools", []string{
		"CC=" + e.CC,
		"CXX=" + e.CXX,
		"LINK=" + e.Link,
		"AS=" + e.AS,
		"AR=" + e.AR,
		"RANLIB=" + e.Ranlib,
	})
	section("CPPFLAGS", e.CPPFLAGS)
	section("CXXFLAGS", e.CXXFLAGS)
	section("LINKFLAGS", e.LINKFLAGS)
	section("CPPPATH", e.CPPPATH)
	section("LIBPATH", e.LIBPATH)

	env := make([]string, 0, len(e.ENV))
	for k, v := range e.ENV {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	section("ENV", env)

	if e.Has("variant_dir") {
		section("Variant dir", []string{e.String("variant_dir")})
	}
}
