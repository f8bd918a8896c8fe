package internal

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/npubuild/sitecfg/buildenv"
	"github.com/npubuild/sitecfg/x/scons"
)

var buildToolchain string

var buildCmd = &cobra.Command{
	Use:   "build [key=value ...] [target ...]",
	Short: "Configure and run the scons build",
	Long: `Build prepares the construction environment like configure does,
then invokes scons with the build variables and targets. Arguments
containing "=" are variables, the rest are targets.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildToolchain, "toolchain", "t", "native",
		"Toolchain to build with (aarch64, armclang, native)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	variables, targets := splitBuildArgs(args)

	e, err := configureEnv(variables, buildToolchain)
	if err != nil {
		return err
	}

	s := scons.New(".")
	s.Env(e)
	for _, v := range variables {
		key, value, _ := strings.Cut(v, "=")
		s.Variable(key, value)
	}
	if e.Has("jobs") {
		if err := e.ParseInt("jobs", buildenv.NewConfigError); err != nil {
			return err
		}
		jobs, _ := e.Int("jobs")
		s.Jobs(jobs)
	}

	logger.Info("running scons", "targets", targets)
	return s.Build(targets...)
}

// splitBuildArgs separates key=value build variables from targets, the
// way scons itself reads its command line.
func splitBuildArgs(args []string) (variables, targets []string) {
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			variables = append(variables, arg)
		} else {
			targets = append(targets, arg)
		}
	}
	return variables, targets
}
