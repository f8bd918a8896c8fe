package internal

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "sitecfg",
})

var rootCmd = &cobra.Command{
	Use:   "sitecfg",
	Short: "sitecfg prepares the construction environment of a driver-stack build",
	Long: `sitecfg sets up compiler toolchains, environment variables, search
paths and installation directories for a native driver-stack build,
then hands the resulting construction environment to scons.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Fatal(err)
	}
}
