package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npubuild/sitecfg/vars"
)

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the recognized build options",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), vars.Default().Help())
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
