package internal

import (
	"github.com/spf13/cobra"

	"github.com/npubuild/sitecfg/x/pad"
)

var padAlign int64

var padCmd = &cobra.Command{
	Use:   "pad file [file ...]",
	Short: "Pad files with NUL bytes to an alignment boundary",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPad,
}

func init() {
	padCmd.Flags().Int64VarP(&padAlign, "align", "a", 4096, "Alignment in bytes")
	rootCmd.AddCommand(padCmd)
}

func runPad(cmd *cobra.Command, args []string) error {
	padFn := pad.To(padAlign)
	for _, target := range args {
		if err := padFn(target); err != nil {
			return err
		}
		logger.Debug("padded", "file", target, "align", padAlign)
	}
	return nil
}
