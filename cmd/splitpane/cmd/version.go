package cmd

import (
	"github.com/spf13/cobra"

	"splitpane/internal/cli/output"
	"splitpane/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, build time and platform of splitpane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := newOutput(cmd)
		switch out.Format() {
		case output.FormatJSON, output.FormatYAML:
			return out.Write(info)
		case output.FormatQuiet:
			return out.Write(info.Version)
		default:
			if err := out.Line("splitpane " + info.String()); err != nil {
				return err
			}
			return out.Line(info.Full())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
