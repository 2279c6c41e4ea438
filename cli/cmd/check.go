package cmd

import (
	"github.com/spf13/cobra"

	"tagwriter/core"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the metadata engine is installed and responding",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := sup.Check()
		if err != nil {
			return err
		}
		core.NewPrinter(flagJSON).PrintSuccess("ExifTool v" + version + " ready")
		return nil
	},
}
