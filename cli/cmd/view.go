package cmd

import (
	"github.com/spf13/cobra"

	"tagwriter/core"
)

func init() {
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Show the descriptive tags of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadInto(args[0]); err != nil {
			return err
		}
		rememberFile(args[0])
		core.NewPrinter(flagJSON).PrintRecord(args[0], mgr.Record())
		return nil
	},
}
