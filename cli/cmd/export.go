package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagwriter/core"
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <image> <out.json>",
	Short: "Export an image's descriptive tags to a JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadInto(args[0]); err != nil {
			return err
		}
		if err := mgr.ExportJSON(args[1]); err != nil {
			return err
		}
		core.NewPrinter(flagJSON).PrintSuccess("metadata exported to " + args[1])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <image> <in.json>",
	Short: "Import tags from a JSON file and write them to the image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadInto(args[0]); err != nil {
			return err
		}
		if err := mgr.ImportJSON(args[1]); err != nil {
			return err
		}
		ok, err := mgr.SaveToFile(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("engine reported no files updated; %s is unchanged", args[0])
		}
		core.NewPrinter(flagJSON).PrintSuccess("metadata imported into " + args[0])
		return nil
	},
}
