package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tagwriter/core"
)

var editSets []string

func init() {
	editCmd.Flags().StringArrayVar(&editSets, "set", nil, `field assignment, e.g. --set "Headline=Storm damage" (repeatable)`)
	editCmd.MarkFlagRequired("set")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <image>",
	Short: "Set descriptive tags and write them back to the image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadInto(args[0]); err != nil {
			return err
		}
		for _, kv := range editSets {
			key, value, ok := core.ParseKV(kv)
			if !ok {
				return fmt.Errorf("invalid --set %q, want Key=Value", kv)
			}
			mgr.SetField(core.Field(key), value)
		}

		ok, err := mgr.SaveToFile(args[0])
		if err != nil {
			return fmt.Errorf("saving metadata: %w", err)
		}
		if !ok {
			return fmt.Errorf("engine reported no files updated; %s is unchanged", args[0])
		}
		rememberFile(args[0])
		core.NewPrinter(flagJSON).PrintSuccess("metadata written to " + args[0])
		return nil
	},
}
