package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWipeCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Erase all stored data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to erase data without --yes")
			}
			if err := a.store.ClearAllData(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All data erased")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing members, groups, sessions and settings")
	return cmd
}
